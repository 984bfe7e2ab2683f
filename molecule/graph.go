package molecule

// GraphBond is one entry in an atom's bond list: the bond kind and the
// index of the atom at the other end.
type GraphBond struct {
	Kind   BondKind
	Target int
}

// Graph is the adjacency-list form of §3 "Graph form": atoms indexed 0..N,
// each with an ordered bond list. Order is semantically significant for
// chirality (the first incident bond is the reference neighbor).
type Graph struct {
	Atoms []Atom
	Bonds [][]GraphBond
}

type ringOpenGraph struct {
	atom int
	slot int
	bond BondKind
}

// GraphBuilder is the Follower implementation of §4.5. A ring closure's
// opener reserves its slot in the opener's bond list immediately, so the
// closer writes into the same position the opener later resolves to --
// this keeps neighbor order (and therefore chirality) stable regardless
// of which half of the closure happens to be read first.
type GraphBuilder struct {
	atoms []Atom
	bonds [][]GraphBond
	path  []int
	open  map[int]ringOpenGraph
	// openOrder records insertion order of open, matching TreeBuilder's
	// reporting of the smallest unresolved rnum by order of opening.
	openOrder []int
}

// NewGraphBuilder returns an empty GraphBuilder ready to receive events.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{open: make(map[int]ringOpenGraph)}
}

func (b *GraphBuilder) addAtom(atom Atom) int {
	id := len(b.atoms)
	b.atoms = append(b.atoms, atom)
	b.bonds = append(b.bonds, nil)
	return id
}

func (b *GraphBuilder) Root(atom Atom) error {
	id := b.addAtom(atom)
	b.path = append(b.path, id)
	return nil
}

// Extend appends atom as a new bond target of the current head. A
// bracketed child carrying a virtual hydrogen has its chirality inverted:
// the parent bond just inserted occupies the child's first bond-list slot,
// displacing the virtual hydrogen that the written configuration assumed
// was first (§4.5).
func (b *GraphBuilder) Extend(bond BondKind, atom Atom) error {
	if len(b.path) == 0 {
		return errEndOfLine()
	}
	parent := b.path[len(b.path)-1]
	id := b.addAtom(atom)
	b.bonds[parent] = append(b.bonds[parent], GraphBond{Kind: bond, Target: id})
	b.bonds[id] = append(b.bonds[id], GraphBond{Kind: bond.Reverse(), Target: parent})

	if atom.Variant == AtomBracketed && atom.HCount > 0 {
		if isTH, _ := b.atoms[id].Configuration.IsTH(); isTH {
			b.atoms[id].Configuration = b.atoms[id].Configuration.InvertTH()
		}
	}

	b.path = append(b.path, id)
	return nil
}

func (b *GraphBuilder) Join(bond BondKind, rnum int) error {
	if len(b.path) == 0 {
		return errEndOfLine()
	}
	head := b.path[len(b.path)-1]
	if opener, ok := b.open[rnum]; ok {
		fwd, rev, err := reconcileBonds(opener.bond, bond)
		if err != nil {
			return rebaseJoinError(err, opener.atom, head)
		}
		b.bonds[opener.atom][opener.slot] = GraphBond{Kind: fwd, Target: head}
		b.bonds[head] = append(b.bonds[head], GraphBond{Kind: rev, Target: opener.atom})
		delete(b.open, rnum)
		b.removeOpenOrder(rnum)
		return nil
	}
	slot := len(b.bonds[head])
	b.bonds[head] = append(b.bonds[head], GraphBond{Kind: bond, Target: -1})
	b.open[rnum] = ringOpenGraph{atom: head, slot: slot, bond: bond}
	b.openOrder = append(b.openOrder, rnum)
	return nil
}

func (b *GraphBuilder) Pop(depth int) error {
	if depth < 0 || depth > len(b.path) {
		return errEndOfLine()
	}
	b.path = b.path[:len(b.path)-depth]
	return nil
}

// Build finalizes the graph. An unresolved open rnum is reported for the
// smallest one in insertion order (mirroring TreeBuilder.Build).
func (b *GraphBuilder) Build() (*Graph, error) {
	if len(b.openOrder) > 0 {
		return nil, errUnbalancedRnum(b.openOrder[0])
	}
	return &Graph{Atoms: b.atoms, Bonds: b.bonds}, nil
}

func (b *GraphBuilder) removeOpenOrder(rnum int) {
	for i, r := range b.openOrder {
		if r == rnum {
			b.openOrder = append(b.openOrder[:i], b.openOrder[i+1:]...)
			return
		}
	}
}
