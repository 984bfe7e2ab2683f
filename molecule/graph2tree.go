package molecule

import "github.com/emirpasic/gods/lists/arraylist"

// graphFrame is one stack entry of the iterative DFS GraphToTree runs: the
// atom currently being visited, the edge index within its bond list to
// resume from, and the atom it was reached from (skipped exactly once,
// since the graph stores that edge at both endpoints).
type graphFrame struct {
	id            int
	cameVia       int
	edgeIdx       int
	skippedParent bool
	isRoot        bool
}

// GraphToTree selects a spanning tree from an adjacency-list graph by
// depth-first traversal, replacing back-edges with ring-closure
// placeholders drawn from a digit pool, and re-inverting TH1/TH2
// chirality where the chosen parent edge lands at an odd index in the
// child's own bond list (§4.7). The traversal keeps its own explicit frame
// stack (an arraylist.List, the way the teacher's lr/tables.go keeps an
// explicit edge list) rather than recursing, so deeply nested branches
// never grow the Go call stack.
func GraphToTree(g *Graph) (*Tree, error) {
	if err := validateGraph(g); err != nil {
		return nil, err
	}

	n := len(g.Atoms)
	visited := make([]bool, n)
	builder := NewTreeBuilder()
	pool := newRingPool()
	stack := arraylist.New()

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		if err := builder.Root(g.Atoms[start]); err != nil {
			return nil, err
		}
		stack.Add(&graphFrame{id: start, cameVia: -1, isRoot: true})

		for stack.Size() > 0 {
			top, _ := stack.Get(stack.Size() - 1)
			frame := top.(*graphFrame)
			bonds := g.Bonds[frame.id]

			if frame.edgeIdx >= len(bonds) {
				if !frame.isRoot {
					if err := builder.Pop(1); err != nil {
						return nil, err
					}
				}
				stack.Remove(stack.Size() - 1)
				continue
			}

			gb := bonds[frame.edgeIdx]
			frame.edgeIdx++

			if !frame.skippedParent && gb.Target == frame.cameVia {
				frame.skippedParent = true
				continue
			}

			if !visited[gb.Target] {
				visited[gb.Target] = true
				child := g.Atoms[gb.Target]
				if idx := childIndexOfParent(g, gb.Target, frame.id); idx >= 0 && idx%2 == 1 && child.HCount > 0 {
					if isTH, _ := child.Configuration.IsTH(); isTH {
						child.Configuration = child.Configuration.InvertTH()
					}
				}
				if err := builder.Extend(gb.Kind, child); err != nil {
					return nil, err
				}
				stack.Add(&graphFrame{id: gb.Target, cameVia: frame.id})
				continue
			}

			digit := pool.digit(frame.id, gb.Target)
			if err := builder.Join(gb.Kind, digit); err != nil {
				return nil, err
			}
		}
	}

	return builder.Build()
}

// FromTree replays a tree's structure as Follower events against a fresh
// GraphBuilder, reconstructing the graph form it would produce (round-trip
// law #6). Ring-closure placeholders already carry final rnum identifiers,
// so no digit pool is involved here.
func FromTree(t *Tree) (*Graph, error) {
	if t == nil || t.Root == nil {
		return nil, errEndOfLine()
	}
	builder := NewGraphBuilder()

	var walk func(node *Node) error
	walk = func(node *Node) error {
		for _, link := range node.Links {
			switch link.Kind {
			case LinkAtom:
				if err := builder.Extend(link.Bond, link.Child.Atom); err != nil {
					return err
				}
				if err := walk(link.Child); err != nil {
					return err
				}
				if err := builder.Pop(1); err != nil {
					return err
				}
			case LinkRingPlaceholder:
				if err := builder.Join(link.Bond, link.Rnum); err != nil {
					return err
				}
			case LinkSplit:
				if err := builder.Root(link.Child.Atom); err != nil {
					return err
				}
				if err := walk(link.Child); err != nil {
					return err
				}
				if err := builder.Pop(1); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := builder.Root(t.Root.Atom); err != nil {
		return nil, err
	}
	if err := walk(t.Root); err != nil {
		return nil, err
	}
	return builder.Build()
}

func childIndexOfParent(g *Graph, child, parent int) int {
	for i, gb := range g.Bonds[child] {
		if gb.Target == parent {
			return i
		}
	}
	return -1
}

// validateGraph checks the adjacency-list invariants of §3 before a walk
// is attempted, surfacing the Walker error kinds of §7.
func validateGraph(g *Graph) error {
	n := len(g.Atoms)
	for sid, bonds := range g.Bonds {
		seen := make(map[int]bool, len(bonds))
		for _, gb := range bonds {
			tid := gb.Target
			if tid == sid {
				return errLoop(sid)
			}
			if tid < 0 || tid >= n {
				return errUnknownTarget(sid, tid)
			}
			if seen[tid] {
				return errDuplicateBond(sid, tid)
			}
			seen[tid] = true
			rev, ok := findBond(g, tid, sid)
			if !ok {
				return errHalfBond(sid, tid)
			}
			if !bondsReconcile(gb.Kind, rev) {
				return errIncompatibleBond(sid, tid)
			}
		}
	}
	return nil
}

func findBond(g *Graph, from, to int) (BondKind, bool) {
	for _, gb := range g.Bonds[from] {
		if gb.Target == to {
			return gb.Kind, true
		}
	}
	return 0, false
}

func bondsReconcile(a, b BondKind) bool {
	if a.directional() != b.directional() {
		return false
	}
	if a.directional() {
		return a != b
	}
	return a == b
}
