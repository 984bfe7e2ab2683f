package molecule

// BondKind is one of the eight bond kinds of §3: elided, single, double,
// triple, quadruple, aromatic, up or down.
type BondKind int

const (
	// BondElided is the default bond (no character written), order 1.
	BondElided BondKind = iota
	BondSingle
	BondDouble
	BondTriple
	BondQuadruple
	BondAromatic
	BondUp
	BondDown
)

// String renders the bond's grammar character, or "" for the elided bond.
func (k BondKind) String() string {
	switch k {
	case BondElided:
		return ""
	case BondSingle:
		return "-"
	case BondDouble:
		return "="
	case BondTriple:
		return "#"
	case BondQuadruple:
		return "$"
	case BondAromatic:
		return ":"
	case BondUp:
		return "/"
	case BondDown:
		return "\\"
	default:
		return "?"
	}
}

// Order returns the bond order used by the valence model (§3, §4.8):
// elided/single/up/down/aromatic count as 1, double as 2, triple as 3,
// quadruple as 4.
func (k BondKind) Order() int {
	switch k {
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	case BondQuadruple:
		return 4
	default:
		return 1
	}
}

// Reverse returns the bond kind to store at the other endpoint of an edge.
// Directional bonds flip (/ <-> \); every other kind reverses to itself
// (§3, property 7 of spec.md §8).
func (k BondKind) Reverse() BondKind {
	switch k {
	case BondUp:
		return BondDown
	case BondDown:
		return BondUp
	default:
		return k
	}
}

// directional reports whether a bond kind carries cis/trans direction.
func (k BondKind) directional() bool {
	return k == BondUp || k == BondDown
}

// bondFromByte maps a single grammar bond character to its kind. It never
// matches the elided bond, which has no character.
func bondFromByte(b byte) (BondKind, bool) {
	switch b {
	case '-':
		return BondSingle, true
	case '=':
		return BondDouble, true
	case '#':
		return BondTriple, true
	case '$':
		return BondQuadruple, true
	case ':':
		return BondAromatic, true
	case '/':
		return BondUp, true
	case '\\':
		return BondDown, true
	default:
		return BondElided, false
	}
}
