package molecule

import (
	"fmt"
	"strings"
)

// String renders a human-readable atom description for logging and test
// failure output, grounded on the teacher's GetAtomDescription: isotope
// prefix, element symbol (lowercase when aromatic), charge suffix.
func (a Atom) String() string {
	var sb strings.Builder
	switch a.Variant {
	case AtomWildcard:
		sb.WriteByte('*')
	default:
		if a.HasIsotope() {
			fmt.Fprintf(&sb, "%d", a.Isotope)
		}
		if a.Element == 0 {
			sb.WriteByte('*')
		} else if a.Aromatic() {
			sb.WriteString(strings.ToLower(elementSymbol(a.Element)))
		} else {
			sb.WriteString(elementSymbol(a.Element))
		}
	}
	if a.Variant == AtomBracketed {
		if a.HasHCount() && a.HCount > 0 {
			fmt.Fprintf(&sb, "H%d", a.HCount)
		}
		if a.Charge > 0 {
			fmt.Fprintf(&sb, "+%d", a.Charge)
		} else if a.Charge < 0 {
			fmt.Fprintf(&sb, "%d", a.Charge)
		}
	}
	return sb.String()
}

// bondDescription renders a bond kind's name for debug output, grounded on
// the teacher's GetBondDescription.
func bondDescription(k BondKind) string {
	switch k {
	case BondElided:
		return "elided"
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondQuadruple:
		return "quadruple"
	case BondAromatic:
		return "aromatic"
	case BondUp:
		return "up"
	case BondDown:
		return "down"
	default:
		return "unknown"
	}
}

// String renders a graph bond for debug output: its target atom id and
// bond description, e.g. "->2 (double)".
func (gb GraphBond) String() string {
	return fmt.Sprintf("->%d (%s)", gb.Target, bondDescription(gb.Kind))
}
