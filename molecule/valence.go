package molecule

// groupTargets holds the neutral-charge valence target list for each
// periodic-table group this model covers, following the organic-subset
// convention also used by the teacher's ad hoc GetImplicitH: B->3, C->4,
// N/P/As->3 or 5, O/S/Se->2, 4 or 6, halogens->1. Every element of a
// group shares its targets, so neutral O gets 2, 4 or 6 like S.
var groupTargets = map[int][]int{
	13: {3},
	14: {4},
	15: {3, 5},
	16: {2, 4, 6},
	17: {1},
}

// groupOrder lists the groups this model covers left to right, so that a
// unit of charge can shift the lookup by one column (§4.8).
var groupOrder = []int{13, 14, 15, 16, 17}

// elementGroup maps the elements this model has data for to their group.
var elementGroup = map[int]int{
	5: 13, // B
	6: 14, // C

	7:  15, // N
	15: 15, // P
	33: 15, // As

	8:  16, // O
	16: 16, // S
	34: 16, // Se

	9:   17, // F
	17:  17, // Cl
	35:  17, // Br
	53:  17, // I
	85:  17, // At
	117: 17, // Ts
}

// valenceTargets returns the charge-adjusted valence target list for an
// element, or nil if this model has no data for it (wildcard, metals).
// Each unit of charge shifts the lookup one column along groupOrder;
// shifting past either end is an unreachable combination (§4.8).
func valenceTargets(element int, charge int) []int {
	g, ok := elementGroup[element]
	if !ok {
		return nil
	}
	if charge == 0 {
		return groupTargets[g]
	}
	idx := indexOfGroup(g)
	if idx < 0 {
		return groupTargets[g]
	}
	shifted := idx - charge
	if shifted < 0 || shifted >= len(groupOrder) {
		return nil
	}
	return groupTargets[groupOrder[shifted]]
}

func indexOfGroup(g int) int {
	for i, candidate := range groupOrder {
		if candidate == g {
			return i
		}
	}
	return -1
}

// Subvalence computes an atom's sub-valence given its incident bond kinds
// (§4.8): the gap between the bond-order sum (plus any explicit virtual H
// count) and the next valence target at or above it. The second return
// value is false when this model has no target data for the atom's
// element (e.g. wildcard) or when its charge shifts the lookup past
// either end of groupOrder; the sub-valence is then reported as 0.
func Subvalence(atom Atom, bonds []BondKind) (uint8, bool) {
	v := 0
	for _, b := range bonds {
		v += b.Order()
	}
	if atom.Variant == AtomBracketed && atom.HasHCount() {
		v += atom.HCount
	}

	targets := valenceTargets(atom.Element, atom.Charge)
	if targets == nil {
		return 0, false
	}
	for _, t := range targets {
		if t >= v {
			return uint8(t - v), true
		}
	}
	return 0, true
}

// ImplicitHydrogens computes the virtual hydrogen count for an
// organic-subset atom without an explicit H count (§4.8). It reports
// false for bracketed and wildcard atoms, which this model never assigns
// implicit hydrogens to.
func ImplicitHydrogens(atom Atom, bonds []BondKind) (uint8, bool) {
	if atom.Variant != AtomOrganicAliphatic && atom.Variant != AtomOrganicAromatic {
		return 0, false
	}
	d, ok := Subvalence(atom, bonds)
	if !ok {
		return 0, false
	}
	if atom.Aromatic() && d > 0 {
		d--
	}
	return d, true
}
