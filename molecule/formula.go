package molecule

import (
	"fmt"
	"sort"
	"strings"
)

// CountElements tallies each element's atom count in a graph, including
// implicit hydrogens for organic-subset atoms and explicit virtual
// hydrogens for bracketed atoms (§4.8), grounded in gross_formula.go's
// CollectGross. Wildcards (bare or bracketed) are not counted.
func CountElements(g *Graph) map[int]int {
	counts := make(map[int]int)
	hydrogen := elementMustNumber("H")

	for id, atom := range g.Atoms {
		if atom.Variant == AtomWildcard || (atom.Variant == AtomBracketed && atom.Element == 0) {
			continue
		}
		counts[atom.Element]++

		switch {
		case atom.Variant == AtomBracketed && atom.HasHCount():
			if atom.HCount > 0 {
				counts[hydrogen] += atom.HCount
			}
		case atom.Variant == AtomOrganicAliphatic || atom.Variant == AtomOrganicAromatic:
			bonds := make([]BondKind, len(g.Bonds[id]))
			for i, gb := range g.Bonds[id] {
				bonds[i] = gb.Kind
			}
			if h, ok := ImplicitHydrogens(atom, bonds); ok && h > 0 {
				counts[hydrogen] += int(h)
			}
		}
	}
	return counts
}

// FormulaString renders element counts in Hill-system order: carbon
// first, hydrogen second when carbon is present, remaining elements
// alphabetical by symbol (grounded in hillFromIsotopes).
func FormulaString(counts map[int]int) string {
	carbon, hydrogen := elementMustNumber("C"), elementMustNumber("H")
	hasCarbon := counts[carbon] > 0

	type entry struct {
		element int
		count   int
	}
	entries := make([]entry, 0, len(counts))
	for elem, count := range counts {
		if count > 0 {
			entries = append(entries, entry{elem, count})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if hasCarbon {
			if a.element == carbon || b.element == carbon {
				return a.element == carbon
			}
			if a.element == hydrogen || b.element == hydrogen {
				return a.element == hydrogen
			}
		}
		return elementSymbol(a.element) < elementSymbol(b.element)
	})

	var parts []string
	for _, e := range entries {
		if e.count == 1 {
			parts = append(parts, elementSymbol(e.element))
		} else {
			parts = append(parts, fmt.Sprintf("%s%d", elementSymbol(e.element), e.count))
		}
	}
	return strings.Join(parts, "")
}
