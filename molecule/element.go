// Package molecule implements the SMILES grammar reader, the Follower
// pipeline that turns parser events into a tree or a graph, the
// graph-to-tree writer, and the valence/implicit-hydrogen model.
package molecule

import "fmt"

// element is the full periodic table, indexed by atomic number (index 0
// unused). It backs both the bracket-atom symbol dispatch (§4.3.1) and the
// elementSymbol/elementAtomicNumber helpers used by the writer and reader.
var element = []string{
	"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// elementByFirstByte partitions every known symbol by its first byte. The
// bracket-atom reader (§4.3.1) matches the first character here, and, only
// when more than one symbol shares it, falls back to a second-character
// lookup -- the "two-level match" the grammar calls for.
var elementByFirstByte = buildElementDispatch()

var elementNumber = buildElementNumber()

func buildElementNumber() map[string]int {
	m := make(map[string]int, len(element))
	for n, sym := range element {
		if sym != "" {
			m[sym] = n
		}
	}
	return m
}

func buildElementDispatch() map[byte][]string {
	m := make(map[byte][]string)
	for _, sym := range element {
		if sym == "" {
			continue
		}
		b := sym[0]
		m[b] = append(m[b], sym)
	}
	return m
}

// elementAtomicNumber returns the atomic number for a symbol, e.g. "C" -> 6.
func elementAtomicNumber(symbol string) (int, bool) {
	n, ok := elementNumber[symbol]
	return n, ok
}

// elementSymbol renders an atomic number back to its element symbol.
func elementSymbol(number int) string {
	if number > 0 && number < len(element) {
		return element[number]
	}
	return fmt.Sprintf("Elem%d", number)
}

// matchElementSymbol performs the two-level dispatch of §4.3.1: given the
// byte immediately following the current cursor position (and, if needed,
// the one after it), it returns the longest known element symbol starting
// at that position, trying two characters before falling back to one. It
// never consults anything past the second character, matching the
// scanner's one-character-of-lookahead discipline (§4.1).
func matchElementSymbol(first byte, second byte, haveSecond bool) (symbol string, length int, ok bool) {
	candidates := elementByFirstByte[first]
	if len(candidates) == 0 {
		return "", 0, false
	}
	if haveSecond {
		for _, sym := range candidates {
			if len(sym) == 2 && sym[1] == second {
				return sym, 2, true
			}
		}
	}
	for _, sym := range candidates {
		if len(sym) == 1 {
			return sym, 1, true
		}
	}
	return "", 0, false
}

func elementMustNumber(symbol string) int {
	n, ok := elementAtomicNumber(symbol)
	if !ok {
		panic("molecule: unknown bootstrap element symbol " + symbol)
	}
	return n
}

// organicSubset is the set of elements (§3 "Organic-aliphatic") that may be
// written outside brackets with a bare capitalised symbol.
var organicSubset = map[string]int{
	"B":  elementMustNumber("B"),
	"C":  elementMustNumber("C"),
	"N":  elementMustNumber("N"),
	"O":  elementMustNumber("O"),
	"P":  elementMustNumber("P"),
	"S":  elementMustNumber("S"),
	"F":  elementMustNumber("F"),
	"Cl": elementMustNumber("Cl"),
	"Br": elementMustNumber("Br"),
	"I":  elementMustNumber("I"),
	"At": elementMustNumber("At"),
	"Ts": elementMustNumber("Ts"),
}

// organicAromaticSubset is the lowercase counterpart of organicSubset
// (§3 "Organic-aromatic"): b, c, n, o, p, s.
var organicAromaticSubset = map[string]int{
	"b": elementMustNumber("B"),
	"c": elementMustNumber("C"),
	"n": elementMustNumber("N"),
	"o": elementMustNumber("O"),
	"p": elementMustNumber("P"),
	"s": elementMustNumber("S"),
}

// bracketAromaticSubset is the symbol set allowed as an aromatic bracket
// atom (§3): b, c, n, o, p, s, se, as.
var bracketAromaticSubset = map[string]int{
	"b":  elementMustNumber("B"),
	"c":  elementMustNumber("C"),
	"n":  elementMustNumber("N"),
	"o":  elementMustNumber("O"),
	"p":  elementMustNumber("P"),
	"s":  elementMustNumber("S"),
	"se": elementMustNumber("Se"),
	"as": elementMustNumber("As"),
}
