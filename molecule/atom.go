package molecule

// AtomVariant discriminates the four kinds of atom §3 defines.
type AtomVariant int

const (
	AtomWildcard AtomVariant = iota
	AtomOrganicAliphatic
	AtomOrganicAromatic
	AtomBracketed
)

// noCharge/noIsotope/noMap mark the corresponding Atom field absent, since
// 0 is itself a legal isotope, map number, or (for a bare bracket atom) can
// be confused with a present-but-zero charge. Charge 0 cannot be produced
// by the reader (§4.3.3 forbids it) but can arrive via the programmatic
// builder, so Atom distinguishes "absent" from "present, zero" only for
// isotope and map; charge absence is represented by the value 0 itself,
// which is safe because the builder never needs to distinguish "charge
// omitted" from "charge explicitly zero".
const (
	noIsotope = -1
	noMap     = -1
	noHCount  = -1
)

// Atom is the full atom value used by both the tree and the graph forms.
// Variant selects which subset of the fields is meaningful:
//
//   - AtomWildcard: no other field is used.
//   - AtomOrganicAliphatic / AtomOrganicAromatic: only Element.
//   - AtomBracketed: Element plus Isotope, Configuration, HCount, Charge,
//     Map, all individually optional.
type Atom struct {
	Variant AtomVariant

	// Element is the atomic number (§4.2 element table). Unused for
	// AtomWildcard.
	Element int

	// Isotope is 0..999, or noIsotope when absent. Bracketed only.
	Isotope int
	// Configuration is the stereo class, zero value meaning absent.
	// Bracketed only.
	Configuration Configuration
	// HCount is the virtual hydrogen count 0..9, or noHCount when absent.
	// Bracketed only.
	HCount int
	// Charge is -15..15. Bracketed only; 0 means no charge was written.
	Charge int
	// Map is the atom-map number 0..999, or noMap when absent. Bracketed
	// only.
	Map int

	// bracketAromatic marks a bracket atom written with a lowercase
	// symbol (b, c, n, o, p, s, se, as), e.g. [nH], [se].
	bracketAromatic bool
}

// Wildcard builds a '*' atom.
func Wildcard() Atom { return Atom{Variant: AtomWildcard, Isotope: noIsotope, HCount: noHCount, Map: noMap} }

// Organic builds an organic-subset atom, aromatic selecting between the
// aliphatic and aromatic variant (§3).
func Organic(element int, aromatic bool) Atom {
	v := AtomOrganicAliphatic
	if aromatic {
		v = AtomOrganicAromatic
	}
	return Atom{Variant: v, Element: element, Isotope: noIsotope, HCount: noHCount, Map: noMap}
}

// Bracket builds a bracket atom with every field explicit. Pass noIsotope/
// noHCount/noMap (or use the Atom literal directly) for absent fields.
func Bracket(element int, isotope int, config Configuration, hcount int, charge int, mapNum int) Atom {
	return Atom{
		Variant:       AtomBracketed,
		Element:       element,
		Isotope:       isotope,
		Configuration: config,
		HCount:        hcount,
		Charge:        charge,
		Map:           mapNum,
	}
}

// BracketAromatic is Bracket with the symbol written lowercase (b, c, n,
// o, p, s, se, as), e.g. [nH+].
func BracketAromatic(element int, isotope int, config Configuration, hcount int, charge int, mapNum int) Atom {
	a := Bracket(element, isotope, config, hcount, charge, mapNum)
	a.bracketAromatic = true
	return a
}

// Aromatic reports whether the atom is marked aromatic by its own symbol
// (lowercase), independent of any incident aromatic bond (§4.8).
func (a Atom) Aromatic() bool {
	return a.Variant == AtomOrganicAromatic || (a.Variant == AtomBracketed && a.bracketAromatic)
}

// HasHCount reports whether an explicit virtual-hydrogen count was given.
func (a Atom) HasHCount() bool { return a.Variant == AtomBracketed && a.HCount != noHCount }

// HasIsotope reports whether an isotope was given.
func (a Atom) HasIsotope() bool { return a.Variant == AtomBracketed && a.Isotope != noIsotope }

// HasMap reports whether an atom-map number was given.
func (a Atom) HasMap() bool { return a.Variant == AtomBracketed && a.Map != noMap }
