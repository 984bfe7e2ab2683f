package molecule

import "fmt"

// Configuration is a bracket atom's stereo class (§3): absent, or one of
// TH1/TH2 (tetrahedral), AL1/AL2 (allenal), SP1..SP3 (square planar),
// TB1..TB20 (trigonal bipyramidal) or OH1..OH30 (octahedral).
type Configuration struct {
	// Class is the stereo family, e.g. "TH", "AL", "SP", "TB", "OH". Empty
	// when there is no configuration at all.
	Class string
	// Number is the 1-based index within the class (TH1 -> 1, OH30 -> 30).
	Number int
}

// None reports an absent configuration.
func (c Configuration) None() bool { return c.Class == "" }

// String renders the configuration the way it is written after '@', e.g.
// "TH1", "OH30". Returns "" for an absent configuration.
func (c Configuration) String() string {
	if c.None() {
		return ""
	}
	return fmt.Sprintf("%s%d", c.Class, c.Number)
}

// TH1 and TH2 are tetrahedral chirality, the only classes whose inversion
// semantics this module tracks (§4.7, §9 "Open source ambiguity").
var (
	configTH1 = Configuration{Class: "TH", Number: 1}
	configTH2 = Configuration{Class: "TH", Number: 2}
)

// IsTH reports whether c is TH1 or TH2 and returns which.
func (c Configuration) IsTH() (isTH bool, isTH2 bool) {
	if c.Class != "TH" {
		return false, false
	}
	return true, c.Number == 2
}

// InvertTH flips TH1<->TH2. A non-TH configuration is returned unchanged
// (§9 notes that higher classes are deliberately left uninverted).
func (c Configuration) InvertTH() Configuration {
	isTH, isTH2 := c.IsTH()
	if !isTH {
		return c
	}
	if isTH2 {
		return configTH1
	}
	return configTH2
}

// maxClassNumber bounds each stereo class per §3/§4.3.2.
var maxClassNumber = map[string]int{
	"TH": 2,
	"AL": 2,
	"SP": 3,
	"TB": 20,
	"OH": 30,
}
