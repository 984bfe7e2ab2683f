package molecule

import "fmt"

// GrammarError is raised by the reader (§7 "Grammar"). Exactly one of the
// three constructors below is used at a time; the zero value is never a
// valid error.
type GrammarError struct {
	Kind     GrammarErrorKind
	Cursor   int // byte offset; meaningless for EndOfLine
	overflow int // the value that overflowed, for NumberOverflow's message
}

// GrammarErrorKind distinguishes the three grammar failure modes of §7.
type GrammarErrorKind int

const (
	EndOfLine GrammarErrorKind = iota
	InvalidCharacter
	NumberOverflow
)

func errEndOfLine() error { return &GrammarError{Kind: EndOfLine} }

func errInvalidCharacter(cursor int) error {
	return &GrammarError{Kind: InvalidCharacter, Cursor: cursor}
}

func errNumberOverflow(cursor int, value int) error {
	return &GrammarError{Kind: NumberOverflow, Cursor: cursor, overflow: value}
}

func (e *GrammarError) Error() string {
	switch e.Kind {
	case EndOfLine:
		return "smiles: unexpected end of input"
	case InvalidCharacter:
		return fmt.Sprintf("smiles: invalid character at position %d", e.Cursor)
	case NumberOverflow:
		return fmt.Sprintf("smiles: number %d overflows its field at position %d", e.overflow, e.Cursor)
	default:
		return "smiles: grammar error"
	}
}

// BuildError is raised by the tree and graph builders while folding
// Follower events (§7 "Semantic during build").
type BuildError struct {
	Kind     BuildErrorKind
	Rnum     int // UnbalancedRnum
	SID, TID int // IncompatibleJoin, MismatchedStyle
}

// BuildErrorKind distinguishes the three builder failure modes of §7.
type BuildErrorKind int

const (
	UnbalancedRnum BuildErrorKind = iota
	IncompatibleJoin
	MismatchedStyle
)

func errUnbalancedRnum(rnum int) error {
	return &BuildError{Kind: UnbalancedRnum, Rnum: rnum}
}

func errIncompatibleJoin(sid, tid int) error {
	return &BuildError{Kind: IncompatibleJoin, SID: sid, TID: tid}
}

func errMismatchedStyle(sid, tid int) error {
	return &BuildError{Kind: MismatchedStyle, SID: sid, TID: tid}
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case UnbalancedRnum:
		return fmt.Sprintf("smiles: ring closure %d was opened but never closed", e.Rnum)
	case IncompatibleJoin:
		return fmt.Sprintf("smiles: incompatible ring bond between atoms %d and %d", e.SID, e.TID)
	case MismatchedStyle:
		return fmt.Sprintf("smiles: mismatched directional bond style between atoms %d and %d", e.SID, e.TID)
	default:
		return "smiles: build error"
	}
}

// ConvertError is raised by the graph-to-tree converter (§7 "Semantic
// during graph->tree").
type ConvertError struct {
	SID, TID int
}

func errTargetMismatch(sid, tid int) error {
	return &ConvertError{SID: sid, TID: tid}
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("smiles: adjacency entries for atoms %d and %d disagree on their edge", e.SID, e.TID)
}

// WalkError is raised by the graph-to-tree walker (§7 "Walker").
type WalkError struct {
	Kind     WalkErrorKind
	SID, TID int // TID is unused (0) for Loop, which only carries SID
}

// WalkErrorKind distinguishes the five walker failure modes of §7.
type WalkErrorKind int

const (
	HalfBond WalkErrorKind = iota
	DuplicateBond
	UnknownTarget
	IncompatibleBond
	Loop
)

func errHalfBond(sid, tid int) error     { return &WalkError{Kind: HalfBond, SID: sid, TID: tid} }
func errDuplicateBond(sid, tid int) error { return &WalkError{Kind: DuplicateBond, SID: sid, TID: tid} }
func errUnknownTarget(sid, tid int) error { return &WalkError{Kind: UnknownTarget, SID: sid, TID: tid} }
func errIncompatibleBond(sid, tid int) error {
	return &WalkError{Kind: IncompatibleBond, SID: sid, TID: tid}
}
func errLoop(sid int) error { return &WalkError{Kind: Loop, SID: sid} }

func (e *WalkError) Error() string {
	switch e.Kind {
	case HalfBond:
		return fmt.Sprintf("smiles: atom %d has a half-bond to atom %d with no reciprocal entry", e.SID, e.TID)
	case DuplicateBond:
		return fmt.Sprintf("smiles: atom %d has more than one bond to atom %d", e.SID, e.TID)
	case UnknownTarget:
		return fmt.Sprintf("smiles: atom %d bonds to unknown atom %d", e.SID, e.TID)
	case IncompatibleBond:
		return fmt.Sprintf("smiles: atoms %d and %d disagree on their bond kind", e.SID, e.TID)
	case Loop:
		return fmt.Sprintf("smiles: atom %d bonds to itself", e.SID)
	default:
		return "smiles: walk error"
	}
}
