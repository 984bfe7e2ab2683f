package molecule

// scanner is a thin cursor over a SMILES string (§4.1). Every grammar
// function is built from its three primitives: peek, pop and atEnd, plus
// peekAt for the few places that must see one or two bytes past the
// cursor. Multi-character symbols are handled by the grammar layer trying
// the longer match first and falling back.
type scanner struct {
	s   string
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

// atEnd reports whether the cursor has reached the end of input.
func (sc *scanner) atEnd() bool {
	return sc.pos >= len(sc.s)
}

// peek returns the byte at the cursor without consuming it. Calling it at
// end of input is a programmer error; callers must check atEnd first.
func (sc *scanner) peek() byte {
	return sc.s[sc.pos]
}

// peekAt returns the byte `offset` positions ahead of the cursor (0 is the
// same as peek), and whether that position exists. This is the one
// concession beyond single-character lookahead: it is used to recognise
// two-character organic/bracket element symbols (§4.1), the two-letter
// stereo class names after '@', and two-digit stereo class numbers.
func (sc *scanner) peekAt(offset int) (byte, bool) {
	i := sc.pos + offset
	if i >= len(sc.s) {
		return 0, false
	}
	return sc.s[i], true
}

// pop consumes and returns the byte at the cursor.
func (sc *scanner) pop() byte {
	b := sc.s[sc.pos]
	sc.pos++
	return b
}

// expect consumes the byte at the cursor if it equals b, reporting whether
// it did.
func (sc *scanner) expect(b byte) bool {
	if sc.atEnd() || sc.peek() != b {
		return false
	}
	sc.pos++
	return true
}
