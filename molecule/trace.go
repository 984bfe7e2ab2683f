package molecule

import "github.com/google/uuid"

// Trace is the optional parallel structure of §4.9: for each atom id, the
// byte range of its atom token in the input, and for each atom-to-atom
// bond written directly in the input, the byte offset of the character
// that created it. Ring-closure bonds are not recorded.
// It carries no semantic weight -- only the reader consults it, and only
// to produce diagnostics.
type Trace struct {
	// ID correlates one parse's trace across log lines when several
	// parses are reported together; the core parser never reads it.
	ID uuid.UUID

	// AtomSpans holds, per atom id (index), the [start, end) byte range
	// of the token that produced it.
	AtomSpans []Span

	// HalfEdgeOffsets maps a (parent, child) pair of atom ids to the byte
	// offset of the bond character between them, or of the child's atom
	// token when the bond is elided. Only the parent-to-child direction is
	// recorded, and ring-closure digits are never recorded.
	HalfEdgeOffsets map[halfEdgeKey]int
}

// Span is a half-open byte range [Start, End) into the original input.
type Span struct {
	Start, End int
}

type halfEdgeKey struct {
	SID, TID int
}

// NewTrace allocates an empty trace ready to be passed to Read.
func NewTrace() *Trace {
	return &Trace{
		ID:              uuid.New(),
		HalfEdgeOffsets: make(map[halfEdgeKey]int),
	}
}

func (t *Trace) recordAtom(id int, span Span) {
	if t == nil {
		return
	}
	for len(t.AtomSpans) <= id {
		t.AtomSpans = append(t.AtomSpans, Span{})
	}
	t.AtomSpans[id] = span
}

func (t *Trace) recordHalfEdge(sid, tid int, offset int) {
	if t == nil {
		return
	}
	t.HalfEdgeOffsets[halfEdgeKey{SID: sid, TID: tid}] = offset
}

// AtomSpan returns the byte range recorded for atom id, if any.
func (t *Trace) AtomSpan(id int) (Span, bool) {
	if t == nil || id < 0 || id >= len(t.AtomSpans) {
		return Span{}, false
	}
	return t.AtomSpans[id], true
}

// HalfEdgeOffset returns the byte offset recorded for the half-edge from
// sid to tid, if any.
func (t *Trace) HalfEdgeOffset(sid, tid int) (int, bool) {
	if t == nil {
		return 0, false
	}
	off, ok := t.HalfEdgeOffsets[halfEdgeKey{SID: sid, TID: tid}]
	return off, ok
}
