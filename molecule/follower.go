package molecule

// Follower is the push-style sink the reader drives (§4.2) and the one
// polymorphic surface in this module's design (§9 "Dynamic dispatch").
// Both the tree builder and the graph builder implement it; the
// graph-to-tree walker also drives it (against a tree builder) to
// reconstruct a spanning tree from an adjacency list.
type Follower interface {
	// Root starts a new connected component at atom. Called at least once
	// per input; called again for every '.'-separated component.
	Root(atom Atom) error

	// Extend adds atom as a child of the current head via bond, then
	// makes atom the new head. Requires a head to exist.
	Extend(bond BondKind, atom Atom) error

	// Join declares a half-bond from the current head to a ring-closure
	// identifier. The first occurrence of rnum opens it; the second
	// closes it by merging with the opener (§4.6).
	Join(bond BondKind, rnum int) error

	// Pop pops depth atoms off the working path, exposing the
	// previously-current head. depth must not exceed the path length.
	Pop(depth int) error
}
