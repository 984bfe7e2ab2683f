package molecule

// reconcileBonds implements the bond-reconciliation table of §4.6. Given
// the bond kind written at a ring closure's opener (left) and at its
// closer (right), it returns the pair to store at (opener, closer)
// respectively, or an error if the two half-bonds are incompatible.
//
// The returned error carries sid=tid=0; callers that know the real atom
// ids rebase it before returning (see rebaseJoinError in tree.go, which
// both tree.go and graph.go call).
func reconcileBonds(left, right BondKind) (forward, reverse BondKind, err error) {
	if left == right {
		if left.directional() {
			// "/" x "/" or "\" x "\": same-style directional markers
			// don't describe a consistent double-bond geometry.
			return 0, 0, errMismatchedStyle(0, 0)
		}
		return left, left, nil
	}

	leftDir, rightDir := left.directional(), right.directional()

	switch {
	case leftDir && rightDir:
		// "/" x "\" or "\" x "/": opposing markers, kept as written.
		return left, right, nil

	case left == BondElided && rightDir:
		return right.Reverse(), right, nil
	case right == BondElided && leftDir:
		return left, left.Reverse(), nil

	case left == BondElided && !rightDir:
		return right, right, nil
	case right == BondElided && !leftDir:
		return left, left, nil

	case leftDir != rightDir && (leftDir || rightDir):
		// A directional marker against a concrete, non-elided,
		// non-directional kind (e.g. "/" against "="): no sensible
		// reconciliation.
		return 0, 0, errIncompatibleJoin(0, 0)

	default:
		// Two different concrete, non-directional, non-elided kinds
		// (e.g. "-" against "="): genuinely conflicting bond orders.
		return 0, 0, errIncompatibleJoin(0, 0)
	}
}
