package molecule

import "testing"

func parseGraph(t *testing.T, input string) *Graph {
	t.Helper()
	b := NewGraphBuilder()
	if err := Read(input, b, nil); err != nil {
		t.Fatalf("Read(%q): unexpected error: %v", input, err)
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build(%q): unexpected error: %v", input, err)
	}
	return g
}

func TestReadWildcard(t *testing.T) {
	g := parseGraph(t, "*")
	if len(g.Atoms) != 1 || g.Atoms[0].Variant != AtomWildcard {
		t.Fatalf("expected one wildcard atom, got %+v", g.Atoms)
	}
	if len(g.Bonds[0]) != 0 {
		t.Fatalf("expected no bonds, got %v", g.Bonds[0])
	}
}

func TestReadEthane(t *testing.T) {
	g := parseGraph(t, "CC")
	if len(g.Atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(g.Atoms))
	}
	for i, bonds := range g.Bonds {
		if len(bonds) != 1 || bonds[0].Kind != BondElided {
			t.Fatalf("atom %d: expected one elided bond, got %v", i, bonds)
		}
	}
	for i, atom := range g.Atoms {
		h, ok := ImplicitHydrogens(atom, []BondKind{BondElided})
		if !ok || h != 3 {
			t.Fatalf("atom %d: expected implicit H = 3, got %d (ok=%v)", i, h, ok)
		}
	}
}

func TestReadFormaldehydeDoubleBond(t *testing.T) {
	g := parseGraph(t, "C=O")
	if len(g.Atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(g.Atoms))
	}
	if g.Bonds[0][0].Kind != BondDouble {
		t.Fatalf("expected double bond, got %v", g.Bonds[0][0].Kind)
	}
	cH, _ := ImplicitHydrogens(g.Atoms[0], []BondKind{BondDouble})
	oH, _ := ImplicitHydrogens(g.Atoms[1], []BondKind{BondDouble})
	if cH != 2 {
		t.Fatalf("expected implicit H = 2 at C, got %d", cH)
	}
	if oH != 0 {
		t.Fatalf("expected implicit H = 0 at O, got %d", oH)
	}
}

func TestReadTriangularRing(t *testing.T) {
	g := parseGraph(t, "C1CC1")
	if len(g.Atoms) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(g.Atoms))
	}
	for i, bonds := range g.Bonds {
		if len(bonds) != 2 {
			t.Fatalf("atom %d: expected 2 bonds, got %d", i, len(bonds))
		}
		for _, b := range bonds {
			if b.Kind != BondElided {
				t.Fatalf("atom %d: expected elided bonds, got %v", i, b.Kind)
			}
		}
	}
}

func TestReadWildcardRingClosureDoubleBond(t *testing.T) {
	g := parseGraph(t, "*=1**=1")
	if len(g.Atoms) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(g.Atoms))
	}
	find := func(from, to int) BondKind {
		for _, b := range g.Bonds[from] {
			if b.Target == to {
				return b.Kind
			}
		}
		t.Fatalf("no bond from %d to %d", from, to)
		return 0
	}
	if find(0, 2) != BondDouble {
		t.Fatalf("expected atom0<->atom2 double bond")
	}
	if find(0, 1) != BondElided {
		t.Fatalf("expected atom0<->atom1 elided bond")
	}
	if find(1, 2) != BondElided {
		t.Fatalf("expected atom1<->atom2 elided bond")
	}
}

func TestReadIncompatibleRingClosure(t *testing.T) {
	b := NewGraphBuilder()
	err := Read("*-1**=1", b, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != IncompatibleJoin {
		t.Fatalf("expected IncompatibleJoin, got %#v", err)
	}
	if be.SID != 0 || be.TID != 2 {
		t.Fatalf("expected IncompatibleJoin(0, 2), got (%d, %d)", be.SID, be.TID)
	}
}

func TestReadDisconnectedComponents(t *testing.T) {
	g := parseGraph(t, "O.N.C")
	if len(g.Atoms) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(g.Atoms))
	}
	for i, bonds := range g.Bonds {
		if len(bonds) != 0 {
			t.Fatalf("atom %d: expected no bonds, got %v", i, bonds)
		}
	}
}

func TestReadBranches(t *testing.T) {
	g := parseGraph(t, "C(F)(Cl)Br")
	if len(g.Atoms) != 4 {
		t.Fatalf("expected 4 atoms, got %d", len(g.Atoms))
	}
	if len(g.Bonds[0]) != 3 {
		t.Fatalf("expected central atom to have 3 bonds, got %d", len(g.Bonds[0]))
	}
}

func TestReadIsotopeBoundary(t *testing.T) {
	if _, err := NewGraphBuilder().Build(); err != nil {
		t.Fatalf("unexpected error on empty builder: %v", err)
	}
	g := parseGraph(t, "[999C]")
	if !g.Atoms[0].HasIsotope() || g.Atoms[0].Isotope != 999 {
		t.Fatalf("expected isotope 999, got %+v", g.Atoms[0])
	}

	b := NewGraphBuilder()
	err := Read("[1000C]", b, nil)
	if err == nil {
		t.Fatalf("expected NumberOverflow error")
	}
	ge, ok := err.(*GrammarError)
	if !ok || ge.Kind != NumberOverflow {
		t.Fatalf("expected NumberOverflow, got %#v", err)
	}
	// "[1000C]": '[' at 0, digits start at 1, fourth digit at position 4.
	if ge.Cursor != 4 {
		t.Fatalf("expected overflow cursor at position 4, got %d", ge.Cursor)
	}
}

func TestReadChargeBoundary(t *testing.T) {
	g := parseGraph(t, "[N+15]")
	if g.Atoms[0].Charge != 15 {
		t.Fatalf("expected charge 15, got %d", g.Atoms[0].Charge)
	}
	b := NewGraphBuilder()
	if err := Read("[N+16]", b, nil); err == nil {
		t.Fatalf("expected charge overflow error")
	}
}

func TestReadRingPercentEscape(t *testing.T) {
	g := parseGraph(t, "C%99CC%99")
	if len(g.Atoms) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(g.Atoms))
	}
	b := NewGraphBuilder()
	if err := Read("C%9C", b, nil); err == nil {
		t.Fatalf("expected error for single-digit %%9")
	}
}

func TestReadEmptyAndUnclosed(t *testing.T) {
	cases := []string{"", "C(C", "[C"}
	for _, in := range cases {
		b := NewGraphBuilder()
		err := Read(in, b, nil)
		if err == nil {
			t.Fatalf("Read(%q): expected error", in)
		}
		if _, ok := err.(*GrammarError); !ok {
			t.Fatalf("Read(%q): expected GrammarError, got %#v", in, err)
		}
	}
}

func TestReadConfigBoundary(t *testing.T) {
	b := NewGraphBuilder()
	if err := Read("[C@TH3H]", b, nil); err == nil {
		t.Fatalf("expected @TH3 to fail")
	}

	// "@OH31" reads as OH3, leaving the trailing '1' unconsumed for
	// whatever follows the configuration.
	sc := newScanner("@OH31")
	config, err := parseConfig(sc)
	if err != nil {
		t.Fatalf("parseConfig(@OH31): unexpected error: %v", err)
	}
	if config.Class != "OH" || config.Number != 3 {
		t.Fatalf("expected configuration OH3, got %+v", config)
	}
	if sc.pos != 4 {
		t.Fatalf("expected the trailing '1' at position 4 to be left unread, cursor at %d", sc.pos)
	}
}

func TestReadBracketHydrogenChirality(t *testing.T) {
	g := parseGraph(t, "[C@H](F)(Cl)Br")
	if isTH, isTH2 := g.Atoms[0].Configuration.IsTH(); !isTH || isTH2 {
		t.Fatalf("expected TH1 for the root atom (no parent bond to invert against), got %+v", g.Atoms[0].Configuration)
	}
}

func TestReadExtendedBracketHydrogenChirality(t *testing.T) {
	g := parseGraph(t, "C[C@H](F)Cl")
	if isTH, isTH2 := g.Atoms[1].Configuration.IsTH(); !isTH || !isTH2 {
		t.Fatalf("expected TH2 after the parent-bond inversion, got %+v", g.Atoms[1].Configuration)
	}
}

func TestReadBranchRejectsLeadingRingClosure(t *testing.T) {
	b := NewGraphBuilder()
	err := Read("*(1)*", b, nil)
	if err == nil {
		t.Fatalf("expected a bare ring-closure digit at the start of a branch to fail")
	}
	ge, ok := err.(*GrammarError)
	if !ok || ge.Kind != InvalidCharacter || ge.Cursor != 2 {
		t.Fatalf("expected GrammarError(InvalidCharacter) at cursor 2, got %#v", err)
	}
}

func TestReadBranchMustStartWithAtom(t *testing.T) {
	b := NewGraphBuilder()
	err := Read("*()*", b, nil)
	if err == nil {
		t.Fatalf("expected an empty branch to fail")
	}
	ge, ok := err.(*GrammarError)
	if !ok || ge.Kind != InvalidCharacter || ge.Cursor != 2 {
		t.Fatalf("expected GrammarError(InvalidCharacter) at cursor 2, got %#v", err)
	}
}
