package molecule

import "testing"

func TestGraphBuilderExtendWithoutRoot(t *testing.T) {
	b := NewGraphBuilder()
	if err := b.Extend(BondElided, Wildcard()); err == nil {
		t.Fatalf("expected error extending before any Root")
	}
}

func TestGraphBuilderUnbalancedRnum(t *testing.T) {
	b := NewGraphBuilder()
	b.Root(Wildcard())
	b.Join(BondElided, 3)
	_, err := b.Build()
	be, ok := err.(*BuildError)
	if !ok || be.Kind != UnbalancedRnum || be.Rnum != 3 {
		t.Fatalf("expected UnbalancedRnum(3), got %#v", err)
	}
}

func TestGraphBuilderRingClosureReciprocalBonds(t *testing.T) {
	b := NewGraphBuilder()
	b.Root(Organic(elementMustNumber("C"), false))
	b.Join(BondElided, 1)
	b.Extend(BondElided, Organic(elementMustNumber("C"), false))
	b.Extend(BondElided, Organic(elementMustNumber("C"), false))
	b.Join(BondElided, 1)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.Bonds[0]) != 2 || len(g.Bonds[2]) != 2 {
		t.Fatalf("expected ring endpoints to carry 2 bonds each, got %v / %v", g.Bonds[0], g.Bonds[2])
	}
	var closesBack bool
	for _, gb := range g.Bonds[2] {
		if gb.Target == 0 {
			closesBack = true
		}
	}
	if !closesBack {
		t.Fatalf("expected atom 2 to bond back to atom 0")
	}
}

func TestGraphBuilderDisconnectedComponentsSeparateIDs(t *testing.T) {
	b := NewGraphBuilder()
	b.Root(Wildcard())
	b.Root(Wildcard())
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.Atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(g.Atoms))
	}
	if len(g.Bonds[0]) != 0 || len(g.Bonds[1]) != 0 {
		t.Fatalf("expected no bonds between disconnected components")
	}
}
