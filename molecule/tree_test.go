package molecule

import "testing"

func TestTreeBuilderLinearChain(t *testing.T) {
	b := NewTreeBuilder()
	if err := b.Root(Organic(elementMustNumber("C"), false)); err != nil {
		t.Fatalf("Root: %v", err)
	}
	if err := b.Extend(BondElided, Organic(elementMustNumber("O"), false)); err != nil {
		t.Fatalf("Extend: %v", err)
	}
	tree, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tree.Root.Links) != 1 || tree.Root.Links[0].Kind != LinkAtom {
		t.Fatalf("expected one atom link, got %+v", tree.Root.Links)
	}
}

func TestTreeBuilderExtendWithoutRoot(t *testing.T) {
	b := NewTreeBuilder()
	err := b.Extend(BondElided, Wildcard())
	if err == nil {
		t.Fatalf("expected error extending before any Root")
	}
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("expected GrammarError(EndOfLine), got %#v", err)
	}
}

func TestTreeBuilderRingClosureRoundTrip(t *testing.T) {
	b := NewTreeBuilder()
	b.Root(Organic(elementMustNumber("C"), false))
	b.Join(BondElided, 1)
	b.Extend(BondElided, Organic(elementMustNumber("C"), false))
	b.Extend(BondElided, Organic(elementMustNumber("C"), false))
	b.Join(BondElided, 1)
	tree, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	root := tree.Root
	var placeholder *Link
	for i := range root.Links {
		if root.Links[i].Kind == LinkRingPlaceholder {
			placeholder = &root.Links[i]
		}
	}
	if placeholder == nil {
		t.Fatalf("expected a ring placeholder link on the root")
	}
	if placeholder.Rnum != 1 {
		t.Fatalf("expected rnum 1, got %d", placeholder.Rnum)
	}
}

func TestTreeBuilderUnbalancedRnum(t *testing.T) {
	b := NewTreeBuilder()
	b.Root(Wildcard())
	b.Join(BondElided, 1)
	_, err := b.Build()
	if err == nil {
		t.Fatalf("expected UnbalancedRnum error")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != UnbalancedRnum || be.Rnum != 1 {
		t.Fatalf("expected UnbalancedRnum(1), got %#v", err)
	}
}

func TestTreeBuilderMismatchedStyle(t *testing.T) {
	b := NewTreeBuilder()
	b.Root(Wildcard())
	b.Join(BondUp, 1)
	b.Extend(BondElided, Wildcard())
	err := b.Join(BondUp, 1)
	if err == nil {
		t.Fatalf("expected MismatchedStyle error")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != MismatchedStyle {
		t.Fatalf("expected MismatchedStyle, got %#v", err)
	}
}

func TestTreeBuilderPopDepthOutOfRange(t *testing.T) {
	b := NewTreeBuilder()
	b.Root(Wildcard())
	if err := b.Pop(5); err == nil {
		t.Fatalf("expected error popping past the root")
	}
}
