package molecule

import (
	"fmt"
	"strings"
)

// WriterOptions configures Write (supplementing §4.7/§6's bare write(tree)
// signature the way smiles_saver.go's SmilesSaverOptions configures the
// teacher's writer).
type WriterOptions struct {
	// WriteAromaticBonds writes an explicit ':' between two aromatic atoms
	// joined by an elided bond, instead of leaving the bond elided.
	WriteAromaticBonds bool
}

// DefaultWriterOptions returns the writer's default configuration: elided
// bonds between aromatic atoms stay elided.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{}
}

// Write serializes a tree to SMILES text (§4.7 "Writer"). An outgoing
// atom-extension is parenthesized unless it is the node's last link of any
// kind; ring-closure placeholders render their stored bond and digit
// directly, and splits are prefixed with '.'.
func Write(t *Tree, opts WriterOptions) string {
	if t == nil || t.Root == nil {
		return ""
	}
	var sb strings.Builder
	writeNode(&sb, t.Root, opts)
	return sb.String()
}

func writeNode(sb *strings.Builder, node *Node, opts WriterOptions) {
	writeAtomToken(sb, node.Atom)

	lastLinkIdx := len(node.Links) - 1

	for i, link := range node.Links {
		switch link.Kind {
		case LinkAtom:
			var cell strings.Builder
			writeBond(&cell, link.Bond, node.Atom, link.Child.Atom, opts)
			writeNode(&cell, link.Child, opts)
			if i != lastLinkIdx {
				sb.WriteByte('(')
				sb.WriteString(cell.String())
				sb.WriteByte(')')
			} else {
				sb.WriteString(cell.String())
			}
		case LinkRingPlaceholder:
			sb.WriteString(link.Bond.String())
			writeRingNumber(sb, link.Rnum)
		case LinkSplit:
			sb.WriteByte('.')
			writeNode(sb, link.Child, opts)
		}
	}
}

func writeBond(sb *strings.Builder, bond BondKind, from, to Atom, opts WriterOptions) {
	if bond == BondElided && opts.WriteAromaticBonds && from.Aromatic() && to.Aromatic() {
		sb.WriteByte(':')
		return
	}
	sb.WriteString(bond.String())
}

func writeRingNumber(sb *strings.Builder, rnum int) {
	if rnum >= 0 && rnum <= 9 {
		sb.WriteByte(byte('0' + rnum))
		return
	}
	fmt.Fprintf(sb, "%%%02d", rnum)
}

func writeAtomToken(sb *strings.Builder, a Atom) {
	switch a.Variant {
	case AtomWildcard:
		sb.WriteByte('*')
	case AtomOrganicAliphatic:
		sb.WriteString(elementSymbol(a.Element))
	case AtomOrganicAromatic:
		sb.WriteString(strings.ToLower(elementSymbol(a.Element)))
	case AtomBracketed:
		writeBracketAtom(sb, a)
	}
}

func writeBracketAtom(sb *strings.Builder, a Atom) {
	sb.WriteByte('[')
	if a.HasIsotope() {
		fmt.Fprintf(sb, "%d", a.Isotope)
	}
	switch {
	case a.Element == 0:
		sb.WriteByte('*')
	case a.Aromatic():
		sb.WriteString(strings.ToLower(elementSymbol(a.Element)))
	default:
		sb.WriteString(elementSymbol(a.Element))
	}
	if !a.Configuration.None() {
		writeConfig(sb, a.Configuration)
	}
	if a.HasHCount() {
		sb.WriteByte('H')
		if a.HCount != 1 {
			fmt.Fprintf(sb, "%d", a.HCount)
		}
	}
	if a.Charge != 0 {
		writeCharge(sb, a.Charge)
	}
	if a.HasMap() {
		fmt.Fprintf(sb, ":%d", a.Map)
	}
	sb.WriteByte(']')
}

func writeConfig(sb *strings.Builder, c Configuration) {
	if isTH, isTH2 := c.IsTH(); isTH {
		if isTH2 {
			sb.WriteString("@@")
		} else {
			sb.WriteByte('@')
		}
		return
	}
	sb.WriteByte('@')
	sb.WriteString(c.String())
}

func writeCharge(sb *strings.Builder, charge int) {
	switch {
	case charge == 1:
		sb.WriteByte('+')
	case charge > 1:
		fmt.Fprintf(sb, "+%d", charge)
	case charge == -1:
		sb.WriteByte('-')
	default:
		fmt.Fprintf(sb, "-%d", -charge)
	}
}
