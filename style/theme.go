package style

import (
	"strings"

	"github.com/agiangrant/twin/theme"
)

// FromNode converts a theme table into a declaration tree. Lists are joined
// with ", " and derived colors are rendered fully opaque.
func FromNode(n *theme.Node) *Tree {
	out := New()
	for k, v := range n.All() {
		if v.IsNode() {
			out.SetTree(k, FromNode(v.Node()))
			continue
		}
		out.Set(k, LeafText(v))
	}
	return out
}

// LeafText renders a non-table theme value as a declaration value.
func LeafText(v theme.Value) string {
	switch v.Kind() {
	case theme.KindList:
		parts := make([]string, 0, len(v.Items()))
		for _, item := range v.Items() {
			parts = append(parts, LeafText(item))
		}
		return strings.Join(parts, ", ")
	case theme.KindDerived:
		return v.Derive(theme.DeriveArgs{OpacityValue: "1"})
	default:
		return v.Text()
	}
}
