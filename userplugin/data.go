// Package userplugin turns caller supplied rule tables (from theme files or
// plugin stylesheets) into per-class lookup tables for the compiler.
package userplugin

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

// Layer names one of the three rule tables.
type Layer int

const (
	LayerUtilities Layer = iota
	LayerComponents
	LayerBase
)

func (l Layer) String() string {
	switch l {
	case LayerComponents:
		return "components"
	case LayerBase:
		return "base"
	default:
		return "utilities"
	}
}

// ParseLayer maps a layer name to a Layer.
func ParseLayer(name string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utilities", "":
		return LayerUtilities, nil
	case "components":
		return LayerComponents, nil
	case "base":
		return LayerBase, nil
	default:
		return LayerUtilities, fmt.Errorf("unknown layer %q", name)
	}
}

// Data is raw user rules. Each tree maps selectors (or at-rules wrapping
// selectors) to declaration trees:
//
//	{".btn": {"padding": "1rem"}, "@media (min-width: 640px)": {".btn": {...}}}
type Data struct {
	Base       *style.Tree
	Components *style.Tree
	Utilities  *style.Tree
}

// FromTheme reads the "base", "components" and "utilities" tables of a theme
// document's plugins section.
func FromTheme(plugins *theme.Node) *Data {
	d := &Data{}
	if n, ok := plugins.Child("base"); ok {
		d.Base = style.FromNode(n)
	}
	if n, ok := plugins.Child("components"); ok {
		d.Components = style.FromNode(n)
	}
	if n, ok := plugins.Child("utilities"); ok {
		d.Utilities = style.FromNode(n)
	}
	return d
}

// Layer returns the tree for l, creating it if needed.
func (d *Data) Layer(l Layer) *style.Tree {
	slot := &d.Utilities
	switch l {
	case LayerComponents:
		slot = &d.Components
	case LayerBase:
		slot = &d.Base
	}
	if *slot == nil {
		*slot = style.New()
	}
	return *slot
}

// Add merges rules into layer l.
func (d *Data) Add(l Layer, rules *style.Tree) *Data {
	d.Layer(l).Merge(rules)
	return d
}

// Merge folds other into d, layer by layer.
func (d *Data) Merge(other *Data) *Data {
	if other == nil {
		return d
	}
	for _, l := range []Layer{LayerBase, LayerComponents, LayerUtilities} {
		if src := other.tree(l); src != nil {
			d.Add(l, src)
		}
	}
	return d
}

// Empty reports whether no layer holds any rule.
func (d *Data) Empty() bool {
	return d == nil || (d.Base.Len() == 0 && d.Components.Len() == 0 && d.Utilities.Len() == 0)
}

// Hash is a content hash over all three layers.
func (d *Data) Hash() uint64 {
	h := xxhash.New()
	if d == nil {
		return h.Sum64()
	}
	for _, l := range []Layer{LayerBase, LayerComponents, LayerUtilities} {
		_, _ = h.WriteString(l.String())
		_, _ = h.WriteString(d.tree(l).String())
	}
	return h.Sum64()
}

func (d *Data) tree(l Layer) *style.Tree {
	switch l {
	case LayerComponents:
		return d.Components
	case LayerBase:
		return d.Base
	default:
		return d.Utilities
	}
}
