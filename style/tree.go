// Package style holds the nested declaration tree produced by the compiler.
//
// Keys are either CSS property names in camelCase (leaf declarations) or
// selector and at-rule strings holding a nested Tree:
//
//	{"padding": "1rem", "&:hover": {"color": "#fff"}}
package style

import (
	"iter"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Entry is a leaf declaration value or a nested tree. Exactly one is set.
type Entry struct {
	Value string
	Tree  *Tree
}

// IsTree reports whether the entry holds a nested tree.
func (e Entry) IsTree() bool { return e.Tree != nil }

// Tree is an ordered declaration tree.
type Tree struct {
	entries *orderedmap.OrderedMap[string, Entry]
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{entries: orderedmap.NewOrderedMap[string, Entry]()}
}

// Decl builds a flat tree from property/value pairs.
//
//	Decl("display", "flex", "alignItems", "center")
func Decl(pairs ...string) *Tree {
	t := New()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Set(pairs[i], pairs[i+1])
	}
	return t
}

// Set stores a leaf declaration. An existing key keeps its position.
func (t *Tree) Set(key, value string) *Tree {
	t.entries.Set(key, Entry{Value: value})
	return t
}

// SetTree stores a nested tree under key.
func (t *Tree) SetTree(key string, sub *Tree) *Tree {
	t.entries.Set(key, Entry{Tree: sub})
	return t
}

// Get returns the entry under key.
func (t *Tree) Get(key string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	return t.entries.Get(key)
}

// Leaf returns the declaration value under key.
func (t *Tree) Leaf(key string) (string, bool) {
	e, ok := t.Get(key)
	if !ok || e.IsTree() {
		return "", false
	}
	return e.Value, true
}

// Sub returns the nested tree under key.
func (t *Tree) Sub(key string) (*Tree, bool) {
	e, ok := t.Get(key)
	if !ok || !e.IsTree() {
		return nil, false
	}
	return e.Tree, true
}

// Delete removes key.
func (t *Tree) Delete(key string) {
	if t != nil {
		t.entries.Delete(key)
	}
}

// Len returns the number of top-level entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.entries.Len()
}

// Keys returns top-level keys in order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Collect(t.entries.Keys())
}

// All iterates top-level entries in order.
func (t *Tree) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		if t == nil {
			return
		}
		for k, e := range t.entries.AllFromFront() {
			if !yield(k, e) {
				return
			}
		}
	}
}

// Merge deep-merges src into t. Nested trees merge recursively; for any other
// collision the src entry wins. Existing keys keep their position.
func (t *Tree) Merge(src *Tree) *Tree {
	for k, e := range src.All() {
		if e.IsTree() {
			if dst, ok := t.Sub(k); ok {
				dst.Merge(e.Tree)
				continue
			}
			t.SetTree(k, e.Tree.Clone())
			continue
		}
		t.Set(k, e.Value)
	}
	return t
}

// Nest wraps t under path, outermost key first. An empty path returns t.
//
//	Decl("color", "red").Nest("@media (min-width: 768px)", "&:hover")
//	// {"@media (min-width: 768px)": {"&:hover": {"color": "red"}}}
func (t *Tree) Nest(path ...string) *Tree {
	out := t
	for i := len(path) - 1; i >= 0; i-- {
		out = New().SetTree(path[i], out)
	}
	return out
}

// Clone deep-copies the tree.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := New()
	for k, e := range t.All() {
		if e.IsTree() {
			out.SetTree(k, e.Tree.Clone())
		} else {
			out.Set(k, e.Value)
		}
	}
	return out
}

// MapLeaves rewrites every leaf value in place, at any depth.
func (t *Tree) MapLeaves(fn func(key, value string) string) *Tree {
	for k, e := range t.All() {
		if e.IsTree() {
			e.Tree.MapLeaves(fn)
			continue
		}
		t.Set(k, fn(k, e.Value))
	}
	return t
}

// Equal reports whether both trees hold the same entries in the same order.
func (t *Tree) Equal(o *Tree) bool {
	if t.Len() != o.Len() {
		return false
	}
	keys := o.Keys()
	i := 0
	for k, e := range t.All() {
		if keys[i] != k {
			return false
		}
		i++
		e2, _ := o.Get(k)
		if e.IsTree() != e2.IsTree() {
			return false
		}
		if e.IsTree() {
			if !e.Tree.Equal(e2.Tree) {
				return false
			}
		} else if e.Value != e2.Value {
			return false
		}
	}
	return true
}

// ToMap converts the tree into plain nested maps. Order is lost.
func (t *Tree) ToMap() map[string]any {
	out := make(map[string]any, t.Len())
	for k, e := range t.All() {
		if e.IsTree() {
			out[k] = e.Tree.ToMap()
		} else {
			out[k] = e.Value
		}
	}
	return out
}

// Leaves lists every leaf as a path joined with " > " plus its value.
func (t *Tree) Leaves() map[string]string {
	out := make(map[string]string)
	var walk func(prefix string, tree *Tree)
	walk = func(prefix string, tree *Tree) {
		for k, e := range tree.All() {
			key := k
			if prefix != "" {
				key = prefix + " > " + k
			}
			if e.IsTree() {
				walk(key, e.Tree)
				continue
			}
			out[key] = e.Value
		}
	}
	walk("", t)
	return out
}

// String renders the tree as compact JSON.
func (t *Tree) String() string {
	b, err := t.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// IsCustomProperty reports whether key is a CSS custom property (--name).
func IsCustomProperty(key string) bool {
	return strings.HasPrefix(key, "--")
}
