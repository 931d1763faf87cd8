package theme

import (
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v3"
)

// DefaultKey names the entry used when a class gives no sub-key.
const DefaultKey = "DEFAULT"

// Node is an ordered configuration table. Keys keep insertion order, which
// matters for screens (breakpoint order) and for deterministic output.
type Node struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// NewNode returns an empty table.
func NewNode() *Node {
	return &Node{entries: orderedmap.NewOrderedMap[string, Value]()}
}

// Scale builds a table of scalar entries from key/value pairs.
// An odd trailing key is ignored.
func Scale(pairs ...string) *Node {
	n := NewNode()
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Set(pairs[i], Str(pairs[i+1]))
	}
	return n
}

// Set stores a value, keeping the original position of an existing key.
func (n *Node) Set(key string, v Value) *Node {
	n.entries.Set(key, v)
	return n
}

// SetNode is shorthand for Set(key, Nested(child)).
func (n *Node) SetNode(key string, child *Node) *Node {
	return n.Set(key, Nested(child))
}

// Get returns the raw value stored under key.
func (n *Node) Get(key string) (Value, bool) {
	if n == nil {
		return Value{}, false
	}
	return n.entries.Get(key)
}

// Child returns the nested table under key.
func (n *Node) Child(key string) (*Node, bool) {
	v, ok := n.Get(key)
	if !ok || !v.IsNode() {
		return nil, false
	}
	return v.node, true
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	return n != nil && n.entries.Has(key)
}

// Delete removes key.
func (n *Node) Delete(key string) {
	if n != nil {
		n.entries.Delete(key)
	}
}

// Len returns the number of entries.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return n.entries.Len()
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return slices.Collect(n.entries.Keys())
}

// All iterates entries in insertion order.
func (n *Node) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if n == nil {
			return
		}
		for k, v := range n.entries.AllFromFront() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Lookup walks a path of keys.
func (n *Node) Lookup(path ...string) (Value, bool) {
	cur := n
	for i, key := range path {
		v, ok := cur.Get(key)
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if !v.IsNode() {
			return Value{}, false
		}
		cur = v.node
	}
	return Nested(n), n != nil
}

// Clone deep-copies the table.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := NewNode()
	for k, v := range n.All() {
		out.Set(k, v.Clone())
	}
	return out
}

// Merge deep-merges src into n. Nested tables merge recursively, anything
// else in src replaces the entry in n.
func (n *Node) Merge(src *Node) *Node {
	for k, v := range src.All() {
		if v.IsNode() {
			if dst, ok := n.Child(k); ok {
				dst.Merge(v.node)
				continue
			}
		}
		n.Set(k, v.Clone())
	}
	return n
}

// Flatten lists leaf keys up to depth levels deep, joining nested keys with
// "-". DEFAULT entries are listed under their parent key as "parent-DEFAULT".
func (n *Node) Flatten(depth int) []string {
	var out []string
	var walk func(prefix string, node *Node, level int)
	walk = func(prefix string, node *Node, level int) {
		for k, v := range node.All() {
			key := k
			if prefix != "" {
				key = prefix + "-" + k
			}
			if v.IsNode() && level < depth {
				walk(key, v.node, level+1)
				continue
			}
			out = append(out, key)
		}
	}
	walk("", n, 1)
	return out
}
