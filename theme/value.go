package theme

import (
	"strconv"
	"strings"
)

// Kind identifies which variant of Value is populated.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindNumeric
	KindList
	KindDerived
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindNumeric:
		return "numeric"
	case KindList:
		return "list"
	case KindDerived:
		return "derived"
	case KindNode:
		return "node"
	default:
		return "invalid"
	}
}

// DeriveArgs is handed to a derived color value so it can embed the opacity hook.
type DeriveArgs struct {
	OpacityVariable string // e.g. "--tw-bg-opacity"
	OpacityValue    string // e.g. "var(--tw-bg-opacity)"
}

// DeriveFunc produces a color string for the given opacity hook.
type DeriveFunc func(DeriveArgs) string

// Value is a single configuration entry: a scalar string, a number, a list,
// a derived (function) color or a nested Node.
type Value struct {
	kind Kind
	str  string
	num  float64
	list []Value
	fn   DeriveFunc
	node *Node
}

// Str returns a scalar value.
func Str(s string) Value { return Value{kind: KindScalar, str: s} }

// Num returns a numeric value.
func Num(f float64) Value { return Value{kind: KindNumeric, num: f} }

// List returns a list value.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Strs is a shorthand for a list of scalars.
func Strs(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = Str(s)
	}
	return List(list...)
}

// Derived returns a value computed from the opacity hook at resolution time.
func Derived(fn DeriveFunc) Value { return Value{kind: KindDerived, fn: fn} }

// Nested wraps a Node.
func Nested(n *Node) Value { return Value{kind: KindNode, node: n} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) IsNode() bool { return v.kind == KindNode && v.node != nil }

func (v Value) IsLeaf() bool { return v.kind != KindInvalid && v.kind != KindNode }

func (v Value) Items() []Value { return v.list }

func (v Value) Node() *Node { return v.node }

// Text returns the normalized string form of scalar and numeric values.
// Numbers are rendered in their shortest decimal form. Other kinds yield "".
func (v Value) Text() string {
	switch v.kind {
	case KindScalar:
		return v.str
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Number reports the numeric payload, parsing scalars when they hold a plain number.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindNumeric:
		return v.num, true
	case KindScalar:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Derive calls a derived value. Non-derived values return Text().
func (v Value) Derive(args DeriveArgs) string {
	if v.kind == KindDerived && v.fn != nil {
		return v.fn(args)
	}
	return v.Text()
}

// IsZeroNumber reports whether the value is the number zero ("0" or 0).
func (v Value) IsZeroNumber() bool {
	switch v.kind {
	case KindNumeric:
		return v.num == 0
	case KindScalar:
		return strings.TrimSpace(v.str) == "0"
	default:
		return false
	}
}

// Clone deep-copies lists and nested nodes. Derived functions are shared.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.Clone()
		}
		return List(items...)
	case KindNode:
		return Nested(v.node.Clone())
	default:
		return v
	}
}
