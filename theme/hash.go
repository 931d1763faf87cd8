package theme

import (
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a content hash of the table. Equal content in equal order
// hashes equally. Derived values hash by function identity.
func Hash(n *Node) uint64 {
	d := xxhash.New()
	writeNode(d, n)
	return d.Sum64()
}

func writeNode(d *xxhash.Digest, n *Node) {
	_, _ = d.WriteString("{")
	for k, v := range n.All() {
		_, _ = d.WriteString(strconv.Quote(k))
		_, _ = d.WriteString(":")
		writeValue(d, v)
		_, _ = d.WriteString(",")
	}
	_, _ = d.WriteString("}")
}

func writeValue(d *xxhash.Digest, v Value) {
	_, _ = d.Write([]byte{byte(v.kind)})
	switch v.kind {
	case KindScalar, KindNumeric:
		_, _ = d.WriteString(strconv.Quote(v.Text()))
	case KindList:
		_, _ = d.WriteString("[")
		for _, item := range v.list {
			writeValue(d, item)
			_, _ = d.WriteString(",")
		}
		_, _ = d.WriteString("]")
	case KindDerived:
		_, _ = d.WriteString(strconv.FormatUint(uint64(reflect.ValueOf(v.fn).Pointer()), 16))
	case KindNode:
		writeNode(d, v.node)
	}
}
