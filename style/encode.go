package style

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the tree as a JSON object in key order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tree) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	first := true
	for k, e := range t.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		if err := writeJSONString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')

		if e.IsTree() {
			if err := e.Tree.writeJSON(buf); err != nil {
				return err
			}
			continue
		}
		if err := writeJSONString(buf, e.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeJSONString quotes s without HTML escaping so selectors such as
// "& > *" stay readable.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// MarshalYAML renders the tree as an ordered YAML mapping.
func (t *Tree) MarshalYAML() (any, error) {
	return t.yamlNode(), nil
}

func (t *Tree) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, e := range t.All() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		if e.IsTree() {
			n.Content = append(n.Content, key, e.Tree.yamlNode())
			continue
		}
		n.Content = append(n.Content, key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value})
	}
	return n
}
