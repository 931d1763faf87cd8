package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

// Format is a theme file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "toml"
	}
}

// FormatFromPath picks a Format from a file extension. Unknown extensions
// fall back to TOML, which is what theme.toml has always been.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// Document is a decoded theme file.
//
// A file either wraps its scales in a "theme" table or lists them at the top
// level. Scales under "theme" replace the defaults wholesale; scales under
// "theme.extend" are deep-merged into them. "plugins" holds user rule tables
// (base, components, utilities).
type Document struct {
	Theme   *Node
	Extend  *Node
	Plugins *Node
}

// LoadFile reads and decodes a theme file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	doc, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a theme document in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var (
		root *Node
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = decodeYAML(data)
	case FormatJSON:
		root, err = decodeJSON(data)
	default:
		root, err = decodeTOML(data)
	}
	if err != nil {
		return nil, err
	}
	return split(root), nil
}

func split(root *Node) *Document {
	doc := &Document{Theme: NewNode(), Extend: NewNode(), Plugins: NewNode()}
	if plugins, ok := root.Child("plugins"); ok {
		doc.Plugins = plugins
	}

	scales := root
	if wrapped, ok := root.Child("theme"); ok {
		scales = wrapped
	}
	for k, v := range scales.All() {
		switch {
		case k == "extend" && v.IsNode():
			doc.Extend = v.Node()
		case k == "plugins" && scales == root:
		default:
			doc.Theme.Set(k, v)
		}
	}
	return doc
}

// decodeTOML walks the document with the low-level parser so that key order
// survives; toml.Unmarshal into maps would lose it.
func decodeTOML(data []byte) (*Node, error) {
	var p unstable.Parser
	p.Reset(data)

	root := NewNode()
	current := root
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			table, err := tableAt(root, keyPath(expr.Key()))
			if err != nil {
				return nil, err
			}
			current = table
		case unstable.ArrayTable:
			return nil, fmt.Errorf("array table [[%s]] is not supported in themes", strings.Join(keyPath(expr.Key()), "."))
		case unstable.KeyValue:
			if err := setKeyValue(current, expr); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Error(); err != nil {
		var perr *unstable.ParserError
		if errors.As(err, &perr) && len(perr.Highlight) > 0 {
			shape := p.Shape(p.Range(perr.Highlight))
			return nil, fmt.Errorf("toml: line %d column %d: %s", shape.Start.Line, shape.Start.Column, perr.Message)
		}
		return nil, fmt.Errorf("toml: %w", err)
	}
	return root, nil
}

func setKeyValue(table *Node, kv *unstable.Node) error {
	path := keyPath(kv.Key())
	parent, err := tableAt(table, path[:len(path)-1])
	if err != nil {
		return err
	}
	v, err := tomlValue(kv.Value())
	if err != nil {
		return fmt.Errorf("%s: %w", strings.Join(path, "."), err)
	}
	parent.Set(path[len(path)-1], v)
	return nil
}

func keyPath(it unstable.Iterator) []string {
	var path []string
	for it.Next() {
		path = append(path, string(it.Node().Data))
	}
	return path
}

// tableAt returns the table at path below n, creating missing tables.
func tableAt(n *Node, path []string) (*Node, error) {
	cur := n
	for i, key := range path {
		v, ok := cur.Get(key)
		if !ok {
			child := NewNode()
			cur.SetNode(key, child)
			cur = child
			continue
		}
		if !v.IsNode() {
			return nil, fmt.Errorf("key %s is already defined as a %s", strings.Join(path[:i+1], "."), v.Kind())
		}
		cur = v.Node()
	}
	return cur, nil
}

func tomlValue(n *unstable.Node) (Value, error) {
	switch n.Kind {
	case unstable.String, unstable.Bool,
		unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return Str(string(n.Data)), nil
	case unstable.Integer:
		i, err := strconv.ParseInt(string(n.Data), 0, 64)
		if err != nil {
			return Value{}, err
		}
		return Num(float64(i)), nil
	case unstable.Float:
		f, err := strconv.ParseFloat(strings.ReplaceAll(string(n.Data), "_", ""), 64)
		if err != nil {
			return Value{}, err
		}
		return Num(f), nil
	case unstable.Array:
		var items []Value
		it := n.Children()
		for it.Next() {
			item, err := tomlValue(it.Node())
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case unstable.InlineTable:
		table := NewNode()
		it := n.Children()
		for it.Next() {
			if err := setKeyValue(table, it.Node()); err != nil {
				return Value{}, err
			}
		}
		return Nested(table), nil
	default:
		return Value{}, fmt.Errorf("unsupported value kind %s", n.Kind)
	}
}

func decodeYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if doc.Kind == 0 {
		return NewNode(), nil
	}
	v, err := yamlValue(&doc)
	if err != nil {
		return nil, err
	}
	if !v.IsNode() {
		return nil, fmt.Errorf("yaml: document root must be a mapping, got %s", v.Kind())
	}
	return v.Node(), nil
}

func yamlValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Nested(NewNode()), nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		table := NewNode()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			v, err := yamlValue(val)
			if err != nil {
				return Value{}, err
			}
			if v.IsValid() {
				table.Set(key.Value, v)
			}
		}
		return Nested(table), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return List(items...), nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Value{}, nil
		case "!!int":
			i, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
			if err != nil {
				return Str(n.Value), nil
			}
			return Num(float64(i)), nil
		case "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return Str(n.Value), nil
			}
			return Num(f), nil
		default:
			return Str(n.Value), nil
		}
	default:
		return Value{}, fmt.Errorf("yaml: line %d: unsupported node", n.Line)
	}
}

// decodeJSON walks objects with jsonparser so that key order is kept;
// unmarshalling into a map would lose it.
func decodeJSON(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewNode(), nil
	}
	root, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if typ != jsonparser.Object {
		return nil, fmt.Errorf("json: document root must be an object, got %s", typ)
	}
	table, err := jsonObject(root)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return table, nil
}

func jsonObject(data []byte) (*Node, error) {
	table := NewNode()
	err := jsonparser.ObjectEach(data, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		v, err := jsonValue(value, typ)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if v.IsValid() {
			table.Set(k, v)
		}
		return nil
	})
	return table, err
}

func jsonValue(data []byte, typ jsonparser.ValueType) (Value, error) {
	switch typ {
	case jsonparser.Object:
		table, err := jsonObject(data)
		if err != nil {
			return Value{}, err
		}
		return Nested(table), nil
	case jsonparser.Array:
		var (
			items []Value
			inner error
		)
		_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			v, err := jsonValue(value, typ)
			if err != nil {
				inner = err
				return
			}
			items = append(items, v)
		})
		if err == nil {
			err = inner
		}
		if err != nil {
			return Value{}, err
		}
		return List(items...), nil
	case jsonparser.String:
		str, err := jsonparser.ParseString(data)
		if err != nil {
			return Value{}, err
		}
		return Str(str), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return Value{}, err
		}
		return Num(f), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return Value{}, err
		}
		return Str(strconv.FormatBool(b)), nil
	default:
		return Value{}, nil
	}
}
