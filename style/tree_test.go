package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  *Tree
		src  *Tree
		want string
	}{
		{
			name: "later leaf wins and keeps position",
			dst:  Decl("color", "red", "display", "flex"),
			src:  Decl("color", "blue"),
			want: `{"color":"blue","display":"flex"}`,
		},
		{
			name: "nested scopes merge",
			dst:  New().SetTree("&:hover", Decl("color", "red")),
			src:  New().SetTree("&:hover", Decl("textDecoration", "underline")),
			want: `{"&:hover":{"color":"red","textDecoration":"underline"}}`,
		},
		{
			name: "leaf replaced by tree",
			dst:  Decl("a", "1"),
			src:  New().SetTree("a", Decl("b", "2")),
			want: `{"a":{"b":"2"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dst.Merge(tt.src).String())
		})
	}
}

func TestMergeDoesNotAliasSource(t *testing.T) {
	src := New().SetTree("&:hover", Decl("color", "red"))
	dst := New().Merge(src)

	sub, _ := dst.Sub("&:hover")
	sub.Set("color", "blue")

	orig, _ := src.Sub("&:hover")
	v, _ := orig.Leaf("color")
	assert.Equal(t, "red", v)
}

func TestNest(t *testing.T) {
	tree := Decl("color", "red").Nest("@media (min-width: 768px)", "&:hover")
	assert.Equal(t, `{"@media (min-width: 768px)":{"&:hover":{"color":"red"}}}`, tree.String())

	flat := Decl("color", "red")
	assert.Same(t, flat, flat.Nest())
}

func TestMapLeavesAndLeaves(t *testing.T) {
	tree := Decl("color", "red").SetTree("&:hover", Decl("color", "blue"))
	tree.MapLeaves(func(_, v string) string { return v + "!" })

	assert.Equal(t, map[string]string{
		"color":           "red!",
		"&:hover > color": "blue!",
	}, tree.Leaves())
}

func TestEqual(t *testing.T) {
	a := Decl("a", "1", "b", "2")
	assert.True(t, a.Equal(Decl("a", "1", "b", "2")))
	assert.False(t, a.Equal(Decl("b", "2", "a", "1")), "order matters")
	assert.False(t, a.Equal(Decl("a", "1")))
	assert.True(t, New().Equal(New()))
}

func TestEncoding(t *testing.T) {
	tree := Decl("display", "flex").SetTree("& > *", Decl("marginTop", "1rem"))

	b, err := tree.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"display":"flex","& > *":{"marginTop":"1rem"}}`, string(b))
	assert.True(t, json.Valid(b))

	out, err := yaml.Marshal(tree)
	require.NoError(t, err)
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &doc))
	root := doc.Content[0]
	require.Len(t, root.Content, 4)
	assert.Equal(t, "display", root.Content[0].Value)
	assert.Equal(t, "& > *", root.Content[2].Value)
	assert.Equal(t, "marginTop", root.Content[3].Content[0].Value)

	assert.Equal(t, map[string]any{
		"display": "flex",
		"& > *":   map[string]any{"marginTop": "1rem"},
	}, tree.ToMap())
}

func TestIsCustomProperty(t *testing.T) {
	assert.True(t, IsCustomProperty("--tw-ring-color"))
	assert.False(t, IsCustomProperty("color"))
}
