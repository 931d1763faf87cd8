package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKeepsInsertionOrder(t *testing.T) {
	n := NewNode().Set("md", Str("768px")).Set("sm", Str("640px")).Set("lg", Str("1024px"))
	n.Set("md", Str("800px"))

	assert.Equal(t, []string{"md", "sm", "lg"}, n.Keys())
	v, ok := n.Get("md")
	require.True(t, ok)
	assert.Equal(t, "800px", v.Text())
}

func TestNodeLookupAndMerge(t *testing.T) {
	base := NewNode().SetNode("colors", NewNode().SetNode("red", Scale("500", "#ef4444", "600", "#dc2626")))
	extra := NewNode().SetNode("colors", NewNode().
		SetNode("red", Scale("500", "#ff0000")).
		Set("brand", Str("#123456")))

	base.Merge(extra)

	v, ok := base.Lookup("colors", "red", "500")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", v.Text())

	v, ok = base.Lookup("colors", "red", "600")
	require.True(t, ok)
	assert.Equal(t, "#dc2626", v.Text())

	_, ok = base.Lookup("colors", "red", "500", "deeper")
	assert.False(t, ok)

	colors, _ := base.Child("colors")
	assert.Equal(t, []string{"red", "brand"}, colors.Keys())
}

func TestValueNormalization(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"scalar", Str("1rem"), "1rem"},
		{"integer", Num(700), "700"},
		{"fraction", Num(0.5), "0.5"},
		{"list has no text", Strs("a", "b"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Text())
		})
	}

	assert.True(t, Num(0).IsZeroNumber())
	assert.True(t, Str("0").IsZeroNumber())
	assert.False(t, Str("0px").IsZeroNumber())

	d := Derived(func(a DeriveArgs) string { return "rgba(0, 0, 0, " + a.OpacityValue + ")" })
	assert.Equal(t, KindDerived, d.Kind())
	assert.Equal(t, "rgba(0, 0, 0, var(--x))", d.Derive(DeriveArgs{OpacityValue: "var(--x)"}))
}

func TestDecodeTOML(t *testing.T) {
	src := `
[theme.screens]
tablet = "640px"
laptop = "1024px"
desktop = { min = "1280px", max = "1535px" }

[theme.spacing]
4 = "1rem"
"0.5" = "0.125rem"

[theme.extend.colors]
brand.DEFAULT = "#0fa9e6"
brand.dark = "#0b7cab"

[theme.fontSize]
huge = ["4rem", { lineHeight = "1" }]

[theme.fontWeight]
bold = 700

[plugins.components.".btn"]
padding = "1rem"
`
	doc, err := Decode([]byte(src), FormatTOML)
	require.NoError(t, err)

	screens, ok := doc.Theme.Child("screens")
	require.True(t, ok)
	assert.Equal(t, []string{"tablet", "laptop", "desktop"}, screens.Keys())

	max, ok := doc.Theme.Lookup("screens", "desktop", "max")
	require.True(t, ok)
	assert.Equal(t, "1535px", max.Text())

	spacing, _ := doc.Theme.Child("spacing")
	assert.Equal(t, []string{"4", "0.5"}, spacing.Keys())

	brand, ok := doc.Extend.Lookup("colors", "brand", DefaultKey)
	require.True(t, ok)
	assert.Equal(t, "#0fa9e6", brand.Text())

	huge, ok := doc.Theme.Lookup("fontSize", "huge")
	require.True(t, ok)
	require.Equal(t, KindList, huge.Kind())
	require.Len(t, huge.Items(), 2)
	assert.True(t, huge.Items()[1].IsNode())

	bold, _ := doc.Theme.Lookup("fontWeight", "bold")
	assert.Equal(t, KindNumeric, bold.Kind())
	assert.Equal(t, "700", bold.Text())

	_, ok = doc.Plugins.Lookup("components", ".btn", "padding")
	assert.True(t, ok)
	assert.False(t, doc.Theme.Has("extend"))
}

func TestDecodeTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "[theme\nspacing = 1"},
		{"array tables", "[[theme.spacing]]\nx = 1"},
		{"scalar redefined as table", "spacing = 1\n[spacing.more]\nx = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src), FormatTOML)
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAMLAndJSON(t *testing.T) {
	yamlSrc := `
theme:
  screens:
    md: 768px
    sm: 640px
  spacing:
    4: 1rem
  opacity:
    half: 0.5
  extend:
    colors:
      brand: "#0fa9e6"
`
	jsonSrc := `{
  "theme": {
    "screens": {"md": "768px", "sm": "640px"},
    "spacing": {"4": "1rem"},
    "opacity": {"half": 0.5},
    "extend": {"colors": {"brand": "#0fa9e6"}}
  }
}`
	for _, tc := range []struct {
		name   string
		src    string
		format Format
	}{
		{"yaml", yamlSrc, FormatYAML},
		{"json", jsonSrc, FormatJSON},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Decode([]byte(tc.src), tc.format)
			require.NoError(t, err)

			assert.Equal(t, []string{"md", "sm"}, Screens(doc.Theme))

			v, ok := doc.Theme.Lookup("spacing", "4")
			require.True(t, ok)
			assert.Equal(t, "1rem", v.Text())

			half, ok := doc.Theme.Lookup("opacity", "half")
			require.True(t, ok)
			assert.Equal(t, KindNumeric, half.Kind())

			brand, ok := doc.Extend.Lookup("colors", "brand")
			require.True(t, ok)
			assert.Equal(t, "#0fa9e6", brand.Text())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("theme.toml"))
	assert.Equal(t, FormatYAML, FormatFromPath("theme.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("theme.YAML"))
	assert.Equal(t, FormatJSON, FormatFromPath("theme.json"))
	assert.Equal(t, FormatTOML, FormatFromPath("theme"))
}

func TestResolveReplacesAndExtends(t *testing.T) {
	base := Default()
	doc := &Document{
		Theme:  NewNode().SetNode("spacing", Scale("4", "2rem")),
		Extend: NewNode().SetNode("colors", NewNode().SetNode("brand", Scale(DefaultKey, "#0fa9e6"))),
	}

	cfg := Resolve(base, doc)

	spacing, _ := cfg.Child("spacing")
	assert.Equal(t, []string{"4"}, spacing.Keys(), "theme scales replace defaults")

	_, ok := cfg.Lookup("colors", "red", "500")
	assert.True(t, ok, "extend keeps defaults")
	brand, ok := cfg.Lookup("colors", "brand", DefaultKey)
	require.True(t, ok)
	assert.Equal(t, "#0fa9e6", brand.Text())

	_, ok = base.Lookup("colors", "brand")
	assert.False(t, ok, "base is not modified")
}

func TestHash(t *testing.T) {
	a := Scale("sm", "640px", "md", "768px")
	b := Scale("sm", "640px", "md", "768px")
	c := Scale("md", "768px", "sm", "640px")
	d := Scale("sm", "640px", "md", "769px")

	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(c))
	assert.NotEqual(t, Hash(a), Hash(d))
	assert.Equal(t, Hash(Default()), Hash(Default()))
}

func TestDefaultTheme(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"sm", "md", "lg", "xl", "2xl"}, Screens(cfg))

	v, ok := cfg.Lookup("spacing", "4")
	require.True(t, ok)
	assert.Equal(t, "1rem", v.Text())

	v, ok = cfg.Lookup("spacing", "0.5")
	require.True(t, ok)
	assert.Equal(t, "0.125rem", v.Text())

	v, ok = cfg.Lookup("colors", "blue", "500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", v.Text())

	v, ok = cfg.Lookup("width", "1/2")
	require.True(t, ok)
	assert.Equal(t, "50%", v.Text())

	v, ok = cfg.Lookup("keyframes", "spin", "to", "transform")
	require.True(t, ok)
	assert.Equal(t, "rotate(360deg)", v.Text())

	// fresh copy each call
	cfg.Delete("screens")
	assert.Len(t, Screens(Default()), 5)
}

func TestFlatten(t *testing.T) {
	colors := NewNode().
		Set("white", Str("#fff")).
		SetNode("brand", Scale(DefaultKey, "#0fa9e6", "dark", "#0b7cab"))

	assert.Equal(t, []string{"white", "brand-DEFAULT", "brand-dark"}, colors.Flatten(2))
	assert.Equal(t, []string{"white", "brand"}, colors.Flatten(1))
}

func TestDecodeJSONKeepsOrder(t *testing.T) {
	src := `{
  "screens": {"xl": "1280px", "sm": "640px", "md": "768px"},
  "fontSize": {"sm": ["0.875rem", {"lineHeight": "1.25rem"}]},
  "colors": {"brand-blue": "#00f", "skip": null},
  "flags": {"on": true}
}`
	doc, err := Decode([]byte(src), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"xl", "sm", "md"}, Screens(doc.Theme))
	assert.Equal(t, []string{"screens", "fontSize", "colors", "flags"}, doc.Theme.Keys())

	sm, ok := doc.Theme.Lookup("fontSize", "sm")
	require.True(t, ok)
	require.Equal(t, KindList, sm.Kind())
	require.Len(t, sm.Items(), 2)
	assert.Equal(t, "0.875rem", sm.Items()[0].Text())
	assert.True(t, sm.Items()[1].IsNode())

	colors, ok := doc.Theme.Child("colors")
	require.True(t, ok)
	assert.Equal(t, []string{"brand-blue"}, colors.Keys())

	on, ok := doc.Theme.Lookup("flags", "on")
	require.True(t, ok)
	assert.Equal(t, "true", on.Text())

	empty, err := Decode([]byte("  \n"), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Theme.Len())

	for _, bad := range []string{`["not", "an", "object"]`, `{"colors": {`} {
		_, err := Decode([]byte(bad), FormatJSON)
		assert.Error(t, err, bad)
	}
}
