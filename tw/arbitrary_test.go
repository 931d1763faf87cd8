package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twin/theme"
)

func TestArbitraryValues(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "arbitrary width percentage",
			input: "w-[33%]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "33%", s["width"])
			},
		},
		{
			name:  "arbitrary padding",
			input: "p-[13px]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "13px", s["padding"])
			},
		},
		{
			name:  "underscores become spaces",
			input: "grid-cols-[1fr_2fr]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "1fr 2fr", s["gridTemplateColumns"])
			},
		},
		{
			name:  "negative variable",
			input: "-m-[var(--gutter)]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "calc(var(--gutter) * -1)", s["margin"])
			},
		},
		{
			name:  "hex text color",
			input: "text-[#1da1f2]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(29, 161, 242, var(--tw-text-opacity))", s["color"])
			},
		},
		{
			name:  "shorthand hex background",
			input: "bg-[#fff]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(255, 255, 255, var(--tw-bg-opacity))", s["backgroundColor"])
			},
		},
		{
			name:  "color with alpha is kept",
			input: "bg-[rgba(0,0,0,0.5)]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, map[string]string{"backgroundColor": "rgba(0,0,0,0.5)"}, s)
			},
		},
		{
			name:  "font size",
			input: "text-[22px]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, map[string]string{"fontSize": "22px"}, s)
			},
		},
		{
			name:  "background image",
			input: "bg-[url(/img/hero.png)]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "url(/img/hero.png)", s["backgroundImage"])
			},
		},
		{
			name:  "ring width",
			input: "ring-[5px]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Contains(t, s["--tw-ring-shadow"], "calc(5px + var(--tw-ring-offset-width))")
			},
		},
		{
			name:  "variant before arbitrary value",
			input: "hover:w-[50vw]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "50vw", s["&:hover > width"])
			},
		},
		{
			name:  "border width and color",
			input: "border-[3px] border-t-[hsl(0,100%,50%)]",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "3px", s["borderWidth"])
				assert.Equal(t, "rgba(255, 0, 0, var(--tw-border-opacity))", s["borderTopColor"])
				_, ok := s["borderTopWidth"]
				assert.False(t, ok)
			},
		},
	})
}

func TestArbitraryValuesSkipTheme(t *testing.T) {
	tree, err := Resolve("p-[1px] w-[2px]", theme.NewNode(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"padding":"1px","width":"2px"}`, tree.String())
}

func TestArbitraryValueParsing(t *testing.T) {
	colorTests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"#ffffff", "rgba(255, 255, 255, 1)", true},
		{"#000", "rgba(0, 0, 0, 1)", true},
		{"#1da1f2", "rgba(29, 161, 242, 1)", true},
		{"rgb(10, 20, 30)", "rgba(10, 20, 30, 1)", true},
		{"hsl(0, 100%, 50%)", "rgba(255, 0, 0, 1)", true},
		{"#12345", "", false},
		{"red", "", false},
	}
	for _, tt := range colorTests {
		col, ok := parseColor(tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
		if ok {
			assert.Equal(t, tt.want, rgba(col, "1"), tt.value)
		}
	}

	assert.True(t, hasAlpha("#ff000080"))
	assert.True(t, hasAlpha("rgb(0 0 0 / 50%)"))
	assert.True(t, hasAlpha("currentColor"))
	assert.False(t, hasAlpha("#ff0000"))

	assert.True(t, isColorLike("#abc"))
	assert.True(t, isColorLike("transparent"))
	assert.False(t, isColorLike("12px"))
	assert.False(t, isColorLike("url(a.png)"))
}

func TestNegate(t *testing.T) {
	tests := map[string]string{
		"1rem":          "-1rem",
		"-2px":          "2px",
		"0":             "0",
		"0px":           "0px",
		"var(--x)":      "calc(var(--x) * -1)",
		"calc(1px + 2)": "calc(calc(1px + 2) * -1)",
	}
	for in, want := range tests {
		assert.Equal(t, want, negate(in), in)
	}
}

func BenchmarkArbitraryValues(b *testing.B) {
	c, err := New(nil, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	input := "w-[33%] h-[250px] bg-[#1da1f2] p-[2.5rem] rounded-[12px]"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Resolve(input); err != nil {
			b.Fatal(err)
		}
	}
}
