package tw

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

var (
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d+)[\s,]+(\d+)[\s,]+(\d+)\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(\s*([\d.]+)(?:deg)?[\s,]+([\d.]+)%[\s,]+([\d.]+)%\s*\)$`)
)

// literalColors can't take an opacity channel.
var literalColors = map[string]bool{
	"transparent":  true,
	"currentcolor": true,
	"current":      true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"none":         true,
}

// hasAlpha reports whether a color already carries opacity (or can't carry
// one), in which case it is emitted as written.
func hasAlpha(color string) bool {
	c := strings.ToLower(strings.TrimSpace(color))
	switch {
	case literalColors[c]:
		return true
	case strings.HasPrefix(c, "var("), strings.HasPrefix(c, "rgba("), strings.HasPrefix(c, "hsla("):
		return true
	case strings.HasPrefix(c, "#"):
		return len(c) == 5 || len(c) == 9
	case strings.HasPrefix(c, "rgb("), strings.HasPrefix(c, "hsl("):
		return strings.Contains(c, "/")
	}
	return false
}

// parseColor understands #rgb, #rrggbb, rgb() and hsl().
func parseColor(color string) (colorful.Color, bool) {
	c := strings.ToLower(strings.TrimSpace(color))
	if strings.HasPrefix(c, "#") && (len(c) == 4 || len(c) == 7) {
		col, err := colorful.Hex(c)
		return col, err == nil
	}
	if m := rgbPattern.FindStringSubmatch(c); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
	}
	if m := hslPattern.FindStringSubmatch(c); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return colorful.Hsl(h, s/100, l/100), true
	}
	return colorful.Color{}, false
}

func rgba(col colorful.Color, alpha string) string {
	r, g, b := col.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha)
}

// isColorLike guesses whether an arbitrary value is a color.
func isColorLike(value string) bool {
	c := strings.ToLower(strings.TrimSpace(value))
	if _, ok := parseColor(c); ok {
		return true
	}
	for _, prefix := range []string{"#", "rgb", "hsl", "var(--color", "color-mix("} {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return literalColors[c]
}

// colorDecl writes a color to each prop. With color variables on, and a
// color that can take one, the opacity variable is set to 1 and the color
// reads it back: {"--tw-bg-opacity": "1", "backgroundColor": "rgba(..., var(--tw-bg-opacity))"}.
func (c *Compiler) colorDecl(v theme.Value, opacityVar string, props ...string) *style.Tree {
	out := style.New()
	useVar := opacityVar != "" && !c.opts.DisableColorVariables

	if v.Kind() == theme.KindDerived {
		args := theme.DeriveArgs{OpacityValue: "1"}
		if useVar {
			args = theme.DeriveArgs{OpacityVariable: opacityVar, OpacityValue: "var(" + opacityVar + ")"}
			out.Set(opacityVar, "1")
		}
		for _, p := range props {
			out.Set(p, v.Derive(args))
		}
		return out
	}

	text := style.LeafText(v)
	if text == "current" {
		text = "currentColor"
	}
	col, ok := parseColor(text)
	if !useVar || !ok || hasAlpha(text) {
		for _, p := range props {
			out.Set(p, text)
		}
		return out
	}

	out.Set(opacityVar, "1")
	for _, p := range props {
		out.Set(p, rgba(col, "var("+opacityVar+")"))
	}
	return out
}

// transparentOf is the fully transparent form of a color, used as the
// gradient fade target.
func transparentOf(v theme.Value) string {
	if v.Kind() == theme.KindDerived {
		return v.Derive(theme.DeriveArgs{OpacityValue: "0"})
	}
	if col, ok := parseColor(style.LeafText(v)); ok {
		return rgba(col, "0")
	}
	return "rgba(255, 255, 255, 0)"
}
