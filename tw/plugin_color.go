package tw

import (
	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

func backgroundPlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	if v, ok := arbitraryValue(p.arg); ok {
		if isColorLike(v) {
			return p.c.colorDecl(theme.Str(v), "--tw-bg-opacity", "backgroundColor"), true
		}
		return style.Decl("backgroundImage", v), true
	}
	if key, ok := p.sub("opacity"); ok {
		if v, ok := p.lookup("bg-opacity", key, "backgroundOpacity", "opacity"); ok {
			return style.Decl("--tw-bg-opacity", style.LeafText(v)), true
		}
		return nil, false
	}
	if v, ok := p.lookup("bg", p.arg, "backgroundColor", "colors"); ok {
		return p.c.colorDecl(v, "--tw-bg-opacity", "backgroundColor"), true
	}
	for _, prop := range []string{"backgroundImage", "backgroundSize", "backgroundPosition"} {
		if v, ok := p.lookup("bg", p.arg, prop); ok {
			return style.Decl(prop, style.LeafText(v)), true
		}
	}
	return nil, false
}

func textPlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	if v, ok := arbitraryValue(p.arg); ok {
		if isColorLike(v) {
			return p.c.colorDecl(theme.Str(v), "--tw-text-opacity", "color"), true
		}
		return style.Decl("fontSize", v), true
	}
	if key, ok := p.sub("opacity"); ok {
		if v, ok := p.lookup("text-opacity", key, "textOpacity", "opacity"); ok {
			return style.Decl("--tw-text-opacity", style.LeafText(v)), true
		}
		return nil, false
	}
	if v, ok := p.lookup("text", p.arg, "textColor", "colors"); ok {
		return p.c.colorDecl(v, "--tw-text-opacity", "color"), true
	}
	if v, ok := p.lookup("text", p.arg, "fontSize"); ok {
		return fontSizeDecl(v), true
	}
	return nil, false
}

// fontSizeDecl expands a fontSize entry. A list holds the size and then
// either a line height or a table of extra properties.
func fontSizeDecl(v theme.Value) *style.Tree {
	if v.Kind() != theme.KindList || len(v.Items()) == 0 {
		return style.Decl("fontSize", style.LeafText(v))
	}
	items := v.Items()
	out := style.Decl("fontSize", style.LeafText(items[0]))
	if len(items) > 1 {
		if extra := items[1]; extra.IsNode() {
			for k, e := range extra.Node().All() {
				out.Set(k, style.LeafText(e))
			}
		} else {
			out.Set("lineHeight", style.LeafText(extra))
		}
	}
	return out
}

type borderSide struct {
	name       string
	widthProps []string
	colorProps []string
}

var borderSides = []borderSide{
	{"x", []string{"borderLeftWidth", "borderRightWidth"}, []string{"borderLeftColor", "borderRightColor"}},
	{"y", []string{"borderTopWidth", "borderBottomWidth"}, []string{"borderTopColor", "borderBottomColor"}},
	{"t", []string{"borderTopWidth"}, []string{"borderTopColor"}},
	{"r", []string{"borderRightWidth"}, []string{"borderRightColor"}},
	{"b", []string{"borderBottomWidth"}, []string{"borderBottomColor"}},
	{"l", []string{"borderLeftWidth"}, []string{"borderLeftColor"}},
}

func borderPlugin(p *pluginContext) (*style.Tree, bool) {
	if v, ok := arbitraryValue(p.arg); ok {
		if isColorLike(v) {
			return p.c.colorDecl(theme.Str(v), "--tw-border-opacity", "borderColor"), true
		}
		return style.Decl("borderWidth", v), true
	}
	if key, ok := p.sub("opacity"); ok {
		if v, ok := p.lookup("border-opacity", key, "borderOpacity", "opacity"); ok {
			return style.Decl("--tw-border-opacity", style.LeafText(v)), true
		}
		return nil, false
	}
	for _, side := range borderSides {
		rest, ok := p.sub(side.name)
		if !ok {
			continue
		}
		prefix := "border-" + side.name
		if arb, ok := arbitraryValue(rest); ok {
			if isColorLike(arb) {
				return p.c.colorDecl(theme.Str(arb), "--tw-border-opacity", side.colorProps...), true
			}
			out := style.New()
			for _, prop := range side.widthProps {
				out.Set(prop, arb)
			}
			return out, true
		}
		if v, ok := p.lookup(prefix, rest, "borderWidth"); ok {
			out := style.New()
			for _, prop := range side.widthProps {
				out.Set(prop, style.LeafText(v))
			}
			return out, true
		}
		if rest == "" {
			return nil, false
		}
		if v, ok := p.lookup(prefix, rest, "borderColor", "colors"); ok {
			return p.c.colorDecl(v, "--tw-border-opacity", side.colorProps...), true
		}
		return nil, false
	}
	if v, ok := p.lookup("border", p.arg, "borderWidth"); ok {
		return style.Decl("borderWidth", style.LeafText(v)), true
	}
	if p.arg == "" {
		return nil, false
	}
	if v, ok := p.lookup("border", p.arg, "borderColor", "colors"); ok {
		return p.c.colorDecl(v, "--tw-border-opacity", "borderColor"), true
	}
	return nil, false
}

// childSelector targets every child but the first.
const childSelector = "> :not([hidden]) ~ :not([hidden])"

var borderStyles = map[string]bool{"solid": true, "dashed": true, "dotted": true, "double": true, "none": true}

func dividePlugin(p *pluginContext) (*style.Tree, bool) {
	out, ok := divide(p)
	if !ok {
		return nil, false
	}
	return out.Nest(childSelector), true
}

func divide(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	for _, axis := range []string{"x", "y"} {
		rest, ok := p.sub(axis)
		if !ok {
			continue
		}
		reverse := "--tw-divide-" + axis + "-reverse"
		if rest == "reverse" {
			return style.Decl(reverse, "1"), true
		}
		v, ok := p.lookup("divide-"+axis, rest, "divideWidth", "borderWidth")
		if !ok {
			return nil, false
		}
		w := style.LeafText(v)
		end, start := "borderRightWidth", "borderLeftWidth"
		if axis == "y" {
			end, start = "borderBottomWidth", "borderTopWidth"
		}
		return style.Decl(
			reverse, "0",
			end, "calc("+w+" * var("+reverse+"))",
			start, "calc("+w+" * calc(1 - var("+reverse+")))",
		), true
	}
	if key, ok := p.sub("opacity"); ok {
		if v, ok := p.lookup("divide-opacity", key, "divideOpacity", "opacity"); ok {
			return style.Decl("--tw-divide-opacity", style.LeafText(v)), true
		}
		return nil, false
	}
	if borderStyles[p.arg] {
		return style.Decl("borderStyle", p.arg), true
	}
	if v, ok := arbitraryValue(p.arg); ok {
		return p.c.colorDecl(theme.Str(v), "--tw-divide-opacity", "borderColor"), true
	}
	if v, ok := p.lookup("divide", p.arg, "divideColor", "borderColor", "colors"); ok {
		return p.c.colorDecl(v, "--tw-divide-opacity", "borderColor"), true
	}
	return nil, false
}

func ringPlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "inset" {
		return style.Decl("--tw-ring-inset", "inset"), true
	}
	if v, ok := arbitraryValue(p.arg); ok {
		if isColorLike(v) {
			return p.c.colorDecl(theme.Str(v), "--tw-ring-opacity", "--tw-ring-color"), true
		}
		return ringWidth(v), true
	}
	if key, ok := p.sub("opacity"); ok {
		if v, ok := p.lookup("ring-opacity", key, "ringOpacity", "opacity"); ok {
			return style.Decl("--tw-ring-opacity", style.LeafText(v)), true
		}
		return nil, false
	}
	if v, ok := p.lookup("ring", p.arg, "ringWidth"); ok {
		return ringWidth(style.LeafText(v)), true
	}
	if p.arg == "" {
		return nil, false
	}
	if v, ok := p.lookup("ring", p.arg, "ringColor", "colors"); ok {
		return p.c.colorDecl(v, "--tw-ring-opacity", "--tw-ring-color"), true
	}
	return nil, false
}

func ringWidth(w string) *style.Tree {
	return style.Decl(
		"--tw-ring-offset-shadow", "var(--tw-ring-inset) 0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color)",
		"--tw-ring-shadow", "var(--tw-ring-inset) 0 0 0 calc("+w+" + var(--tw-ring-offset-width)) var(--tw-ring-color)",
		"boxShadow", "var(--tw-ring-offset-shadow), var(--tw-ring-shadow), var(--tw-shadow, 0 0 #0000)",
	)
}

func ringOffsetPlugin(p *pluginContext) (*style.Tree, bool) {
	if v, ok := arbitraryValue(p.arg); ok {
		if isColorLike(v) {
			return style.Decl("--tw-ring-offset-color", v), true
		}
		return style.Decl("--tw-ring-offset-width", v), true
	}
	if v, ok := p.lookup("ring-offset", p.arg, "ringOffsetWidth"); ok {
		return style.Decl("--tw-ring-offset-width", style.LeafText(v)), true
	}
	if p.arg == "" {
		return nil, false
	}
	if v, ok := p.lookup("ring-offset", p.arg, "ringOffsetColor", "colors"); ok {
		return style.Decl("--tw-ring-offset-color", p.text(v)), true
	}
	return nil, false
}

func placeholderPlugin(p *pluginContext) (*style.Tree, bool) {
	out, ok := placeholder(p)
	if !ok {
		return nil, false
	}
	return out.Nest(p.c.selector("::placeholder")), true
}

func placeholder(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	if key, ok := p.sub("opacity"); ok {
		if v, ok := p.lookup("placeholder-opacity", key, "placeholderOpacity", "opacity"); ok {
			return style.Decl("--tw-placeholder-opacity", style.LeafText(v)), true
		}
		return nil, false
	}
	if v, ok := arbitraryValue(p.arg); ok {
		return p.c.colorDecl(theme.Str(v), "--tw-placeholder-opacity", "color"), true
	}
	if v, ok := p.lookup("placeholder", p.arg, "placeholderColor", "colors"); ok {
		return p.c.colorDecl(v, "--tw-placeholder-opacity", "color"), true
	}
	return nil, false
}

func gradientPlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	var v theme.Value
	if arb, ok := arbitraryValue(p.arg); ok {
		v = theme.Str(arb)
	} else if found, ok := p.lookup(p.stem, p.arg, "gradientColorStops", "colors"); ok {
		v = found
	} else {
		return nil, false
	}

	color, fade := p.text(v), transparentOf(v)
	switch p.stem {
	case "from":
		return style.Decl(
			"--tw-gradient-from", color,
			"--tw-gradient-stops", "var(--tw-gradient-from), var(--tw-gradient-to, "+fade+")",
		), true
	case "via":
		return style.Decl(
			"--tw-gradient-stops", "var(--tw-gradient-from), "+color+", var(--tw-gradient-to, "+fade+")",
		), true
	default:
		return style.Decl("--tw-gradient-to", color), true
	}
}

func strokePlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	if v, ok := arbitraryValue(p.arg); ok {
		if isColorLike(v) {
			return style.Decl("stroke", v), true
		}
		return style.Decl("strokeWidth", v), true
	}
	if v, ok := p.lookup("stroke", p.arg, "strokeWidth"); ok {
		return style.Decl("strokeWidth", style.LeafText(v)), true
	}
	if v, ok := p.lookup("stroke", p.arg, "stroke", "colors"); ok {
		return style.Decl("stroke", p.text(v)), true
	}
	return nil, false
}

func fillPlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg == "" {
		return nil, false
	}
	if v, ok := arbitraryValue(p.arg); ok {
		return style.Decl("fill", v), true
	}
	if v, ok := p.lookup("fill", p.arg, "fill", "colors"); ok {
		return style.Decl("fill", p.text(v)), true
	}
	return nil, false
}
