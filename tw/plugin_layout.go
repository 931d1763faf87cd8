package tw

import (
	"strings"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

func spacePlugin(p *pluginContext) (*style.Tree, bool) {
	for _, axis := range []string{"x", "y"} {
		rest, ok := p.sub(axis)
		if !ok {
			continue
		}
		reverse := "--tw-space-" + axis + "-reverse"
		if rest == "reverse" {
			return style.Decl(reverse, "1").Nest(childSelector), true
		}

		var v theme.Value
		if arb, ok := arbitraryValue(rest); ok {
			v = theme.Str(arb)
		} else if v, ok = p.lookup("space-"+axis, rest, "space", "spacing"); !ok {
			return nil, false
		}
		size := style.LeafText(v)
		if v.IsZeroNumber() {
			size = "0px"
		}
		if p.tok.Negative {
			size = negate(size)
		}

		end, start := "marginRight", "marginLeft"
		if axis == "y" {
			end, start = "marginBottom", "marginTop"
		}
		return style.Decl(
			reverse, "0",
			end, "calc("+size+" * var("+reverse+"))",
			start, "calc("+size+" * calc(1 - var("+reverse+")))",
		).Nest(childSelector), true
	}
	return nil, false
}

func outlinePlugin(p *pluginContext) (*style.Tree, bool) {
	if v, ok := arbitraryValue(p.arg); ok {
		return style.Decl("outline", v), true
	}
	v, ok := p.lookup("outline", p.arg, "outline")
	if !ok {
		return nil, false
	}
	if v.Kind() == theme.KindList && len(v.Items()) > 1 {
		items := v.Items()
		return style.Decl("outline", style.LeafText(items[0]), "outlineOffset", style.LeafText(items[1])), true
	}
	return style.Decl("outline", style.LeafText(v)), true
}

func transitionPlugin(p *pluginContext) (*style.Tree, bool) {
	v, ok := p.lookup("transition", p.arg, "transitionProperty")
	if !ok {
		return nil, false
	}
	prop := style.LeafText(v)
	out := style.Decl("transitionProperty", prop)
	if prop == "none" {
		return out, true
	}
	if timing, ok := p.c.cfg.Lookup("transitionTimingFunction", theme.DefaultKey); ok {
		out.Set("transitionTimingFunction", style.LeafText(timing))
	}
	if duration, ok := p.c.cfg.Lookup("transitionDuration", theme.DefaultKey); ok {
		out.Set("transitionDuration", style.LeafText(duration))
	}
	return out, true
}

// animationPlugin also emits the keyframes named by the animation.
func animationPlugin(p *pluginContext) (*style.Tree, bool) {
	var animation string
	if v, ok := arbitraryValue(p.arg); ok {
		animation = v
	} else if v, ok := p.lookup("animate", p.arg, "animation"); ok {
		animation = style.LeafText(v)
	} else {
		return nil, false
	}

	out := style.Decl("animation", animation)
	if name, _, _ := strings.Cut(animation, " "); name != "" {
		if kf, ok := p.c.cfg.Lookup("keyframes", name); ok && kf.IsNode() {
			out.SetTree("@keyframes "+name, style.FromNode(kf.Node()))
		}
	}
	return out, true
}

const shadowStack = "var(--tw-ring-offset-shadow, 0 0 #0000), var(--tw-ring-shadow, 0 0 #0000), var(--tw-shadow)"

func boxShadowPlugin(p *pluginContext) (*style.Tree, bool) {
	var shadow string
	if v, ok := arbitraryValue(p.arg); ok {
		shadow = v
	} else if v, ok := p.lookup("shadow", p.arg, "boxShadow"); ok {
		shadow = style.LeafText(v)
	} else {
		return nil, false
	}
	if shadow == "none" {
		shadow = "0 0 #0000"
	}
	return style.Decl("--tw-shadow", shadow, "boxShadow", shadowStack), true
}

// containerPlugin sets a full width plus one max-width per breakpoint.
// theme.container may set center, padding (a value or per-screen table)
// and its own screens.
func containerPlugin(p *pluginContext) (*style.Tree, bool) {
	if p.arg != "" {
		return nil, false
	}
	cfg, _ := p.c.cfg.Child("container")

	out := style.Decl("width", "100%")
	if center, ok := cfg.Get("center"); ok && center.Text() == "true" {
		out.Set("marginLeft", "auto").Set("marginRight", "auto")
	}

	padding, hasPadding := cfg.Get("padding")
	if hasPadding {
		if pad, ok := containerPadding(padding, theme.DefaultKey); ok {
			out.Set("paddingLeft", pad).Set("paddingRight", pad)
		}
	}

	screens, ok := cfg.Child("screens")
	if !ok {
		screens, _ = p.c.cfg.Child("screens")
	}
	for name, v := range screens.All() {
		width, ok := screenMinWidth(v)
		if !ok {
			continue
		}
		rule := style.Decl("maxWidth", width)
		if hasPadding {
			if pad, ok := containerPadding(padding, name); ok && padding.IsNode() {
				rule.Set("paddingLeft", pad).Set("paddingRight", pad)
			}
		}
		out.SetTree("@media (min-width: "+width+")", rule)
	}
	return out, true
}

func containerPadding(padding theme.Value, screen string) (string, bool) {
	if !padding.IsNode() {
		return style.LeafText(padding), padding.IsLeaf()
	}
	v, ok := padding.Node().Get(screen)
	if !ok || !v.IsLeaf() {
		return "", false
	}
	return style.LeafText(v), true
}
