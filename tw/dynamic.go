package tw

import (
	"regexp"
	"slices"
	"strings"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

// dynamicAlt is one way to resolve a dynamic utility: look the key up in
// scale (then fallback) and write the value to every prop.
type dynamicAlt struct {
	props    []string
	scale    string
	fallback string
	zeroUnit bool     // a bare 0 is written as 0px
	extra    []string // constant property, value pairs added alongside
}

// dynamicUtility maps a class prefix onto theme scales.
type dynamicUtility struct {
	prefix    string
	negatable bool
	alts      []dynamicAlt
}

func alt(scale, fallback string, props ...string) dynamicAlt {
	return dynamicAlt{props: props, scale: scale, fallback: fallback}
}

func spaced(scale string, props ...string) dynamicAlt {
	return dynamicAlt{props: props, scale: scale, fallback: "spacing", zeroUnit: true}
}

// transformChain composes every transform variable so several transform
// utilities can be combined on one element.
const transformChain = "translate(var(--tw-translate-x, 0), var(--tw-translate-y, 0)) " +
	"rotate(var(--tw-rotate, 0)) skewX(var(--tw-skew-x, 0)) skewY(var(--tw-skew-y, 0)) " +
	"scaleX(var(--tw-scale-x, 1)) scaleY(var(--tw-scale-y, 1))"

func transformAlt(scale string, vars ...string) dynamicAlt {
	return dynamicAlt{props: vars, scale: scale, extra: []string{"transform", transformChain}}
}

func one(prefix string, a dynamicAlt) dynamicUtility {
	return dynamicUtility{prefix: prefix, alts: []dynamicAlt{a}}
}

func neg(prefix string, a dynamicAlt) dynamicUtility {
	return dynamicUtility{prefix: prefix, negatable: true, alts: []dynamicAlt{a}}
}

var dynamicUtilities = []dynamicUtility{
	one("p", spaced("padding", "padding")),
	one("px", spaced("padding", "paddingLeft", "paddingRight")),
	one("py", spaced("padding", "paddingTop", "paddingBottom")),
	one("pt", spaced("padding", "paddingTop")),
	one("pr", spaced("padding", "paddingRight")),
	one("pb", spaced("padding", "paddingBottom")),
	one("pl", spaced("padding", "paddingLeft")),

	neg("m", spaced("margin", "margin")),
	neg("mx", spaced("margin", "marginLeft", "marginRight")),
	neg("my", spaced("margin", "marginTop", "marginBottom")),
	neg("mt", spaced("margin", "marginTop")),
	neg("mr", spaced("margin", "marginRight")),
	neg("mb", spaced("margin", "marginBottom")),
	neg("ml", spaced("margin", "marginLeft")),

	one("w", spaced("width", "width")),
	one("h", spaced("height", "height")),
	one("min-w", alt("minWidth", "", "minWidth")),
	one("min-h", alt("minHeight", "", "minHeight")),
	one("max-w", alt("maxWidth", "", "maxWidth")),
	one("max-h", alt("maxHeight", "", "maxHeight")),

	neg("inset", spaced("inset", "top", "right", "bottom", "left")),
	neg("inset-x", spaced("inset", "left", "right")),
	neg("inset-y", spaced("inset", "top", "bottom")),
	neg("top", spaced("inset", "top")),
	neg("right", spaced("inset", "right")),
	neg("bottom", spaced("inset", "bottom")),
	neg("left", spaced("inset", "left")),

	one("gap", spaced("gap", "gap")),
	one("gap-x", spaced("gap", "columnGap")),
	one("gap-y", spaced("gap", "rowGap")),

	neg("z", alt("zIndex", "", "zIndex")),
	neg("order", alt("order", "", "order")),
	one("opacity", alt("opacity", "", "opacity")),

	one("flex", alt("flex", "", "flex")),
	one("flex-grow", alt("flexGrow", "", "flexGrow")),
	one("grow", alt("flexGrow", "", "flexGrow")),
	one("flex-shrink", alt("flexShrink", "", "flexShrink")),
	one("shrink", alt("flexShrink", "", "flexShrink")),
	one("basis", spaced("flexBasis", "flexBasis")),

	{prefix: "font", alts: []dynamicAlt{
		alt("fontWeight", "", "fontWeight"),
		alt("fontFamily", "", "fontFamily"),
	}},
	one("leading", alt("lineHeight", "", "lineHeight")),
	neg("tracking", alt("letterSpacing", "", "letterSpacing")),
	neg("indent", spaced("textIndent", "textIndent")),
	one("list", alt("listStyleType", "", "listStyleType")),

	one("rounded", alt("borderRadius", "", "borderRadius")),
	one("rounded-t", alt("borderRadius", "", "borderTopLeftRadius", "borderTopRightRadius")),
	one("rounded-r", alt("borderRadius", "", "borderTopRightRadius", "borderBottomRightRadius")),
	one("rounded-b", alt("borderRadius", "", "borderBottomRightRadius", "borderBottomLeftRadius")),
	one("rounded-l", alt("borderRadius", "", "borderTopLeftRadius", "borderBottomLeftRadius")),
	one("rounded-tl", alt("borderRadius", "", "borderTopLeftRadius")),
	one("rounded-tr", alt("borderRadius", "", "borderTopRightRadius")),
	one("rounded-br", alt("borderRadius", "", "borderBottomRightRadius")),
	one("rounded-bl", alt("borderRadius", "", "borderBottomLeftRadius")),

	one("cursor", alt("cursor", "", "cursor")),
	one("duration", alt("transitionDuration", "", "transitionDuration")),
	one("delay", alt("transitionDelay", "", "transitionDelay")),
	one("ease", alt("transitionTimingFunction", "", "transitionTimingFunction")),

	neg("rotate", transformAlt("rotate", "--tw-rotate")),
	one("scale", transformAlt("scale", "--tw-scale-x", "--tw-scale-y")),
	one("scale-x", transformAlt("scale", "--tw-scale-x")),
	one("scale-y", transformAlt("scale", "--tw-scale-y")),
	neg("translate-x", transformAlt("translate", "--tw-translate-x")),
	neg("translate-y", transformAlt("translate", "--tw-translate-y")),
	neg("skew-x", transformAlt("skew", "--tw-skew-x")),
	neg("skew-y", transformAlt("skew", "--tw-skew-y")),
	one("origin", alt("transformOrigin", "", "transformOrigin")),

	one("grid-cols", alt("gridTemplateColumns", "", "gridTemplateColumns")),
	one("grid-rows", alt("gridTemplateRows", "", "gridTemplateRows")),
	one("col", alt("gridColumn", "", "gridColumn")),
	one("col-start", alt("gridColumnStart", "", "gridColumnStart")),
	one("col-end", alt("gridColumnEnd", "", "gridColumnEnd")),
	one("row", alt("gridRow", "", "gridRow")),
	one("row-start", alt("gridRowStart", "", "gridRowStart")),
	one("row-end", alt("gridRowEnd", "", "gridRowEnd")),
	one("auto-cols", alt("gridAutoColumns", "", "gridAutoColumns")),
	one("auto-rows", alt("gridAutoRows", "", "gridAutoRows")),

	one("object", alt("objectPosition", "", "objectPosition")),
}

// scaleLookup is one scale consulted for a class prefix.
type scaleLookup struct {
	prefix string
	scale  string
}

// scaleMiss records the lookups made for a class whose prefix matched but
// whose key was in none of the scales consulted.
type scaleMiss struct {
	lookups []scaleLookup
	tooDeep bool
}

func (m *scaleMiss) add(prefix string, scales ...string) {
	for _, s := range scales {
		if s == "" {
			continue
		}
		l := scaleLookup{prefix: prefix, scale: s}
		if !slices.Contains(m.lookups, l) {
			m.lookups = append(m.lookups, l)
		}
	}
}

func (m *scaleMiss) empty() bool {
	return m == nil || len(m.lookups) == 0
}

type dynamicMatch struct {
	utility dynamicUtility
	key     string
}

// dynamicMatches lists the utilities whose prefix matches base, longest
// prefix first.
func dynamicMatches(base string) []dynamicMatch {
	var out []dynamicMatch
	for _, u := range dynamicUtilities {
		switch {
		case base == u.prefix:
			out = append(out, dynamicMatch{u, ""})
		case strings.HasPrefix(base, u.prefix+"-"):
			out = append(out, dynamicMatch{u, base[len(u.prefix)+1:]})
		}
	}
	slices.SortStableFunc(out, func(a, b dynamicMatch) int {
		return len(b.utility.prefix) - len(a.utility.prefix)
	})
	return out
}

// dynamicStyle resolves base against the dynamic table. It returns the
// utility that matched so callers can check modifiers against it. On a miss
// only the longest matching prefix is reported.
func (c *Compiler) dynamicStyle(tok ClassToken) (*style.Tree, *dynamicUtility, *scaleMiss) {
	var miss *scaleMiss
	for _, m := range dynamicMatches(tok.BaseName) {
		for _, a := range m.utility.alts {
			v, status := c.scaleValue(m.key, a.scale, a.fallback)
			if status == lookupFound {
				u := m.utility
				return a.render(v, tok.Negative), &u, nil
			}
			if miss == nil {
				miss = &scaleMiss{}
			}
			if len(miss.lookups) == 0 || miss.lookups[0].prefix == m.utility.prefix {
				miss.add(m.utility.prefix, a.scale, a.fallback)
				miss.tooDeep = miss.tooDeep || status == lookupTooDeep
			}
		}
	}
	return nil, nil, miss
}

// scaleValue resolves key in scale, then in fallback. Bracketed keys are
// arbitrary values and bypass the theme.
func (c *Compiler) scaleValue(key, scale, fallback string) (theme.Value, lookupStatus) {
	if v, ok := arbitraryValue(key); ok {
		return theme.Str(v), lookupFound
	}
	status := lookupNotFound
	for _, name := range []string{scale, fallback} {
		if name == "" {
			continue
		}
		node, ok := c.cfg.Child(name)
		if !ok {
			continue
		}
		v, st := configValue(node, key)
		if st == lookupFound {
			return v, st
		}
		if st == lookupTooDeep {
			status = st
		}
	}
	return theme.Value{}, status
}

func (a dynamicAlt) render(v theme.Value, negative bool) *style.Tree {
	text := style.LeafText(v)
	if a.zeroUnit && v.IsZeroNumber() {
		text = "0px"
	}
	if negative {
		text = negate(text)
	}
	out := style.New()
	for _, p := range a.props {
		out.Set(p, text)
	}
	for i := 0; i+1 < len(a.extra); i += 2 {
		out.Set(a.extra[i], a.extra[i+1])
	}
	return out
}

var zeroLength = regexp.MustCompile(`^0*\.?0+[a-z%]*$`)

// negate flips the sign of a value. Zero stays unsigned, a negative value
// loses its sign, and var()/calc() expressions are multiplied by -1.
func negate(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case zeroLength.MatchString(v):
		return v
	case strings.HasPrefix(v, "-"):
		return v[1:]
	case strings.HasPrefix(v, "var("), strings.HasPrefix(v, "calc("):
		return "calc(" + v + " * -1)"
	}
	return "-" + v
}
