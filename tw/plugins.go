package tw

import (
	"strings"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

// corePlugin handles a family of classes whose output needs more than a
// single scale lookup.
type corePlugin struct {
	name  string
	stems []string

	noVariants  bool
	noNegative  bool
	noImportant bool

	// hints are offered as suggestions when a class matches nothing
	hints []string

	run func(p *pluginContext) (*style.Tree, bool)
}

// pluginContext is the state for one plugin call.
type pluginContext struct {
	c    *Compiler
	tok  ClassToken
	stem string
	arg  string // base name after "stem-"
	miss scaleMiss
}

// sub reports whether arg is name or starts with name + "-", returning the
// rest.
func (p *pluginContext) sub(name string) (string, bool) {
	switch {
	case p.arg == name:
		return "", true
	case strings.HasPrefix(p.arg, name+"-"):
		return p.arg[len(name)+1:], true
	}
	return "", false
}

// lookup resolves key against scales in order and records the attempt for
// error reporting. prefix is the class prefix the key was written after.
func (p *pluginContext) lookup(prefix, key string, scales ...string) (theme.Value, bool) {
	for _, s := range scales {
		p.miss.add(prefix, s)
		node, ok := p.c.cfg.Child(s)
		if !ok {
			continue
		}
		v, st := configValue(node, key)
		switch st {
		case lookupFound:
			return v, true
		case lookupTooDeep:
			p.miss.tooDeep = true
		}
	}
	return theme.Value{}, false
}

// text renders a color value for properties that take no opacity variable.
func (p *pluginContext) text(v theme.Value) string {
	if v.Kind() == theme.KindDerived {
		return v.Derive(theme.DeriveArgs{OpacityValue: "1"})
	}
	s := style.LeafText(v)
	if s == "current" {
		return "currentColor"
	}
	return s
}

var corePlugins = []corePlugin{
	{name: "animation", stems: []string{"animate"}, noNegative: true, hints: []string{"animate-..."}, run: animationPlugin},
	{name: "background", stems: []string{"bg"}, noNegative: true, hints: []string{"bg-..."}, run: backgroundPlugin},
	{name: "border", stems: []string{"border"}, noNegative: true, hints: []string{"border", "border-..."}, run: borderPlugin},
	{name: "boxShadow", stems: []string{"shadow"}, noNegative: true, hints: []string{"shadow", "shadow-..."}, run: boxShadowPlugin},
	{name: "container", stems: []string{"container"}, noVariants: true, noNegative: true, hints: []string{"container"}, run: containerPlugin},
	{name: "divide", stems: []string{"divide"}, noNegative: true, hints: []string{"divide-x", "divide-y", "divide-..."}, run: dividePlugin},
	{name: "fill", stems: []string{"fill"}, noNegative: true, hints: []string{"fill-..."}, run: fillPlugin},
	{name: "gradient", stems: []string{"from", "via", "to"}, noNegative: true, noImportant: true, hints: []string{"from-...", "via-...", "to-..."}, run: gradientPlugin},
	{name: "outline", stems: []string{"outline"}, noNegative: true, hints: []string{"outline-..."}, run: outlinePlugin},
	{name: "placeholder", stems: []string{"placeholder"}, noNegative: true, hints: []string{"placeholder-..."}, run: placeholderPlugin},
	{name: "ring", stems: []string{"ring"}, noNegative: true, hints: []string{"ring", "ring-..."}, run: ringPlugin},
	{name: "ringOffset", stems: []string{"ring-offset"}, noNegative: true, hints: []string{"ring-offset-..."}, run: ringOffsetPlugin},
	{name: "space", stems: []string{"space"}, hints: []string{"space-x-...", "space-y-..."}, run: spacePlugin},
	{name: "stroke", stems: []string{"stroke"}, noNegative: true, hints: []string{"stroke-..."}, run: strokePlugin},
	{name: "text", stems: []string{"text"}, noNegative: true, hints: []string{"text-..."}, run: textPlugin},
	{name: "transition", stems: []string{"transition"}, noNegative: true, hints: []string{"transition", "transition-..."}, run: transitionPlugin},
}

// pluginFor finds the plugin with the longest stem matching base.
func pluginFor(base string) (*corePlugin, string, string, bool) {
	var (
		best       *corePlugin
		stem, rest string
	)
	for i := range corePlugins {
		for _, s := range corePlugins[i].stems {
			if len(s) <= len(stem) {
				continue
			}
			switch {
			case base == s:
				best, stem, rest = &corePlugins[i], s, ""
			case strings.HasPrefix(base, s+"-"):
				best, stem, rest = &corePlugins[i], s, base[len(s)+1:]
			}
		}
	}
	return best, stem, rest, best != nil
}

// applyImportant appends !important to every leaf. Custom properties are
// skipped when skipCustom is set.
func applyImportant(t *style.Tree, skipCustom bool) *style.Tree {
	return t.MapLeaves(func(key, value string) string {
		if skipCustom && style.IsCustomProperty(key) {
			return value
		}
		if strings.HasSuffix(value, "!important") {
			return value
		}
		return value + " !important"
	})
}
