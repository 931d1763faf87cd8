package tw

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
	"github.com/agiangrant/twin/userplugin"
)

// GeneratorKind names the table a class resolved from.
type GeneratorKind int

const (
	GeneratorStatic GeneratorKind = iota
	GeneratorDynamic
	GeneratorCorePlugin
	GeneratorUserPlugin
)

func (k GeneratorKind) String() string {
	switch k {
	case GeneratorStatic:
		return "static"
	case GeneratorDynamic:
		return "dynamic"
	case GeneratorCorePlugin:
		return "core-plugin"
	case GeneratorUserPlugin:
		return "user-plugin"
	default:
		return "unknown"
	}
}

// Generator is the resolved source of a class. The set of implementations
// is closed.
type Generator interface {
	Kind() GeneratorKind
	generator()
}

// StaticGenerator is a fixed declaration set.
type StaticGenerator struct {
	Class string
	Style *style.Tree
}

// DynamicGenerator is a prefix resolved against a theme scale.
type DynamicGenerator struct {
	Prefix string
	Style  *style.Tree
}

// CorePluginGenerator is a built-in plugin's output. Importance is already
// applied.
type CorePluginGenerator struct {
	Plugin string
	Style  *style.Tree
}

// UserPluginGenerator is a rule from the caller's plugin tables.
type UserPluginGenerator struct {
	Class string
	Layer userplugin.Layer
	Style *style.Tree
}

func (StaticGenerator) Kind() GeneratorKind     { return GeneratorStatic }
func (DynamicGenerator) Kind() GeneratorKind    { return GeneratorDynamic }
func (CorePluginGenerator) Kind() GeneratorKind { return GeneratorCorePlugin }
func (UserPluginGenerator) Kind() GeneratorKind { return GeneratorUserPlugin }

func (StaticGenerator) generator()     {}
func (DynamicGenerator) generator()    {}
func (CorePluginGenerator) generator() {}
func (UserPluginGenerator) generator() {}

// Classify finds the generator for a token. Tables are tried in order:
// static, dynamic (longest prefix first), core plugins, user plugins.
func (c *Compiler) Classify(tok ClassToken) (Generator, error) {
	base := tok.BaseName
	if strings.HasSuffix(base, "-") {
		e := errClassNotFound(tok, rankSuggestions(strings.TrimRight(base, "-"), c.classCandidates()))
		e.Message = fmt.Sprintf("%q ends with a dash", base)
		return nil, e
	}

	if decls, ok := staticStyle(base); ok {
		if tok.Negative {
			return nil, errUnsupported(tok, "negative", fmt.Sprintf("%q doesn't support a negative prefix", base))
		}
		return StaticGenerator{Class: base, Style: decls}, nil
	}

	decls, utility, miss := c.dynamicStyle(tok)
	if decls != nil {
		if tok.Negative && !utility.negatable {
			return nil, errUnsupported(tok, "negative", fmt.Sprintf("%q doesn't support a negative prefix", base))
		}
		return DynamicGenerator{Prefix: utility.prefix, Style: decls}, nil
	}

	if plugin, stem, arg, ok := pluginFor(base); ok {
		ctx := &pluginContext{c: c, tok: tok, stem: stem, arg: arg}
		if out, ok := plugin.run(ctx); ok {
			if err := checkPluginModifiers(plugin, tok); err != nil {
				return nil, err
			}
			if c.important(tok) && !plugin.noImportant {
				applyImportant(out, true)
			}
			return CorePluginGenerator{Plugin: plugin.name, Style: out}, nil
		}
		if miss.empty() {
			miss = &ctx.miss
		}
	}

	if rule, layer, ok := c.tables.Lookup(base); ok {
		if tok.Negative {
			return nil, errUnsupported(tok, "negative", fmt.Sprintf("%q doesn't support a negative prefix", base))
		}
		return UserPluginGenerator{Class: base, Layer: layer, Style: rule}, nil
	}

	return nil, c.classError(tok, miss)
}

func checkPluginModifiers(p *corePlugin, tok ClassToken) error {
	switch {
	case p.noVariants && len(tok.Variants) > 0:
		return errUnsupported(tok, "variants", fmt.Sprintf("%q can't be used with variants", tok.BaseName))
	case p.noNegative && tok.Negative:
		return errUnsupported(tok, "negative", fmt.Sprintf("%q doesn't support a negative prefix", tok.BaseName))
	case p.noImportant && tok.Important:
		return errUnsupported(tok, "important", fmt.Sprintf("%q can't be marked important", tok.BaseName))
	}
	return nil
}

// classError explains why nothing matched. A known typo wins; then a prefix
// that matched but missed its scales; then a plain search over every class.
func (c *Compiler) classError(tok ClassToken, miss *scaleMiss) error {
	base := tok.BaseName
	if s, ok := mistake(base); ok {
		return errClassNotFound(tok, s)
	}
	if miss.empty() {
		return errClassNotFound(tok, rankSuggestions(base, c.classCandidates()))
	}

	var scales, configured []string
	for _, l := range miss.lookups {
		if !slices.Contains(scales, l.scale) {
			scales = append(scales, l.scale)
		}
		if c.scaleConfigured(l.scale) && !slices.Contains(configured, l.scale) {
			configured = append(configured, l.scale)
		}
	}
	if len(configured) == 0 {
		return errConfigMissing(tok, strings.Join(scales, ", "),
			fmt.Sprintf("%q needs theme.%s, which is not configured", base, scales[0]))
	}
	if miss.tooDeep {
		return errConfigMissing(tok, strings.Join(configured, ", "),
			fmt.Sprintf("%q reaches more than two levels into theme.%s", base, configured[0]))
	}

	e := errClassNotFound(tok, rank(base, c.scaleCandidates(miss), scaleSuggestThreshold))
	suffix := "-" + strings.ToLower(theme.DefaultKey)
	for i, s := range e.Suggestions {
		if !strings.HasSuffix(s.Target, suffix) {
			continue
		}
		// a lowercase default key is never valid as written
		bare := strings.TrimSuffix(s.Target, suffix)
		e.Suggestions[i].Target = bare
		if i == 0 {
			e.Hint = fmt.Sprintf("The %s key must be written in uppercase, or left off: use %q", theme.DefaultKey, bare)
		}
	}
	return e
}

// scaleConfigured reports whether the theme has a non-empty entry for scale.
func (c *Compiler) scaleConfigured(scale string) bool {
	v, ok := c.cfg.Get(scale)
	if !ok || !v.IsValid() {
		return false
	}
	if v.Kind() == theme.KindNode {
		return v.Node().Len() > 0
	}
	return true
}

func (c *Compiler) important(tok ClassToken) bool {
	return tok.Important || c.opts.ImportantStrategy == ImportantAll
}

// generate produces the declarations for a generator. Importance is applied
// here for every kind but core plugins, which handle it themselves.
func (c *Compiler) generate(gen Generator, tok ClassToken) *style.Tree {
	var out *style.Tree
	switch g := gen.(type) {
	case StaticGenerator:
		out = g.Style.Clone()
	case DynamicGenerator:
		out = g.Style.Clone()
	case UserPluginGenerator:
		out = g.Style.Clone()
	case CorePluginGenerator:
		return g.Style.Clone()
	default:
		return style.New()
	}
	if c.important(tok) {
		applyImportant(out, false)
	}
	return out
}
