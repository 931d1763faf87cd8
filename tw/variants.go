package tw

import (
	"fmt"
	"slices"
	"strings"
)

type variantKind int

const (
	variantSelector variantKind = iota
	variantMedia
)

type variant struct {
	name  string
	kind  variantKind
	value string
}

// Built-in variants. Selectors starting with ":" are written "&:" when
// SassyPseudo is on.
var builtinVariants = []variant{
	{"hover", variantSelector, ":hover"},
	{"focus", variantSelector, ":focus"},
	{"active", variantSelector, ":active"},
	{"visited", variantSelector, ":visited"},
	{"link", variantSelector, ":link"},
	{"target", variantSelector, ":target"},
	{"focus-visible", variantSelector, ":focus-visible"},
	{"focus-within", variantSelector, ":focus-within"},
	{"disabled", variantSelector, ":disabled"},
	{"enabled", variantSelector, ":enabled"},
	{"checked", variantSelector, ":checked"},
	{"indeterminate", variantSelector, ":indeterminate"},
	{"default", variantSelector, ":default"},
	{"required", variantSelector, ":required"},
	{"optional", variantSelector, ":optional"},
	{"valid", variantSelector, ":valid"},
	{"invalid", variantSelector, ":invalid"},
	{"in-range", variantSelector, ":in-range"},
	{"out-of-range", variantSelector, ":out-of-range"},
	{"read-only", variantSelector, ":read-only"},
	{"read-write", variantSelector, ":read-write"},
	{"placeholder-shown", variantSelector, ":placeholder-shown"},
	{"autofill", variantSelector, ":autofill"},
	{"empty", variantSelector, ":empty"},
	{"hocus", variantSelector, ":hover, :focus"},

	{"first", variantSelector, ":first-child"},
	{"last", variantSelector, ":last-child"},
	{"only", variantSelector, ":only-child"},
	{"odd", variantSelector, ":nth-child(odd)"},
	{"even", variantSelector, ":nth-child(even)"},
	{"first-of-type", variantSelector, ":first-of-type"},
	{"last-of-type", variantSelector, ":last-of-type"},
	{"only-of-type", variantSelector, ":only-of-type"},
	{"not-first", variantSelector, ":not(:first-child)"},
	{"not-last", variantSelector, ":not(:last-child)"},
	{"not-only", variantSelector, ":not(:only-child)"},
	{"not-disabled", variantSelector, ":not(:disabled)"},
	{"not-checked", variantSelector, ":not(:checked)"},

	{"before", variantSelector, "::before"},
	{"after", variantSelector, "::after"},
	{"placeholder", variantSelector, "::placeholder"},
	{"selection", variantSelector, "::selection"},
	{"first-letter", variantSelector, "::first-letter"},
	{"first-line", variantSelector, "::first-line"},
	{"marker", variantSelector, "::marker"},
	{"file", variantSelector, "::file-selector-button"},
	{"backdrop", variantSelector, "::backdrop"},

	{"open", variantSelector, "&[open]"},
	{"all", variantSelector, "& *"},
	{"all-child", variantSelector, "& > *"},
	{"sibling", variantSelector, "& ~ *"},
	{"svg", variantSelector, "& svg"},
	{"rtl", variantSelector, "[dir='rtl'] &"},
	{"ltr", variantSelector, "[dir='ltr'] &"},

	{"motion-safe", variantMedia, "@media (prefers-reduced-motion: no-preference)"},
	{"motion-reduce", variantMedia, "@media (prefers-reduced-motion: reduce)"},
	{"print", variantMedia, "@media print"},
	{"screen", variantMedia, "@media screen"},
	{"portrait", variantMedia, "@media (orientation: portrait)"},
	{"landscape", variantMedia, "@media (orientation: landscape)"},
	{"contrast-more", variantMedia, "@media (prefers-contrast: more)"},
	{"contrast-less", variantMedia, "@media (prefers-contrast: less)"},
}

var variantsByName = func() map[string]variant {
	m := make(map[string]variant, len(builtinVariants))
	for _, v := range builtinVariants {
		m[v.name] = v
	}
	return m
}()

// groupable reports whether v can follow "group-" or "peer-": a single
// pseudo-class such as ":hover".
func groupable(v variant) bool {
	return v.kind == variantSelector &&
		strings.HasPrefix(v.value, ":") &&
		!strings.HasPrefix(v.value, "::") &&
		!strings.Contains(v.value, ",")
}

func isGroupVariant(name string) bool {
	return strings.HasPrefix(name, "group-") || strings.HasPrefix(name, "peer-")
}

// variantPath turns the token's variants into nested selector and at-rule
// keys, outermost first.
func (c *Compiler) variantPath(tok ClassToken) ([]string, error) {
	if len(tok.Variants) == 0 {
		return nil, nil
	}

	hasDark := slices.Contains(tok.Variants, "dark")
	hasLight := slices.Contains(tok.Variants, "light")
	if hasDark && hasLight {
		return nil, &CompileError{
			Kind:    ConflictingVariants,
			Class:   tok.Raw,
			Variant: "dark",
			Message: fmt.Sprintf("%q uses both dark: and light:, which can never match together", tok.Raw),
		}
	}

	// In class mode a group/peer variant absorbs the mode class:
	// dark:group-hover: → ".dark .group:hover &"
	modeClass := ""
	switch {
	case hasDark && c.opts.darkMode() == ModeClass:
		modeClass = ".dark"
	case hasLight && c.opts.lightMode() == ModeClass:
		modeClass = ".light"
	}
	absorb := modeClass != "" && slices.ContainsFunc(tok.Variants, isGroupVariant)
	absorbed := false

	path := make([]string, 0, len(tok.Variants))
	for _, name := range tok.Variants {
		switch {
		case name == "dark" || name == "light":
			if absorb {
				continue
			}
			path = append(path, c.modeKey(name))

		case isGroupVariant(name):
			key, err := c.groupKey(tok, name)
			if err != nil {
				return nil, err
			}
			if absorb && !absorbed {
				key = modeClass + " " + key
				absorbed = true
			}
			path = append(path, key)

		default:
			key, err := c.variantKey(tok, name)
			if err != nil {
				return nil, err
			}
			path = append(path, key)
		}
	}
	return path, nil
}

func (c *Compiler) modeKey(name string) string {
	mode := c.opts.darkMode()
	if name == "light" {
		mode = c.opts.lightMode()
	}
	if mode == ModeClass {
		return "." + name + " &"
	}
	return "@media (prefers-color-scheme: " + name + ")"
}

func (c *Compiler) variantKey(tok ClassToken, name string) (string, error) {
	if v, ok := c.cfg.Lookup("screens", name); ok {
		media, ok := screenMedia(v)
		if !ok {
			return "", &CompileError{
				Kind:    ConfigMissing,
				Class:   tok.Raw,
				Variant: name,
				Scale:   "screens",
				Message: fmt.Sprintf("screens.%s has no usable width", name),
			}
		}
		return media, nil
	}
	v, ok := variantsByName[name]
	if !ok {
		return "", c.variantNotFound(tok, name)
	}
	if v.kind == variantMedia {
		return v.value, nil
	}
	return c.selector(v.value), nil
}

func (c *Compiler) groupKey(tok ClassToken, name string) (string, error) {
	prefix, rest, _ := strings.Cut(name, "-")
	v, ok := variantsByName[rest]
	if !ok || !groupable(v) {
		return "", c.variantNotFound(tok, name)
	}
	if prefix == "peer" {
		return ".peer" + v.value + " ~ &", nil
	}
	return ".group" + v.value + " &", nil
}

// selector applies the sassy pseudo rewrite to each part of a selector list.
func (c *Compiler) selector(sel string) string {
	if !c.opts.SassyPseudo {
		return sel
	}
	parts := strings.Split(sel, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, ":") {
			p = "&" + p
		}
		parts[i] = p
	}
	return strings.Join(parts, ", ")
}

func (c *Compiler) variantNotFound(tok ClassToken, name string) *CompileError {
	var hint strings.Builder
	hint.WriteString("Valid variants:")
	for _, g := range c.variantGroups() {
		if len(g.names) == 0 {
			continue
		}
		fmt.Fprintf(&hint, "\n  %s: %s", g.label, strings.Join(g.names, ", "))
	}
	return &CompileError{
		Kind:        VariantNotFound,
		Class:       tok.Raw,
		Variant:     name,
		Message:     fmt.Sprintf("The variant %q was not found", name),
		Hint:        hint.String(),
		Suggestions: rankSuggestions(name, c.variantNames()),
	}
}

type variantGroup struct {
	label string
	names []string
}

// variantGroups lists every variant the compiler accepts, by kind.
func (c *Compiler) variantGroups() []variantGroup {
	builtins := []string{"dark", "light"}
	var groups []string
	for _, v := range builtinVariants {
		builtins = append(builtins, v.name)
	}
	for _, v := range builtinVariants {
		if groupable(v) {
			groups = append(groups, "group-"+v.name, "peer-"+v.name)
		}
	}
	return []variantGroup{
		{"breakpoints", append([]string{}, c.screens...)},
		{"built-in", builtins},
		{"group and peer", groups},
	}
}

// variantNames lists every variant the compiler accepts.
func (c *Compiler) variantNames() []string {
	var names []string
	for _, g := range c.variantGroups() {
		names = append(names, g.names...)
	}
	return names
}
