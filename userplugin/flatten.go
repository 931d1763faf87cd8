package userplugin

import (
	"fmt"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/maruel/natural"

	"github.com/agiangrant/twin/style"
)

// Tables is the flattened, per-class form of Data. It is read-only once built
// and may be shared between goroutines.
type Tables struct {
	base       *style.Tree
	components *orderedmap.OrderedMap[string, *style.Tree]
	utilities  *orderedmap.OrderedMap[string, *style.Tree]
}

// Lookup returns the rule for class, checking components before utilities.
// The returned tree must not be modified.
func (t *Tables) Lookup(class string) (*style.Tree, Layer, bool) {
	if t == nil {
		return nil, LayerUtilities, false
	}
	if rule, ok := t.components.Get(class); ok {
		return rule, LayerComponents, true
	}
	if rule, ok := t.utilities.Get(class); ok {
		return rule, LayerUtilities, true
	}
	return nil, LayerUtilities, false
}

// Base returns the base-layer rules keyed by selector.
func (t *Tables) Base() *style.Tree {
	if t == nil || t.base == nil {
		return style.New()
	}
	return t.base
}

// Classes lists every component and utility class in natural order.
func (t *Tables) Classes() []string {
	if t == nil {
		return nil
	}
	var out []string
	for k := range t.components.Keys() {
		out = append(out, k)
	}
	for k := range t.utilities.Keys() {
		if !t.components.Has(k) {
			out = append(out, k)
		}
	}
	slices.SortFunc(out, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Len is the number of component and utility classes.
func (t *Tables) Len() int {
	if t == nil {
		return 0
	}
	return t.components.Len() + t.utilities.Len()
}

// Flatten indexes component and utility rules by class name.
//
// A selector such as ".btn:hover" or ".btn > svg" is filed under "btn" with
// the remainder nested as "&:hover" or "& > svg". Selector lists are split,
// and top-level at-rules are moved inside each class they wrap. Component
// rules list at-rule keys after plain keys.
func Flatten(d *Data) (*Tables, error) {
	t := &Tables{
		base:       style.New(),
		components: orderedmap.NewOrderedMap[string, *style.Tree](),
		utilities:  orderedmap.NewOrderedMap[string, *style.Tree](),
	}
	if d == nil {
		return t, nil
	}
	if d.Base != nil {
		t.base = d.Base.Clone()
	}
	if err := flattenInto(t.components, d.Components, nil); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	if err := flattenInto(t.utilities, d.Utilities, nil); err != nil {
		return nil, fmt.Errorf("utilities: %w", err)
	}
	for _, rule := range t.components.AllFromFront() {
		sortAtRulesLast(rule)
	}
	return t, nil
}

func flattenInto(dst *orderedmap.OrderedMap[string, *style.Tree], rules *style.Tree, atRules []string) error {
	for key, e := range rules.All() {
		if !e.IsTree() {
			return fmt.Errorf("declaration %q has no selector", key)
		}
		if strings.HasPrefix(key, "@") {
			if err := flattenInto(dst, e.Tree, append(slices.Clone(atRules), key)); err != nil {
				return err
			}
			continue
		}
		for _, selector := range splitSelectors(key) {
			class, rest, ok := classOf(selector)
			if !ok {
				return fmt.Errorf("selector %q does not start with a class", selector)
			}
			rule := e.Tree.Clone()
			if rest != "" {
				rule = rule.Nest(nestKey(rest))
			}
			rule = rule.Nest(atRules...)

			if existing, ok := dst.Get(class); ok {
				existing.Merge(rule)
				continue
			}
			dst.Set(class, rule)
		}
	}
	return nil
}

// sortAtRulesLast moves "@..." keys behind all other keys, keeping relative
// order within each group.
func sortAtRulesLast(rule *style.Tree) {
	var at []string
	for k := range rule.All() {
		if strings.HasPrefix(k, "@") {
			at = append(at, k)
		}
	}
	for _, k := range at {
		e, _ := rule.Get(k)
		rule.Delete(k)
		if e.IsTree() {
			rule.SetTree(k, e.Tree)
		} else {
			rule.Set(k, e.Value)
		}
	}
}

func splitSelectors(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// classOf splits ".btn-primary:hover" into "btn-primary" and ":hover".
// Escapes are honored, so ".sm\:flex" yields "sm:flex".
func classOf(selector string) (class, rest string, ok bool) {
	if !strings.HasPrefix(selector, ".") {
		return "", "", false
	}
	var sb strings.Builder
	i := 1
	for i < len(selector) {
		c := selector[i]
		if c == '\\' && i+1 < len(selector) {
			sb.WriteByte(selector[i+1])
			i += 2
			continue
		}
		if !isClassChar(c) {
			break
		}
		sb.WriteByte(c)
		i++
	}
	if sb.Len() == 0 {
		return "", "", false
	}
	return sb.String(), selector[i:], true
}

func isClassChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c >= 0x80
}

// nestKey turns a selector remainder into a nested key: ":hover" → "&:hover",
// " > svg" → "& > svg".
func nestKey(rest string) string {
	if strings.HasPrefix(rest, " ") {
		return "& " + strings.TrimSpace(rest)
	}
	return "&" + rest
}
