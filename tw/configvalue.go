package tw

import (
	"strings"

	"github.com/agiangrant/twin/theme"
)

type lookupStatus int

const (
	lookupNotFound lookupStatus = iota
	lookupFound
	lookupTooDeep
)

// maxScaleDepth is how many tables may be walked by key prefix: the scale
// itself and one nested table ("colors" → "brand").
const maxScaleDepth = 2

// configValue finds key in a theme scale.
//
// An empty key selects DEFAULT. A key naming a nested table selects that
// table's DEFAULT. Otherwise the longest nested-table key k with key =
// k + "-" + rest is followed and rest is looked up inside it, so
// "red-500" finds colors.red.500.
func configValue(scale *theme.Node, key string) (theme.Value, lookupStatus) {
	return lookupScale(scale, key, 0)
}

func lookupScale(scale *theme.Node, key string, depth int) (theme.Value, lookupStatus) {
	if key == "" {
		key = theme.DefaultKey
	}
	if v, ok := scale.Get(key); ok {
		if v.IsLeaf() {
			return v, lookupFound
		}
		if v.IsNode() {
			if d, ok := v.Node().Get(theme.DefaultKey); ok && d.IsLeaf() {
				return d, lookupFound
			}
		}
		return theme.Value{}, lookupNotFound
	}

	best := ""
	for k, v := range scale.All() {
		if v.IsNode() && len(k) > len(best) && strings.HasPrefix(key, k+"-") {
			best = k
		}
	}
	if best == "" {
		return theme.Value{}, lookupNotFound
	}
	if depth+1 >= maxScaleDepth {
		return theme.Value{}, lookupTooDeep
	}
	child, _ := scale.Child(best)
	return lookupScale(child, key[len(best)+1:], depth+1)
}

// scaleKeys lists the class suffixes a scale offers, for suggestions.
// DEFAULT entries become the bare prefix.
func scaleKeys(scale *theme.Node) []string {
	var out []string
	for _, k := range scale.Flatten(maxScaleDepth) {
		switch {
		case k == theme.DefaultKey:
			out = append(out, "")
		case strings.HasSuffix(k, "-"+theme.DefaultKey):
			out = append(out, strings.ToLower(k))
		default:
			out = append(out, k)
		}
	}
	return out
}
