package tw

import (
	"regexp"
	"slices"
	"strings"
)

var (
	// "md:hover:(a b)!" - the innermost group with its variant prefix
	groupPattern = regexp.MustCompile(`((?:[^\s:()\[\]]+:)+)\(([^()]*)\)(!?)`)
	// one leading variant, stopping at brackets so "bg-[url(a:b)]" is left alone
	variantPattern = regexp.MustCompile(`^([^\s:\[\]()]+):`)
)

// ParseClasses splits a class string into tokens.
//
// Groups like "md:(flex p-4)" are expanded to "md:flex md:p-4", "|" separators
// are dropped, and tokens whose first variant is a breakpoint are moved after
// the rest, in screens order. The sort is stable so order within a breakpoint
// is kept.
func ParseClasses(classes string, screens []string) []ClassToken {
	expanded := expandGroups(classes)

	var raws []string
	for _, f := range strings.Fields(expanded) {
		if strings.Trim(f, "|") == "" {
			continue
		}
		raws = append(raws, f)
	}

	tokens := make([]ClassToken, 0, len(raws))
	for _, raw := range raws {
		tokens = append(tokens, parseToken(raw))
	}

	index := screenIndex(screens)
	slices.SortStableFunc(tokens, func(a, b ClassToken) int {
		return screenRank(a, index) - screenRank(b, index)
	})
	return tokens
}

// screenRank is 0 for tokens that do not start with a breakpoint, otherwise
// the breakpoint's position plus one.
func screenRank(t ClassToken, index map[string]int) int {
	if len(t.Variants) == 0 {
		return 0
	}
	if i, ok := index[t.Variants[0]]; ok {
		return i + 1
	}
	return 0
}

// expandGroups rewrites variant groups until none are left. A group that
// does not close is left as written and fails later as an unknown class.
func expandGroups(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	for {
		next := groupPattern.ReplaceAllStringFunc(s, func(m string) string {
			sub := groupPattern.FindStringSubmatch(m)
			prefix, inner, bang := sub[1], sub[2], sub[3]
			var out []string
			for _, f := range strings.Fields(inner) {
				if strings.Trim(f, "|") == "" {
					continue
				}
				if bang != "" && !strings.HasSuffix(f, "!") {
					f += bang
				}
				out = append(out, prefix+f)
			}
			return strings.Join(out, " ")
		})
		if next == s {
			return s
		}
		s = next
	}
}

// parseToken peels variants off the front, then the important and negative
// modifiers.
func parseToken(raw string) ClassToken {
	tok := ClassToken{Raw: raw}
	rest := raw
	for {
		m := variantPattern.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		tok.Variants = append(tok.Variants, m[1])
		rest = rest[len(m[0]):]
	}

	if len(rest) > 1 && strings.HasSuffix(rest, "!") {
		tok.Important = true
		rest = rest[:len(rest)-1]
	}
	if len(rest) > 1 && strings.HasPrefix(rest, "!") {
		tok.Important = true
		rest = rest[1:]
	}
	if len(rest) > 1 && strings.HasPrefix(rest, "-") {
		tok.Negative = true
		rest = rest[1:]
	}
	tok.BaseName = rest
	return tok
}

// arbitraryValue extracts the value of a bracketed key:
// "[33%]" → "33%", "[1fr_2fr]" → "1fr 2fr".
func arbitraryValue(key string) (string, bool) {
	if len(key) < 3 || key[0] != '[' || key[len(key)-1] != ']' {
		return "", false
	}
	return strings.ReplaceAll(key[1:len(key)-1], "_", " "), true
}
