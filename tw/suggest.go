package tw

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/maruel/natural"

	"github.com/agiangrant/twin/theme"
)

// commonMistakes maps frequent typos and CSS-isms to the intended class.
var commonMistakes = map[string]string{
	"flex-column":    "flex-col",
	"flex-columns":   "flex-col",
	"flex-rows":      "flex-row",
	"flex-no-wrap":   "flex-nowrap",
	"column":         "flex-col",
	"columns":        "flex-col",
	"rows":           "flex-row",
	"col":            "flex-col",
	"row":            "flex-row",
	"bold":           "font-bold",
	"center":         "text-center",
	"align-center":   "text-center",
	"align-left":     "text-left",
	"align-right":    "text-right",
	"no-grow":        "grow-0",
	"no-shrink":      "shrink-0",
	"padding":        "p-1",
	"padding-top":    "pt-1",
	"padding-bottom": "pb-1",
	"padding-left":   "pl-1",
	"padding-right":  "pr-1",
	"margin":         "m-1",
	"margin-top":     "mt-1",
	"margin-bottom":  "mb-1",
	"margin-left":    "ml-1",
	"margin-right":   "mr-1",
	"width":          "w-1",
	"height":         "h-1",
	"display-none":   "hidden",
	"none":           "hidden",
	"text-bold":      "font-bold",
	"text-italic":    "italic",
	"underlined":     "underline",
}

const (
	suggestThreshold      = 0.25
	scaleSuggestThreshold = 0.15
	strongMatch           = 0.6
	maxSuggestions        = 6
)

// dice is the Sørensen-Dice coefficient over character bigrams.
var dice = &metrics.SorensenDice{CaseSensitive: true, NgramSize: 2}

// similarity rates a against b ignoring whitespace. 1 means equal, 0 means
// no bigram in common.
func similarity(a, b string) float64 {
	a = strings.Join(strings.Fields(a), "")
	b = strings.Join(strings.Fields(b), "")
	if a == b {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}
	return strutil.Similarity(a, b, dice)
}

// rankSuggestions rates candidates against target. When exactly one
// candidate is a strong match it is returned alone, otherwise up to six of
// the best candidates above the threshold are returned.
func rankSuggestions(target string, candidates []string) []Suggestion {
	return rank(target, candidates, suggestThreshold)
}

func rank(target string, candidates []string, threshold float64) []Suggestion {
	seen := make(map[string]bool, len(candidates))
	var out []Suggestion
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		if r := similarity(target, c); r >= threshold {
			out = append(out, Suggestion{Target: c, Rating: r})
		}
	}
	slices.SortFunc(out, func(a, b Suggestion) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		case natural.Less(a.Target, b.Target):
			return -1
		case natural.Less(b.Target, a.Target):
			return 1
		}
		return 0
	})

	strong := 0
	for _, s := range out {
		if s.Rating >= strongMatch {
			strong++
		}
	}
	if strong == 1 {
		return out[:1]
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// mistake returns the class a common typo stands for.
func mistake(base string) ([]Suggestion, bool) {
	if target, ok := commonMistakes[base]; ok {
		return []Suggestion{{Target: target, Rating: 1}}, true
	}
	return nil, false
}

// classCandidates lists what a class could have been: static classes,
// dynamic prefixes, plugin stems and user plugin classes. Prefixes that need
// an argument are shown as "p-...".
func (c *Compiler) classCandidates() []string {
	c.candidatesOnce.Do(func() {
		var out []string
		for _, s := range staticClasses {
			out = append(out, s.name)
		}
		for _, u := range dynamicUtilities {
			bare, args := false, false
			for _, a := range u.alts {
				for _, name := range []string{a.scale, a.fallback} {
					node, ok := c.cfg.Child(name)
					if !ok {
						continue
					}
					for _, k := range node.Keys() {
						if k == theme.DefaultKey {
							bare = true
						} else {
							args = true
						}
					}
				}
			}
			if bare {
				out = append(out, u.prefix)
			}
			if args || !bare {
				out = append(out, u.prefix+"-...")
			}
		}
		for _, p := range corePlugins {
			out = append(out, p.hints...)
		}
		out = append(out, c.tables.Classes()...)
		c.candidates = out
	})
	return c.candidates
}

// scaleCandidates lists every class a scale miss could have meant.
func (c *Compiler) scaleCandidates(miss *scaleMiss) []string {
	var out []string
	for _, l := range miss.lookups {
		node, ok := c.cfg.Child(l.scale)
		if !ok {
			continue
		}
		for _, k := range scaleKeys(node) {
			if k == "" {
				out = append(out, l.prefix)
				continue
			}
			out = append(out, l.prefix+"-"+k)
		}
	}
	return out
}
