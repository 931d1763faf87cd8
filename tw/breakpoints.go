package tw

import (
	"strings"

	"github.com/agiangrant/twin/theme"
)

func screenIndex(screens []string) map[string]int {
	index := make(map[string]int, len(screens))
	for i, s := range screens {
		index[s] = i
	}
	return index
}

// screenMedia renders a screens entry as a media query key.
//
//	"768px"                     → @media (min-width: 768px)
//	768                         → @media (min-width: 768px)
//	{min = "640px", max = "767px"} → @media (min-width: 640px) and (max-width: 767px)
//	{raw = "print"}             → @media print
//	["640px", {max = "400px"}]  → @media (min-width: 640px), (max-width: 400px)
func screenMedia(v theme.Value) (string, bool) {
	cond, ok := screenCondition(v)
	if !ok {
		return "", false
	}
	return "@media " + cond, true
}

func screenCondition(v theme.Value) (string, bool) {
	switch v.Kind() {
	case theme.KindScalar, theme.KindNumeric:
		return "(min-width: " + withPx(v) + ")", true

	case theme.KindNode:
		n := v.Node()
		if raw, ok := n.Get("raw"); ok {
			return raw.Text(), true
		}
		var conds []string
		if lo, ok := n.Get("min"); ok {
			conds = append(conds, "(min-width: "+withPx(lo)+")")
		}
		if hi, ok := n.Get("max"); ok {
			conds = append(conds, "(max-width: "+withPx(hi)+")")
		}
		if len(conds) == 0 {
			return "", false
		}
		return strings.Join(conds, " and "), true

	case theme.KindList:
		var conds []string
		for _, item := range v.Items() {
			c, ok := screenCondition(item)
			if !ok {
				return "", false
			}
			conds = append(conds, c)
		}
		if len(conds) == 0 {
			return "", false
		}
		return strings.Join(conds, ", "), true
	}
	return "", false
}

// screenMinWidth is the lower bound of a breakpoint, if it has one.
func screenMinWidth(v theme.Value) (string, bool) {
	switch v.Kind() {
	case theme.KindScalar, theme.KindNumeric:
		return withPx(v), true
	case theme.KindNode:
		if lo, ok := v.Node().Get("min"); ok {
			return withPx(lo), true
		}
	}
	return "", false
}

func withPx(v theme.Value) string {
	if v.Kind() == theme.KindNumeric {
		return v.Text() + "px"
	}
	return v.Text()
}
