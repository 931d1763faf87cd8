package theme

import (
	"strconv"
)

// palette is one named color ramp in shade order.
type palette struct {
	name  string
	ramps []string
}

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// Default color palettes, grays first.
var palettes = []palette{
	{"slate", []string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", []string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"zinc", []string{"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"}},
	{"neutral", []string{"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"}},
	{"stone", []string{"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"}},
	{"red", []string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", []string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"amber", []string{"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"}},
	{"yellow", []string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"lime", []string{"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"}},
	{"green", []string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"emerald", []string{"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"}},
	{"teal", []string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"cyan", []string{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"}},
	{"sky", []string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"}},
	{"blue", []string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", []string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"violet", []string{"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"}},
	{"purple", []string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"fuchsia", []string{"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"}},
	{"pink", []string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
	{"rose", []string{"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"}},
}

// spacingSteps are the default spacing keys; each step is a quarter rem.
var spacingSteps = []string{
	"0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60", "64", "72", "80", "96",
}

// Default returns a fresh copy of the built-in theme. Callers may modify it.
func Default() *Node {
	spacing := Spacing()
	colors := Colors()

	cfg := NewNode()
	cfg.SetNode("screens", Scale("sm", "640px", "md", "768px", "lg", "1024px", "xl", "1280px", "2xl", "1536px"))
	cfg.SetNode("colors", colors)
	cfg.SetNode("spacing", spacing)

	cfg.SetNode("animation", Scale(
		"none", "none",
		"spin", "spin 1s linear infinite",
		"ping", "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
		"pulse", "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
		"bounce", "bounce 1s infinite",
	))
	cfg.SetNode("keyframes", keyframes())

	cfg.SetNode("backgroundImage", Scale(
		"none", "none",
		"gradient-to-t", "linear-gradient(to top, var(--tw-gradient-stops))",
		"gradient-to-tr", "linear-gradient(to top right, var(--tw-gradient-stops))",
		"gradient-to-r", "linear-gradient(to right, var(--tw-gradient-stops))",
		"gradient-to-br", "linear-gradient(to bottom right, var(--tw-gradient-stops))",
		"gradient-to-b", "linear-gradient(to bottom, var(--tw-gradient-stops))",
		"gradient-to-bl", "linear-gradient(to bottom left, var(--tw-gradient-stops))",
		"gradient-to-l", "linear-gradient(to left, var(--tw-gradient-stops))",
		"gradient-to-tl", "linear-gradient(to top left, var(--tw-gradient-stops))",
	))
	cfg.SetNode("backgroundPosition", Scale(
		"bottom", "bottom", "center", "center", "left", "left",
		"left-bottom", "left bottom", "left-top", "left top",
		"right", "right", "right-bottom", "right bottom", "right-top", "right top", "top", "top",
	))
	cfg.SetNode("backgroundSize", Scale("auto", "auto", "cover", "cover", "contain", "contain"))

	cfg.SetNode("borderColor", NewNode().Set(DefaultKey, Str("#e5e7eb")))
	cfg.SetNode("borderRadius", Scale(
		"none", "0px", "sm", "0.125rem", DefaultKey, "0.25rem", "md", "0.375rem", "lg", "0.5rem",
		"xl", "0.75rem", "2xl", "1rem", "3xl", "1.5rem", "full", "9999px",
	))
	cfg.SetNode("borderWidth", Scale(DefaultKey, "1px", "0", "0px", "2", "2px", "4", "4px", "8", "8px"))
	cfg.SetNode("boxShadow", Scale(
		"sm", "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
		DefaultKey, "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)",
		"md", "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
		"lg", "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
		"xl", "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
		"2xl", "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
		"inner", "inset 0 2px 4px 0 rgba(0, 0, 0, 0.06)",
		"none", "none",
	))
	cfg.SetNode("container", NewNode())
	cfg.SetNode("cursor", Scale(
		"auto", "auto", "default", "default", "pointer", "pointer", "wait", "wait", "text", "text",
		"move", "move", "help", "help", "not-allowed", "not-allowed",
	))

	cfg.SetNode("flex", Scale("1", "1 1 0%", "auto", "1 1 auto", "initial", "0 1 auto", "none", "none"))
	cfg.SetNode("flexGrow", Scale("0", "0", DefaultKey, "1"))
	cfg.SetNode("flexShrink", Scale("0", "0", DefaultKey, "1"))
	cfg.SetNode("flexBasis", withFractions(Scale("auto", "auto").Merge(spacing), true))

	cfg.SetNode("fontFamily", NewNode().
		Set("sans", Strs("ui-sans-serif", "system-ui", "-apple-system", "BlinkMacSystemFont", `"Segoe UI"`, "Roboto", `"Helvetica Neue"`, "Arial", "sans-serif")).
		Set("serif", Strs("ui-serif", "Georgia", "Cambria", `"Times New Roman"`, "Times", "serif")).
		Set("mono", Strs("ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas", `"Liberation Mono"`, `"Courier New"`, "monospace")))
	cfg.SetNode("fontSize", fontSizes())
	cfg.SetNode("fontWeight", NewNode().
		Set("thin", Num(100)).Set("extralight", Num(200)).Set("light", Num(300)).
		Set("normal", Num(400)).Set("medium", Num(500)).Set("semibold", Num(600)).
		Set("bold", Num(700)).Set("extrabold", Num(800)).Set("black", Num(900)))

	cfg.SetNode("gridTemplateColumns", gridRepeat(12))
	cfg.SetNode("gridTemplateRows", gridRepeat(6))
	cfg.SetNode("gridColumn", gridSpan(12))
	cfg.SetNode("gridRow", gridSpan(6))
	cfg.SetNode("gridColumnStart", gridLines(13))
	cfg.SetNode("gridColumnEnd", gridLines(13))
	cfg.SetNode("gridRowStart", gridLines(7))
	cfg.SetNode("gridRowEnd", gridLines(7))
	cfg.SetNode("gridAutoColumns", Scale("auto", "auto", "min", "min-content", "max", "max-content", "fr", "minmax(0, 1fr)"))
	cfg.SetNode("gridAutoRows", Scale("auto", "auto", "min", "min-content", "max", "max-content", "fr", "minmax(0, 1fr)"))

	cfg.SetNode("height", withFractions(Scale("auto", "auto").Merge(spacing), true).
		Set("screen", Str("100vh")).Set("min", Str("min-content")).Set("max", Str("max-content")))
	cfg.SetNode("width", withFractions(Scale("auto", "auto").Merge(spacing), true).
		Set("screen", Str("100vw")).Set("min", Str("min-content")).Set("max", Str("max-content")))
	cfg.SetNode("inset", withFractions(Scale("auto", "auto").Merge(spacing), false))

	cfg.SetNode("letterSpacing", Scale(
		"tighter", "-0.05em", "tight", "-0.025em", "normal", "0em",
		"wide", "0.025em", "wider", "0.05em", "widest", "0.1em",
	))
	cfg.SetNode("lineHeight", Scale(
		"none", "1", "tight", "1.25", "snug", "1.375", "normal", "1.5", "relaxed", "1.625", "loose", "2",
		"3", ".75rem", "4", "1rem", "5", "1.25rem", "6", "1.5rem", "7", "1.75rem", "8", "2rem", "9", "2.25rem", "10", "2.5rem",
	))
	cfg.SetNode("listStyleType", Scale("none", "none", "disc", "disc", "decimal", "decimal"))

	cfg.SetNode("margin", Scale("auto", "auto").Merge(spacing))
	cfg.SetNode("maxHeight", Scale("none", "none", "full", "100%", "screen", "100vh").Merge(spacing))
	cfg.SetNode("maxWidth", Scale(
		"none", "none", "0", "0rem", "xs", "20rem", "sm", "24rem", "md", "28rem", "lg", "32rem",
		"xl", "36rem", "2xl", "42rem", "3xl", "48rem", "4xl", "56rem", "5xl", "64rem", "6xl", "72rem",
		"7xl", "80rem", "full", "100%", "min", "min-content", "max", "max-content", "prose", "65ch",
		"screen-sm", "640px", "screen-md", "768px", "screen-lg", "1024px", "screen-xl", "1280px", "screen-2xl", "1536px",
	))
	cfg.SetNode("minHeight", Scale("0", "0px", "full", "100%", "screen", "100vh"))
	cfg.SetNode("minWidth", Scale("0", "0px", "full", "100%", "min", "min-content", "max", "max-content"))

	cfg.SetNode("objectPosition", Scale(
		"bottom", "bottom", "center", "center", "left", "left",
		"left-bottom", "left bottom", "left-top", "left top",
		"right", "right", "right-bottom", "right bottom", "right-top", "right top", "top", "top",
	))
	cfg.SetNode("opacity", opacities())
	cfg.SetNode("order", orders())
	cfg.SetNode("outline", NewNode().
		Set("none", Strs("2px solid transparent", "2px")).
		Set("white", Strs("2px dotted white", "2px")).
		Set("black", Strs("2px dotted black", "2px")))

	cfg.SetNode("ringColor", NewNode().Set(DefaultKey, Str("#3b82f6")))
	cfg.SetNode("ringOffsetWidth", Scale("0", "0px", "1", "1px", "2", "2px", "4", "4px", "8", "8px"))
	cfg.SetNode("ringOpacity", NewNode().Set(DefaultKey, Str("0.5")))
	cfg.SetNode("ringWidth", Scale(DefaultKey, "3px", "0", "0px", "1", "1px", "2", "2px", "4", "4px", "8", "8px"))

	cfg.SetNode("rotate", Scale(
		"0", "0deg", "1", "1deg", "2", "2deg", "3", "3deg", "6", "6deg", "12", "12deg",
		"45", "45deg", "90", "90deg", "180", "180deg",
	))
	cfg.SetNode("scale", Scale(
		"0", "0", "50", ".5", "75", ".75", "90", ".9", "95", ".95", "100", "1",
		"105", "1.05", "110", "1.1", "125", "1.25", "150", "1.5",
	))
	cfg.SetNode("skew", Scale("0", "0deg", "1", "1deg", "2", "2deg", "3", "3deg", "6", "6deg", "12", "12deg"))
	cfg.SetNode("translate", withFractions(spacing.Clone(), true))
	cfg.SetNode("transformOrigin", Scale(
		"center", "center", "top", "top", "top-right", "top right", "right", "right",
		"bottom-right", "bottom right", "bottom", "bottom", "bottom-left", "bottom left",
		"left", "left", "top-left", "top left",
	))

	cfg.SetNode("stroke", Scale("current", "currentColor"))
	cfg.SetNode("fill", Scale("current", "currentColor"))
	cfg.SetNode("strokeWidth", NewNode().Set("0", Num(0)).Set("1", Num(1)).Set("2", Num(2)))

	cfg.SetNode("transitionDelay", durations())
	cfg.SetNode("transitionDuration", durations().Set(DefaultKey, Str("150ms")))
	cfg.SetNode("transitionProperty", Scale(
		"none", "none",
		"all", "all",
		DefaultKey, "background-color, border-color, color, fill, stroke, opacity, box-shadow, transform",
		"colors", "background-color, border-color, color, fill, stroke",
		"opacity", "opacity",
		"shadow", "box-shadow",
		"transform", "transform",
	))
	cfg.SetNode("transitionTimingFunction", Scale(
		DefaultKey, "cubic-bezier(0.4, 0, 0.2, 1)",
		"linear", "linear",
		"in", "cubic-bezier(0.4, 0, 1, 1)",
		"out", "cubic-bezier(0, 0, 0.2, 1)",
		"in-out", "cubic-bezier(0.4, 0, 0.2, 1)",
	))

	cfg.SetNode("zIndex", Scale("auto", "auto", "0", "0", "10", "10", "20", "20", "30", "30", "40", "40", "50", "50"))
	return cfg
}

// Colors returns the default palette: keywords, black and white, then one
// nested ramp per palette keyed by shade.
func Colors() *Node {
	colors := Scale(
		"inherit", "inherit",
		"current", "currentColor",
		"transparent", "transparent",
		"black", "#000000",
		"white", "#ffffff",
	)
	for _, p := range palettes {
		ramp := NewNode()
		for i, shade := range shades {
			if i < len(p.ramps) {
				ramp.Set(shade, Str(p.ramps[i]))
			}
		}
		colors.SetNode(p.name, ramp)
	}
	return colors
}

// Spacing returns the default spacing scale in rem.
func Spacing() *Node {
	spacing := NewNode().Set("px", Str("1px")).Set("0", Str("0px"))
	for _, step := range spacingSteps {
		f, _ := strconv.ParseFloat(step, 64)
		spacing.Set(step, Str(strconv.FormatFloat(f/4, 'f', -1, 64)+"rem"))
	}
	return spacing
}

func withFractions(n *Node, sixths bool) *Node {
	fractions := []struct{ key, value string }{
		{"1/2", "50%"}, {"1/3", "33.333333%"}, {"2/3", "66.666667%"},
		{"1/4", "25%"}, {"2/4", "50%"}, {"3/4", "75%"},
	}
	for _, f := range fractions {
		n.Set(f.key, Str(f.value))
	}
	if sixths {
		more := []struct{ key, value string }{
			{"1/5", "20%"}, {"2/5", "40%"}, {"3/5", "60%"}, {"4/5", "80%"},
			{"1/6", "16.666667%"}, {"5/6", "83.333333%"},
		}
		for _, f := range more {
			n.Set(f.key, Str(f.value))
		}
	}
	return n.Set("full", Str("100%"))
}

func fontSizes() *Node {
	sizes := []struct{ key, size, lineHeight string }{
		{"xs", "0.75rem", "1rem"},
		{"sm", "0.875rem", "1.25rem"},
		{"base", "1rem", "1.5rem"},
		{"lg", "1.125rem", "1.75rem"},
		{"xl", "1.25rem", "1.75rem"},
		{"2xl", "1.5rem", "2rem"},
		{"3xl", "1.875rem", "2.25rem"},
		{"4xl", "2.25rem", "2.5rem"},
		{"5xl", "3rem", "1"},
		{"6xl", "3.75rem", "1"},
		{"7xl", "4.5rem", "1"},
		{"8xl", "6rem", "1"},
		{"9xl", "8rem", "1"},
	}
	n := NewNode()
	for _, s := range sizes {
		n.Set(s.key, List(Str(s.size), Nested(Scale("lineHeight", s.lineHeight))))
	}
	return n
}

func keyframes() *Node {
	return NewNode().
		SetNode("spin", NewNode().SetNode("to", Scale("transform", "rotate(360deg)"))).
		SetNode("ping", NewNode().SetNode("75%, 100%", Scale("transform", "scale(2)", "opacity", "0"))).
		SetNode("pulse", NewNode().SetNode("50%", Scale("opacity", ".5"))).
		SetNode("bounce", NewNode().
			SetNode("0%, 100%", Scale("transform", "translateY(-25%)", "animationTimingFunction", "cubic-bezier(0.8, 0, 1, 1)")).
			SetNode("50%", Scale("transform", "none", "animationTimingFunction", "cubic-bezier(0, 0, 0.2, 1)")))
}

func gridRepeat(n int) *Node {
	scale := Scale("none", "none")
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		scale.Set(s, Str("repeat("+s+", minmax(0, 1fr))"))
	}
	return scale
}

func gridSpan(n int) *Node {
	scale := Scale("auto", "auto")
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		scale.Set("span-"+s, Str("span "+s+" / span "+s))
	}
	return scale.Set("span-full", Str("1 / -1"))
}

func gridLines(n int) *Node {
	scale := Scale("auto", "auto")
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		scale.Set(s, Str(s))
	}
	return scale
}

func opacities() *Node {
	scale := NewNode()
	for _, step := range []int{0, 5, 10, 20, 25, 30, 40, 50, 60, 70, 75, 80, 90, 95, 100} {
		scale.Set(strconv.Itoa(step), Str(strconv.FormatFloat(float64(step)/100, 'f', -1, 64)))
	}
	return scale
}

func orders() *Node {
	scale := Scale("first", "-9999", "last", "9999", "none", "0")
	for i := 1; i <= 12; i++ {
		s := strconv.Itoa(i)
		scale.Set(s, Str(s))
	}
	return scale
}

func durations() *Node {
	scale := NewNode()
	for _, ms := range []int{75, 100, 150, 200, 300, 500, 700, 1000} {
		s := strconv.Itoa(ms)
		scale.Set(s, Str(s+"ms"))
	}
	return scale
}
