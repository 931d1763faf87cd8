package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
)

type treeCase struct {
	name     string
	input    string
	validate func(*testing.T, map[string]string)
}

func runTreeCases(t *testing.T, tests []treeCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Resolve(tt.input, theme.Default(), DefaultOptions())
			require.NoError(t, err)
			tt.validate(t, tree.Leaves())
		})
	}
}

func TestTransforms(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "scale",
			input: "scale-110 hover:scale-125",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "1.1", s["--tw-scale-x"])
				assert.Equal(t, "1.1", s["--tw-scale-y"])
				assert.Equal(t, "1.25", s["&:hover > --tw-scale-x"])
				assert.Equal(t, transformChain, s["transform"])
			},
		},
		{
			name:  "rotate",
			input: "rotate-45 -rotate-90",
			validate: func(t *testing.T, s map[string]string) {
				// -rotate-90 overrides rotate-45
				assert.Equal(t, "-90deg", s["--tw-rotate"])
			},
		},
		{
			name:  "translate",
			input: "translate-x-4 translate-y-1/2",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "1rem", s["--tw-translate-x"])
				assert.Equal(t, "50%", s["--tw-translate-y"])
			},
		},
		{
			name:  "negative translate",
			input: "-translate-x-2 -translate-y-4",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "-0.5rem", s["--tw-translate-x"])
				assert.Equal(t, "-1rem", s["--tw-translate-y"])
			},
		},
		{
			name:  "transform class composes the same chain",
			input: "transform origin-top-right",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, transformChain, s["transform"])
				assert.Equal(t, "top right", s["transformOrigin"])
			},
		},
	})
}

func TestTransitions(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "default transition",
			input: "transition",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "background-color, border-color, color, fill, stroke, opacity, box-shadow, transform", s["transitionProperty"])
				assert.Equal(t, "cubic-bezier(0.4, 0, 0.2, 1)", s["transitionTimingFunction"])
				assert.Equal(t, "150ms", s["transitionDuration"])
			},
		},
		{
			name:  "later duration and easing win",
			input: "transition-colors duration-300 ease-in-out delay-75",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "background-color, border-color, color, fill, stroke", s["transitionProperty"])
				assert.Equal(t, "300ms", s["transitionDuration"])
				assert.Equal(t, "cubic-bezier(0.4, 0, 0.2, 1)", s["transitionTimingFunction"])
				assert.Equal(t, "75ms", s["transitionDelay"])
			},
		},
		{
			name:  "none sets only the property",
			input: "transition-none",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, map[string]string{"transitionProperty": "none"}, s)
			},
		},
		{
			name:  "animation brings its keyframes",
			input: "animate-spin",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "spin 1s linear infinite", s["animation"])
				assert.Equal(t, "rotate(360deg)", s["@keyframes spin > to > transform"])
			},
		},
	})
}

func TestShadows(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "default shadow",
			input: "shadow",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)", s["--tw-shadow"])
				assert.Equal(t, shadowStack, s["boxShadow"])
			},
		},
		{
			name:  "shadow none",
			input: "shadow-none",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "0 0 #0000", s["--tw-shadow"])
			},
		},
		{
			name:  "ring",
			input: "ring",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "var(--tw-ring-inset) 0 0 0 calc(3px + var(--tw-ring-offset-width)) var(--tw-ring-color)", s["--tw-ring-shadow"])
				assert.Contains(t, s["boxShadow"], "var(--tw-ring-shadow)")
			},
		},
		{
			name:  "ring color and offset",
			input: "ring-2 ring-blue-500 ring-offset-2 ring-offset-white ring-inset",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(59, 130, 246, var(--tw-ring-opacity))", s["--tw-ring-color"])
				assert.Equal(t, "1", s["--tw-ring-opacity"])
				assert.Equal(t, "2px", s["--tw-ring-offset-width"])
				assert.Equal(t, "#ffffff", s["--tw-ring-offset-color"])
				assert.Equal(t, "inset", s["--tw-ring-inset"])
			},
		},
		{
			name:  "outline none",
			input: "outline-none",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "2px solid transparent", s["outline"])
				assert.Equal(t, "2px", s["outlineOffset"])
			},
		},
	})
}

func TestGrid(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "template columns",
			input: "grid grid-cols-3 gap-4",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "grid", s["display"])
				assert.Equal(t, "repeat(3, minmax(0, 1fr))", s["gridTemplateColumns"])
				assert.Equal(t, "1rem", s["gap"])
			},
		},
		{
			name:  "spans and lines",
			input: "col-span-2 col-start-2 row-span-full",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "span 2 / span 2", s["gridColumn"])
				assert.Equal(t, "2", s["gridColumnStart"])
				assert.Equal(t, "1 / -1", s["gridRow"])
			},
		},
		{
			name:  "axis gaps",
			input: "gap-x-2 gap-y-0",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "0.5rem", s["columnGap"])
				assert.Equal(t, "0px", s["rowGap"])
			},
		},
	})
}

func TestFlexUtilities(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "direction and alignment",
			input: "flex flex-col items-center justify-between",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "flex", s["display"])
				assert.Equal(t, "column", s["flexDirection"])
				assert.Equal(t, "center", s["alignItems"])
				assert.Equal(t, "space-between", s["justifyContent"])
			},
		},
		{
			name:  "grow and shrink",
			input: "flex-1 grow shrink-0 basis-1/2",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "1 1 0%", s["flex"])
				assert.Equal(t, "1", s["flexGrow"])
				assert.Equal(t, "0", s["flexShrink"])
				assert.Equal(t, "50%", s["flexBasis"])
			},
		},
		{
			name:  "order",
			input: "-order-1 order-last",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "9999", s["order"])
			},
		},
		{
			name:  "space between children",
			input: "-space-x-4",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "calc(-1rem * var(--tw-space-x-reverse))", s[childSelector+" > marginRight"])
				assert.Equal(t, "calc(-1rem * calc(1 - var(--tw-space-x-reverse)))", s[childSelector+" > marginLeft"])
			},
		},
	})
}

func TestTypography(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "size carries line height",
			input: "text-sm",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "0.875rem", s["fontSize"])
				assert.Equal(t, "1.25rem", s["lineHeight"])
			},
		},
		{
			name:  "weight family and tracking",
			input: "font-bold font-mono -tracking-wide leading-tight",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "700", s["fontWeight"])
				assert.Contains(t, s["fontFamily"], "ui-monospace, SFMono-Regular")
				assert.Equal(t, "-0.025em", s["letterSpacing"])
				assert.Equal(t, "1.25", s["lineHeight"])
			},
		},
		{
			name:  "text color with opacity",
			input: "text-red-500 text-opacity-50",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(239, 68, 68, var(--tw-text-opacity))", s["color"])
				assert.Equal(t, "0.5", s["--tw-text-opacity"])
			},
		},
		{
			name:  "current color",
			input: "text-current",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, map[string]string{"color": "currentColor"}, s)
			},
		},
		{
			name:  "static text utilities",
			input: "uppercase italic truncate",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "uppercase", s["textTransform"])
				assert.Equal(t, "italic", s["fontStyle"])
				assert.Equal(t, "ellipsis", s["textOverflow"])
			},
		},
		{
			name:  "placeholder color",
			input: "placeholder-red-500",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(239, 68, 68, var(--tw-placeholder-opacity))", s["&::placeholder > color"])
			},
		},
	})
}

func TestPositioning(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "inset",
			input: "absolute inset-0",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "absolute", s["position"])
				for _, side := range []string{"top", "right", "bottom", "left"} {
					assert.Equal(t, "0px", s[side])
				}
			},
		},
		{
			name:  "negative offsets",
			input: "-top-1/2 -left-px",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "-50%", s["top"])
				assert.Equal(t, "-1px", s["left"])
			},
		},
		{
			name:  "z index",
			input: "-z-10",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "-10", s["zIndex"])
			},
		},
		{
			name:  "negative zero stays unsigned",
			input: "-m-0",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "0px", s["margin"])
			},
		},
	})
}

func TestBorderWidths(t *testing.T) {
	runTreeCases(t, []treeCase{
		{
			name:  "default width",
			input: "border",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, map[string]string{"borderWidth": "1px"}, s)
			},
		},
		{
			name:  "sides",
			input: "border-t-2 border-x-4",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "2px", s["borderTopWidth"])
				assert.Equal(t, "4px", s["borderLeftWidth"])
				assert.Equal(t, "4px", s["borderRightWidth"])
			},
		},
		{
			name:  "color and style",
			input: "border-red-500 border-dashed",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(239, 68, 68, var(--tw-border-opacity))", s["borderColor"])
				assert.Equal(t, "dashed", s["borderStyle"])
			},
		},
		{
			name:  "side color",
			input: "border-b-black",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "rgba(0, 0, 0, var(--tw-border-opacity))", s["borderBottomColor"])
			},
		},
		{
			name:  "divide",
			input: "divide-y divide-dashed",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "calc(1px * var(--tw-divide-y-reverse))", s[childSelector+" > borderBottomWidth"])
				assert.Equal(t, "dashed", s[childSelector+" > borderStyle"])
			},
		},
		{
			name:  "rounded",
			input: "rounded rounded-t-lg",
			validate: func(t *testing.T, s map[string]string) {
				assert.Equal(t, "0.25rem", s["borderRadius"])
				assert.Equal(t, "0.5rem", s["borderTopLeftRadius"])
				assert.Equal(t, "0.5rem", s["borderTopRightRadius"])
			},
		},
	})
}

func TestColors(t *testing.T) {
	t.Run("opacity variable", func(t *testing.T) {
		tree := mustResolve(t, "bg-red-500")
		assert.Equal(t, `{"--tw-bg-opacity":"1","backgroundColor":"rgba(239, 68, 68, var(--tw-bg-opacity))"}`, tree.String())
	})

	t.Run("variables disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.DisableColorVariables = true
		tree, err := Resolve("bg-red-500", theme.Default(), opts)
		require.NoError(t, err)
		assert.Equal(t, `{"backgroundColor":"#ef4444"}`, tree.String())
	})

	t.Run("keywords pass through", func(t *testing.T) {
		tree := mustResolve(t, "bg-transparent")
		assert.Equal(t, `{"backgroundColor":"transparent"}`, tree.String())
	})

	t.Run("derived color", func(t *testing.T) {
		cfg := theme.Default()
		colors, _ := cfg.Child("colors")
		colors.Set("brand", theme.Derived(func(a theme.DeriveArgs) string {
			return "rgba(1, 2, 3, " + a.OpacityValue + ")"
		}))

		tree, err := Resolve("bg-brand from-brand", cfg, DefaultOptions())
		require.NoError(t, err)
		s := tree.Leaves()
		assert.Equal(t, "1", s["--tw-bg-opacity"])
		assert.Equal(t, "rgba(1, 2, 3, var(--tw-bg-opacity))", s["backgroundColor"])
		assert.Equal(t, "rgba(1, 2, 3, 1)", s["--tw-gradient-from"])
		assert.Equal(t, "var(--tw-gradient-from), var(--tw-gradient-to, rgba(1, 2, 3, 0))", s["--tw-gradient-stops"])
	})

	t.Run("gradient stops", func(t *testing.T) {
		s := mustResolve(t, "bg-gradient-to-r from-red-500 via-white to-blue-500").Leaves()
		assert.Equal(t, "linear-gradient(to right, var(--tw-gradient-stops))", s["backgroundImage"])
		assert.Equal(t, "var(--tw-gradient-from), #ffffff, var(--tw-gradient-to, rgba(255, 255, 255, 0))", s["--tw-gradient-stops"])
		assert.Equal(t, "#3b82f6", s["--tw-gradient-to"])
	})

	t.Run("important skips custom properties", func(t *testing.T) {
		s := mustResolve(t, "bg-red-500!").Leaves()
		assert.Equal(t, "1", s["--tw-bg-opacity"])
		assert.Equal(t, "rgba(239, 68, 68, var(--tw-bg-opacity)) !important", s["backgroundColor"])
	})
}

func TestContainer(t *testing.T) {
	tree := mustResolve(t, "container")
	assert.Equal(t, []string{
		"width",
		"@media (min-width: 640px)",
		"@media (min-width: 768px)",
		"@media (min-width: 1024px)",
		"@media (min-width: 1280px)",
		"@media (min-width: 1536px)",
	}, tree.Keys())

	cfg := theme.Default()
	cfg.SetNode("container", theme.NewNode().
		Set("center", theme.Str("true")).
		SetNode("padding", theme.Scale(theme.DefaultKey, "1rem", "lg", "2rem")).
		SetNode("screens", theme.Scale("sm", "600px", "lg", "1000px")))
	tree, err := Resolve("container", cfg, DefaultOptions())
	require.NoError(t, err)
	s := tree.Leaves()
	assert.Equal(t, "auto", s["marginLeft"])
	assert.Equal(t, "1rem", s["paddingLeft"])
	assert.Equal(t, "600px", s["@media (min-width: 600px) > maxWidth"])
	assert.Equal(t, "2rem", s["@media (min-width: 1000px) > paddingRight"])
	_, ok := s["@media (min-width: 600px) > paddingLeft"]
	assert.False(t, ok)
}

func TestRealWorldExamples(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, *style.Tree)
	}{
		{
			name:  "button",
			input: "px-4 py-2 bg-blue-500 text-white rounded hover:(bg-red-500 underline) focus:outline-none",
			validate: func(t *testing.T, tree *style.Tree) {
				s := tree.Leaves()
				assert.Equal(t, "1rem", s["paddingLeft"])
				assert.Equal(t, "0.5rem", s["paddingBottom"])
				assert.Equal(t, "rgba(239, 68, 68, var(--tw-bg-opacity))", s["&:hover > backgroundColor"])
				assert.Equal(t, "underline", s["&:hover > textDecoration"])
				assert.Equal(t, "2px solid transparent", s["&:focus > outline"])
			},
		},
		{
			name:  "responsive card",
			input: "lg:(p-8 shadow-lg) p-4 md:p-6 w-full max-w-md",
			validate: func(t *testing.T, tree *style.Tree) {
				assert.Equal(t, []string{
					"padding", "width", "maxWidth",
					"@media (min-width: 768px)",
					"@media (min-width: 1024px)",
				}, tree.Keys())
				s := tree.Leaves()
				assert.Equal(t, "2rem", s["@media (min-width: 1024px) > padding"])
				assert.Equal(t, "28rem", s["maxWidth"])
			},
		},
		{
			name:  "dark mode toggle",
			input: "bg-white dark:bg-black dark:hover:text-white",
			validate: func(t *testing.T, tree *style.Tree) {
				s := tree.Leaves()
				dark := "@media (prefers-color-scheme: dark)"
				assert.Equal(t, "rgba(0, 0, 0, var(--tw-bg-opacity))", s[dark+" > backgroundColor"])
				assert.Equal(t, "rgba(255, 255, 255, var(--tw-text-opacity))", s[dark+" > &:hover > color"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, mustResolve(t, tt.input))
		})
	}
}
