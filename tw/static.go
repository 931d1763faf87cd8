package tw

import (
	"github.com/agiangrant/twin/style"
)

// staticClass is a class whose declarations never depend on the theme.
type staticClass struct {
	name  string
	decls []string // property, value pairs
}

var staticClasses = []staticClass{
	// display
	{"block", []string{"display", "block"}},
	{"inline-block", []string{"display", "inline-block"}},
	{"inline", []string{"display", "inline"}},
	{"flex", []string{"display", "flex"}},
	{"inline-flex", []string{"display", "inline-flex"}},
	{"grid", []string{"display", "grid"}},
	{"inline-grid", []string{"display", "inline-grid"}},
	{"table", []string{"display", "table"}},
	{"table-row", []string{"display", "table-row"}},
	{"table-cell", []string{"display", "table-cell"}},
	{"contents", []string{"display", "contents"}},
	{"flow-root", []string{"display", "flow-root"}},
	{"list-item", []string{"display", "list-item"}},
	{"hidden", []string{"display", "none"}},

	// position
	{"static", []string{"position", "static"}},
	{"fixed", []string{"position", "fixed"}},
	{"absolute", []string{"position", "absolute"}},
	{"relative", []string{"position", "relative"}},
	{"sticky", []string{"position", "sticky"}},

	{"visible", []string{"visibility", "visible"}},
	{"invisible", []string{"visibility", "hidden"}},

	{"isolate", []string{"isolation", "isolate"}},
	{"isolation-auto", []string{"isolation", "auto"}},

	// flexbox
	{"flex-row", []string{"flexDirection", "row"}},
	{"flex-row-reverse", []string{"flexDirection", "row-reverse"}},
	{"flex-col", []string{"flexDirection", "column"}},
	{"flex-col-reverse", []string{"flexDirection", "column-reverse"}},
	{"flex-wrap", []string{"flexWrap", "wrap"}},
	{"flex-wrap-reverse", []string{"flexWrap", "wrap-reverse"}},
	{"flex-nowrap", []string{"flexWrap", "nowrap"}},

	{"items-start", []string{"alignItems", "flex-start"}},
	{"items-end", []string{"alignItems", "flex-end"}},
	{"items-center", []string{"alignItems", "center"}},
	{"items-baseline", []string{"alignItems", "baseline"}},
	{"items-stretch", []string{"alignItems", "stretch"}},

	{"justify-start", []string{"justifyContent", "flex-start"}},
	{"justify-end", []string{"justifyContent", "flex-end"}},
	{"justify-center", []string{"justifyContent", "center"}},
	{"justify-between", []string{"justifyContent", "space-between"}},
	{"justify-around", []string{"justifyContent", "space-around"}},
	{"justify-evenly", []string{"justifyContent", "space-evenly"}},

	{"justify-items-start", []string{"justifyItems", "start"}},
	{"justify-items-end", []string{"justifyItems", "end"}},
	{"justify-items-center", []string{"justifyItems", "center"}},
	{"justify-items-stretch", []string{"justifyItems", "stretch"}},
	{"justify-self-auto", []string{"justifySelf", "auto"}},
	{"justify-self-start", []string{"justifySelf", "start"}},
	{"justify-self-end", []string{"justifySelf", "end"}},
	{"justify-self-center", []string{"justifySelf", "center"}},
	{"justify-self-stretch", []string{"justifySelf", "stretch"}},

	{"content-center", []string{"alignContent", "center"}},
	{"content-start", []string{"alignContent", "flex-start"}},
	{"content-end", []string{"alignContent", "flex-end"}},
	{"content-between", []string{"alignContent", "space-between"}},
	{"content-around", []string{"alignContent", "space-around"}},
	{"content-evenly", []string{"alignContent", "space-evenly"}},

	{"self-auto", []string{"alignSelf", "auto"}},
	{"self-start", []string{"alignSelf", "flex-start"}},
	{"self-end", []string{"alignSelf", "flex-end"}},
	{"self-center", []string{"alignSelf", "center"}},
	{"self-stretch", []string{"alignSelf", "stretch"}},
	{"self-baseline", []string{"alignSelf", "baseline"}},

	{"place-content-center", []string{"placeContent", "center"}},
	{"place-content-start", []string{"placeContent", "start"}},
	{"place-content-end", []string{"placeContent", "end"}},
	{"place-content-between", []string{"placeContent", "space-between"}},
	{"place-content-around", []string{"placeContent", "space-around"}},
	{"place-content-evenly", []string{"placeContent", "space-evenly"}},
	{"place-content-stretch", []string{"placeContent", "stretch"}},
	{"place-items-start", []string{"placeItems", "start"}},
	{"place-items-end", []string{"placeItems", "end"}},
	{"place-items-center", []string{"placeItems", "center"}},
	{"place-items-stretch", []string{"placeItems", "stretch"}},
	{"place-self-auto", []string{"placeSelf", "auto"}},
	{"place-self-start", []string{"placeSelf", "start"}},
	{"place-self-end", []string{"placeSelf", "end"}},
	{"place-self-center", []string{"placeSelf", "center"}},
	{"place-self-stretch", []string{"placeSelf", "stretch"}},

	// grid
	{"grid-flow-row", []string{"gridAutoFlow", "row"}},
	{"grid-flow-col", []string{"gridAutoFlow", "column"}},
	{"grid-flow-row-dense", []string{"gridAutoFlow", "row dense"}},
	{"grid-flow-col-dense", []string{"gridAutoFlow", "column dense"}},

	// floats
	{"float-right", []string{"float", "right"}},
	{"float-left", []string{"float", "left"}},
	{"float-none", []string{"float", "none"}},
	{"clear-left", []string{"clear", "left"}},
	{"clear-right", []string{"clear", "right"}},
	{"clear-both", []string{"clear", "both"}},
	{"clear-none", []string{"clear", "none"}},

	{"object-contain", []string{"objectFit", "contain"}},
	{"object-cover", []string{"objectFit", "cover"}},
	{"object-fill", []string{"objectFit", "fill"}},
	{"object-none", []string{"objectFit", "none"}},
	{"object-scale-down", []string{"objectFit", "scale-down"}},

	{"overflow-auto", []string{"overflow", "auto"}},
	{"overflow-hidden", []string{"overflow", "hidden"}},
	{"overflow-visible", []string{"overflow", "visible"}},
	{"overflow-scroll", []string{"overflow", "scroll"}},
	{"overflow-x-auto", []string{"overflowX", "auto"}},
	{"overflow-y-auto", []string{"overflowY", "auto"}},
	{"overflow-x-hidden", []string{"overflowX", "hidden"}},
	{"overflow-y-hidden", []string{"overflowY", "hidden"}},
	{"overflow-x-visible", []string{"overflowX", "visible"}},
	{"overflow-y-visible", []string{"overflowY", "visible"}},
	{"overflow-x-scroll", []string{"overflowX", "scroll"}},
	{"overflow-y-scroll", []string{"overflowY", "scroll"}},
	{"overscroll-auto", []string{"overscrollBehavior", "auto"}},
	{"overscroll-contain", []string{"overscrollBehavior", "contain"}},
	{"overscroll-none", []string{"overscrollBehavior", "none"}},

	{"box-border", []string{"boxSizing", "border-box"}},
	{"box-content", []string{"boxSizing", "content-box"}},

	// typography
	{"text-left", []string{"textAlign", "left"}},
	{"text-center", []string{"textAlign", "center"}},
	{"text-right", []string{"textAlign", "right"}},
	{"text-justify", []string{"textAlign", "justify"}},
	{"uppercase", []string{"textTransform", "uppercase"}},
	{"lowercase", []string{"textTransform", "lowercase"}},
	{"capitalize", []string{"textTransform", "capitalize"}},
	{"normal-case", []string{"textTransform", "none"}},
	{"italic", []string{"fontStyle", "italic"}},
	{"not-italic", []string{"fontStyle", "normal"}},
	{"underline", []string{"textDecoration", "underline"}},
	{"line-through", []string{"textDecoration", "line-through"}},
	{"no-underline", []string{"textDecoration", "none"}},
	{"antialiased", []string{"WebkitFontSmoothing", "antialiased", "MozOsxFontSmoothing", "grayscale"}},
	{"subpixel-antialiased", []string{"WebkitFontSmoothing", "auto", "MozOsxFontSmoothing", "auto"}},
	{"truncate", []string{"overflow", "hidden", "textOverflow", "ellipsis", "whiteSpace", "nowrap"}},
	{"text-ellipsis", []string{"textOverflow", "ellipsis"}},
	{"text-clip", []string{"textOverflow", "clip"}},
	{"whitespace-normal", []string{"whiteSpace", "normal"}},
	{"whitespace-nowrap", []string{"whiteSpace", "nowrap"}},
	{"whitespace-pre", []string{"whiteSpace", "pre"}},
	{"whitespace-pre-line", []string{"whiteSpace", "pre-line"}},
	{"whitespace-pre-wrap", []string{"whiteSpace", "pre-wrap"}},
	{"break-normal", []string{"overflowWrap", "normal", "wordBreak", "normal"}},
	{"break-words", []string{"overflowWrap", "break-word"}},
	{"break-all", []string{"wordBreak", "break-all"}},
	{"align-baseline", []string{"verticalAlign", "baseline"}},
	{"align-top", []string{"verticalAlign", "top"}},
	{"align-middle", []string{"verticalAlign", "middle"}},
	{"align-bottom", []string{"verticalAlign", "bottom"}},
	{"align-text-top", []string{"verticalAlign", "text-top"}},
	{"align-text-bottom", []string{"verticalAlign", "text-bottom"}},
	{"list-inside", []string{"listStylePosition", "inside"}},
	{"list-outside", []string{"listStylePosition", "outside"}},
	{"ordinal", []string{"fontVariantNumeric", "ordinal"}},
	{"tabular-nums", []string{"fontVariantNumeric", "tabular-nums"}},
	{"normal-nums", []string{"fontVariantNumeric", "normal"}},

	// interactivity
	{"pointer-events-none", []string{"pointerEvents", "none"}},
	{"pointer-events-auto", []string{"pointerEvents", "auto"}},
	{"select-none", []string{"userSelect", "none"}},
	{"select-text", []string{"userSelect", "text"}},
	{"select-all", []string{"userSelect", "all"}},
	{"select-auto", []string{"userSelect", "auto"}},
	{"resize", []string{"resize", "both"}},
	{"resize-none", []string{"resize", "none"}},
	{"resize-x", []string{"resize", "horizontal"}},
	{"resize-y", []string{"resize", "vertical"}},
	{"appearance-none", []string{"appearance", "none"}},
	{"scroll-smooth", []string{"scrollBehavior", "smooth"}},
	{"scroll-auto", []string{"scrollBehavior", "auto"}},

	// accessibility
	{"sr-only", []string{
		"position", "absolute", "width", "1px", "height", "1px", "padding", "0",
		"margin", "-1px", "overflow", "hidden", "clip", "rect(0, 0, 0, 0)",
		"whiteSpace", "nowrap", "borderWidth", "0",
	}},
	{"not-sr-only", []string{
		"position", "static", "width", "auto", "height", "auto", "padding", "0",
		"margin", "0", "overflow", "visible", "clip", "auto", "whiteSpace", "normal",
	}},

	// borders and backgrounds
	{"border-solid", []string{"borderStyle", "solid"}},
	{"border-dashed", []string{"borderStyle", "dashed"}},
	{"border-dotted", []string{"borderStyle", "dotted"}},
	{"border-double", []string{"borderStyle", "double"}},
	{"border-hidden", []string{"borderStyle", "hidden"}},
	{"border-none", []string{"borderStyle", "none"}},
	{"border-collapse", []string{"borderCollapse", "collapse"}},
	{"border-separate", []string{"borderCollapse", "separate"}},
	{"table-auto", []string{"tableLayout", "auto"}},
	{"table-fixed", []string{"tableLayout", "fixed"}},
	{"bg-fixed", []string{"backgroundAttachment", "fixed"}},
	{"bg-local", []string{"backgroundAttachment", "local"}},
	{"bg-scroll", []string{"backgroundAttachment", "scroll"}},
	{"bg-repeat", []string{"backgroundRepeat", "repeat"}},
	{"bg-no-repeat", []string{"backgroundRepeat", "no-repeat"}},
	{"bg-repeat-x", []string{"backgroundRepeat", "repeat-x"}},
	{"bg-repeat-y", []string{"backgroundRepeat", "repeat-y"}},
	{"bg-repeat-round", []string{"backgroundRepeat", "round"}},
	{"bg-repeat-space", []string{"backgroundRepeat", "space"}},
	{"bg-clip-border", []string{"backgroundClip", "border-box"}},
	{"bg-clip-padding", []string{"backgroundClip", "padding-box"}},
	{"bg-clip-content", []string{"backgroundClip", "content-box"}},
	{"bg-clip-text", []string{"WebkitBackgroundClip", "text", "backgroundClip", "text"}},

	// transforms
	{"transform", []string{"transform", transformChain}},
	{"transform-gpu", []string{"transform", "translate3d(var(--tw-translate-x), var(--tw-translate-y), 0)"}},
	{"transform-none", []string{"transform", "none"}},
}

var staticByName = func() map[string][]string {
	m := make(map[string][]string, len(staticClasses))
	for _, s := range staticClasses {
		m[s.name] = s.decls
	}
	return m
}()

// staticStyle returns a fresh tree for a static class.
func staticStyle(name string) (*style.Tree, bool) {
	decls, ok := staticByName[name]
	if !ok {
		return nil, false
	}
	return style.Decl(decls...), true
}
