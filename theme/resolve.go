package theme

// Resolve builds the effective theme: base, then every scale in doc.Theme
// replacing the base scale of the same name, then doc.Extend deep-merged on
// top. base is not modified.
//
// This mirrors how theme.toml was always layered over the built-in tables:
// defaults first, user values win.
func Resolve(base *Node, doc *Document) *Node {
	out := base.Clone()
	if out == nil {
		out = NewNode()
	}
	if doc == nil {
		return out
	}

	for k, v := range doc.Theme.All() {
		out.Set(k, v.Clone())
	}

	for k, v := range doc.Extend.All() {
		if v.IsNode() {
			if dst, ok := out.Child(k); ok {
				dst.Merge(v.Node())
				continue
			}
		}
		out.Set(k, v.Clone())
	}
	return out
}

// Screens returns the breakpoint names in configured order.
func Screens(cfg *Node) []string {
	screens, ok := cfg.Child("screens")
	if !ok {
		return nil
	}
	return screens.Keys()
}
