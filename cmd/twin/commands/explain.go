package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/tw"
)

func newExplainCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <class>",
		Short: "Show which generator a single class resolves through",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, log, err := root.load(cmd)
			if err != nil {
				return err
			}
			engine, err := p.engine(log)
			if err != nil {
				return err
			}

			gen, err := engine.Compiler().Explain(args[0])
			if err != nil {
				return err
			}
			source, decls := describe(gen)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "class:     %s\n", args[0])
			fmt.Fprintf(w, "generator: %s\n", gen.Kind())
			fmt.Fprintf(w, "source:    %s\n", source)
			fmt.Fprintf(w, "style:     %s\n", decls)
			return nil
		},
	}
}

func describe(gen tw.Generator) (string, *style.Tree) {
	switch g := gen.(type) {
	case tw.StaticGenerator:
		return g.Class, g.Style
	case tw.DynamicGenerator:
		return g.Prefix, g.Style
	case tw.CorePluginGenerator:
		return g.Plugin, g.Style
	case tw.UserPluginGenerator:
		return g.Layer.String() + " ." + g.Class, g.Style
	default:
		return "", style.New()
	}
}
