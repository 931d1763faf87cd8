package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

func newKeysCmd(root *rootFlags) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "keys [scale]",
		Short: "List theme scales, or the keys of one scale",
		Long: `Keys lists the scale names of the effective theme. Given a scale, it lists
that scale's keys in natural order, joining nested keys with "-" the way
classes spell them (colors → red-500).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, log, err := root.load(cmd)
			if err != nil {
				return err
			}
			cfg, _, err := p.loadTheme(log)
			if err != nil {
				return err
			}

			keys := cfg.Keys()
			if len(args) == 1 {
				scale, ok := cfg.Child(args[0])
				if !ok {
					return fmt.Errorf("theme has no scale %q", args[0])
				}
				keys = scale.Flatten(depth)
			}
			slices.SortFunc(keys, func(a, b string) int {
				switch {
				case natural.Less(a, b):
					return -1
				case natural.Less(b, a):
					return 1
				default:
					return 0
				}
			})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(keys, "\n"))
			return err
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 2, "How many nesting levels to expand")
	return cmd
}
