package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/twin/style"
)

type resolveOptions struct {
	format string
	indent int
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <classes>...",
		Short: "Compile class strings and print the style objects",
		Long: `Resolve compiles each argument as one class string. A single argument prints
its style object; several print an object keyed by class string.`,
		Example: `  twin resolve "p-4 hover:underline"
  twin resolve --format yaml "md:(flex items-center)" "text-red-500!"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, log, err := root.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				opts.format = p.config.Output.Format
			}
			if !cmd.Flags().Changed("indent") {
				opts.indent = p.config.Output.Indent
			}

			engine, err := p.engine(log)
			if err != nil {
				return err
			}
			trees, err := engine.ResolveAll(cmd.Context(), args)
			if err != nil {
				for _, e := range multierr.Errors(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n\n", e)
				}
				return fmt.Errorf("%d of %d class strings failed", len(multierr.Errors(err)), len(args))
			}

			out := trees[0]
			if len(args) > 1 {
				out = style.New()
				for i, classes := range args {
					out.SetTree(classes, trees[i])
				}
			}
			return writeTree(cmd.OutOrStdout(), out, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json, yaml)")
	cmd.Flags().IntVar(&opts.indent, "indent", 2, "Indentation width; 0 prints compact JSON")

	return cmd
}

func writeTree(w io.Writer, tree *style.Tree, opts resolveOptions) error {
	switch opts.format {
	case "json":
		var (
			data []byte
			err  error
		)
		if opts.indent > 0 {
			data, err = json.MarshalIndent(tree, "", strings.Repeat(" ", opts.indent))
		} else {
			data, err = json.Marshal(tree)
		}
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		if opts.indent > 0 {
			enc.SetIndent(opts.indent)
		}
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}
