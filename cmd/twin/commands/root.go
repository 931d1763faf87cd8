// Package commands implements the twin command line.
package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	config   string
	theme    string
	logLevel string
}

// NewRootCmd builds the twin command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "twin",
		Short: "Compile utility class strings into nested style objects",
		Long: `twin compiles utility class strings such as "md:(flex p-4) hover:underline"
against a theme into nested style objects for CSS-in-JS renderers.

Projects can be configured via twin.toml in the project root.
Run 'twin init' to create one with the default configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", ConfigFile, "Project configuration file")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme file, overriding the one in the configuration")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newExplainCmd(flags))
	cmd.AddCommand(newKeysCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads the project configuration named by the flags and creates the
// logger.
func (f *rootFlags) load(cmd *cobra.Command) (*project, *zap.Logger, error) {
	log, err := newLogger(f.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	config, err := LoadConfig(f.config, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, nil, err
	}
	p := &project{config: config, dir: filepath.Dir(f.config)}
	if f.theme != "" {
		abs, err := filepath.Abs(f.theme)
		if err != nil {
			return nil, nil, err
		}
		p.config.Theme.File = abs
		p.themeRequired = true
	}
	log.Debug("Loaded configuration", zap.String("path", f.config))
	return p, log, nil
}
