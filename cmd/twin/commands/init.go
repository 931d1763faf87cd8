package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create twin.toml and theme.toml with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Project directory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	w := cmd.OutOrStdout()
	configPath := filepath.Join(dir, ConfigFile)

	// Check if twin.toml already exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	config := DefaultConfig()
	if err := SaveConfig(configPath, config); err != nil {
		return err
	}
	fmt.Fprintf(w, "  ✓ Created %s\n", configPath)

	// Create theme.toml if it doesn't exist
	themePath := filepath.Join(dir, config.Theme.File)
	if _, err := os.Stat(themePath); errors.Is(err, fs.ErrNotExist) || force {
		if err := os.WriteFile(themePath, []byte(defaultThemeToml), 0o644); err != nil {
			return fmt.Errorf("failed to create %s: %w", themePath, err)
		}
		fmt.Fprintf(w, "  ✓ Created %s\n", themePath)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, `  twin resolve "p-4 hover:underline"   # compile a class string`)
	fmt.Fprintln(w, "  twin keys colors                     # list the keys of a scale")
	return nil
}

const defaultThemeToml = `# twin theme configuration
#
# Scales under [theme] replace the built-in scale of the same name.
# Scales under [theme.extend] are merged into the built-in ones.

# Responsive breakpoints: a width, {min, max} or {raw}. Uncomment the
# table header too, since an empty table would replace every breakpoint.
# [theme.screens]
# sm = "640px"
# md = "768px"
# tablet = { min = "640px", max = "1023px" }
# print = { raw = "print" }

[theme.extend.colors]
# primary = "#3b82f6"
# brand = { DEFAULT = "#0fa9e6", dark = "#0b7fad" }

[theme.extend.spacing]
# 72 = "18rem"

# Custom classes, keyed by selector
[plugins.components]
# ".btn" = { padding = "0.5rem 1rem", borderRadius = "0.25rem" }
`
