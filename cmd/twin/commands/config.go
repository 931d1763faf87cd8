package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/agiangrant/twin"
	"github.com/agiangrant/twin/theme"
	"github.com/agiangrant/twin/tw"
	"github.com/agiangrant/twin/userplugin"
)

// ConfigFile is the project configuration file looked up by default.
const ConfigFile = "twin.toml"

// ProjectConfig represents the twin.toml configuration file
type ProjectConfig struct {
	Theme    ThemeConfig    `toml:"theme"`
	Compiler CompilerConfig `toml:"compiler"`
	Plugins  PluginsConfig  `toml:"plugins"`
	Output   OutputConfig   `toml:"output"`
}

type ThemeConfig struct {
	// Theme file (toml, yaml or json), relative to the config file
	File string `toml:"file"`
}

type CompilerConfig struct {
	// "tokens" marks only classes written with "!", "all" marks everything
	Important      string `toml:"important" validate:"oneof=tokens all"`
	DarkMode       string `toml:"dark_mode" validate:"oneof=media class"`
	LightMode      string `toml:"light_mode" validate:"oneof=media class"`
	SassyPseudo    bool   `toml:"sassy_pseudo"`
	ColorVariables bool   `toml:"color_variables"`
}

type PluginsConfig struct {
	// Plugin stylesheets, read in order
	CSS []string `toml:"css" validate:"dive,required"`
}

type OutputConfig struct {
	Format string `toml:"format" validate:"oneof=json yaml"`
	Indent int    `toml:"indent" validate:"gte=0,lte=8"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Theme: ThemeConfig{File: "theme.toml"},
		Compiler: CompilerConfig{
			Important:      "tokens",
			DarkMode:       string(tw.ModeMedia),
			LightMode:      string(tw.ModeMedia),
			SassyPseudo:    true,
			ColorVariables: true,
		},
		Output: OutputConfig{Format: "json", Indent: 2},
	}
}

var validate = validator.New()

// Validate checks field values against their tags.
func (c ProjectConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid project config: %w", err)
	}
	return nil
}

// Options maps the compiler section onto compiler options.
func (c ProjectConfig) Options() tw.Options {
	opts := tw.Options{
		DarkMode:              tw.Mode(c.Compiler.DarkMode),
		LightMode:             tw.Mode(c.Compiler.LightMode),
		SassyPseudo:           c.Compiler.SassyPseudo,
		DisableColorVariables: !c.Compiler.ColorVariables,
	}
	if c.Compiler.Important == "all" {
		opts.ImportantStrategy = tw.ImportantAll
	}
	return opts
}

// LoadConfig loads the project configuration from path. A missing file yields
// the default config unless required is set.
func LoadConfig(path string, required bool) (ProjectConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		return config, nil
	case err != nil:
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// project is a loaded configuration plus where its relative paths point.
type project struct {
	config ProjectConfig
	dir    string

	// themeRequired is set when the theme file was named explicitly, so a
	// missing file is an error rather than a fallback to the defaults.
	themeRequired bool
}

func (p *project) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.dir, name)
}

// loadTheme returns the effective theme and the plugin rules declared in the
// theme file.
func (p *project) loadTheme(log *zap.Logger) (*theme.Node, *userplugin.Data, error) {
	data := &userplugin.Data{}
	if p.config.Theme.File == "" {
		return theme.Default(), data, nil
	}

	path := p.path(p.config.Theme.File)
	doc, err := theme.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !p.themeRequired {
		log.Debug("No theme file, using defaults", zap.String("path", path))
		return theme.Default(), data, nil
	}
	if err != nil {
		return nil, nil, err
	}
	log.Debug("Loaded theme", zap.String("path", path))
	return theme.Resolve(theme.Default(), doc), data.Merge(userplugin.FromTheme(doc.Plugins)), nil
}

// loadPlugins reads every plugin stylesheet. All unreadable files are
// reported, not just the first.
func (p *project) loadPlugins(log *zap.Logger) (*userplugin.Data, error) {
	reader := userplugin.NewCSSReader(log)
	data := &userplugin.Data{}

	var errs error
	for _, name := range p.config.Plugins.CSS {
		path := p.path(name)
		f, err := os.Open(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to open plugin %s: %w", path, err))
			continue
		}
		d, err := reader.Read(f, userplugin.LayerUtilities, path)
		errs = multierr.Append(errs, f.Close())
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		data.Merge(d)
	}
	return data, errs
}

// engine builds the engine the project describes.
func (p *project) engine(log *zap.Logger) (*twin.Engine, error) {
	cfg, plugins, err := p.loadTheme(log)
	if err != nil {
		return nil, err
	}
	css, err := p.loadPlugins(log)
	if err != nil {
		return nil, err
	}

	opts := p.config.Options()
	opts.UserPlugins = plugins.Merge(css)
	return twin.New(twin.Config{Theme: cfg, Options: opts, Logger: log})
}
