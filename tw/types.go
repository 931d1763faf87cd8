package tw

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agiangrant/twin/userplugin"
)

// ClassToken is one parsed class from a class string.
//
//	"md:hover:-mt-4!" → Variants ["md", "hover"], Negative, Important, BaseName "mt-4"
type ClassToken struct {
	Raw       string   // token as written, after group expansion
	Variants  []string // outermost first
	Negative  bool
	Important bool
	BaseName  string // class without variants or modifiers
}

// Modifiers renders the non-base parts of the token, for messages.
func (t ClassToken) Modifiers() string {
	var sb strings.Builder
	for _, v := range t.Variants {
		sb.WriteString(v)
		sb.WriteByte(':')
	}
	if t.Negative {
		sb.WriteByte('-')
	}
	return sb.String()
}

// ImportantStrategy controls where !important is applied.
type ImportantStrategy int

const (
	// ImportantTokens marks only tokens carrying a "!" modifier.
	ImportantTokens ImportantStrategy = iota
	// ImportantAll marks every declaration.
	ImportantAll
)

// Mode is how dark and light variants are expressed.
type Mode string

const (
	ModeMedia Mode = "media" // @media (prefers-color-scheme: ...)
	ModeClass Mode = "class" // .dark & / .light &
)

// Options are the compile-time switches.
type Options struct {
	ImportantStrategy ImportantStrategy `validate:"gte=0,lte=1"`
	DarkMode          Mode              `validate:"omitempty,oneof=media class"`
	LightMode         Mode              `validate:"omitempty,oneof=media class"`

	// SassyPseudo writes pseudo selectors as "&:hover" instead of ":hover".
	SassyPseudo bool

	// DisableColorVariables emits plain color values instead of an opacity
	// custom property plus rgba(..., var(--tw-*-opacity)).
	DisableColorVariables bool

	UserPlugins *userplugin.Data  `validate:"-"`
	PluginCache *userplugin.Cache `validate:"-"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ImportantStrategy: ImportantTokens,
		DarkMode:          ModeMedia,
		LightMode:         ModeMedia,
		SassyPseudo:       true,
	}
}

var validate = validator.New()

// Validate checks the option values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func (o Options) darkMode() Mode {
	if o.DarkMode == "" {
		return ModeMedia
	}
	return o.DarkMode
}

func (o Options) lightMode() Mode {
	if o.LightMode == "" {
		return ModeMedia
	}
	return o.LightMode
}
