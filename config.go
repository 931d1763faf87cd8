package twin

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/agiangrant/twin/theme"
	"github.com/agiangrant/twin/tw"
)

// Config configures an Engine.
type Config struct {
	// Theme is the resolved theme. Nil uses theme.Default().
	Theme *theme.Node `validate:"-"`

	// Options are handed to the compiler unchanged.
	Options tw.Options `validate:"-"`

	// Concurrency bounds ResolveAll. Zero uses GOMAXPROCS.
	Concurrency int `validate:"gte=0,lte=1024"`

	// NoCache disables memoization of compiled class strings.
	NoCache bool

	Logger *zap.Logger `validate:"-"`
}

// DefaultConfig returns the default theme and compiler options.
func DefaultConfig() Config {
	return Config{
		Theme:   theme.Default(),
		Options: tw.DefaultOptions(),
	}
}

var validate = validator.New()

// Validate checks the engine settings and the compiler options.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}
	return c.Options.Validate()
}
