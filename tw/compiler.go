// Package tw compiles utility class strings into nested style trees.
//
// A class string such as "md:hover:(flex p-4) -mt-2 text-red-500!" is split
// into tokens, each token's variants become nested selector or media keys,
// and its base class is resolved against the theme. The per-token trees are
// deep-merged in order, so later tokens win.
//
//	c, _ := tw.New(theme.Default(), tw.DefaultOptions())
//	tree, err := c.Resolve("p-4 hover:underline")
//	// {"padding": "1rem", "&:hover": {"textDecoration": "underline"}}
package tw

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/theme"
	"github.com/agiangrant/twin/userplugin"
)

// Compiler resolves class strings against one theme and option set. It is
// safe for concurrent use.
type Compiler struct {
	cfg     *theme.Node
	opts    Options
	log     *zap.Logger
	screens []string
	tables  *userplugin.Tables

	candidatesOnce sync.Once
	candidates     []string
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger. Per-class tracing is logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(c *Compiler) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a compiler. A nil cfg uses theme.Default(). The theme must not
// be modified while the compiler is in use.
func New(cfg *theme.Node, opts Options, options ...Option) (*Compiler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = theme.Default()
	}

	c := &Compiler{cfg: cfg, opts: opts, log: zap.NewNop()}
	for _, o := range options {
		o(c)
	}
	c.log = c.log.Named("tw")
	c.screens = theme.Screens(cfg)

	tables, err := c.pluginTables()
	if err != nil {
		return nil, fmt.Errorf("user plugins: %w", err)
	}
	c.tables = tables
	return c, nil
}

// pluginTables flattens the user plugin data, through the shared cache when
// one is configured.
func (c *Compiler) pluginTables() (*userplugin.Tables, error) {
	data := c.opts.UserPlugins
	if data.Empty() {
		return nil, nil
	}
	if c.opts.PluginCache != nil {
		return c.opts.PluginCache.Tables(theme.Hash(c.cfg), data)
	}
	return userplugin.Flatten(data)
}

// Resolve compiles a class string. The first failing token aborts the
// compile with a *CompileError.
func (c *Compiler) Resolve(classes string) (*style.Tree, error) {
	out := style.New()
	for _, tok := range ParseClasses(classes, c.screens) {
		tree, err := c.resolveToken(tok)
		if err != nil {
			c.log.Debug("Class failed", zap.String("class", tok.Raw), zap.Error(err))
			return nil, err
		}
		out.Merge(tree)
	}
	return out, nil
}

func (c *Compiler) resolveToken(tok ClassToken) (*style.Tree, error) {
	path, err := c.variantPath(tok)
	if err != nil {
		return nil, err
	}
	gen, err := c.Classify(tok)
	if err != nil {
		return nil, err
	}
	c.log.Debug("Resolved class",
		zap.String("class", tok.Raw),
		zap.Stringer("generator", gen.Kind()),
		zap.Strings("path", path))
	return c.generate(gen, tok).Nest(path...), nil
}

// Explain reports the generator a single class resolves through.
func (c *Compiler) Explain(class string) (Generator, error) {
	tokens := ParseClasses(class, c.screens)
	if len(tokens) != 1 {
		return nil, fmt.Errorf("expected one class, got %d", len(tokens))
	}
	if _, err := c.variantPath(tokens[0]); err != nil {
		return nil, err
	}
	return c.Classify(tokens[0])
}

// BaseStyles returns the base layer of the user plugins, keyed by selector.
func (c *Compiler) BaseStyles() *style.Tree {
	return c.tables.Base().Clone()
}

// Screens lists the configured breakpoints in order.
func (c *Compiler) Screens() []string {
	return append([]string(nil), c.screens...)
}

// Resolve compiles classes with a one-off compiler.
func Resolve(classes string, cfg *theme.Node, opts Options) (*style.Tree, error) {
	c, err := New(cfg, opts)
	if err != nil {
		return nil, err
	}
	return c.Resolve(classes)
}
