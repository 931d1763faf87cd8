// Package twin compiles utility class strings into nested style trees for
// CSS-in-JS renderers.
//
// The compiler itself lives in package tw. An Engine wraps one compiler with
// a memo of compiled class strings and a bounded concurrent batch API:
//
//	e, _ := twin.New(twin.DefaultConfig())
//	tree, err := e.Resolve("md:(flex items-center) p-4 hover:underline")
package twin

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/twin/style"
	"github.com/agiangrant/twin/tw"
)

// Engine resolves class strings against one theme. It is safe for concurrent
// use.
type Engine struct {
	compiler    *tw.Compiler
	log         *zap.Logger
	concurrency int
	cache       *styleCache
}

// New creates an engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	compiler, err := tw.New(cfg.Theme, cfg.Options, tw.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize compiler: %w", err)
	}

	e := &Engine{
		compiler:    compiler,
		log:         log.Named("engine"),
		concurrency: cfg.Concurrency,
	}
	if e.concurrency == 0 {
		e.concurrency = runtime.GOMAXPROCS(0)
	}
	if !cfg.NoCache {
		e.cache = newStyleCache()
	}
	return e, nil
}

// Compiler returns the underlying compiler.
func (e *Engine) Compiler() *tw.Compiler {
	return e.compiler
}

// Resolve compiles a class string. Repeated strings are served from the
// memo; the returned tree is always the caller's to modify.
func (e *Engine) Resolve(classes string) (*style.Tree, error) {
	if e.cache == nil {
		return e.compiler.Resolve(classes)
	}
	key := cacheKey(classes)
	tree, hit, err := e.cache.resolve(key, func() (*style.Tree, error) {
		return e.compiler.Resolve(key)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		e.log.Debug("Cache hit", zap.String("classes", key))
	}
	return tree, nil
}

// ResolveError is one failed entry of a batch.
type ResolveError struct {
	Index   int
	Classes string
	Err     error
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("#%d %q: %v", e.Index, e.Classes, e.Err)
}

func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResolveAll compiles every class string with bounded concurrency. The
// result slice lines up with the input; a failed entry is nil. Every failure
// is reported: the returned error combines one *ResolveError per failed
// entry (split it with multierr.Errors). Cancelling ctx stops the batch and
// returns ctx's error.
func (e *Engine) ResolveAll(ctx context.Context, batch []string) ([]*style.Tree, error) {
	out := make([]*style.Tree, len(batch))
	errs := make([]error, len(batch))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, classes := range batch {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := e.Resolve(classes)
			if err != nil {
				errs[i] = &ResolveError{Index: i, Classes: classes, Err: err}
				return nil
			}
			out[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	err := multierr.Combine(errs...)
	if err != nil {
		e.log.Debug("Batch finished with errors",
			zap.Int("total", len(batch)),
			zap.Int("failed", len(multierr.Errors(err))))
	}
	return out, err
}

// ClearCache drops every memoized tree. Useful for testing or hot reload.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.clear()
	}
}

// CacheSize returns the number of memoized class strings.
func (e *Engine) CacheSize() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.size()
}
