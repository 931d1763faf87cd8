package twin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/twin/tw"
)

func newEngine(t *testing.T, configure ...func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Logger = zaptest.NewLogger(t)
	for _, fn := range configure {
		fn(&cfg)
	}
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*Config)
		wantErr   bool
	}{
		{"defaults", func(*Config) {}, false},
		{"nil theme", func(c *Config) { c.Theme = nil }, false},
		{"bounded concurrency", func(c *Config) { c.Concurrency = 4 }, false},
		{"negative concurrency", func(c *Config) { c.Concurrency = -1 }, true},
		{"excessive concurrency", func(c *Config) { c.Concurrency = 4096 }, true},
		{"bad dark mode", func(c *Config) { c.Options.DarkMode = "sometimes" }, true},
		{"bad important strategy", func(c *Config) { c.Options.ImportantStrategy = 7 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.configure(&cfg)
			_, err := New(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEngineResolve(t *testing.T) {
	e := newEngine(t)

	tree, err := e.Resolve("p-4 hover:underline")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"padding":                 "1rem",
		"&:hover > textDecoration": "underline",
	}, tree.Leaves())

	_, err = e.Resolve("fle")
	assert.ErrorIs(t, err, tw.ErrClassNotFound)
}

func TestEngineCache(t *testing.T) {
	t.Run("repeated strings are memoized", func(t *testing.T) {
		e := newEngine(t)

		first, err := e.Resolve("p-4 flex")
		require.NoError(t, err)
		assert.Equal(t, 1, e.CacheSize())

		second, err := e.Resolve("  p-4   flex ")
		require.NoError(t, err)
		assert.Equal(t, 1, e.CacheSize(), "whitespace differences share an entry")
		assert.Equal(t, first.Leaves(), second.Leaves())
	})

	t.Run("callers get independent trees", func(t *testing.T) {
		e := newEngine(t)

		first, err := e.Resolve("p-4")
		require.NoError(t, err)
		first.Set("padding", "0")

		second, err := e.Resolve("p-4")
		require.NoError(t, err)
		assert.Equal(t, "1rem", second.Leaves()["padding"])
	})

	t.Run("failures are not memoized", func(t *testing.T) {
		e := newEngine(t)

		_, err := e.Resolve("nope-nope")
		require.Error(t, err)
		assert.Equal(t, 0, e.CacheSize())
	})

	t.Run("clear", func(t *testing.T) {
		e := newEngine(t)

		for _, classes := range []string{"flex", "block", "p-4"} {
			_, err := e.Resolve(classes)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, e.CacheSize())
		e.ClearCache()
		assert.Equal(t, 0, e.CacheSize())
	})

	t.Run("disabled", func(t *testing.T) {
		e := newEngine(t, func(c *Config) { c.NoCache = true })

		_, err := e.Resolve("flex")
		require.NoError(t, err)
		assert.Equal(t, 0, e.CacheSize())
		e.ClearCache()
	})
}

func TestEngineConcurrentResolve(t *testing.T) {
	e := newEngine(t)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			classes := fmt.Sprintf("p-%d md:flex", i%4)
			tree, err := e.Resolve(classes)
			assert.NoError(t, err)
			assert.Contains(t, tree.Leaves(), "padding")
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, e.CacheSize())
}

func TestResolveAll(t *testing.T) {
	e := newEngine(t, func(c *Config) { c.Concurrency = 2 })

	t.Run("results line up with the batch", func(t *testing.T) {
		batch := []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6"}
		trees, err := e.ResolveAll(context.Background(), batch)
		require.NoError(t, err)
		require.Len(t, trees, len(batch))
		for i, want := range []string{"0.25rem", "0.5rem", "0.75rem", "1rem", "1.25rem", "1.5rem"} {
			assert.Equal(t, want, trees[i].Leaves()["padding"], batch[i])
		}
	})

	t.Run("every failure is reported", func(t *testing.T) {
		batch := []string{"flex", "fle", "p-4", "hovr:flex"}
		trees, err := e.ResolveAll(context.Background(), batch)
		require.Error(t, err)
		require.Len(t, trees, len(batch))
		assert.NotNil(t, trees[0])
		assert.Nil(t, trees[1])
		assert.NotNil(t, trees[2])
		assert.Nil(t, trees[3])

		errs := multierr.Errors(err)
		require.Len(t, errs, 2)

		var first *ResolveError
		require.True(t, errors.As(errs[0], &first))
		assert.Equal(t, 1, first.Index)
		assert.Equal(t, "fle", first.Classes)
		assert.ErrorIs(t, first, tw.ErrClassNotFound)

		var second *ResolveError
		require.True(t, errors.As(errs[1], &second))
		assert.Equal(t, 3, second.Index)
		assert.ErrorIs(t, second, tw.ErrVariantNotFound)
		assert.Contains(t, second.Error(), `"hovr:flex"`)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		trees, err := e.ResolveAll(ctx, []string{"flex", "block"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, trees)
	})

	t.Run("empty batch", func(t *testing.T) {
		trees, err := e.ResolveAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, trees)
	})
}

func TestResolveErrorNil(t *testing.T) {
	var e *ResolveError
	assert.Equal(t, "", e.Error())
	assert.NoError(t, e.Unwrap())
}
