package twin

import (
	"strings"
	"sync"

	"github.com/agiangrant/twin/style"
)

// styleCache memoizes compiled trees by class string. Entries are never
// handed out directly; callers get clones.
type styleCache struct {
	mu      sync.RWMutex
	entries map[string]*style.Tree
}

func newStyleCache() *styleCache {
	return &styleCache{entries: make(map[string]*style.Tree)}
}

// cacheKey normalizes whitespace so "p-4  flex" and "p-4 flex" share an entry.
func cacheKey(classes string) string {
	return strings.Join(strings.Fields(classes), " ")
}

// resolve returns the cached tree for key or compiles and stores it.
// Failures are not cached.
func (c *styleCache) resolve(key string, compile func() (*style.Tree, error)) (*style.Tree, bool, error) {
	// Check cache first (read lock)
	c.mu.RLock()
	if cached, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return cached.Clone(), true, nil
	}
	c.mu.RUnlock()

	tree, err := compile()
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := c.entries[key]; ok {
		return cached.Clone(), true, nil
	}
	c.entries[key] = tree
	return tree.Clone(), false, nil
}

func (c *styleCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]*style.Tree)
	c.mu.Unlock()
}

func (c *styleCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
