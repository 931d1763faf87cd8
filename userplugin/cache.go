package userplugin

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache holds the flattened tables for the most recent configuration. It is
// owned by the host and shared by every compile that uses the same theme and
// plugin data. A different content hash replaces the entry wholesale.
type Cache struct {
	log *zap.Logger

	mu     sync.RWMutex
	key    uint64
	tables *Tables
	ok     bool

	group  singleflight.Group
	builds atomic.Int64
}

// NewCache creates an empty cache. A nil logger disables logging.
func NewCache(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{log: log.Named("plugin-cache")}
}

// Key combines a theme hash with the plugin data hash.
func Key(configHash uint64, d *Data) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(strconv.FormatUint(configHash, 16))
	_, _ = h.WriteString(":")
	_, _ = h.WriteString(strconv.FormatUint(d.Hash(), 16))
	return h.Sum64()
}

// Tables returns the flattened tables for d, building them at most once per
// key even under concurrent callers.
func (c *Cache) Tables(configHash uint64, d *Data) (*Tables, error) {
	key := Key(configHash, d)

	// Check cache first (read lock)
	c.mu.RLock()
	if c.ok && c.key == key {
		tables := c.tables
		c.mu.RUnlock()
		return tables, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		// Double-check: another flight may have finished in between
		c.mu.RLock()
		if c.ok && c.key == key {
			tables := c.tables
			c.mu.RUnlock()
			return tables, nil
		}
		c.mu.RUnlock()

		tables, err := Flatten(d)
		if err != nil {
			return nil, err
		}
		c.builds.Add(1)

		c.mu.Lock()
		previous := c.key
		c.key, c.tables, c.ok = key, tables, true
		c.mu.Unlock()

		c.log.Debug("Rebuilt plugin tables",
			zap.String("key", strconv.FormatUint(key, 16)),
			zap.String("previous", strconv.FormatUint(previous, 16)),
			zap.Int("classes", tables.Len()))
		return tables, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables), nil
}

// Reset drops the cached entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.key, c.tables, c.ok = 0, nil, false
	c.mu.Unlock()
}

// Builds reports how many times tables were flattened.
func (c *Cache) Builds() int64 {
	return c.builds.Load()
}
