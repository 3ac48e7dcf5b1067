// Package cache holds encoded portfolio snapshots in a size-bounded
// in-process cache backed by dgraph-io/ristretto.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache wraps a ristretto cache of encoded values.
type Cache struct {
	c *ristretto.Cache[string, []byte]
}

// New creates a ristretto-backed cache. maxCostBytes is the maximum total
// size of cached values in bytes.
func New(maxCostBytes int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: max(maxCostBytes/100*10, 1000), // ~10x expected items
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c}, nil
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	return c.c.Get(key)
}

// Set stores a value with the given TTL and waits until it is visible to
// Get. It reports false when the cache rejected the value.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) bool {
	ok := c.c.SetWithTTL(key, value, int64(len(value)), ttl)
	c.c.Wait()
	return ok
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.c.Del(key)
}

// Close shuts down the cache and releases resources.
func (c *Cache) Close() {
	c.c.Close()
}
