// Package cache provides caching utilities for recompute results.
package cache

import (
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// ResultCache provides thread-safe LRU caching of final result lists.
type ResultCache struct {
	cache *lru.Cache[string, []types.Destination]
}

// NewResultCache creates a new LRU cache with the specified maximum number of items.
func NewResultCache(maxItems int) (*ResultCache, error) {
	c, err := lru.New[string, []types.Destination](maxItems)
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: c}, nil
}

// Key identifies one recompute: the catalog contents, the query, the sort
// key and the exported criteria.
func Key(fingerprint, query, sortKey, criteria string) string {
	return strings.Join([]string{fingerprint, query, sortKey, criteria}, "\x00")
}

// Get returns a copy of the cached list for key.
func (c *ResultCache) Get(key string) ([]types.Destination, bool) {
	items, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return cloneItems(items), true
}

// Put stores a copy of items under key.
func (c *ResultCache) Put(key string, items []types.Destination) {
	c.cache.Add(key, cloneItems(items))
}

// Purge drops every entry.
func (c *ResultCache) Purge() {
	c.cache.Purge()
}

// Len returns the current number of items in the cache.
func (c *ResultCache) Len() int {
	return c.cache.Len()
}

func cloneItems(items []types.Destination) []types.Destination {
	out := make([]types.Destination, len(items))
	for i, d := range items {
		d.Tags = slices.Clone(d.Tags)
		out[i] = d
	}
	return out
}
