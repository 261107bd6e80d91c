package pattern

import "github.com/dmitrymomot/fieldcheck/pkg/cache"

// DefaultCacheSize is the capacity used by NewCache for non-positive sizes.
const DefaultCacheSize = 256

type cacheKey struct {
	pattern string
	exact   bool
}

// Cache memoizes compiled matchers. It is safe for concurrent use.
type Cache struct {
	lru *cache.LRU[cacheKey, Matcher]
}

// NewCache returns a cache holding up to capacity compiled patterns.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{lru: cache.NewLRU[cacheKey, Matcher](capacity)}
}

// Compile returns the cached substring matcher for p, compiling it on first use.
func (c *Cache) Compile(p string) Matcher {
	return c.get(p, false)
}

// CompileExact returns the cached anchored matcher for p.
func (c *Cache) CompileExact(p string) Matcher {
	return c.get(p, true)
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	return c.lru.Len()
}

func (c *Cache) get(p string, exact bool) Matcher {
	if c == nil {
		return compile(p, exact)
	}
	return c.lru.GetOrAdd(cacheKey{pattern: p, exact: exact}, func() Matcher {
		return compile(p, exact)
	})
}
