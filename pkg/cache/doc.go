// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache for memoizing values that are expensive to build, such as compiled
// pattern matchers.
//
// When the cache reaches its capacity the least recently used entry is
// evicted. GetOrAdd builds a missing value under the cache lock, so a value
// for a given key is constructed at most once while it stays cached.
//
// # Usage
//
//	c := cache.NewLRU[string, *regexp.Regexp](128)
//
//	re := c.GetOrAdd(expr, func() *regexp.Regexp {
//		return regexp.MustCompile(expr)
//	})
//
//	if re, ok := c.Get(expr); ok {
//		// use re
//	}
//
// An optional eviction callback observes entries leaving the cache:
//
//	c.OnEvict(func(key string, _ *regexp.Regexp) {
//		log.Debug("pattern evicted", "pattern", key)
//	})
//
// # Performance Characteristics
//
// Get, Add and GetOrAdd are O(1). Builders passed to GetOrAdd run while the
// cache lock is held and must not call back into the same cache.
package cache
