package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/cache"
)

func TestLRU_Basic(t *testing.T) {
	t.Parallel()

	t.Run("add and get", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)

		assert.False(t, c.Add("a", 1))
		assert.False(t, c.Add("b", 2))

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("get missing", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)

		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, val)
	})

	t.Run("add replaces existing value", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)

		c.Add("a", 1)
		c.Add("a", 2)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("panics on non-positive capacity", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)

		c.Add("a", 1)
		c.Add("b", 2)
		_, _ = c.Get("a")
		assert.True(t, c.Add("c", 3))

		_, ok := c.Get("b")
		assert.False(t, ok, "b should have been evicted")
		_, ok = c.Get("a")
		assert.True(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("calls eviction callback", func(t *testing.T) {
		c := cache.NewLRU[string, int](1)
		var evicted []string
		c.OnEvict(func(key string, _ int) { evicted = append(evicted, key) })

		c.Add("a", 1)
		c.Add("b", 2)

		assert.Equal(t, []string{"a"}, evicted)
	})

	t.Run("purge drops everything", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		var evicted []string
		c.OnEvict(func(key string, _ int) { evicted = append(evicted, key) })

		c.Add("a", 1)
		c.Add("b", 2)
		c.Purge()

		assert.Equal(t, 0, c.Len())
		assert.Equal(t, []string{"a", "b"}, evicted)
	})
}

func TestLRU_GetOrAdd(t *testing.T) {
	t.Parallel()

	t.Run("builds once per key", func(t *testing.T) {
		c := cache.NewLRU[string, int](4)
		calls := 0
		build := func() int {
			calls++
			return 42
		}

		assert.Equal(t, 42, c.GetOrAdd("k", build))
		assert.Equal(t, 42, c.GetOrAdd("k", build))
		assert.Equal(t, 1, calls)
	})

	t.Run("concurrent callers share the value", func(t *testing.T) {
		c := cache.NewLRU[string, string](16)
		var (
			mu    sync.Mutex
			calls int
			wg    sync.WaitGroup
		)

		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := strconv.Itoa(i % 5)
				c.GetOrAdd(key, func() string {
					mu.Lock()
					calls++
					mu.Unlock()
					return key
				})
			}()
		}
		wg.Wait()

		require.Equal(t, 5, c.Len())
		assert.Equal(t, 5, calls)
	})
}
