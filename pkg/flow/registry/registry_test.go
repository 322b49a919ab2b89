package registry

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_RegisterGet tests basic registration and lookup.
func TestRegistry_RegisterGet(t *testing.T) {
	r := New[string, int]()
	r.Register("a", 1)
	r.Register("b", 2)

	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

// TestRegistry_RegisterOverwrites tests that re-registering a key replaces
// its value.
func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := New[string, string]()
	r.Register("k", "first")
	r.Register("k", "second")

	v, ok := r.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, r.Len())
}

// TestRegistry_Has tests existence checks.
func TestRegistry_Has(t *testing.T) {
	r := New[string, int]()
	assert.False(t, r.Has("x"))
	r.Register("x", 0)
	assert.True(t, r.Has("x"))
}

// TestRegistry_Keys tests key enumeration.
func TestRegistry_Keys(t *testing.T) {
	r := New[string, int]()
	r.Register("b", 2)
	r.Register("a", 1)
	r.Register("c", 3)

	keys := r.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

// TestRegistry_Range tests iteration including early exit.
func TestRegistry_Range(t *testing.T) {
	r := New[string, int]()
	r.Register("a", 1)
	r.Register("b", 2)
	r.Register("c", 3)

	seen := map[string]int{}
	r.Range(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	assert.Len(t, seen, 3)

	calls := 0
	r.Range(func(k string, v int) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

// TestRegistry_ConcurrentAccess tests mixed readers and writers.
func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register(n, n*2)
		}(i)
		go func(n int) {
			defer wg.Done()
			r.Get(n)
			r.Has(n)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, r.Len())
}
