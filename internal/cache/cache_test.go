package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int { calls++; return 42 }

	assert.Equal(t, 42, c.GetOrCreate("a", create))
	assert.Equal(t, 42, c.GetOrCreate("a", create))
	assert.Equal(t, 1, calls)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestEvictsOldest(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.GetOrCreate(i, func() int { return i })
	}
	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.GetOrCreate(4, func() int { return 4 })

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(0)
	assert.True(t, ok)
	_, ok = c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(4)
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	c := New[string, int](0)
	c.GetOrCreate("a", func() int { return 1 })
	c.Clear()
	assert.Zero(t, c.Len())
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k := strconv.Itoa(i % 8)
			assert.Equal(t, i%8, c.GetOrCreate(k, func() int { return i % 8 }))
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
