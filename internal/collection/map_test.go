package collection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("a", 1)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Update("counter", func(v int, _ bool) int { return v + 1 })
		}()
	}
	wg.Wait()
	v, _ = m.Get("counter")
	assert.Equal(t, 50, v)
	assert.Equal(t, 2, m.Len())

	seen := 0
	m.Range(func(key string, value int) bool {
		seen++
		return true
	})
	assert.Equal(t, 2, seen)

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
	m.Clear()
	assert.Equal(t, 0, m.Len())
}
