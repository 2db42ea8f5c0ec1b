package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("key", "value")

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)
}

func TestGetMissing(t *testing.T) {
	c := New(10, time.Minute)

	_, found := c.Get("missing")
	assert.False(t, found)
}

func TestEvictsOldestWhenFull(t *testing.T) {
	c := New(2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, found := c.Get("a")
	assert.False(t, found)

	_, found = c.Get("b")
	assert.True(t, found)
	_, found = c.Get("c")
	assert.True(t, found)
}

func TestExpiredEntriesAreDropped(t *testing.T) {
	c := New(10, 10*time.Millisecond)

	c.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("key", "value")
	c.Delete("key")

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCleanExpired(t *testing.T) {
	c := New(10, 10*time.Millisecond)

	c.Set("stale", 1)
	time.Sleep(20 * time.Millisecond)
	c.CleanExpired()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Empty(t, c.items)
}
