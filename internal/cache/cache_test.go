package cache

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDecryptedItems_PutGet(t *testing.T) {
	c := New()
	id := uuid.New()

	_, ok := c.Get(id)
	assert.False(t, ok)

	c.Put(id, "decrypted note")
	got, ok := c.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "decrypted note", got)

	c.Put(id, "replaced")
	got, _ = c.Get(id)
	assert.Equal(t, "replaced", got)
	assert.Equal(t, 1, c.Len())
}

func TestDecryptedItems_Invalidate(t *testing.T) {
	c := New()
	id := uuid.New()
	other := uuid.New()

	c.Put(id, "one")
	c.Put(other, "two")

	c.Invalidate(id)
	_, ok := c.Get(id)
	assert.False(t, ok)
	_, ok = c.Get(other)
	assert.True(t, ok)
}

func TestDecryptedItems_Clear(t *testing.T) {
	c := New()
	c.Put(uuid.New(), "one")
	c.Put(uuid.New(), "two")

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestDecryptedItems_ConcurrentAccess(t *testing.T) {
	c := New()
	ids := make([]uuid.UUID, 8)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := ids[i%len(ids)]
			c.Put(id, i)
			c.Get(id)
			if i%7 == 0 {
				c.Invalidate(id)
			}
		}(i)
	}
	wg.Wait()
}
