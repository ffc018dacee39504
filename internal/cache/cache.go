// SPDX-License-Identifier: Apache-2.0

// Package cache memoizes decrypted items for the lifetime of one
// session, so repeated reads of the same note or file record do not
// pay the AEAD and unwrap cost again.
//
// This is not a security control. Holding decrypted plaintext in
// memory is a trust decision the surrounding application makes; the
// cache only bounds that plaintext's lifetime to the session.
package cache

import (
	"sync"

	"github.com/google/uuid"
)

// DecryptedItems maps item ID to its last-decrypted plaintext form.
// Safe for concurrent use.
type DecryptedItems struct {
	mu    sync.RWMutex
	items map[uuid.UUID]any
}

// New returns an empty cache.
func New() *DecryptedItems {
	return &DecryptedItems{
		items: make(map[uuid.UUID]any),
	}
}

// Get returns the cached decrypted item for id, if present.
func (c *DecryptedItems) Get(id uuid.UUID) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Put stores the decrypted form of an item, replacing any previous
// entry for the same id.
func (c *DecryptedItems) Put(id uuid.UUID, item any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = item
}

// Invalidate drops the entry for id. Called when the item is known to
// have changed server-side, so the next read decrypts fresh data.
func (c *DecryptedItems) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
}

// Clear drops every entry. Called on session end.
func (c *DecryptedItems) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[uuid.UUID]any)
}

// Len reports the number of cached items.
func (c *DecryptedItems) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
