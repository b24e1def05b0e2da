// Package memory is the in-process response cache used when no redis
// backend is configured. Eviction is capacity-based only: when the entry
// count exceeds the limit, the oldest half is dropped in one sweep.
package memory

import (
	"context"
	"sync"
)

type Cache struct {
	mu         sync.Mutex
	entries    map[string][]byte
	order      []string
	maxEntries int
}

func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &Cache{
		entries:    make(map[string][]byte),
		order:      make([]string, 0, maxEntries),
		maxEntries: maxEntries,
	}
}

func (c *Cache) Name() string {
	return "memory"
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *Cache) Set(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = payload

	if len(c.entries) > c.maxEntries {
		c.evictOldestHalf()
	}
	return nil
}

// Flush drops every entry, used after a lexicon reload.
func (c *Cache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]byte)
	c.order = c.order[:0]
	return nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestHalf() {
	drop := len(c.order) / 2
	for _, key := range c.order[:drop] {
		delete(c.entries, key)
	}
	c.order = append(c.order[:0], c.order[drop:]...)
}
