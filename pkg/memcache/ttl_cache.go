package mem

import (
	"sync"
	"time"
)

const maxEntries = 1024

// ResponseCache is an in-process TTL cache keyed by request text. It keeps
// repeated slot-extraction and itinerary calls from hitting the model twice
// for the same input.
type ResponseCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		ttl:  ttl,
		data: make(map[string]entry),
	}
}

func (c *ResponseCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key) // cleanup expired
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *ResponseCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}

	if len(c.data) > maxEntries {
		now := time.Now()
		for k, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, k)
			}
		}
	}
}
