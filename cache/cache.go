package cache

import (
	"sync"
	"time"
)

type entry struct {
	value    any
	expires  time.Time
	storedAt time.Time
}

// Catalog is a small in-process TTL cache fronting the public catalog
// endpoints (topics, prompts, chat engines). Entries expire after the
// configured TTL; a background sweep drops expired entries so the map does
// not grow unbounded between requests.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	hits    uint64
	misses  uint64
	evicted uint64
}

func NewCatalog(ttl time.Duration) *Catalog {
	return &Catalog{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get returns the cached value for key, or false when missing or expired.
func (c *Catalog) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expires) {
		c.mu.Lock()
		if ok {
			delete(c.entries, key)
			c.evicted++
		}
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return e.value, true
}

// Set stores value under key with the catalog TTL.
func (c *Catalog) Set(key string, value any) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: now.Add(c.ttl), storedAt: now}
}

// Invalidate drops a single key, used after admin mutations.
func (c *Catalog) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Flush drops every entry.
func (c *Catalog) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Sweep removes expired entries and returns how many were dropped.
func (c *Catalog) Sweep() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for key, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, key)
			dropped++
		}
	}
	c.evicted += uint64(dropped)
	return dropped
}

// StartJanitor runs Sweep on the given interval until stop is closed.
func (c *Catalog) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Sweep()
			case <-stop:
				return
			}
		}
	}()
}

// Stats returns counters about the current cache state.
func (c *Catalog) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"entries":     len(c.entries),
		"hits":        c.hits,
		"misses":      c.misses,
		"evicted":     c.evicted,
		"ttl_seconds": c.ttl.Seconds(),
	}
}
