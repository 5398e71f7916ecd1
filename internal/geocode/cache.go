package geocode

import (
	"sync"
	"time"
)

// Cache is a bounded TTL cache for reverse-geocoded place names, keyed by
// the raw coordinate string. Two concurrent runs racing to populate the same
// key overwrite each other idempotently, which is benign.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	max     int
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value    string
	storedAt time.Time
}

// NewCache builds a cache holding at most max entries, each valid for ttl.
func NewCache(max int, ttl time.Duration) *Cache {
	if max <= 0 {
		max = 512
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		max:     max,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached name for a key if present and fresh.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.value, true
}

// Put stores a name, evicting the oldest entry when the cache is full.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.max {
		c.evictOldest()
	}
	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
