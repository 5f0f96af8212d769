package lfu

import (
	"iter"

	"github.com/djdv/go-lfu/internal/tier"
)

// Cache is a byte-bounded LFU cache.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Cache struct {
	items   itemStore
	tiers   *tier.List
	history history

	size, maxSize int
}

// New creates an empty [Cache].
// The size bound defaults to [DefaultMaxSize].
func New(options ...Option) (*Cache, error) {
	settings := defaultConfig()
	for _, apply := range options {
		apply(&settings)
	}
	if settings.maxSize < 0 {
		return nil, maxSizeError(settings.maxSize)
	}
	return &Cache{
		items:   make(itemStore),
		tiers:   tier.New(),
		history: newHistory(settings.maxSize),
		maxSize: settings.maxSize,
	}, nil
}

// ContainsKey reports whether key is stored.
// It does not count as an access.
func (c *Cache) ContainsKey(key string) bool {
	return c.items.contains(key)
}

// CurrentSize returns the summed length of stored values.
// It may exceed [Cache.MaxSize], see [Cache.Insert].
func (c *Cache) CurrentSize() int { return c.size }

// MaxSize returns the advisory size bound.
func (c *Cache) MaxSize() int { return c.maxSize }

// Frequency returns the number of times key was read
// since it was last inserted.
// Absent keys also report 0; use [Cache.ContainsKey]
// to tell the two apart.
func (c *Cache) Frequency(key string) int {
	return c.items.frequency(key)
}

// Get returns the value for key and promotes the key
// to the next frequency tier.
// A miss returns nil and false, and changes nothing.
//
// The returned slice is shared with the cache and must not be modified.
func (c *Cache) Get(key string) ([]byte, bool) {
	it, ok := c.items.lookup(key)
	if !ok {
		return nil, false
	}
	c.tiers.Remove(it.frequency, key)
	it.frequency++
	c.tiers.Ensure(it.frequency)
	c.tiers.Append(it.frequency, key)
	if debugging {
		c.check()
	}
	return it.value, true
}

// Insert stores value under key at frequency 0,
// returning the value it replaced, if any.
//
// Before the value is admitted, Insert tries to make room by evicting
// at most one key from each tier, lowest frequency first, until the
// cache would be under its bound. This is best effort: if every tier
// has been tried, or the value alone exceeds the bound, the cache is
// left over its bound.
//
// Within a tier, the most recently appended key is evicted first.
// That is the key which was most recently promoted into (or inserted
// into) that tier; not the least recently used one.
func (c *Cache) Insert(key string, value []byte) ([]byte, bool) {
	incoming := len(value)
	c.reclaim(incoming)
	if it, ok := c.items.lookup(key); ok {
		c.tiers.Remove(it.frequency, key)
		c.size -= len(it.value)
	}
	c.size += incoming
	previous, replaced := c.items.upsert(key, value)
	c.tiers.Append(0, key)
	if debugging {
		c.check()
	}
	return previous, replaced
}

// reclaim evicts until incoming bytes would fit,
// visiting each existing tier at most once.
func (c *Cache) reclaim(incoming int) {
	for index := 0; c.size+incoming >= c.maxSize &&
		index < c.tiers.Len(); index++ {
		key, ok := c.tiers.Evict(index)
		if !ok {
			continue
		}
		it, ok := c.items.remove(key)
		if debugging {
			assert(ok, "evicted a key that was not stored")
		}
		if !ok {
			continue
		}
		c.size -= len(it.value)
		c.history.record(key)
	}
}

// HasEvictedRecently reports whether key is among the
// most recent evictions. The history remembers roughly
// as many evictions as the cache's size bound.
func (c *Cache) HasEvictedRecently(key string) bool {
	return c.history.contains(key)
}

// Len returns the number of stored keys.
func (c *Cache) Len() int { return c.items.len() }

// Keys returns an iterator over the (unordered) stored keys.
func (c *Cache) Keys() iter.Seq[string] { return c.items.keys() }
