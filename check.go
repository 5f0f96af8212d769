package lfu

import (
	"errors"
	"fmt"
	"strings"
)

// check panics (in debug builds) if the store
// and the tiers disagree.
func (c *Cache) check() {
	if err := c.verify(); err != nil {
		assert(false, "bug: "+err.Error()+"\n"+c.String())
	}
}

// verify walks every tier and cross-references it with the store.
func (c *Cache) verify() error {
	var (
		seen  = make(map[string]int, c.items.len())
		total int
	)
	for index := range c.tiers.Len() {
		for key := range c.tiers.Keys(index) {
			if other, dup := seen[key]; dup {
				return fmt.Errorf("key %q held by tiers %d and %d", key, other, index)
			}
			seen[key] = index
			it, ok := c.items.lookup(key)
			if !ok {
				return fmt.Errorf("tier %d holds key %q which is not stored", index, key)
			}
			if it.frequency != index {
				return fmt.Errorf("key %q has frequency %d but is held by tier %d",
					key, it.frequency, index)
			}
			total += len(it.value)
		}
	}
	if got, want := len(seen), c.items.len(); got != want {
		return fmt.Errorf("tiers hold %d keys but %d are stored", got, want)
	}
	if total != c.size {
		return fmt.Errorf("tracked size %d does not match stored values %d", c.size, total)
	}
	if c.history.len() > c.maxSize+1 {
		return errors.New("history exceeds its bound")
	}
	return nil
}

// String describes the cache state, tier by tier.
func (c *Cache) String() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "LFU size=%d/%d items=%d history=%d\n",
		c.size, c.maxSize, c.items.len(), c.history.len())
	for index := range c.tiers.Len() {
		fmt.Fprintf(&builder, "- tier %d:", index)
		for key := range c.tiers.Keys(index) {
			fmt.Fprintf(&builder, " %q", key)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
