package lfu

import (
	"iter"
	"maps"
)

type (
	item struct {
		value []byte
		// frequency is the index of the tier holding this item's key.
		frequency int
	}
	itemStore map[string]*item
)

func (s itemStore) contains(key string) bool {
	_, ok := s[key]
	return ok
}

// frequency returns 0 for absent keys as well as
// for keys that were never read.
func (s itemStore) frequency(key string) int {
	if it, ok := s[key]; ok {
		return it.frequency
	}
	return 0
}

func (s itemStore) lookup(key string) (*item, bool) {
	it, ok := s[key]
	return it, ok
}

// upsert stores value under key at frequency 0,
// returning the value it replaced, if any.
func (s itemStore) upsert(key string, value []byte) ([]byte, bool) {
	previous, replaced := s[key]
	s[key] = &item{value: value}
	if replaced {
		return previous.value, true
	}
	return nil, false
}

func (s itemStore) remove(key string) (*item, bool) {
	it, ok := s[key]
	if ok {
		delete(s, key)
	}
	return it, ok
}

func (s itemStore) len() int { return len(s) }

func (s itemStore) keys() iter.Seq[string] { return maps.Keys(s) }
