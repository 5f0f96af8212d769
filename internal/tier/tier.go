// Package tier implements the frequency bucket list of an LFU cache.
//
// A [List] is a sequence of tiers where a tier's index is the access
// count of every key it holds. Tiers are positional: a key moves from
// tier f to tier f+1 when it is read, and the owner tracks f itself,
// so no tier holds a reference back to anything.
//
// The list grows one tier at a time and never shrinks;
// tiers that become empty are kept so indices stay stable.
package tier

import (
	"iter"
	"slices"
)

// List is an ordered sequence of tiers, indexed by frequency.
// Tier 0 always exists.
// Constructed by [New].
type List struct {
	tiers [][]string
}

// New creates a [List] holding only (the empty) tier 0.
func New() *List {
	return &List{tiers: make([][]string, 1)}
}

// Len returns the number of tiers.
func (l *List) Len() int { return len(l.tiers) }

// Size returns the number of keys in the tier at index,
// or 0 if it does not exist.
func (l *List) Size(index int) int {
	if !l.has(index) {
		return 0
	}
	return len(l.tiers[index])
}

// Ensure guarantees that a tier exists at index,
// appending empty tiers as needed.
func (l *List) Ensure(index int) {
	for len(l.tiers) <= index {
		l.tiers = append(l.tiers, nil)
	}
}

// Append adds key to the back of the tier at index.
// The tier must already exist (see [List.Ensure]).
func (l *List) Append(index int, key string) {
	l.tiers[index] = append(l.tiers[index], key)
}

// Remove deletes the occurrence of key from the tier at index,
// preserving the order of the remaining keys.
// It does nothing if the tier does not exist or does not hold key.
// Cost is linear in the tier's occupancy.
func (l *List) Remove(index int, key string) {
	if !l.has(index) {
		return
	}
	keys := l.tiers[index]
	if at := slices.Index(keys, key); at >= 0 {
		l.tiers[index] = slices.Delete(keys, at, at+1)
	}
}

// Evict removes and returns the key at the back of the tier at index,
// i.e. the key most recently appended to that tier.
// The boolean is false if the tier does not exist or is empty.
func (l *List) Evict(index int) (string, bool) {
	if !l.has(index) {
		return "", false
	}
	keys := l.tiers[index]
	if len(keys) == 0 {
		return "", false
	}
	var (
		last = len(keys) - 1
		key  = keys[last]
	)
	l.tiers[index] = keys[:last]
	return key, true
}

// Keys returns an iterator over the keys of the tier at index,
// front (oldest) to back (newest).
func (l *List) Keys(index int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !l.has(index) {
			return
		}
		for _, key := range l.tiers[index] {
			if !yield(key) {
				return
			}
		}
	}
}

func (l *List) has(index int) bool {
	return index >= 0 && index < len(l.tiers)
}
