package lfu

import "github.com/djdv/go-lfu/internal/ring"

// history remembers recently evicted keys, newest first.
// The same key may be present more than once.
type history struct {
	keys  *ring.Deque[string]
	bound int
}

func newHistory(bound int) history {
	return history{
		keys:  ring.New[string](min(bound, DefaultMaxSize) + 1),
		bound: bound,
	}
}

// record trims before pushing, so the length
// settles between bound and bound+1.
func (h history) record(key string) {
	for h.keys.Len() > h.bound {
		h.keys.PopBack()
	}
	h.keys.PushFront(key)
}

func (h history) contains(key string) bool {
	for recorded := range h.keys.All() {
		if recorded == key {
			return true
		}
	}
	return false
}

func (h history) len() int { return h.keys.Len() }
