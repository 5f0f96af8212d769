package tier_test

import (
	"slices"
	"testing"

	"github.com/djdv/go-lfu/internal/tier"
)

func TestList(t *testing.T) {
	t.Run("initial", initial)
	t.Run("ensure", ensure)
	t.Run("remove preserves order", removePreservesOrder)
	t.Run("remove missing", removeMissing)
	t.Run("evict newest first", evictNewestFirst)
	t.Run("evict absent", evictAbsent)
}

func initial(t *testing.T) {
	t.Parallel()
	list := tier.New()
	if got := list.Len(); got != 1 {
		t.Fatalf("expected only tier 0, got %d tiers", got)
	}
	if got := list.Size(0); got != 0 {
		t.Fatalf("expected empty tier 0, got %d keys", got)
	}
}

func ensure(t *testing.T) {
	t.Parallel()
	list := tier.New()
	list.Ensure(3)
	if got := list.Len(); got != 4 {
		t.Fatalf("expected 4 tiers, got %d", got)
	}
	list.Ensure(1) // Never shrinks.
	if got := list.Len(); got != 4 {
		t.Fatalf("expected 4 tiers after smaller ensure, got %d", got)
	}
}

func removePreservesOrder(t *testing.T) {
	t.Parallel()
	list := filled(0, "a", "b", "c", "d")
	list.Remove(0, "b")
	checkKeys(t, list, 0, []string{"a", "c", "d"})
}

func removeMissing(t *testing.T) {
	t.Parallel()
	list := filled(0, "a", "b")
	list.Remove(0, "z")
	list.Remove(7, "a")
	list.Remove(-1, "a")
	checkKeys(t, list, 0, []string{"a", "b"})
}

func evictNewestFirst(t *testing.T) {
	t.Parallel()
	list := filled(0, "a", "b", "c")
	for _, want := range []string{"c", "b", "a"} {
		got, ok := list.Evict(0)
		if !ok || got != want {
			t.Fatalf("expected to evict %q, got %q %t", want, got, ok)
		}
	}
	if got, ok := list.Evict(0); ok {
		t.Fatalf("expected empty tier, evicted %q", got)
	}
	if got := list.Len(); got != 1 {
		t.Fatalf("tier list shrank: %d", got)
	}
}

func evictAbsent(t *testing.T) {
	t.Parallel()
	list := tier.New()
	if got, ok := list.Evict(5); ok {
		t.Fatalf("expected nothing from a missing tier, got %q", got)
	}
}

func filled(index int, keys ...string) *tier.List {
	list := tier.New()
	list.Ensure(index)
	for _, key := range keys {
		list.Append(index, key)
	}
	return list
}

func checkKeys(tb testing.TB, list *tier.List, index int, want []string) {
	tb.Helper()
	got := slices.Collect(list.Keys(index))
	if slices.Equal(got, want) {
		return
	}
	tb.Fatalf(
		"unexpected keys in tier %d"+
			"\n\tgot: %v"+
			"\n\twant: %v",
		index, got, want)
}
