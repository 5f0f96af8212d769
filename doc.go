// Package lfu implements a [Cache] using Least-Frequently-Used eviction.
//
// The design follows the O(1) LFU scheme of Shah, Mitra and Matani,
// but the linked list of frequency nodes is replaced with a growable
// array of tiers, where a tier's position is its frequency.
// Items refer to their tier by index, so there are no pointer cycles
// between items and tiers.
//
// The following is a summary (intended for maintainers).
//
// Glossary and invariants:
//
//   - Item
//
//     A stored value plus its frequency.
//
//   - Tier
//
//     The keys read exactly n times since they were last inserted,
//     where n is the tier's index. Tier 0 always exists and holds
//     keys that were inserted but not yet read.
//
//     Tiers are appended as frequencies grow and are never removed,
//     even when they become empty.
//
//   - Every stored key with frequency f appears exactly once in tier f,
//     and in no other tier.
//
//   - Size
//
//     The summed length of stored values, compared against the size bound.
//     The bound is advisory, see Eviction.
//
//   - History
//
//     The most recently evicted keys, newest first.
//     Trimming happens before each push, so the history holds between
//     bound and bound+1 keys once it has filled up.
//
// Operations:
//
//   - Promotion
//
//     A successful [Cache.Get] removes the key from tier f (preserving
//     the order of its siblings) and appends it to tier f+1.
//     Frequency never decreases.
//     Removal is linear in the tier's occupancy, so promotion is
//     amortized O(1) over bucket size rather than worst-case constant.
//
//   - Eviction
//
//     [Cache.Insert] reclaims space before admitting a value:
//     while the incoming value would not fit, the back of each tier is
//     popped, lowest tier first, with at most one victim per tier.
//     Once every tier has been tried, the value is admitted regardless;
//     the cache may then be over its bound.
//
//     Popping the back of a tier means the victim among equal frequencies
//     is the key most recently promoted (or inserted) into that tier,
//     which is not the least recently used one.
//
//   - Replacement
//
//     Inserting an existing key resets its frequency to 0.
//     Its old tier entry is removed and its old length is subtracted
//     from the size, so the tier invariant and the size stay exact.
//
// Building with the `lfu_debug` tag verifies the invariants after every
// mutation and panics with a dump of the tiers if they do not hold.
package lfu
