// Package ring is a growable circular buffer used as a double-ended queue.
//
// Only the operations needed by the eviction history are provided:
// push at the front, pop at the back, and front-to-back iteration.
package ring

import "iter"

// minimumCapacity is the first allocation made by an empty [Deque].
const minimumCapacity = 8

// Deque is a double-ended queue backed by a ring of slots.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buffer []T
	head   int // Index of the front element.
	length int
}

// New creates a [Deque] with room for at least capacity
// elements before it needs to grow.
func New[T any](capacity int) *Deque[T] {
	return &Deque[T]{
		buffer: make([]T, max(capacity, minimumCapacity)),
	}
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int { return d.length }

// PushFront inserts value before the current front.
func (d *Deque[T]) PushFront(value T) {
	if d.length == len(d.buffer) {
		d.grow()
	}
	d.head = d.wrap(d.head - 1)
	d.buffer[d.head] = value
	d.length++
}

// PopBack removes and returns the element at the back.
// The boolean is false if the deque was empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	var (
		tail  = d.wrap(d.head + d.length - 1)
		value = d.buffer[tail]
	)
	d.buffer[tail] = zero // Drop the reference.
	d.length--
	return value, true
}

// All returns an iterator over the elements, front to back.
// The deque must not be modified during iteration.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range d.length {
			if !yield(d.buffer[d.wrap(d.head+i)]) {
				return
			}
		}
	}
}

func (d *Deque[T]) wrap(index int) int {
	size := len(d.buffer)
	index %= size
	if index < 0 {
		index += size
	}
	return index
}

// grow doubles the buffer, unrolling the ring so the
// front element lands at index 0.
func (d *Deque[T]) grow() {
	buffer := make([]T, max(len(d.buffer)*2, minimumCapacity))
	if d.length > 0 {
		n := copy(buffer, d.buffer[d.head:])
		copy(buffer[n:], d.buffer[:d.head])
	}
	d.buffer = buffer
	d.head = 0
}
