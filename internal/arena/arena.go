// Package arena provides a generational slot arena.
//
// Values are stored in a flat slice of slots and addressed by a [Key] that
// packs the slot index together with the slot's generation. Removing a value
// bumps the generation, so keys held for a removed value stop resolving even
// after the slot is reused.
package arena

import (
	"fmt"
	"iter"
)

// Key identifies a value in an Arena.
// The zero Key never resolves.
type Key uint64

// Index returns the slot index of the key.
func (k Key) Index() uint32 {
	return uint32(k)
}

// Generation returns the slot generation the key was minted for.
func (k Key) Generation() uint32 {
	return uint32(k >> 32)
}

// String returns a debug form of the key.
func (k Key) String() string {
	return fmt.Sprintf("Key(%d@%d)", k.Index(), k.Generation())
}

func newKey(index, gen uint32) Key {
	return Key(uint64(gen)<<32 | uint64(index))
}

type slot[T any] struct {
	gen      uint32 // bumped on every free
	occupied bool
	value    T
}

// Arena stores values of type T in reusable slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // indices of unoccupied slots, reused LIFO
	len   int
}

// New creates an arena with room for capacity values before growing.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, max(capacity, 0)),
	}
}

// Insert stores v and returns its key.
func (a *Arena[T]) Insert(v T) Key {
	a.len++

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.occupied = true
		s.value = v
		return newKey(idx, s.gen)
	}

	// Generations start at 1 so the zero Key is never live.
	a.slots = append(a.slots, slot[T]{gen: 1, occupied: true, value: v})
	return newKey(uint32(len(a.slots)-1), 1)
}

// Get returns a pointer to the value for k.
// The pointer is valid until the next Insert.
func (a *Arena[T]) Get(k Key) (*T, bool) {
	idx := int(k.Index())
	if idx >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[idx]
	if !s.occupied || s.gen != k.Generation() {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether k refers to a live value.
func (a *Arena[T]) Contains(k Key) bool {
	_, ok := a.Get(k)
	return ok
}

// Remove frees the slot for k and returns its value.
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	if !a.Contains(k) {
		return zero, false
	}

	idx := k.Index()
	s := &a.slots[idx]
	v := s.value
	s.value = zero
	s.occupied = false
	s.gen++
	a.free = append(a.free, idx)
	a.len--
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.len
}

// Clear frees every slot. Keys minted before Clear never resolve again.
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := range a.slots {
		s := &a.slots[i]
		if s.occupied {
			s.gen++
		}
		s.occupied = false
		s.value = zero
	}
	// Push in reverse so the lowest index is reused first.
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i))
	}
	a.len = 0
}

// All iterates live values in slot order.
func (a *Arena[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(newKey(uint32(i), s.gen), &s.value) {
				return
			}
		}
	}
}
