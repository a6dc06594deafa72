package alloc

import (
	"iter"
	"math"
)

// Arena is a generation-checked slab of T values.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // indices of dead slots, reused LIFO
	live  int
	limit int
}

// NewArena creates an arena with the given options.
// A non-positive InitialCapacity falls back to DefaultInitialCapacity.
func NewArena[T any](opts ArenaOptions) *Arena[T] {
	capacity := opts.InitialCapacity
	if capacity <= 0 {
		capacity = DefaultInitialCapacity
	}
	if opts.Limit > 0 {
		capacity = min(capacity, opts.Limit)
	}

	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
		limit: max(opts.Limit, 0),
	}
}

// Alloc stores v in a free slot and returns its handle.
//
// Dead slots are reused before the slab grows. Returns ErrNoSpace when the
// arena already holds Limit live nodes.
func (a *Arena[T]) Alloc(v T) (Handle, error) {
	if a.limit > 0 && a.live >= a.limit {
		return Handle{}, ErrNoSpace
	}

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]

		s := &a.slots[idx]
		s.value = v
		s.live = true
		a.live++
		return Handle{index: idx, gen: s.gen}, nil
	}

	if uint64(len(a.slots)) >= math.MaxUint32 {
		return Handle{}, ErrNoSpace
	}

	if len(a.slots) == cap(a.slots) {
		a.grow()
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: v, gen: 1, live: true})
	a.live++
	return Handle{index: idx, gen: 1}, nil
}

// grow doubles the slab capacity, bounded by the limit when one is set.
func (a *Arena[T]) grow() {
	newCap := max(cap(a.slots)*2, 1)
	if a.limit > 0 {
		newCap = min(newCap, a.limit)
	}
	if newCap <= cap(a.slots) {
		return
	}

	grown := make([]slot[T], len(a.slots), newCap)
	copy(grown, a.slots)
	a.slots = grown
}

// Get returns a pointer to the value addressed by h.
// The pointer is valid until the next Alloc, Free or Reset.
func (a *Arena[T]) Get(h Handle) (*T, error) {
	s, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// Live reports whether h addresses a live node.
func (a *Arena[T]) Live(h Handle) bool {
	_, err := a.lookup(h)
	return err == nil
}

// Free releases the node addressed by h and returns its value.
// The slot's generation is bumped so h and all copies of it become stale.
func (a *Arena[T]) Free(h Handle) (T, error) {
	s, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}

	v := s.value
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 {
		// Wrapped; skip the invalid generation.
		s.gen = 1
	}

	a.free = append(a.free, h.index)
	a.live--
	return v, nil
}

func (a *Arena[T]) lookup(h Handle) (*slot[T], error) {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil, ErrBadRef
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, ErrBadRef
	}
	return s, nil
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap returns the number of allocated slots.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

// Reset frees every node. Outstanding handles become stale.
func (a *Arena[T]) Reset() {
	var zero T
	a.free = a.free[:0]
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			s.value = zero
			s.live = false
			s.gen++
			if s.gen == 0 {
				s.gen = 1
			}
		}
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}

// All yields every live node in slot order.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(Handle{index: uint32(i), gen: s.gen}, &s.value) {
				return
			}
		}
	}
}
