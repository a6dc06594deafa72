package slots

import (
	"fmt"
	"iter"
	"slices"
)

const (
	// DefaultInitialCapacity is the slot count of a fresh Array.
	DefaultInitialCapacity = 5

	// DefaultGrowAt is the load factor at which the next insertion doubles capacity.
	DefaultGrowAt = 0.8

	// DefaultShrinkAt is the load factor at or below which Shrink halves capacity.
	DefaultShrinkAt = 0.2

	// minCapacity is the floor for Shrink.
	minCapacity = 1
)

// Policy controls the capacity behaviour of an Array.
type Policy struct {
	// InitialCapacity is the slot count allocated by New.
	// Default: 5
	InitialCapacity int

	// GrowAt is the load factor checked before each insertion.
	// Default: 0.8
	GrowAt float64

	// ShrinkAt is the load factor threshold for Shrink.
	// Default: 0.2
	ShrinkAt float64

	// MaxCapacity bounds growth (0 = unlimited).
	// Default: 0
	MaxCapacity int
}

// DefaultPolicy returns the standard child-array policy.
func DefaultPolicy() Policy {
	return Policy{
		InitialCapacity: DefaultInitialCapacity,
		GrowAt:          DefaultGrowAt,
		ShrinkAt:        DefaultShrinkAt,
		MaxCapacity:     0,
	}
}

func (p Policy) normalize() Policy {
	if p.InitialCapacity <= 0 {
		p.InitialCapacity = DefaultInitialCapacity
	}
	if p.GrowAt <= 0 {
		p.GrowAt = DefaultGrowAt
	}
	if p.ShrinkAt <= 0 {
		p.ShrinkAt = DefaultShrinkAt
	}
	if p.MaxCapacity < 0 {
		p.MaxCapacity = 0
	}
	if p.MaxCapacity > 0 && p.InitialCapacity > p.MaxCapacity {
		p.InitialCapacity = p.MaxCapacity
	}
	return p
}

// Array is an ordered sequence of T stored in a contiguous slot block.
//
// Invariant: items[0:count] are live, items[count:] hold the zero value.
type Array[T comparable] struct {
	items  []T // len(items) is the capacity
	count  int
	policy Policy
}

// New creates an empty Array with the policy's initial capacity.
func New[T comparable](p Policy) *Array[T] {
	p = p.normalize()
	return &Array[T]{
		items:  make([]T, p.InitialCapacity),
		policy: p,
	}
}

// Len returns the number of live entries.
func (a *Array[T]) Len() int {
	return a.count
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.items)
}

// LoadFactor returns Len()/Cap(), or 1 for a zero-capacity array.
func (a *Array[T]) LoadFactor() float64 {
	if len(a.items) == 0 {
		return 1
	}
	return float64(a.count) / float64(len(a.items))
}

// Policy returns the normalized policy of the array.
func (a *Array[T]) Policy() Policy {
	return a.policy
}

// NeedsGrow reports whether the next Append would grow the array.
func (a *Array[T]) NeedsGrow() bool {
	return a.count == len(a.items) || a.LoadFactor() >= a.policy.GrowAt
}

// Append stores v in the next free slot, doubling capacity first when the
// load factor has reached GrowAt. It reports whether the array grew.
//
// Returns ErrCapacity, without modifying the array, when the block is full
// and MaxCapacity forbids growth.
func (a *Array[T]) Append(v T) (bool, error) {
	grew := false
	if a.NeedsGrow() {
		newCap := max(len(a.items)*2, minCapacity)
		if a.policy.MaxCapacity > 0 {
			newCap = min(newCap, a.policy.MaxCapacity)
		}

		switch {
		case newCap > len(a.items):
			a.resize(newCap)
			grew = true
		case a.count == len(a.items):
			return false, fmt.Errorf("%w: %d", ErrCapacity, a.policy.MaxCapacity)
		}
	}

	a.items[a.count] = v
	a.count++
	return grew, nil
}

// At returns the entry at index i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.count {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndex, i, a.count)
	}
	return a.items[i], nil
}

// IndexOf returns the index of the first entry equal to v, or -1.
func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.count; i++ {
		if a.items[i] == v {
			return i
		}
	}
	return -1
}

// RemoveAt removes the entry at index i and shifts every later entry back
// by one slot.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= a.count {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndex, i, a.count)
	}

	v := a.items[i]
	copy(a.items[i:], a.items[i+1:a.count])
	a.count--

	var zero T
	a.items[a.count] = zero
	return v, nil
}

// Remove removes the first entry equal to v and reports whether one was found.
func (a *Array[T]) Remove(v T) bool {
	i := a.IndexOf(v)
	if i < 0 {
		return false
	}
	_, _ = a.RemoveAt(i)
	return true
}

// Shrink halves the capacity when the load factor is at or below ShrinkAt.
// Capacity never drops below max(1, Len()). It reports whether the array shrank.
func (a *Array[T]) Shrink() bool {
	if a.LoadFactor() > a.policy.ShrinkAt {
		return false
	}

	newCap := max(len(a.items)/2, a.count, minCapacity)
	if newCap >= len(a.items) {
		return false
	}

	a.resize(newCap)
	return true
}

func (a *Array[T]) resize(newCap int) {
	items := make([]T, newCap)
	copy(items, a.items[:a.count])
	a.items = items
}

// View returns a copy of the live entries in order.
func (a *Array[T]) View() []T {
	return slices.Clone(a.items[:a.count])
}

// All yields the live entries with their indices.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Reset drops every entry and restores the initial capacity.
func (a *Array[T]) Reset() {
	a.items = make([]T, a.policy.InitialCapacity)
	a.count = 0
}
