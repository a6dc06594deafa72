package plist

import "iter"

// All yields the data-bearing positions front to back. The sequence is lazy,
// reads the list as it is when iteration starts, and can be iterated again.
// The list must not be modified during iteration, except that the current
// position may be deleted.
func (l *List[T]) All() iter.Seq[*Position[T]] {
	return func(yield func(*Position[T]) bool) {
		for p := l.header.next; p != l.trailer; {
			next := p.next
			if !yield(p) {
				return
			}
			p = next
		}
	}
}

// Backward yields the data-bearing positions back to front.
func (l *List[T]) Backward() iter.Seq[*Position[T]] {
	return func(yield func(*Position[T]) bool) {
		for p := l.trailer.prev; p != l.header; {
			prev := p.prev
			if !yield(p) {
				return
			}
			p = prev
		}
	}
}

// Values yields the elements front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range l.All() {
			if !yield(p.elem) {
				return
			}
		}
	}
}

// Slice returns the elements front to back as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.n)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}
