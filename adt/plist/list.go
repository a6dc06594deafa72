package plist

import "fmt"

// Position is one slot of a List.
type Position[T any] struct {
	elem     T
	prev     *Position[T]
	next     *Position[T]
	list     *List[T] // nil once deleted
	sentinel bool
}

// Element returns the element stored at p. Sentinels and deleted positions
// hold the zero value.
func (p *Position[T]) Element() T {
	if p == nil {
		var zero T
		return zero
	}
	return p.elem
}

// List is a positional list with header and trailer sentinels.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type List[T any] struct {
	header  *Position[T]
	trailer *Position[T]
	n       int
	release func(T)
}

// New creates an empty list whose sentinels are linked to each other.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.header = &Position[T]{list: l, sentinel: true}
	l.trailer = &Position[T]{list: l, sentinel: true}
	l.header.next = l.trailer
	l.trailer.prev = l.header
	return l
}

// OnRelease installs fn as the element release hook used by Clear.
func (l *List[T]) OnRelease(fn func(T)) {
	l.release = fn
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.n
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// Header returns the header sentinel.
func (l *List[T]) Header() *Position[T] {
	return l.header
}

// Trailer returns the trailer sentinel.
func (l *List[T]) Trailer() *Position[T] {
	return l.trailer
}

// IsHeader reports whether p is this list's header.
func (l *List[T]) IsHeader(p *Position[T]) bool {
	return p != nil && p == l.header
}

// IsTrailer reports whether p is this list's trailer.
func (l *List[T]) IsTrailer(p *Position[T]) bool {
	return p != nil && p == l.trailer
}

// First returns the first position, or nil if the list is empty.
func (l *List[T]) First() *Position[T] {
	if l.n == 0 {
		return nil
	}
	return l.header.next
}

// Last returns the last position, or nil if the list is empty.
func (l *List[T]) Last() *Position[T] {
	if l.n == 0 {
		return nil
	}
	return l.trailer.prev
}

// check validates that p is a position of l. Sentinels pass.
func (l *List[T]) check(p *Position[T]) error {
	if p == nil {
		return ErrNullInput
	}
	if p.list != l {
		return ErrNotInList
	}
	return nil
}

// checkData validates that p is a data-bearing position of l.
func (l *List[T]) checkData(p *Position[T]) error {
	if err := l.check(p); err != nil {
		return err
	}
	if p.sentinel {
		return fmt.Errorf("%w: sentinel", ErrInvalidPosition)
	}
	return nil
}

// Before returns the position immediately before p, or nil if p is the
// first position. Returns ErrInvalidPosition for the header.
func (l *List[T]) Before(p *Position[T]) (*Position[T], error) {
	if err := l.check(p); err != nil {
		return nil, err
	}
	if p == l.header {
		return nil, fmt.Errorf("%w: before header", ErrInvalidPosition)
	}
	if p.prev == l.header {
		return nil, nil
	}
	return p.prev, nil
}

// After returns the position immediately after p, or nil if p is the last
// position. Returns ErrInvalidPosition for the trailer.
func (l *List[T]) After(p *Position[T]) (*Position[T], error) {
	if err := l.check(p); err != nil {
		return nil, err
	}
	if p == l.trailer {
		return nil, fmt.Errorf("%w: after trailer", ErrInvalidPosition)
	}
	if p.next == l.trailer {
		return nil, nil
	}
	return p.next, nil
}

// insertBetween splices a new position holding e between prev and next.
func (l *List[T]) insertBetween(e T, prev, next *Position[T]) *Position[T] {
	p := &Position[T]{elem: e, prev: prev, next: next, list: l}
	prev.next = p
	next.prev = p
	l.n++
	return p
}

// AddFirst inserts e at the front and returns its position.
func (l *List[T]) AddFirst(e T) *Position[T] {
	return l.insertBetween(e, l.header, l.header.next)
}

// AddLast inserts e at the back and returns its position.
func (l *List[T]) AddLast(e T) *Position[T] {
	return l.insertBetween(e, l.trailer.prev, l.trailer)
}

// AddBefore inserts e immediately before p. p may be the trailer, which is
// the same as AddLast; the header is rejected with ErrInvalidAnchor.
func (l *List[T]) AddBefore(p *Position[T], e T) (*Position[T], error) {
	if err := l.check(p); err != nil {
		return nil, err
	}
	if p == l.header {
		return nil, fmt.Errorf("%w: cannot add before the header, use AddFirst", ErrInvalidAnchor)
	}
	return l.insertBetween(e, p.prev, p), nil
}

// AddAfter inserts e immediately after p. p may be the header, which is the
// same as AddFirst; the trailer is rejected with ErrInvalidAnchor.
func (l *List[T]) AddAfter(p *Position[T], e T) (*Position[T], error) {
	if err := l.check(p); err != nil {
		return nil, err
	}
	if p == l.trailer {
		return nil, fmt.Errorf("%w: cannot add after the trailer, use AddLast", ErrInvalidAnchor)
	}
	return l.insertBetween(e, p, p.next), nil
}

// Element returns the element at p.
func (l *List[T]) Element(p *Position[T]) (T, error) {
	if err := l.checkData(p); err != nil {
		var zero T
		return zero, err
	}
	return p.elem, nil
}

// Set replaces the element at p and returns the old one.
func (l *List[T]) Set(p *Position[T], e T) (T, error) {
	if err := l.checkData(p); err != nil {
		var zero T
		return zero, err
	}
	old := p.elem
	p.elem = e
	return old, nil
}

// Delete removes p from the list and returns its element. p is invalid
// afterwards. Sentinels are always rejected, even when the list is empty.
func (l *List[T]) Delete(p *Position[T]) (T, error) {
	if err := l.checkData(p); err != nil {
		var zero T
		return zero, err
	}

	p.prev.next = p.next
	p.next.prev = p.prev
	l.n--

	e := p.elem
	var zero T
	p.elem = zero
	p.prev = nil
	p.next = nil
	p.list = nil
	return e, nil
}

// Search returns the first position, scanning from the front, whose element
// equals e under eq. Returns ErrNotFound if there is none.
func (l *List[T]) Search(e T, eq func(a, b T) bool) (*Position[T], error) {
	if eq == nil {
		return nil, fmt.Errorf("%w: comparator", ErrNullInput)
	}
	for p := l.header.next; p != l.trailer; p = p.next {
		if eq(p.elem, e) {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Clear deletes every element, passing each to the release hook once.
// The sentinels are kept, so the list is empty and usable afterwards.
// Positions obtained before Clear are invalid.
func (l *List[T]) Clear() {
	var zero T
	p := l.header.next
	for p != l.trailer {
		next := p.next
		if l.release != nil {
			l.release(p.elem)
		}
		p.elem = zero
		p.prev = nil
		p.next = nil
		p.list = nil
		p = next
	}

	l.header.next = l.trailer
	l.trailer.prev = l.header
	l.n = 0
}
