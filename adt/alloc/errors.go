package alloc

import "errors"

var (
	// ErrNoSpace indicates the arena reached its configured node limit.
	ErrNoSpace = errors.New("alloc: arena limit reached")

	// ErrBadRef indicates a zero, out-of-range, or stale handle.
	ErrBadRef = errors.New("alloc: bad handle")

	// ErrBadSize indicates a negative array length.
	ErrBadSize = errors.New("alloc: bad array size")

	// ErrBadIndex indicates an index outside the array bounds.
	ErrBadIndex = errors.New("alloc: index out of range")
)
