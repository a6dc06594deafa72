package plist

import "errors"

var (
	// ErrNullInput indicates a required argument (position or comparator) was nil.
	ErrNullInput = errors.New("plist: missing argument")

	// ErrNotInList indicates the position belongs to another list or was deleted.
	ErrNotInList = errors.New("plist: position not in list")

	// ErrInvalidPosition indicates a sentinel was used where a data-bearing
	// position is required, or a neighbour of a boundary sentinel was requested.
	ErrInvalidPosition = errors.New("plist: invalid position")

	// ErrInvalidAnchor indicates AddBefore(header) or AddAfter(trailer).
	ErrInvalidAnchor = errors.New("plist: invalid insertion anchor")

	// ErrNotFound indicates Search found no matching element.
	ErrNotFound = errors.New("plist: element not found")
)
