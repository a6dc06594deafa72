package tree

import "errors"

var (
	// ErrNullInput indicates a required position argument was the zero Position.
	ErrNullInput = errors.New("tree: missing position")

	// ErrNotInTree indicates the position belongs to another tree, was
	// deleted, or is not attached where an attached position is required.
	ErrNotInTree = errors.New("tree: position not in tree")

	// ErrAlreadyHasRoot indicates AddRoot was called on a non-empty tree.
	ErrAlreadyHasRoot = errors.New("tree: tree already has a root")

	// ErrInvalidPosition indicates the position cannot be used for the
	// requested operation (e.g. grafting a position that is still attached).
	ErrInvalidPosition = errors.New("tree: invalid position")

	// ErrAllocationFailure indicates node or child storage could not grow.
	ErrAllocationFailure = errors.New("tree: allocation failure")
)
