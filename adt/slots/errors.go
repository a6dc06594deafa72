package slots

import "errors"

var (
	// ErrCapacity indicates growth past Policy.MaxCapacity was required.
	ErrCapacity = errors.New("slots: capacity limit reached")

	// ErrIndex indicates an index outside [0, Len()).
	ErrIndex = errors.New("slots: index out of range")
)
