package alloc

import "fmt"

const (
	// DefaultInitialCapacity is the number of slots preallocated by NewArena.
	DefaultInitialCapacity = 16
)

// Handle addresses one node in an Arena.
//
// The zero Handle never refers to a node. A handle becomes stale when its
// node is freed; the slot's generation moves on and the old handle fails
// every lookup with ErrBadRef.
type Handle struct {
	index uint32
	gen   uint32 // 0 = invalid; live generations start at 1
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Index returns the slot index of h. Only meaningful for non-zero handles.
func (h Handle) Index() int {
	return int(h.index)
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.index, h.gen)
}

// ArenaOptions configures an Arena.
type ArenaOptions struct {
	// InitialCapacity is the number of slots allocated up front.
	// Default: 16
	InitialCapacity int

	// Limit caps the number of live nodes (0 = unlimited).
	// Default: 0
	Limit int
}

// DefaultArenaOptions returns the defaults used by the ADT packages.
func DefaultArenaOptions() ArenaOptions {
	return ArenaOptions{
		InitialCapacity: DefaultInitialCapacity,
		Limit:           0,
	}
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}
