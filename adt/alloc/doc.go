// Package alloc provides the storage layer shared by the ADTs in adtkit.
//
// # Overview
//
// Arena is a slab of nodes addressed by generation-checked handles. The tree
// package keeps every position in an Arena, so parent/child relations are
// handle pairs rather than pointers and a freed position can never be
// confused with a later allocation that reuses its slot.
//
//	a := alloc.NewArena[string](alloc.DefaultArenaOptions())
//	h, err := a.Alloc("Esther")
//	if err != nil {
//	    return err
//	}
//	v, _ := a.Get(h)   // *string pointing into the arena
//	_, _ = a.Free(h)   // h is now stale
//	_, err = a.Get(h)  // errors.Is(err, alloc.ErrBadRef)
//
// # Growth
//
// The slab doubles when it runs out of slots. Freed slots are kept on a
// free-list and reused before the slab grows. ArenaOptions.Limit caps the
// number of live nodes; Alloc returns ErrNoSpace once it is reached.
//
// # Array Helpers
//
// AllocArray, InsertAt and Fprint are the generic forms of the fixed-size
// array helpers: allocate a zeroed array, copy one element into a slot, and
// print the first n elements with a caller-supplied formatter.
//
// # Thread Safety
//
// Arena instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
