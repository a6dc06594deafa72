// Package plist implements the positional list ADT on a doubly linked list
// with header and trailer sentinels.
//
// # Overview
//
// A List is a sequence of positions. Every insertion returns the Position
// of the new element, and that Position stays valid, in O(1), for
// navigation and mutation until the element is deleted:
//
//	l := plist.New[string]()
//	p1 := l.AddFirst("Pheello")
//	_, _ = l.AddAfter(p1, "Mish")
//	l.AddLast("Precious")
//
//	for p := range l.All() {
//	    fmt.Println(p.Element()) // Pheello, Mish, Precious
//	}
//
// # Sentinels
//
// The header and trailer are permanent, data-less positions that delimit
// the sequence. They are available through Header and Trailer as insertion
// anchors in the allowed direction (AddAfter(header), AddBefore(trailer))
// but are never returned as neighbours or search results. Misuse is
// reported, never silently tolerated:
//
//	Before(header), After(trailer)          ErrInvalidPosition
//	AddBefore(header), AddAfter(trailer)    ErrInvalidAnchor
//	Set(sentinel), Delete(sentinel)         ErrInvalidPosition
//
// Deleting a sentinel is an error whether or not the list is empty.
//
// # Ownership
//
// The list owns its elements. Delete and Set hand the removed element back
// to the caller. Clear passes every remaining element to the hook installed
// with OnRelease, once, and leaves the list empty and reusable.
//
// # Thread Safety
//
// List instances are not thread-safe. Callers must synchronize access
// externally.
package plist
