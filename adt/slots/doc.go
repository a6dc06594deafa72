// Package slots implements an owning, contiguous slot array with a
// load-factor driven growth and shrink policy.
//
// # Overview
//
// Array keeps its live entries in the prefix [0, Len()) of an allocated
// slot block of Cap() entries. Removal always compacts: every later entry
// shifts back by one, so there are never holes between live entries and
// relative order is preserved.
//
// # Capacity Policy
//
// Growth is checked immediately before an insertion:
//
//	if Len()/Cap() >= Policy.GrowAt { capacity doubles }
//
// Shrink is never automatic. Shrink halves the capacity only when
//
//	Len()/Cap() <= Policy.ShrinkAt
//
// and never below max(1, Len()). With the defaults (initial capacity 5,
// GrowAt 0.8, ShrinkAt 0.2) the fifth insertion into a fresh array doubles
// it to 10.
//
// Policy.MaxCapacity bounds growth. An Append that would need to grow past
// it fails with ErrCapacity and leaves the array untouched.
//
// # Thread Safety
//
// Array is not thread-safe.
package slots
