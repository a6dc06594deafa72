// Package tree implements a general (n-ary) tree ADT.
//
// # Overview
//
// A position can have any number of children and at most one parent. The
// tree does not order, balance, or otherwise constrain its children; the
// only order is insertion order. Removing a position removes its whole
// subtree, the same way deleting a folder deletes its contents.
//
// # Storage
//
// Every position lives in an alloc.Arena and is addressed by a Position,
// a small value carrying the tree's identity and a generation-checked
// arena handle. Parent/child relations are handle pairs, so a deleted
// position can never be reached through a stale reference.
//
// Each position owns a slots.Array of child handles:
//
//   - Initial capacity 5 (Options.ChildCapacity)
//   - Doubles before an insertion once count/capacity >= 0.8
//   - Halves on ShrinkChildren once count/capacity <= 0.2
//   - Removal compacts, so children always occupy [0, count)
//
// # Usage Example
//
//	fam := tree.New[string](tree.DefaultOptions())
//	root, _ := fam.AddRoot("Esther")
//	_, _ = fam.AddChild(root, "Tumelo")
//	julia, _ := fam.AddChild(root, "Julia")
//	_, _ = fam.AddChild(julia, "Karabo")
//
//	fam.Size()                    // 4
//	n, _ := fam.NumChildren(root) // 2
//
//	removed, _ := fam.Delete(julia) // 2: Julia and Karabo
//
// # Detached Subtrees
//
// UnlinkChild removes a child from its parent without destroying it. The
// subtree becomes detached: its positions stay valid, Size no longer counts
// them, and AddChild refuses them as parents. Graft re-attaches a detached
// subtree; Delete destroys it.
//
// # Errors
//
// Every operation that takes a Position validates it first and returns
// ErrNullInput for the zero Position or ErrNotInTree for a position from
// another tree or one that was deleted. Failed operations leave the tree
// unchanged.
//
// # Thread Safety
//
// Tree instances are not thread-safe. Callers must synchronize access
// externally.
package tree
