package tree

import (
	"errors"
	"iter"
	"slices"

	"github.com/joshuapare/adtkit/adt/alloc"
)

// SkipChildren can be returned by a WalkFunc to skip the descendants of the
// position it was called for. It is never returned by Walk.
var SkipChildren = errors.New("tree: skip children") //nolint:errname,revive // control value, like fs.SkipDir

// WalkFunc is called by Walk for every visited position with its depth
// relative to the walk's starting position.
type WalkFunc func(pos Position, depth int) error

// initialStackCapacity is the pre-allocated capacity for traversal stacks.
const initialStackCapacity = 32

type walkEntry struct {
	ref   alloc.Handle
	depth int
}

// Walk visits the subtree rooted at from in preorder, children in insertion
// order, using an explicit stack so deep trees cannot overflow the call stack.
//
// The tree must not be modified during the walk. A non-nil error from fn
// other than SkipChildren stops the walk and is returned.
func (t *Tree[T]) Walk(from Position, fn WalkFunc) error {
	if _, err := t.lookup(from); err != nil {
		return err
	}

	stack := make([]walkEntry, 0, initialStackCapacity)
	stack = append(stack, walkEntry{ref: from.ref})
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := t.nodes.Get(cur.ref)
		if err != nil {
			return err
		}

		if err := fn(t.pos(cur.ref), cur.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		// Push in reverse so the first child is visited first.
		kids := n.children.View()
		for _, c := range slices.Backward(kids) {
			stack = append(stack, walkEntry{ref: c, depth: cur.depth + 1})
		}
	}
	return nil
}

// Preorder yields the subtree rooted at from, parents before children.
// The sequence is lazy and can be iterated again from scratch. An invalid
// starting position yields nothing.
func (t *Tree[T]) Preorder(from Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if _, err := t.lookup(from); err != nil {
			return
		}

		stack := make([]alloc.Handle, 0, initialStackCapacity)
		stack = append(stack, from.ref)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n, err := t.nodes.Get(cur)
			if err != nil {
				return
			}
			if !yield(t.pos(cur)) {
				return
			}
			for _, c := range slices.Backward(n.children.View()) {
				stack = append(stack, c)
			}
		}
	}
}

// Postorder yields the subtree rooted at from, children before parents.
func (t *Tree[T]) Postorder(from Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if _, err := t.lookup(from); err != nil {
			return
		}

		// Reverse of a right-to-left preorder is a left-to-right postorder.
		var order []alloc.Handle
		stack := []alloc.Handle{from.ref}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n, err := t.nodes.Get(cur)
			if err != nil {
				return
			}
			order = append(order, cur)
			for _, c := range n.children.All() {
				stack = append(stack, c)
			}
		}

		for _, h := range slices.Backward(order) {
			if !yield(t.pos(h)) {
				return
			}
		}
	}
}

// All yields every attached position in preorder starting at the root.
func (t *Tree[T]) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		root, ok := t.Root()
		if !ok {
			return
		}
		for p := range t.Preorder(root) {
			if !yield(p) {
				return
			}
		}
	}
}
