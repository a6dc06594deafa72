package tree

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/joshuapare/adtkit/adt/alloc"
	"github.com/joshuapare/adtkit/adt/slots"
)

// treeIDs hands out a distinct identity to every Tree so positions from one
// tree are rejected by another.
var treeIDs atomic.Uint64

// Position is an opaque handle to one node of a Tree.
//
// Positions are values: copying one is cheap and all copies refer to the
// same node. The zero Position refers to nothing.
type Position struct {
	tree uint64
	ref  alloc.Handle
}

// IsZero reports whether p is the zero Position.
func (p Position) IsZero() bool {
	return p.ref.IsZero()
}

func (p Position) String() string {
	if p.IsZero() {
		return "pos(nil)"
	}
	return fmt.Sprintf("pos(%d:%s)", p.tree, p.ref)
}

type node[T any] struct {
	data     T
	parent   alloc.Handle // zero for the root and for detached subtree roots
	children *slots.Array[alloc.Handle]
	attached bool // reachable from the tree root
}

// Tree is a general (n-ary) tree. Children are kept in insertion order.
//
// NOT thread-safe. Callers that share a Tree between goroutines must
// provide their own locking around every call.
type Tree[T any] struct {
	id      uint64
	nodes   *alloc.Arena[node[T]]
	root    alloc.Handle
	size    int // attached positions
	opts    Options
	policy  slots.Policy
	log     *slog.Logger
	release func(T)
}

// New creates an empty tree: no root, size 0.
func New[T any](opts Options) *Tree[T] {
	return &Tree[T]{
		id:     treeIDs.Add(1),
		nodes:  alloc.NewArena[node[T]](opts.arena()),
		opts:   opts,
		policy: opts.policy(),
		log:    opts.logger(),
	}
}

// OnRelease installs fn as the payload release hook. It is called exactly
// once for the payload of every position destroyed by Delete or Clear.
func (t *Tree[T]) OnRelease(fn func(T)) {
	t.release = fn
}

// Size returns the number of positions reachable from the root.
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no root.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Owned returns the number of positions the tree owns, including detached
// subtrees that are not counted by Size.
func (t *Tree[T]) Owned() int {
	return t.nodes.Len()
}

// Root returns the root position and whether the tree has one.
func (t *Tree[T]) Root() (Position, bool) {
	if t.root.IsZero() {
		return Position{}, false
	}
	return t.pos(t.root), true
}

func (t *Tree[T]) pos(h alloc.Handle) Position {
	return Position{tree: t.id, ref: h}
}

// lookup resolves p to its node. The returned pointer is invalidated by the
// next allocation in the tree.
func (t *Tree[T]) lookup(p Position) (*node[T], error) {
	if p.IsZero() {
		return nil, ErrNullInput
	}
	if p.tree != t.id {
		return nil, fmt.Errorf("%w: %s belongs to another tree", ErrNotInTree, p)
	}
	n, err := t.nodes.Get(p.ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotInTree, p, err)
	}
	return n, nil
}

func (t *Tree[T]) lookupAttached(p Position) (*node[T], error) {
	n, err := t.lookup(p)
	if err != nil {
		return nil, err
	}
	if !n.attached {
		return nil, fmt.Errorf("%w: %s is detached", ErrNotInTree, p)
	}
	return n, nil
}

func (t *Tree[T]) newNode(data T, parent alloc.Handle) (alloc.Handle, error) {
	h, err := t.nodes.Alloc(node[T]{
		data:     data,
		parent:   parent,
		children: slots.New[alloc.Handle](t.policy),
		attached: true,
	})
	if err != nil {
		return alloc.Handle{}, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	return h, nil
}

// AddRoot creates the root position holding data.
// Returns ErrAlreadyHasRoot if the tree already has one.
func (t *Tree[T]) AddRoot(data T) (Position, error) {
	if !t.root.IsZero() {
		return Position{}, ErrAlreadyHasRoot
	}

	h, err := t.newNode(data, alloc.Handle{})
	if err != nil {
		return Position{}, err
	}

	t.root = h
	t.size++
	return t.pos(h), nil
}

// AddChild appends a new position holding data as the last child of parent.
//
// The parent must be an attached position of this tree. If the parent's
// child array has reached the grow load factor it doubles before the
// insertion. On error nothing is modified.
func (t *Tree[T]) AddChild(parent Position, data T) (Position, error) {
	pn, err := t.lookupAttached(parent)
	if err != nil {
		return Position{}, err
	}
	// The children array is heap-allocated separately from the node slab,
	// so this pointer survives the Alloc below.
	kids := pn.children

	h, err := t.newNode(data, parent.ref)
	if err != nil {
		return Position{}, err
	}

	grew, err := kids.Append(h)
	if err != nil {
		_, _ = t.nodes.Free(h)
		return Position{}, fmt.Errorf("%w: %s: %w", ErrAllocationFailure, parent, err)
	}
	if grew {
		t.log.Debug("child array grew", "position", parent.String(), "capacity", kids.Cap())
	}

	t.size++
	return t.pos(h), nil
}

// UnlinkChild removes child from parent's children and compacts the
// remaining children, keeping their order. It reports whether child was
// found among parent's children.
//
// The unlinked subtree is detached: it stays owned by the tree and its
// positions remain valid, but it no longer counts toward Size. The caller
// must re-attach it with Graft or destroy it with Delete. Until then the tree
// keeps holding its nodes and Owned counts them; only Clear reclaims a
// subtree that was never handed back.
func (t *Tree[T]) UnlinkChild(parent, child Position) (bool, error) {
	pn, err := t.lookup(parent)
	if err != nil {
		return false, err
	}
	if _, err := t.lookup(child); err != nil {
		return false, err
	}

	if !pn.children.Remove(child.ref) {
		return false, nil
	}
	t.maybeShrink(parent, pn)

	cn, _ := t.nodes.Get(child.ref)
	cn.parent = alloc.Handle{}
	if cn.attached {
		t.size -= t.setAttached(child.ref, false)
	}
	return true, nil
}

// Graft attaches the detached subtree rooted at child as the last child of
// parent. Returns ErrInvalidPosition if child is not the root of a detached
// subtree.
func (t *Tree[T]) Graft(parent, child Position) error {
	pn, err := t.lookupAttached(parent)
	if err != nil {
		return err
	}
	cn, err := t.lookup(child)
	if err != nil {
		return err
	}
	if cn.attached || !cn.parent.IsZero() {
		return fmt.Errorf("%w: %s is not a detached subtree root", ErrInvalidPosition, child)
	}

	grew, err := pn.children.Append(child.ref)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAllocationFailure, parent, err)
	}
	if grew {
		t.log.Debug("child array grew", "position", parent.String(), "capacity", pn.children.Cap())
	}

	cn.parent = parent.ref
	t.size += t.setAttached(child.ref, true)
	return nil
}

// setAttached marks every position of the subtree rooted at h and returns
// the subtree size.
func (t *Tree[T]) setAttached(h alloc.Handle, attached bool) int {
	count := 0
	stack := []alloc.Handle{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := t.nodes.Get(cur)
		if err != nil {
			continue
		}
		n.attached = attached
		count++
		for _, c := range n.children.All() {
			stack = append(stack, c)
		}
	}
	return count
}

// Delete destroys pos and every descendant, children before parents, and
// returns the number of positions destroyed.
//
// pos is unlinked from its parent first. Deleting the root leaves the tree
// empty. Size drops by exactly the returned count when pos was attached.
func (t *Tree[T]) Delete(pos Position) (int, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return 0, err
	}
	attached := n.attached

	if !n.parent.IsZero() {
		parent := t.pos(n.parent)
		pn, err := t.nodes.Get(n.parent)
		if err != nil {
			return 0, fmt.Errorf("%w: parent of %s: %w", ErrInvalidPosition, pos, err)
		}
		pn.children.Remove(pos.ref)
		t.maybeShrink(parent, pn)
	}
	if pos.ref == t.root {
		t.root = alloc.Handle{}
	}

	destroyed := t.destroy(pos.ref)
	if attached {
		t.size -= destroyed
	}

	t.log.Debug("subtree deleted", "position", pos.String(), "destroyed", destroyed, "size", t.size)
	return destroyed, nil
}

// destroy frees the subtree rooted at h without recursion. Positions are
// collected in preorder and freed in reverse, so every child is destroyed
// before its parent.
func (t *Tree[T]) destroy(h alloc.Handle) int {
	order := make([]alloc.Handle, 0, 1)
	stack := []alloc.Handle{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := t.nodes.Get(cur)
		if err != nil {
			continue
		}
		order = append(order, cur)
		for _, c := range n.children.All() {
			stack = append(stack, c)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		n, err := t.nodes.Free(order[i])
		if err != nil {
			continue
		}
		n.children.Reset()
		if t.release != nil {
			t.release(n.data)
		}
	}
	return len(order)
}

// Clear destroys every position the tree owns, attached or detached.
func (t *Tree[T]) Clear() {
	if t.release != nil {
		for _, n := range t.nodes.All() {
			t.release(n.data)
		}
	}
	t.nodes.Reset()
	t.root = alloc.Handle{}
	t.size = 0
}

func (t *Tree[T]) maybeShrink(p Position, n *node[T]) {
	if !t.opts.AutoShrink {
		return
	}
	if n.children.Shrink() {
		t.log.Debug("child array shrank", "position", p.String(), "capacity", n.children.Cap())
	}
}

// ShrinkChildren halves the child array of pos when its load factor is at
// or below the shrink threshold. It reports whether the array shrank.
func (t *Tree[T]) ShrinkChildren(pos Position) (bool, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return false, err
	}
	shrank := n.children.Shrink()
	if shrank {
		t.log.Debug("child array shrank", "position", pos.String(), "capacity", n.children.Cap())
	}
	return shrank, nil
}
