package tree

// Contains reports whether pos is a live position of this tree, attached or
// detached.
func (t *Tree[T]) Contains(pos Position) bool {
	_, err := t.lookup(pos)
	return err == nil
}

// IsAttached reports whether pos is reachable from the root.
func (t *Tree[T]) IsAttached(pos Position) (bool, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return false, err
	}
	return n.attached, nil
}

// IsRoot reports whether pos is the root of the tree.
func (t *Tree[T]) IsRoot(pos Position) (bool, error) {
	if _, err := t.lookup(pos); err != nil {
		return false, err
	}
	return pos.ref == t.root, nil
}

// IsInternal reports whether pos has at least one child.
func (t *Tree[T]) IsInternal(pos Position) (bool, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return false, err
	}
	return n.children.Len() > 0, nil
}

// IsExternal reports whether pos has no children.
func (t *Tree[T]) IsExternal(pos Position) (bool, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return false, err
	}
	return n.children.Len() == 0, nil
}

// Parent returns the parent of pos. The root and detached subtree roots
// have no parent; for them the zero Position is returned.
func (t *Tree[T]) Parent(pos Position) (Position, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return Position{}, err
	}
	if n.parent.IsZero() {
		return Position{}, nil
	}
	return t.pos(n.parent), nil
}

// Children returns the children of pos in insertion order. The slice is a
// copy and holds only live children.
func (t *Tree[T]) Children(pos Position) ([]Position, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return nil, err
	}

	out := make([]Position, 0, n.children.Len())
	for _, h := range n.children.All() {
		out = append(out, t.pos(h))
	}
	return out, nil
}

// NumChildren returns the number of children of pos.
func (t *Tree[T]) NumChildren(pos Position) (int, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return 0, err
	}
	return n.children.Len(), nil
}

// ChildCapacity returns the allocated child-array capacity of pos.
func (t *Tree[T]) ChildCapacity(pos Position) (int, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return 0, err
	}
	return n.children.Cap(), nil
}

// Element returns the payload stored at pos.
func (t *Tree[T]) Element(pos Position) (T, error) {
	n, err := t.lookup(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.data, nil
}

// Replace stores data at pos and returns the previous payload. The previous
// payload is handed back to the caller and is not passed to the release hook.
func (t *Tree[T]) Replace(pos Position, data T) (T, error) {
	n, err := t.lookup(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	old := n.data
	n.data = data
	return old, nil
}

// Depth returns the number of ancestors of pos. The root has depth 0; a
// detached position is measured from the root of its detached subtree.
func (t *Tree[T]) Depth(pos Position) (int, error) {
	n, err := t.lookup(pos)
	if err != nil {
		return 0, err
	}

	depth := 0
	for !n.parent.IsZero() {
		n, err = t.nodes.Get(n.parent)
		if err != nil {
			return 0, err
		}
		depth++
	}
	return depth, nil
}
