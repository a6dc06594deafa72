package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// family holds the positions of the standard test tree:
//
//	Esther
//	  Tumelo
//	  Julia
//	    Karabo
//	    Amahle
//	  Teboho
//	  Pheello
type family struct {
	t                             *Tree[string]
	esther, tumelo, julia, teboho Position
	pheello, karabo, amahle       Position
}

func newFamily(t *testing.T, opts Options) *family {
	t.Helper()
	f := &family{t: New[string](opts)}

	var err error
	f.esther, err = f.t.AddRoot("Esther")
	require.NoError(t, err)

	add := func(parent Position, name string) Position {
		p, err := f.t.AddChild(parent, name)
		require.NoError(t, err, "AddChild(%s) should succeed", name)
		return p
	}
	f.tumelo = add(f.esther, "Tumelo")
	f.julia = add(f.esther, "Julia")
	f.teboho = add(f.esther, "Teboho")
	f.pheello = add(f.esther, "Pheello")
	f.karabo = add(f.julia, "Karabo")
	f.amahle = add(f.julia, "Amahle")
	return f
}

// names resolves positions to their payloads.
func names(t *testing.T, tr *Tree[string], ps []Position) []string {
	t.Helper()
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		v, err := tr.Element(p)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func childNames(t *testing.T, tr *Tree[string], p Position) []string {
	t.Helper()
	kids, err := tr.Children(p)
	require.NoError(t, err)
	return names(t, tr, kids)
}

func TestNew_Empty(t *testing.T) {
	tr := New[string](DefaultOptions())

	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Size())
	_, ok := tr.Root()
	assert.False(t, ok)
}

// TestScenario_EstherTumeloJulia is the reference three-person tree.
func TestScenario_EstherTumeloJulia(t *testing.T) {
	tr := New[string](DefaultOptions())

	root, err := tr.AddRoot("Esther")
	require.NoError(t, err)
	_, err = tr.AddChild(root, "Tumelo")
	require.NoError(t, err)
	_, err = tr.AddChild(root, "Julia")
	require.NoError(t, err)

	assert.Equal(t, 3, tr.Size())
	n, err := tr.NumChildren(root)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"Tumelo", "Julia"}, childNames(t, tr, root))
}

func TestAddRoot(t *testing.T) {
	tr := New[string](DefaultOptions())

	root, err := tr.AddRoot("Esther")
	require.NoError(t, err)
	assert.False(t, root.IsZero())
	assert.Equal(t, 1, tr.Size())
	assert.False(t, tr.IsEmpty())

	got, ok := tr.Root()
	require.True(t, ok)
	assert.Equal(t, root, got)

	isRoot, err := tr.IsRoot(root)
	require.NoError(t, err)
	assert.True(t, isRoot)

	capacity, err := tr.ChildCapacity(root)
	require.NoError(t, err)
	assert.Equal(t, DefaultChildCapacity, capacity)

	parent, err := tr.Parent(root)
	require.NoError(t, err)
	assert.True(t, parent.IsZero(), "root has no parent")
}

func TestAddRoot_AlreadyHasRoot(t *testing.T) {
	tr := New[string](DefaultOptions())
	_, err := tr.AddRoot("Esther")
	require.NoError(t, err)

	_, err = tr.AddRoot("Other")
	require.ErrorIs(t, err, ErrAlreadyHasRoot)
	assert.Equal(t, 1, tr.Size(), "failed AddRoot must not change size")
}

func TestAddChild_Order(t *testing.T) {
	tr := New[int](DefaultOptions())
	root, err := tr.AddRoot(-1)
	require.NoError(t, err)

	const n = 50
	var want []Position
	for i := range n {
		p, err := tr.AddChild(root, i)
		require.NoError(t, err)
		want = append(want, p)

		count, err := tr.NumChildren(root)
		require.NoError(t, err)
		require.Equal(t, i+1, count)
	}

	got, err := tr.Children(root)
	require.NoError(t, err)
	assert.Equal(t, want, got, "children in insertion order with no gaps")
	assert.Equal(t, n+1, tr.Size())

	for i, p := range got {
		v, err := tr.Element(p)
		require.NoError(t, err)
		assert.Equal(t, i, v)

		parent, err := tr.Parent(p)
		require.NoError(t, err)
		assert.Equal(t, root, parent)
	}
}

func TestAddChild_InvalidParent(t *testing.T) {
	f := newFamily(t, DefaultOptions())
	other := New[string](DefaultOptions())
	foreign, err := other.AddRoot("Stranger")
	require.NoError(t, err)

	deleted, err := f.t.AddChild(f.tumelo, "Temp")
	require.NoError(t, err)
	_, err = f.t.Delete(deleted)
	require.NoError(t, err)

	tests := []struct {
		name    string
		parent  Position
		wantErr error
	}{
		{"zero position", Position{}, ErrNullInput},
		{"other tree", foreign, ErrNotInTree},
		{"deleted position", deleted, ErrNotInTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.t.Size()
			_, err := f.t.AddChild(tt.parent, "X")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, f.t.Size())
		})
	}

	// The foreign tree is untouched too
	n, err := other.NumChildren(foreign)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestQueries(t *testing.T) {
	f := newFamily(t, DefaultOptions())

	assert.Equal(t, 7, f.t.Size())

	internal, err := f.t.IsInternal(f.julia)
	require.NoError(t, err)
	assert.True(t, internal)

	external, err := f.t.IsExternal(f.karabo)
	require.NoError(t, err)
	assert.True(t, external)

	external, err = f.t.IsExternal(f.julia)
	require.NoError(t, err)
	assert.False(t, external)

	isRoot, err := f.t.IsRoot(f.julia)
	require.NoError(t, err)
	assert.False(t, isRoot)

	parent, err := f.t.Parent(f.amahle)
	require.NoError(t, err)
	assert.Equal(t, f.julia, parent)

	depth, err := f.t.Depth(f.karabo)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	assert.Equal(t, []string{"Tumelo", "Julia", "Teboho", "Pheello"}, childNames(t, f.t, f.esther))
	assert.Equal(t, []string{"Karabo", "Amahle"}, childNames(t, f.t, f.julia))
	assert.Empty(t, childNames(t, f.t, f.teboho))

	assert.True(t, f.t.Contains(f.pheello))
	assert.False(t, f.t.Contains(Position{}))
}

func TestQueries_InvalidPosition(t *testing.T) {
	tr := New[string](DefaultOptions())

	_, err := tr.IsRoot(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.IsInternal(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.IsExternal(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.Parent(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.Children(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.NumChildren(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.Element(Position{})
	require.ErrorIs(t, err, ErrNullInput)
	_, err = tr.Depth(Position{})
	require.ErrorIs(t, err, ErrNullInput)
}

func TestReplace(t *testing.T) {
	f := newFamily(t, DefaultOptions())
	released := 0
	f.t.OnRelease(func(string) { released++ })

	old, err := f.t.Replace(f.tumelo, "Tumi")
	require.NoError(t, err)
	assert.Equal(t, "Tumelo", old)
	assert.Equal(t, 0, released, "replaced payload belongs to the caller")

	v, err := f.t.Element(f.tumelo)
	require.NoError(t, err)
	assert.Equal(t, "Tumi", v)
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "pos(nil)", Position{}.String())

	tr := New[int](DefaultOptions())
	root, err := tr.AddRoot(1)
	require.NoError(t, err)
	assert.Contains(t, root.String(), "pos(")
}
