package tree

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Preorder(t *testing.T) {
	f := newFamily(t, DefaultOptions())

	type visit struct {
		name  string
		depth int
	}
	var got []visit
	err := f.t.Walk(f.esther, func(p Position, depth int) error {
		v, err := f.t.Element(p)
		if err != nil {
			return err
		}
		got = append(got, visit{v, depth})
		return nil
	})
	require.NoError(t, err)

	want := []visit{
		{"Esther", 0},
		{"Tumelo", 1},
		{"Julia", 1},
		{"Karabo", 2},
		{"Amahle", 2},
		{"Teboho", 1},
		{"Pheello", 1},
	}
	assert.Equal(t, want, got)
}

func TestWalk_SkipChildren(t *testing.T) {
	f := newFamily(t, DefaultOptions())

	var got []string
	err := f.t.Walk(f.esther, func(p Position, _ int) error {
		v, _ := f.t.Element(p)
		got = append(got, v)
		if p == f.julia {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Esther", "Tumelo", "Julia", "Teboho", "Pheello"}, got)
}

func TestWalk_StopsOnError(t *testing.T) {
	f := newFamily(t, DefaultOptions())
	errStop := errors.New("stop")

	visited := 0
	err := f.t.Walk(f.esther, func(p Position, _ int) error {
		visited++
		if p == f.julia {
			return errStop
		}
		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 3, visited)

	err = f.t.Walk(Position{}, func(Position, int) error { return nil })
	require.ErrorIs(t, err, ErrNullInput)
}

func TestPreorder_Subtree(t *testing.T) {
	f := newFamily(t, DefaultOptions())
	got := names(t, f.t, slices.Collect(f.t.Preorder(f.julia)))
	assert.Equal(t, []string{"Julia", "Karabo", "Amahle"}, got)

	assert.Empty(t, slices.Collect(f.t.Preorder(Position{})))
}

func TestPostorder(t *testing.T) {
	f := newFamily(t, DefaultOptions())
	got := names(t, f.t, slices.Collect(f.t.Postorder(f.esther)))
	assert.Equal(t, []string{"Tumelo", "Karabo", "Amahle", "Julia", "Teboho", "Pheello", "Esther"}, got)
}

func TestAll_Restartable(t *testing.T) {
	f := newFamily(t, DefaultOptions())
	seq := f.t.All()

	first := names(t, f.t, slices.Collect(seq))
	second := names(t, f.t, slices.Collect(seq))
	assert.Equal(t, first, second)
	assert.Len(t, first, f.t.Size())

	// Early exit
	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	// Sequence reflects the tree at iteration time
	_, err := f.t.Delete(f.julia)
	require.NoError(t, err)
	assert.Len(t, slices.Collect(seq), 4)

	empty := New[int](DefaultOptions())
	assert.Empty(t, slices.Collect(empty.All()))
}
