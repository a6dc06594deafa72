package alloc

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocArray(t *testing.T) {
	arr, err := AllocArray[int](4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, arr)

	empty, err := AllocArray[string](0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = AllocArray[int](-1)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestInsertAt(t *testing.T) {
	arr, err := AllocArray[rune](3)
	require.NoError(t, err)

	require.NoError(t, InsertAt(arr, 0, 'a'))
	require.NoError(t, InsertAt(arr, 2, 'c'))
	assert.Equal(t, []rune{'a', 0, 'c'}, arr)

	tests := []struct {
		name string
		idx  int
	}{
		{"negative", -1},
		{"at len", 3},
		{"past len", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InsertAt(arr, tt.idx, 'x')
			require.ErrorIs(t, err, ErrBadIndex)
			assert.Equal(t, []rune{'a', 0, 'c'}, arr, "array must be unchanged")
		})
	}
}

func TestFprint(t *testing.T) {
	arr := []float64{1.5, 2.25, 3}

	var buf bytes.Buffer
	err := Fprint(&buf, arr, 2, func(v float64) string { return fmt.Sprintf("%.2f", v) })
	require.NoError(t, err)
	assert.Equal(t, "1.50\n2.25\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, arr, 3, nil))
	assert.Equal(t, "1.5\n2.25\n3\n", buf.String())

	require.ErrorIs(t, Fprint(&buf, arr, 4, nil), ErrBadIndex)
}
