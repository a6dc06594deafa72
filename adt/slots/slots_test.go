package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, a *Array[int], n int) {
	t.Helper()
	for i := range n {
		_, err := a.Append(i)
		require.NoError(t, err, "Append %d should succeed", i)
	}
}

func TestArray_AppendOrder(t *testing.T) {
	a := New[int](DefaultPolicy())
	fill(t, a, 12)

	require.Equal(t, 12, a.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, a.View())

	for i := range 12 {
		v, err := a.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	_, err := a.At(12)
	require.ErrorIs(t, err, ErrIndex)
	_, err = a.At(-1)
	require.ErrorIs(t, err, ErrIndex)
}

func TestArray_RemoveCompacts(t *testing.T) {
	tests := []struct {
		name   string
		remove int
		want   []int
	}{
		{"first", 0, []int{1, 2, 3, 4, 5}},
		{"middle", 3, []int{0, 1, 2, 4, 5}},
		{"last", 5, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int](DefaultPolicy())
			fill(t, a, 6)
			capBefore := a.Cap()

			require.True(t, a.Remove(tt.remove))
			assert.Equal(t, tt.want, a.View())
			assert.Equal(t, 5, a.Len())
			assert.Equal(t, capBefore, a.Cap(), "remove must not change capacity")

			// Slots past Len must be cleared
			for i := a.Len(); i < a.Cap(); i++ {
				assert.Zero(t, a.items[i], "slot %d should be empty", i)
			}
		})
	}
}

func TestArray_RemoveMissing(t *testing.T) {
	a := New[int](DefaultPolicy())
	fill(t, a, 3)

	assert.False(t, a.Remove(42))
	assert.Equal(t, []int{0, 1, 2}, a.View())

	_, err := a.RemoveAt(3)
	require.ErrorIs(t, err, ErrIndex)
}

func TestArray_ViewIsCopy(t *testing.T) {
	a := New[int](DefaultPolicy())
	fill(t, a, 3)

	v := a.View()
	v[0] = 100
	got, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestArray_All(t *testing.T) {
	a := New[string](DefaultPolicy())
	for _, s := range []string{"Tumelo", "Julia", "Teboho"} {
		_, err := a.Append(s)
		require.NoError(t, err)
	}

	var idx []int
	var vals []string
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"Tumelo", "Julia", "Teboho"}, vals)
}

func TestArray_Reset(t *testing.T) {
	a := New[int](DefaultPolicy())
	fill(t, a, 20)
	require.Greater(t, a.Cap(), DefaultInitialCapacity)

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, DefaultInitialCapacity, a.Cap())
}

func TestPolicy_Normalize(t *testing.T) {
	a := New[int](Policy{})
	p := a.Policy()
	assert.Equal(t, DefaultInitialCapacity, p.InitialCapacity)
	assert.InDelta(t, DefaultGrowAt, p.GrowAt, 0)
	assert.InDelta(t, DefaultShrinkAt, p.ShrinkAt, 0)

	b := New[int](Policy{InitialCapacity: 10, MaxCapacity: 4})
	assert.Equal(t, 4, b.Cap(), "initial capacity is clamped to max")
}
