package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArena_AllocGet tests basic allocation and lookup.
func TestArena_AllocGet(t *testing.T) {
	a := NewArena[string](DefaultArenaOptions())

	h, err := a.Alloc("Esther")
	require.NoError(t, err, "Alloc should succeed")
	require.False(t, h.IsZero(), "Handle should be non-zero")

	v, err := a.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "Esther", *v)
	assert.Equal(t, 1, a.Len())
	assert.True(t, a.Live(h))
}

// TestArena_ZeroHandle tests that the zero handle never resolves.
func TestArena_ZeroHandle(t *testing.T) {
	a := NewArena[int](DefaultArenaOptions())
	_, err := a.Alloc(1)
	require.NoError(t, err)

	_, err = a.Get(Handle{})
	require.ErrorIs(t, err, ErrBadRef)
	assert.False(t, a.Live(Handle{}))
}

// TestArena_StaleHandle tests that a freed handle stays dead after slot reuse.
func TestArena_StaleHandle(t *testing.T) {
	a := NewArena[int](DefaultArenaOptions())

	h1, err := a.Alloc(1)
	require.NoError(t, err)

	v, err := a.Free(h1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Slot is reused for the next allocation
	h2, err := a.Alloc(2)
	require.NoError(t, err)
	assert.Equal(t, h1.Index(), h2.Index(), "dead slot should be reused")
	assert.NotEqual(t, h1, h2, "generation should differ")

	_, err = a.Get(h1)
	require.ErrorIs(t, err, ErrBadRef, "stale handle must not resolve")

	_, err = a.Free(h1)
	require.ErrorIs(t, err, ErrBadRef, "double free must fail")

	got, err := a.Get(h2)
	require.NoError(t, err)
	assert.Equal(t, 2, *got)
}

// TestArena_Growth tests that the slab doubles when full.
func TestArena_Growth(t *testing.T) {
	a := NewArena[int](ArenaOptions{InitialCapacity: 2})
	require.Equal(t, 2, a.Cap())

	for i := range 3 {
		_, err := a.Alloc(i)
		require.NoError(t, err)
	}
	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 3, a.Len())
}

// TestArena_Limit tests that the node limit is enforced.
func TestArena_Limit(t *testing.T) {
	a := NewArena[int](ArenaOptions{InitialCapacity: 1, Limit: 3})

	var handles []Handle
	for i := range 3 {
		h, err := a.Alloc(i)
		require.NoError(t, err, "Alloc %d should succeed", i)
		handles = append(handles, h)
	}
	assert.LessOrEqual(t, a.Cap(), 3, "capacity should not exceed limit")

	_, err := a.Alloc(99)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, 3, a.Len())

	// Freeing makes room again
	_, err = a.Free(handles[0])
	require.NoError(t, err)
	_, err = a.Alloc(99)
	require.NoError(t, err)
}

// TestArena_Reset tests that Reset frees everything.
func TestArena_Reset(t *testing.T) {
	a := NewArena[int](DefaultArenaOptions())
	h, err := a.Alloc(1)
	require.NoError(t, err)
	_, err = a.Alloc(2)
	require.NoError(t, err)

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Live(h))

	h3, err := a.Alloc(3)
	require.NoError(t, err)
	assert.True(t, a.Live(h3))
	assert.Equal(t, 1, a.Len())
}

// TestArena_All tests iteration over live nodes.
func TestArena_All(t *testing.T) {
	a := NewArena[int](DefaultArenaOptions())
	var hs []Handle
	for i := range 5 {
		h, err := a.Alloc(i * 10)
		require.NoError(t, err)
		hs = append(hs, h)
	}
	_, err := a.Free(hs[1])
	require.NoError(t, err)
	_, err = a.Free(hs[3])
	require.NoError(t, err)

	var got []int
	for _, v := range a.All() {
		got = append(got, *v)
	}
	assert.Equal(t, []int{0, 20, 40}, got)

	// Early break
	count := 0
	for range a.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
