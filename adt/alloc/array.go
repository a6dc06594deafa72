package alloc

import (
	"fmt"
	"io"
)

// AllocArray returns a zeroed array of n elements.
func AllocArray[T any](n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	return make([]T, n), nil
}

// InsertAt copies v into arr[idx], overwriting whatever was there.
// The array length never changes.
func InsertAt[T any](arr []T, idx int, v T) error {
	if idx < 0 || idx >= len(arr) {
		return fmt.Errorf("%w: %d (len %d)", ErrBadIndex, idx, len(arr))
	}
	arr[idx] = v
	return nil
}

// Fprint writes the first n elements of arr to w, one per line, using format.
// A nil format falls back to fmt.Sprint.
func Fprint[T any](w io.Writer, arr []T, n int, format func(T) string) error {
	if n < 0 || n > len(arr) {
		return fmt.Errorf("%w: %d (len %d)", ErrBadIndex, n, len(arr))
	}
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}

	for _, v := range arr[:n] {
		if _, err := fmt.Fprintln(w, format(v)); err != nil {
			return err
		}
	}
	return nil
}
