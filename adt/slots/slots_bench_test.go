package slots

import "testing"

func BenchmarkArray_Append(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		a := New[int](DefaultPolicy())
		for i := range 1024 {
			if _, err := a.Append(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkArray_RemoveFront(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		a := New[int](DefaultPolicy())
		for i := range 256 {
			_, _ = a.Append(i)
		}
		for a.Len() > 0 {
			_, _ = a.RemoveAt(0)
		}
	}
}
