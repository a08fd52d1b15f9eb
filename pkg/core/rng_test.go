package core

import "testing"

func TestRNGSeedReplaysStream(t *testing.T) {
	r := NewRNG(7)
	first := []float64{r.Float64(), r.Float64(), r.Float64()}

	r.Seed(7)
	for i, want := range first {
		if got := r.Float64(); got != want {
			t.Fatalf("draw %d = %v after reseed, expected %v", i, got, want)
		}
	}
}

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}
