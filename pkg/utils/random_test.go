package utils

import "testing"

func TestNewRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestIntInRange(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := IntInRange(rng, 1, 100)
		if v < 1 || v > 100 {
			t.Fatalf("value %d out of [1,100]", v)
		}
	}
	if v := IntInRange(rng, 5, 5); v != 5 {
		t.Errorf("degenerate range must return min, got %d", v)
	}
}
