package utils

import "testing"

func TestIntInclusiveStaysInRange(t *testing.T) {
	rng := NewPRNGService(42)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v := rng.IntInclusive(0, 5)
		if v < 0 || v > 5 {
			t.Fatalf("IntInclusive(0, 5) = %d, out of range", v)
		}
		seenMin = seenMin || v == 0
		seenMax = seenMax || v == 5
	}
	if !seenMin || !seenMax {
		t.Errorf("both bounds must be reachable (min seen: %v, max seen: %v)", seenMin, seenMax)
	}
}

func TestIntInclusiveRoundsBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 200; i++ {
		v := rng.IntInclusive(0.5, 2.7)
		if v < 1 || v > 2 {
			t.Fatalf("IntInclusive(0.5, 2.7) = %d, expected 1 or 2", v)
		}
	}
	if v := rng.IntInclusive(3, 1); v != 3 {
		t.Errorf("IntInclusive(3, 1) = %d, expected 3", v)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 20; i++ {
		if x, y := a.IntInclusive(0, 1000), b.IntInclusive(0, 1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
	if a.Seed() != 99 {
		t.Errorf("Seed() = %d, expected 99", a.Seed())
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Errorf("zero seed must be replaced with a time based one")
	}
}
