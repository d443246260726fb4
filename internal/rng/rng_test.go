package rng

import "testing"

func TestStreamReproducibility(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 1000; i++ {
		va, vb := a.IntRange(0, 99), b.IntRange(0, 99)
		if va != vb {
			t.Fatalf("Draw %d mismatch: %d != %d", i, va, vb)
		}
	}
}

func TestStreamIndependence(t *testing.T) {
	// Advancing one stream must not affect another built from the same
	// seed.
	noisy := New(777)
	for i := 0; i < 500; i++ {
		noisy.IntRange(0, 1000)
	}

	a := New(42)
	b := New(42)
	noisy.IntRange(0, 1000)

	for i := 0; i < 100; i++ {
		if va, vb := a.IntRange(-50, 50), b.IntRange(-50, 50); va != vb {
			t.Fatalf("Draw %d mismatch: %d != %d", i, va, vb)
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.IntRange(-3, 7)
		if v < -3 || v > 7 {
			t.Fatalf("IntRange(-3, 7) = %d, out of bounds", v)
		}
	}
	if v := s.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d, want 5", v)
	}
}

func TestIntRangeInclusive(t *testing.T) {
	// Both endpoints must be reachable.
	s := New(9)
	sawMin, sawMax := false, false
	for i := 0; i < 1000; i++ {
		switch s.IntRange(0, 3) {
		case 0:
			sawMin = true
		case 3:
			sawMax = true
		}
	}
	if !sawMin || !sawMax {
		t.Errorf("endpoints not reached: min=%v max=%v", sawMin, sawMax)
	}
}

func TestChanceExtremes(t *testing.T) {
	s := New(2)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !s.Chance(100) {
			t.Fatal("Chance(100) returned false")
		}
	}
}

func TestOneIn(t *testing.T) {
	s := New(3)
	for i := 0; i < 100; i++ {
		if !s.OneIn(1) {
			t.Fatal("OneIn(1) returned false")
		}
	}

	hits := 0
	for i := 0; i < 10000; i++ {
		if s.OneIn(50) {
			hits++
		}
	}
	// Expect around 200; allow a generous band.
	if hits < 100 || hits > 350 {
		t.Errorf("OneIn(50) hit %d times in 10000 draws", hits)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	mk := func(seed int64) []int {
		vals := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		New(seed).Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
		return vals
	}

	a, b := mk(99), mk(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Shuffle mismatch at %d: %v != %v", i, a, b)
		}
	}

	// Still a permutation.
	seen := make(map[int]bool)
	for _, v := range a {
		if seen[v] {
			t.Fatalf("Duplicate value %d after shuffle: %v", v, a)
		}
		seen[v] = true
	}
}
