package corridor

import "testing"

func TestValueNoise2DDeterministic(t *testing.T) {
	a := valueNoise2D(3.5, 1.25, 99)
	b := valueNoise2D(3.5, 1.25, 99)
	if a != b {
		t.Fatalf("valueNoise2D not deterministic: %v != %v", a, b)
	}
}

func TestValueNoise2DRange(t *testing.T) {
	for x := float32(0); x < 10; x += 0.37 {
		for y := float32(0); y < 10; y += 0.53 {
			v := valueNoise2D(x, y, 1)
			if v < 0 || v > 1 {
				t.Fatalf("valueNoise2D(%v,%v) = %v, want [0,1]", x, y, v)
			}
		}
	}
}

func TestRidgedScoreRange(t *testing.T) {
	for n := float32(0); n <= 1; n += 0.1 {
		r := ridgedScore(n)
		if r < 0 || r > 1 {
			t.Fatalf("ridgedScore(%v) = %v, want [0,1]", n, r)
		}
	}
}

func TestRidgedScorePeaksAtHalf(t *testing.T) {
	if got := ridgedScore(0.5); got != 1 {
		t.Fatalf("ridgedScore(0.5) = %v, want 1", got)
	}
}

func TestNoiseFieldScoreAtDeterministic(t *testing.T) {
	nf := newNoiseField(32, 32, 7)
	a := nf.scoreAt(10, 10)
	b := nf.scoreAt(10, 10)
	if a != b {
		t.Fatalf("scoreAt not deterministic: %v != %v", a, b)
	}
}

func TestNoiseFieldDifferentSeedsDiffer(t *testing.T) {
	a := newNoiseField(32, 32, 1)
	b := newNoiseField(32, 32, 2)
	same := true
	for x := 0; x < 8 && same; x++ {
		for y := 0; y < 8; y++ {
			if a.scoreAt(x, y) != b.scoreAt(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatalf("expected different seeds to produce different noise fields")
	}
}
