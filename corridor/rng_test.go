package corridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next(), "same seed must produce same stream")
	}
}

func TestRNGDifferentSeedsDiverge(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should not produce an identical stream")
}

func TestRNGFloat01Range(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Float01()
		if v < 0 || v >= 1 {
			t.Fatalf("Float01() = %v, want [0, 1)", v)
		}
	}
}

func TestRNGIntNRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.IntN(5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %v, want [0, 5)", v)
		}
	}
}

func TestRNGShuffleIntsPermutes(t *testing.T) {
	r := NewRNG(3)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.ShuffleInts(s)

	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	assert.Len(t, seen, 8, "shuffle must not duplicate or drop elements")
}
