package corridor

// RNG is the deterministic linear congruential generator spec §5 mandates
// for all randomness in the pipeline: s <- s*1664525 + 1013904223 (mod
// 2^32). Per-layer seeds derive from the top-level seed by running this
// same LCG, so that the whole generator is reproducible bit-for-bit given
// (W, L, H, seed, fullness) regardless of goroutine scheduling.
type RNG struct {
	state uint32
}

// NewRNG creates an RNG seeded directly with s.
func NewRNG(s uint32) *RNG {
	return &RNG{state: s}
}

// Next advances the generator and returns the new 32-bit state.
func (r *RNG) Next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// Float01 returns a deterministic value in [0, 1).
func (r *RNG) Float01() float32 {
	return float32(r.Next()>>8) / float32(1<<24)
}

// IntN returns a deterministic value in [0, n) for n > 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// DeriveSeed produces the seed for the next consumer (e.g. the next layer)
// by advancing this generator once. Calling DeriveSeed H times from the
// top-level seed yields the H per-layer seeds in a fixed, reproducible
// sequence, matching spec §5's ordering guarantee (b).
func (r *RNG) DeriveSeed() uint32 {
	return r.Next()
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a slice of bridge
// indices using r, as required by the welder (§4.9 step 2).
func (r *RNG) ShuffleInts(s []int) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
