package corridor

// FindSeed implements §4.4's contradiction-revival pragmatic seed finder:
// when the entropy heap has been drained but the layer still has
// uncollapsed cells (either never enqueued, or driven to a dead AllPossible
// revival by propagation), scan the layer in row-major order for the first
// remaining cell with popcount > 1 and hand it back to the caller to
// collapse and re-propagate from.
//
// This is a plain linear scan rather than a recursive backtracking search:
// spec §9 calls out that true WFC backtracking is out of scope, and a
// contradiction is treated as "restart local superposition", never undone
// globally.
func FindSeed(l *Layer, rng *RNG) (x, y int, ok bool) {
	for yy := 0; yy < l.Length; yy++ {
		for xx := 0; xx < l.Width; xx++ {
			c := l.At(xx, yy)
			if c != Void && Popcount(c) > 1 {
				return xx, yy, true
			}
		}
	}
	return 0, 0, false
}
