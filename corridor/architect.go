package corridor

// minStairsPerBoundary is the floor on inter-layer stair pairs regardless of
// grid area, guaranteeing the medium end-to-end scenario (§8) its "at least
// 2*(H-1) SpecialX cells" floor even on a minimum-size grid.
const minStairsPerBoundary = 2

// stairAttemptsPerPair bounds the architect's rejection sampling (§9:
// "intentionally simple random rejection sampling") in proportion to the
// number of pairs being placed, so a pathological mask (e.g. nearly empty)
// cannot spin forever while still scaling attempts with larger targets.
const stairAttemptsPerPair = 20

// stairsForArea scales the stair-pair target with grid area (one pair per
// 400 cells), floored at minStairsPerBoundary, so larger maps get a denser
// vertical connection lattice instead of the same fixed handful of stairs
// regardless of size.
func stairsForArea(width, length int) int {
	n := (width * length) / 400
	if n < minStairsPerBoundary {
		return minStairsPerBoundary
	}
	return n
}

// StairPair records one inter-layer connector: a Special X emitter on
// LowerZ at (X, Y), feeding a Normal X receiver directly above it on
// LowerZ+1.
type StairPair struct {
	X, Y   int
	LowerZ int
}

// Architect is the single-threaded, whole-volume pass that builds the
// shape mask for every layer and pre-places every inter-layer stair pair,
// before any per-layer solver worker starts (§2 phase 1, §5).
type Architect struct {
	ctx   *Context
	rng   *RNG
	Mask  []bool // layer-0 mask, copied to every layer (§4.1 step 10)
	Width int
	Length int
	Stairs []StairPair
}

// NewArchitect runs the architect pass: generates the shared mask and
// places stair pairs, returning the grid it prepared. The RNG passed in is
// advanced by this call; callers wanting reproducible per-layer seeds
// should derive them afterward from the same top-level RNG chain (§5).
func NewArchitect(ctx *Context, cfg Config, rng *RNG) (*Grid, *Architect) {
	ctx.StartTimer(TimerArchitect)
	defer ctx.StopTimer(TimerArchitect)

	width, length, height := int(cfg.Width), int(cfg.Length), int(cfg.Height)
	mask := BuildMask(ctx, width, length, cfg.ClampedFullness(), cfg.Seed)

	a := &Architect{ctx: ctx, rng: rng, Mask: mask, Width: width, Length: length}

	grid := NewGrid(width, length, height)
	for z := 0; z < height; z++ {
		layer := grid.Layers[z]
		for y := 0; y < length; y++ {
			for x := 0; x < width; x++ {
				if mask[y*width+x] {
					layer.Set(x, y, AllPossible)
				}
			}
		}
	}

	for z := 0; z < height-1; z++ {
		a.placeStairsAt(grid, z)
	}

	ctx.Progressf("architect: mask filled %d/%d cells per layer, placed %d stair pairs",
		countTrue(mask), width*length, len(a.Stairs))

	return grid, a
}

// placeStairsAt places stairsForArea(width, length) connectors between layer
// z and z+1, using rejection sampling over filled (x, y) positions that are
// still in their natural AllPossible state on both layers and not on the
// outermost ring (a stair on the boundary would be immediately stripped of
// its outward ports by fixupEdges). A position directly above a stair
// already placed on the boundary below it is rejected too, so stairs never
// stack straight through three or more layers. No attempt is made to
// ensure the stair is reachable within either layer (§9).
func (a *Architect) placeStairsAt(grid *Grid, z int) {
	lower := grid.Layers[z]
	upper := grid.Layers[z+1]
	target := stairsForArea(a.Width, a.Length)
	maxAttempts := target * stairAttemptsPerPair

	placed := 0
	for attempt := 0; attempt < maxAttempts && placed < target; attempt++ {
		x := a.rng.IntN(a.Width)
		y := a.rng.IntN(a.Length)

		if x < 1 || y < 1 || x >= a.Width-1 || y >= a.Length-1 {
			continue
		}
		if lower.At(x, y) != AllPossible || upper.At(x, y) != AllPossible {
			continue
		}
		if z > 0 && grid.Layers[z-1].At(x, y) == TileSpecialX {
			continue
		}

		lower.Set(x, y, TileSpecialX)
		upper.Set(x, y, TileNormalX)
		a.Stairs = append(a.Stairs, StairPair{X: x, Y: y, LowerZ: z})
		placed++
	}
}
