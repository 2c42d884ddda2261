package corridor

import (
	"fmt"

	assert "github.com/aurelien-rainone/assertgo"
	math "github.com/aurelien-rainone/math32"
)

// spawnRates is the length-6 spawn-rate vector of §4.3: one weight per
// functional tile category (X, T, L, I, D) plus an always-zero slot for
// Special X, which is never produced by natural collapse.
type spawnRates [NumCategories]float32

// maskModeRates is the fixed spawn-rate policy used when fullness < 100:
// biased toward connective shapes, because the mask is already organically
// shaped and dead-ends should stay rare (§4.3 "Mask mode").
var maskModeRates = spawnRates{
	CategoryX:        0.05,
	CategoryT:        0.20,
	CategoryL:        0.40,
	CategoryI:        0.30,
	CategoryD:        0.05,
	CategorySpecialX: 0,
}

// oceanRates computes the dynamic Gaussian spawn-rate policy used in ocean
// mode (fullness >= 100): early fill favors connective shapes (peak moves
// from category X (0) toward category D (4) as progress grows), late fill favors dead-ends to
// terminate branches, with an extra connector boost on L and I that fades
// out as progress approaches 1 (§4.3 "Ocean mode").
func oceanRates(progress float32) spawnRates {
	const width = float32(2)
	peak := 4 * progress

	var r spawnRates
	for cat := 0; cat < CategorySpecialX; cat++ {
		d := float32(cat) - peak
		r[cat] = math.Exp(-(d * d) / (2 * width * width))
	}
	boost := 2.5 * (1 - progress)
	r[CategoryL] += boost
	r[CategoryI] += boost
	r[CategorySpecialX] = 0

	var total float32
	for _, w := range r {
		total += w
	}
	if total > 0 {
		for i := range r {
			r[i] /= total
		}
	}
	return r
}

// layerSolver holds the per-layer scratch state WFC needs: the heap, RNG,
// running collapsed count and spawn-rate policy. It is owned entirely by
// one call to SolveLayer and never shared across layers (§3, §5).
type layerSolver struct {
	ctx       *Context
	layer     *Layer
	rng       *RNG
	heap      *entropyHeap
	target    int
	collapsed int
	oceanMode bool
	rates     spawnRates
	iterCap   int
}

// SolveLayer runs the full per-layer pipeline of §4.3 on an already
// architect-prepared layer: constraint propagation from voids and
// pre-placed stairs, the main WFC collapse loop, the defensive final
// sweep, edge sealing/fixup, region identification and welding, and
// finally unpacking back into single-bit tile masks. The layer is mutated
// in place and also returned for convenience.
func SolveLayer(ctx *Context, layer *Layer, fullness int32, seed uint32) *Layer {
	ctx.StartTimer(TimerSolveLayer)
	defer ctx.StopTimer(TimerSolveLayer)

	s := &layerSolver{
		ctx:       ctx,
		layer:     layer,
		rng:       NewRNG(seed),
		heap:      newEntropyHeap(layer.Width, layer.Length),
		target:    layer.CountNonVoid(),
		oceanMode: fullness >= 100,
	}
	if s.oceanMode {
		s.rates = oceanRates(0)
	} else {
		s.rates = maskModeRates
	}
	s.iterCap = 50 * layer.Width * layer.Length

	s.countInitialCollapsed()
	s.sealVoidWalls()
	s.propagateFromCollapsed()
	s.seedCenter()
	s.run()
	s.finalSweep()

	ctx.StartTimer(TimerEdgeSeal)
	sealEdges(layer)
	fixupEdges(layer)
	ctx.StopTimer(TimerEdgeSeal)

	packed := IdentifyRegions(ctx, layer)
	WeldRegions(ctx, layer, packed, s.rng)
	unpackLayer(layer, packed)

	return layer
}

func (s *layerSolver) countInitialCollapsed() {
	for _, c := range s.layer.Cells {
		if c != Void && Popcount(c) == 1 {
			s.collapsed++
		}
	}
}

// sealVoidWalls implements §4.3 step 2: every void cell forces its non-void
// neighbors closed on the shared side.
func (s *layerSolver) sealVoidWalls() {
	l := s.layer
	for y := 0; y < l.Length; y++ {
		for x := 0; x < l.Width; x++ {
			if l.At(x, y) != Void {
				continue
			}
			for d := Direction(0); d < NumDirections; d++ {
				nx, ny, ok := l.Neighbor(x, y, d)
				if !ok {
					continue
				}
				nc := l.At(nx, ny)
				if nc == Void || Popcount(nc) == 1 {
					continue
				}
				l.Set(nx, ny, nc&ClosedMask(d.Opposite()))
			}
		}
	}
}

// propagateFromCollapsed implements §4.3 step 3: every pre-placed
// collapsed cell (the architect's stairs) propagates its constraints.
func (s *layerSolver) propagateFromCollapsed() {
	l := s.layer
	for y := 0; y < l.Length; y++ {
		for x := 0; x < l.Width; x++ {
			c := l.At(x, y)
			if c != Void && Popcount(c) == 1 {
				s.propagate(x, y)
			}
		}
	}
}

// seedCenter implements §4.3 step 4: if the layer center is uncollapsed and
// non-void, force it to Normal X and propagate, then enqueue its
// neighbors.
func (s *layerSolver) seedCenter() {
	l := s.layer
	cx, cy := l.Width/2, l.Length/2
	c := l.At(cx, cy)
	if c == Void || Popcount(c) == 1 {
		return
	}
	l.Set(cx, cy, TileNormalX)
	s.collapsed++
	s.propagate(cx, cy)
	s.enqueueUncollapsedNeighbors(cx, cy)
}

func (s *layerSolver) enqueueUncollapsedNeighbors(x, y int) {
	l := s.layer
	for d := Direction(0); d < NumDirections; d++ {
		nx, ny, ok := l.Neighbor(x, y, d)
		if !ok {
			continue
		}
		nc := l.At(nx, ny)
		if nc != Void && Popcount(nc) > 1 {
			s.heap.InsertOrUpdate(nx, ny, s.score(nx, ny, nc))
		}
	}
}

func (s *layerSolver) score(x, y int, mask uint16) float32 {
	const epsilon = 0.01
	return float32(Popcount(mask)) + epsilon*s.rng.Float01()
}

// run is the main loop of §4.3 step 5.
func (s *layerSolver) run() {
	l := s.layer
	iter := 0
	for s.collapsed < s.target && iter < s.iterCap {
		iter++
		s.maybeUpdateRates()

		x, y, ok := s.heap.PopValid(func(x, y int) int {
			return Popcount(l.At(x, y))
		})
		if !ok {
			var found bool
			x, y, found = FindSeed(l, s.rng)
			if !found {
				break
			}
		}

		s.collapseAt(x, y)
		s.propagate(x, y)
		s.enqueueUncollapsedNeighbors(x, y)

		if s.oceanMode && s.collapsed >= s.target {
			s.voidTrim(x, y)
		}
	}
}

func (s *layerSolver) maybeUpdateRates() {
	if !s.oceanMode {
		return
	}
	if s.collapsed < 50 || s.collapsed%10 == 0 {
		progress := float32(s.collapsed) / float32(maxInt(s.target, 1))
		s.rates = oceanRates(progress)
	}
}

// collapseAt collapses the cell at (x, y) if it is not already collapsed,
// using the weighted collapse of §4.5, and updates the running collapsed
// count. The candidate set is first narrowed to the variants whose ports
// match every void or collapsed neighbor, so a cell revived to AllPossible
// by propagation cannot collapse against a neighbor it has not seen; if
// no variant matches them all, the unnarrowed set is used.
func (s *layerSolver) collapseAt(x, y int) {
	l := s.layer
	mask := l.At(x, y)
	if mask == Void || Popcount(mask) <= 1 {
		return
	}
	constrained := mask
	for d := Direction(0); d < NumDirections; d++ {
		nx, ny, ok := l.Neighbor(x, y, d)
		if !ok {
			continue
		}
		if nc := l.At(nx, ny); nc != Void && Popcount(nc) == 1 && HasPort(TileIndex(nc), d.Opposite()) {
			constrained &= OpenMask(d)
		} else if nc == Void || Popcount(nc) == 1 {
			constrained &= ClosedMask(d)
		}
	}
	if constrained != 0 {
		mask = constrained
	}
	chosen := weightedCollapse(mask, s.rates, s.rng)
	assert.True(chosen != 0 && chosen&(chosen-1) == 0,
		fmt.Sprintf("collapse at (%d,%d) produced non-single-bit result %#04x", x, y, chosen))
	l.Set(x, y, chosen)
	s.collapsed++
}

// weightedCollapse implements §4.5: sum the category weight across every
// set bit, draw u in [0, total), and walk the set bits subtracting weights
// until one crosses zero.
func weightedCollapse(mask uint16, rates spawnRates, rng *RNG) uint16 {
	assert.True(mask != 0, "weightedCollapse called with an empty mask")

	var total float32
	for idx := 0; idx < NumTiles; idx++ {
		bit := TileMask(idx)
		if mask&bit != 0 {
			total += rates[Category(idx)]
		}
	}

	if total <= 1e-6 {
		return uniformCollapse(mask, rng)
	}

	u := rng.Float01() * total
	var lastBit uint16
	for idx := 0; idx < NumTiles; idx++ {
		bit := TileMask(idx)
		if mask&bit == 0 {
			continue
		}
		lastBit = bit
		w := rates[Category(idx)]
		if u < w {
			return bit
		}
		u -= w
	}
	// Rounding residue: stable last resort is the highest set bit.
	return highestSetBit(mask, lastBit)
}

func uniformCollapse(mask uint16, rng *RNG) uint16 {
	n := Popcount(mask)
	assert.True(n > 0, "uniformCollapse called with an empty mask")
	pick := rng.IntN(n)
	for idx := 0; idx < NumTiles; idx++ {
		bit := TileMask(idx)
		if mask&bit == 0 {
			continue
		}
		if pick == 0 {
			return bit
		}
		pick--
	}
	return highestSetBit(mask, 0)
}

func highestSetBit(mask uint16, fallback uint16) uint16 {
	for idx := NumTiles - 1; idx >= 0; idx-- {
		bit := TileMask(idx)
		if mask&bit != 0 {
			return bit
		}
	}
	return fallback
}

// propagate implements §4.6: push the collapsed cell's port state onto
// each of its four neighbors. A neighbor driven to popcount 0 is revived
// to AllPossible rather than recursively re-propagated, which keeps every
// propagation step local and bounded; the revived cell is narrowed against
// its settled neighbors again when collapseAt picks it.
func (s *layerSolver) propagate(x, y int) {
	l := s.layer
	c := l.At(x, y)
	if c == Void {
		return
	}
	idx := TileIndex(c)

	for d := Direction(0); d < NumDirections; d++ {
		nx, ny, ok := l.Neighbor(x, y, d)
		if !ok {
			continue
		}
		nc := l.At(nx, ny)
		if nc == Void || Popcount(nc) == 1 {
			continue
		}

		var m uint16
		if HasPort(idx, d) {
			m = OpenMask(d.Opposite())
		} else {
			m = ClosedMask(d.Opposite())
		}

		next := nc & m
		if next == 0 {
			next = AllPossible
		}
		l.Set(nx, ny, next)
	}
}

// voidTrim implements §4.3's ocean-mode void-trim: once enough cells are
// collapsed, a newly collapsed cell that no collapsed neighbor actually
// requires (no neighbor opens a port toward it) is voided again, with the
// void propagated as a closed wall.
func (s *layerSolver) voidTrim(x, y int) {
	l := s.layer
	c := l.At(x, y)
	if c == Void || Popcount(c) != 1 {
		return
	}

	required := false
	for d := Direction(0); d < NumDirections; d++ {
		nx, ny, ok := l.Neighbor(x, y, d)
		if !ok {
			continue
		}
		nc := l.At(nx, ny)
		if nc == Void || Popcount(nc) != 1 {
			continue
		}
		nidx := TileIndex(nc)
		if HasPort(nidx, d.Opposite()) {
			required = true
			break
		}
	}
	if required {
		return
	}

	l.Set(x, y, Void)
	s.collapsed--
	for d := Direction(0); d < NumDirections; d++ {
		nx, ny, ok := l.Neighbor(x, y, d)
		if !ok {
			continue
		}
		nc := l.At(nx, ny)
		if nc == Void || Popcount(nc) == 1 {
			continue
		}
		next := nc & ClosedMask(d.Opposite())
		if next == 0 {
			next = AllPossible
		}
		l.Set(nx, ny, next)
	}
}

// finalSweep implements §4.3 step 6: any lingering superposition becomes
// void.
func (s *layerSolver) finalSweep() {
	l := s.layer
	for y := 0; y < l.Length; y++ {
		for x := 0; x < l.Width; x++ {
			c := l.At(x, y)
			if c != Void && Popcount(c) > 1 {
				l.Set(x, y, Void)
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
