package corridor

import (
	"fmt"

	assert "github.com/aurelien-rainone/assertgo"
)

// bridge is a candidate wall to carve between two different regions, found
// at cell a looking toward its neighbor b in direction d.
type bridge struct {
	ax, ay int
	bx, by int
	d      Direction
}

// unionFind is the path-compressed Union-Find used by WeldRegions to build
// a minimum spanning forest over regions (§4.9 step 3).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	assert.True(x >= 0 && x < len(u.parent),
		fmt.Sprintf("union-find index %d out of range for %d parents", x, len(u.parent)))
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[ra] = rb
	return true
}

// WeldRegions implements §4.9: enumerate every east/south candidate bridge
// between two differently-regioned cells, shuffle them, then Kruskal-walk
// the shuffled list carving a wall open (on both sides) whenever it joins
// two still-separate regions, until a single spanning forest remains or the
// candidate list is exhausted. packed is mutated in place: carved cells get
// their tile index updated to the flags-matching variant that includes the
// new port.
func WeldRegions(ctx *Context, l *Layer, packed []PackedCell, rng *RNG) {
	ctx.StartTimer(TimerWeld)
	defer ctx.StopTimer(TimerWeld)

	maxRegion := 0
	for _, p := range packed {
		if p == PackedVoid {
			continue
		}
		if r := UnpackRegionID(p); r > maxRegion {
			maxRegion = r
		}
	}
	if maxRegion <= 1 {
		return
	}

	bridges := make([]bridge, 0, 2*l.Width*l.Length)
	for y := 0; y < l.Length; y++ {
		for x := 0; x < l.Width; x++ {
			ai := y*l.Width + x
			if packed[ai] == PackedVoid {
				continue
			}
			for _, d := range [2]Direction{East, South} {
				nx, ny, ok := l.Neighbor(x, y, d)
				if !ok {
					continue
				}
				bi := ny*l.Width + nx
				if packed[bi] == PackedVoid {
					continue
				}
				ra, rb := UnpackRegionID(packed[ai]), UnpackRegionID(packed[bi])
				if ra == 0 || rb == 0 {
					// Cells left unassigned by region-id overflow (§7) are
					// never welded — only cells that carry a region id
					// participate.
					continue
				}
				if ra == rb {
					continue
				}
				bridges = append(bridges, bridge{ax: x, ay: y, bx: nx, by: ny, d: d})
			}
		}
	}
	if len(bridges) == 0 {
		return
	}

	order := make([]int, len(bridges))
	for i := range order {
		order[i] = i
	}
	rng.ShuffleInts(order)

	uf := newUnionFind(maxRegion + 1)
	merged := 0
	target := maxRegion - 1

	for _, oi := range order {
		if merged >= target {
			break
		}
		b := bridges[oi]
		ai := b.ay*l.Width + b.ax
		bi := b.by*l.Width + b.bx
		ra := UnpackRegionID(packed[ai])
		rb := UnpackRegionID(packed[bi])
		if !uf.union(ra, rb) {
			continue
		}
		carve(packed, l.Width, ai, bi, b.d)
		merged++
	}

	ctx.Progressf("weld: %d regions joined by %d bridges", maxRegion, merged)
}

// carve opens the shared wall between cell ai and its neighbor bi in
// direction d on both sides, re-deriving each cell's tile index from its
// widened port-flag set.
func carve(packed []PackedCell, width, ai, bi int, d Direction) {
	aIdx := UnpackTileIndex(packed[ai])
	bIdx := UnpackTileIndex(packed[bi])

	aFlags := PortFlags(aIdx) | portBit(d)
	bFlags := PortFlags(bIdx) | portBit(d.Opposite())

	// Every non-empty subset of the four ports has a matching variant
	// (tile.go's flagsToVariant table is total over 1..15), so widening a
	// port set by one bit can never fail to resolve to a tile.
	aNewIdx := VariantForFlags(aFlags)
	assert.True(aNewIdx >= 0, fmt.Sprintf("no tile variant for widened port flags %#02x", aFlags))
	packed[ai] = WithTileIndex(packed[ai], aNewIdx)

	bNewIdx := VariantForFlags(bFlags)
	assert.True(bNewIdx >= 0, fmt.Sprintf("no tile variant for widened port flags %#02x", bFlags))
	packed[bi] = WithTileIndex(packed[bi], bNewIdx)
}
