package corridor

import (
	"fmt"

	assert "github.com/aurelien-rainone/assertgo"
)

// IdentifyRegions implements §4.8: compress every collapsed cell of l into
// a PackedCell [RegionID:12 | TileIndex:4], void cells becoming
// PackedVoid, then flood-fill dense region ids 1..MaxRegionID across
// connected components. Two cells are connected only if they are adjacent
// AND the shared side is open on both — plain 4-adjacency is not enough,
// since two corridors can sit side by side with a solid wall between them.
//
// The flood fill is iterative (an explicit stack), never recursive: a
// width*length grid can be large enough that a call-stack-based DFS would
// risk overflow, and the teacher's own region.go (recast's watershed
// partitioning) uses the same explicit-stack style for exactly this
// reason.
func IdentifyRegions(ctx *Context, l *Layer) []PackedCell {
	ctx.StartTimer(TimerRegionIdentify)
	defer ctx.StopTimer(TimerRegionIdentify)

	n := l.Width * l.Length
	packed := make([]PackedCell, n)
	for i, c := range l.Cells {
		if c == Void {
			packed[i] = PackedVoid
			continue
		}
		packed[i] = PackCell(TileIndex(c), 0)
	}

	visited := make([]bool, n)
	nextRegion := 1
	stack := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] || packed[start] == PackedVoid {
			continue
		}
		if nextRegion > MaxRegionID {
			ctx.Warningf("region identify: region id limit %d reached, remaining cells left unmerged", MaxRegionID)
			break
		}

		region := nextRegion
		nextRegion++
		assert.True(region >= 1 && region <= MaxRegionID,
			fmt.Sprintf("region id %d escaped the 12-bit packed field", region))

		stack = stack[:0]
		stack = append(stack, start)
		visited[start] = true

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			packed[cur] = WithRegionID(packed[cur], region)
			cx, cy := cur%l.Width, cur/l.Width
			idx := UnpackTileIndex(packed[cur])
			assert.True(idx >= 0 && idx < NumTiles,
				fmt.Sprintf("packed cell at (%d,%d) carries out-of-range tile index %d", cx, cy, idx))

			for d := Direction(0); d < NumDirections; d++ {
				if !HasPort(idx, d) {
					continue
				}
				nx, ny, ok := l.Neighbor(cx, cy, d)
				if !ok {
					continue
				}
				ni := ny*l.Width + nx
				if packed[ni] == PackedVoid || visited[ni] {
					continue
				}
				nIdx := UnpackTileIndex(packed[ni])
				if !HasPort(nIdx, d.Opposite()) {
					continue
				}
				visited[ni] = true
				stack = append(stack, ni)
			}
		}
	}

	ctx.Progressf("region identify: %d regions found", nextRegion-1)
	return packed
}

// unpackLayer writes the tile indices recorded in packed back into l as
// single-bit collapsed cells, discarding the region ids once welding has
// finished using them (§4.3 step 8, §4.9).
func unpackLayer(l *Layer, packed []PackedCell) {
	for i, p := range packed {
		if p == PackedVoid {
			l.Cells[i] = Void
			continue
		}
		l.Cells[i] = TileMask(UnpackTileIndex(p))
	}
}
