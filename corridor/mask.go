package corridor

import "sort"

// maskOffsets4 are the plain 4-neighbor offsets used by the mask's island
// sanitization and dilation passes — unlike the solver's port-based
// adjacency, the mask is a simple filled/void boolean shape and uses
// ordinary grid adjacency.
var maskOffsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// BuildMask produces the boolean filled/void shape of §4.1: a spatially
// organic region approximately filling fullness% of a width*length layer,
// with a single connected component and no thin 1-cell filaments. The
// returned slice is row-major, true meaning "filled" (destined to become
// AllPossible once the architect writes it into a layer).
func BuildMask(ctx *Context, width, length int, fullness int32, seed uint32) []bool {
	ctx.StartTimer(TimerMaskGenerate)
	defer ctx.StopTimer(TimerMaskGenerate)

	n := width * length
	nf := newNoiseField(width, length, seed)

	type scored struct {
		idx   int
		score float32
	}
	scores := make([]scored, n)
	for y := 0; y < length; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			scores[i] = scored{idx: i, score: nf.scoreAt(x, y)}
		}
	}

	// Step 4: sort all pixels descending by score.
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	// Step 5: target cell count.
	target := n * int(clampFullness(fullness)) / 100
	if target > n {
		target = n
	}
	if target < 20 {
		target = 20
	}
	if target > n {
		target = n
	}

	// Step 6: mark top `target` cells filled.
	filled := make([]bool, n)
	for i := 0; i < target && i < len(scores); i++ {
		filled[scores[i].idx] = true
	}

	// Step 7: island sanitization — keep only the largest component.
	keepLargestComponent(filled, width, length)

	// Step 8: mandatory dilation, unconditional, exactly one pass.
	filled = dilatePass(filled, width, length)

	// Step 9: rescue dilations, bounded, capped at 1000 passes.
	filledCount := countTrue(filled)
	for pass := 0; filledCount < target && pass < 1000; pass++ {
		budget := target - filledCount
		next, added := dilateBounded(filled, width, length, budget)
		if added == 0 {
			break
		}
		filled = next
		filledCount += added
	}

	return filled
}

func clampFullness(f int32) int32 {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}

func countTrue(b []bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}

// keepLargestComponent flood-labels (with an explicit stack) every filled
// connected component (under plain 4-adjacency) and voids every cell not belonging to the largest one
// (§4.1 step 7).
func keepLargestComponent(filled []bool, width, length int) {
	n := width * length
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	var componentSizes []int
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if !filled[start] || labels[start] != -1 {
			continue
		}
		label := len(componentSizes)
		labels[start] = label
		queue = queue[:0]
		queue = append(queue, start)
		size := 0
		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			size++
			cx, cy := cur%width, cur/width
			for _, off := range maskOffsets4 {
				nx, ny := cx+off[0], cy+off[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= length {
					continue
				}
				ni := ny*width + nx
				if filled[ni] && labels[ni] == -1 {
					labels[ni] = label
					queue = append(queue, ni)
				}
			}
		}
		componentSizes = append(componentSizes, size)
	}

	if len(componentSizes) <= 1 {
		return
	}
	largest := 0
	for i, sz := range componentSizes {
		if sz > componentSizes[largest] {
			largest = i
		}
	}
	for i := range filled {
		if filled[i] && labels[i] != largest {
			filled[i] = false
		}
	}
}

// dilatePass fills every void cell that has at least one non-void
// 4-neighbor, unconditionally (§4.1 step 8).
func dilatePass(filled []bool, width, length int) []bool {
	next := make([]bool, len(filled))
	copy(next, filled)
	for y := 0; y < length; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if filled[i] {
				continue
			}
			for _, off := range maskOffsets4 {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= length {
					continue
				}
				if filled[ny*width+nx] {
					next[i] = true
					break
				}
			}
		}
	}
	return next
}

// dilateBounded performs one dilation pass but adds at most budget new
// cells, preferring row-major order, returning the new slice and how many
// cells it added (§4.1 step 9).
func dilateBounded(filled []bool, width, length, budget int) ([]bool, int) {
	next := make([]bool, len(filled))
	copy(next, filled)
	added := 0
	for y := 0; y < length && added < budget; y++ {
		for x := 0; x < width && added < budget; x++ {
			i := y*width + x
			if filled[i] {
				continue
			}
			for _, off := range maskOffsets4 {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= length {
					continue
				}
				if filled[ny*width+nx] {
					next[i] = true
					added++
					break
				}
			}
		}
	}
	return next, added
}
