package corridor

// entropyHeap is the indexed min-heap of §4.2: a binary heap of (x, y,
// score) nodes plus a side array mapping a linear cell index to its
// current heap slot (or -1 if absent), so insert_or_update can find and
// sift an existing entry instead of always appending.
type entropyHeap struct {
	width int
	nodes []heapNode
	index []int // index[y*width+x] -> position in nodes, or -1
}

type heapNode struct {
	x, y  int
	score float32
}

func newEntropyHeap(width, height int) *entropyHeap {
	idx := make([]int, width*height)
	for i := range idx {
		idx[i] = -1
	}
	return &entropyHeap{width: width, index: idx}
}

func (h *entropyHeap) cellIndex(x, y int) int {
	return y*h.width + x
}

func (h *entropyHeap) Len() int {
	return len(h.nodes)
}

// InsertOrUpdate implements §4.2's insert_or_update: if the cell is absent
// it is appended and sifted up; if present with a higher stored score, the
// score is lowered and it is sifted up. Scores only fall during solving
// (entropy is non-increasing), so sifting up is always sufficient.
func (h *entropyHeap) InsertOrUpdate(x, y int, score float32) {
	ci := h.cellIndex(x, y)
	pos := h.index[ci]
	if pos == -1 {
		h.nodes = append(h.nodes, heapNode{x: x, y: y, score: score})
		pos = len(h.nodes) - 1
		h.index[ci] = pos
		h.siftUp(pos)
		return
	}
	if score < h.nodes[pos].score {
		h.nodes[pos].score = score
		h.siftUp(pos)
	}
}

// PopValid implements §4.2's pop_valid: repeatedly pops the minimum-score
// entry, discarding stale entries (grid popcount <= 1, already collapsed
// or voided since being queued) until a live candidate is found or the
// heap is exhausted.
func (h *entropyHeap) PopValid(popcountAt func(x, y int) int) (x, y int, ok bool) {
	for h.Len() > 0 {
		x, y = h.popMin()
		if popcountAt(x, y) > 1 {
			return x, y, true
		}
	}
	return 0, 0, false
}

func (h *entropyHeap) popMin() (x, y int) {
	top := h.nodes[0]
	last := len(h.nodes) - 1
	h.swap(0, last)
	h.nodes = h.nodes[:last]
	h.index[h.cellIndex(top.x, top.y)] = -1
	if len(h.nodes) > 0 {
		h.siftDown(0)
	}
	return top.x, top.y
}

func (h *entropyHeap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.index[h.cellIndex(h.nodes[i].x, h.nodes[i].y)] = i
	h.index[h.cellIndex(h.nodes[j].x, h.nodes[j].y)] = j
}

func (h *entropyHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].score <= h.nodes[i].score {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *entropyHeap) siftDown(i int) {
	n := len(h.nodes)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.nodes[left].score < h.nodes[smallest].score {
			smallest = left
		}
		if right < n && h.nodes[right].score < h.nodes[smallest].score {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
