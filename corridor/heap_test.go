package corridor

import "testing"

func TestEntropyHeapPopOrder(t *testing.T) {
	h := newEntropyHeap(4, 4)
	h.InsertOrUpdate(0, 0, 5)
	h.InsertOrUpdate(1, 0, 2)
	h.InsertOrUpdate(2, 0, 8)
	h.InsertOrUpdate(3, 0, 1)

	popcount := map[[2]int]int{
		{0, 0}: 2, {1, 0}: 2, {2, 0}: 2, {3, 0}: 2,
	}
	popAt := func(x, y int) int { return popcount[[2]int{x, y}] }

	x, y, ok := h.PopValid(popAt)
	if !ok || (x != 3 || y != 0) {
		t.Fatalf("first pop = (%d,%d,%v), want (3,0,true)", x, y, ok)
	}
	x, y, ok = h.PopValid(popAt)
	if !ok || (x != 1 || y != 0) {
		t.Fatalf("second pop = (%d,%d,%v), want (1,0,true)", x, y, ok)
	}
}

func TestEntropyHeapSkipsStaleEntries(t *testing.T) {
	h := newEntropyHeap(4, 4)
	h.InsertOrUpdate(0, 0, 1)
	h.InsertOrUpdate(1, 0, 2)

	popcount := map[[2]int]int{{0, 0}: 1, {1, 0}: 3}
	popAt := func(x, y int) int { return popcount[[2]int{x, y}] }

	x, y, ok := h.PopValid(popAt)
	if !ok || x != 1 || y != 0 {
		t.Fatalf("expected stale entry at (0,0) to be skipped, got (%d,%d,%v)", x, y, ok)
	}
}

func TestEntropyHeapEmptyReturnsFalse(t *testing.T) {
	h := newEntropyHeap(4, 4)
	_, _, ok := h.PopValid(func(int, int) int { return 2 })
	if ok {
		t.Fatalf("expected PopValid on empty heap to return false")
	}
}

func TestEntropyHeapInsertOrUpdateLowersScore(t *testing.T) {
	h := newEntropyHeap(4, 4)
	h.InsertOrUpdate(0, 0, 10)
	h.InsertOrUpdate(1, 0, 5)
	h.InsertOrUpdate(0, 0, 1) // lower score for the same cell

	popcount := map[[2]int]int{{0, 0}: 2, {1, 0}: 2}
	popAt := func(x, y int) int { return popcount[[2]int{x, y}] }

	x, y, ok := h.PopValid(popAt)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("expected (0,0) to sort first after lowering its score, got (%d,%d,%v)", x, y, ok)
	}
}
