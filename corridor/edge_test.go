package corridor

import "testing"

func TestSealEdgesFillsVoidFacingOpenPort(t *testing.T) {
	l := newLayer(3, 3)
	l.Set(1, 1, TileDeadEndE) // (1,1) opens only East, toward the void at (2,1)

	sealEdges(l)

	c := l.At(2, 1)
	if c == Void {
		t.Fatalf("expected (2,1) to be filled as a receiver, stayed void")
	}
	idx := TileIndex(c)
	if !HasPort(idx, West) {
		t.Fatalf("expected (2,1) to open West toward the incoming port")
	}
	if HasPort(idx, North) || HasPort(idx, South) || HasPort(idx, East) {
		t.Fatalf("expected (2,1) to open only on the side facing the incoming port")
	}
	// (1,1) itself is untouched by sealing.
	if got := l.At(1, 1); got != TileDeadEndE {
		t.Fatalf("expected (1,1) to be left unchanged, got %#04x", got)
	}
}

func TestSealEdgesLeavesUnwantedVoidAlone(t *testing.T) {
	l := newLayer(3, 3)
	l.Set(1, 1, TileStraightNS) // opens North/South only; (2,1) has no incoming port

	sealEdges(l)

	if got := l.At(2, 1); got != Void {
		t.Fatalf("expected (2,1) with no incoming port to remain void, got %#04x", got)
	}
}

func TestSealEdgesMergesPortsFromMultipleNeighbors(t *testing.T) {
	l := newLayer(3, 3)
	l.Set(1, 0, TileDeadEndS) // opens South, into the void at (1,1)
	l.Set(0, 1, TileDeadEndE) // opens East, into the void at (1,1)

	sealEdges(l)

	c := l.At(1, 1)
	if c == Void {
		t.Fatalf("expected (1,1) to be filled from two incoming ports")
	}
	idx := TileIndex(c)
	if !HasPort(idx, North) || !HasPort(idx, West) {
		t.Fatalf("expected (1,1) to open North and West, got %#04x", c)
	}
	if HasPort(idx, South) || HasPort(idx, East) {
		t.Fatalf("expected (1,1) to open only on the two incoming sides")
	}
}

func TestFixupEdgesClosesOutwardBoundaryPorts(t *testing.T) {
	l := newLayer(3, 3)
	// Fill a 3x3 block with normal crossings so every boundary cell has an
	// outward-facing port before fixup.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			l.Set(x, y, TileNormalX)
		}
	}

	fixupEdges(l)

	for x := 0; x < 3; x++ {
		top := l.At(x, 0)
		if top != Void && HasPort(TileIndex(top), North) {
			t.Fatalf("cell (%d,0) retains a North port after fixup", x)
		}
		bottom := l.At(x, 2)
		if bottom != Void && HasPort(TileIndex(bottom), South) {
			t.Fatalf("cell (%d,2) retains a South port after fixup", x)
		}
	}
	for y := 0; y < 3; y++ {
		left := l.At(0, y)
		if left != Void && HasPort(TileIndex(left), West) {
			t.Fatalf("cell (0,%d) retains a West port after fixup", y)
		}
		right := l.At(2, y)
		if right != Void && HasPort(TileIndex(right), East) {
			t.Fatalf("cell (2,%d) retains an East port after fixup", y)
		}
	}
}
