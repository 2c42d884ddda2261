package corridor

import "testing"

func TestWeldRegionsJoinsTwoRegions(t *testing.T) {
	// Two isolated 1-cell "regions" sitting side by side with both ports
	// closed, so they start in separate regions and must be bridged.
	l := newLayer(2, 1)
	l.Set(0, 0, TileDeadEndN)
	l.Set(1, 0, TileDeadEndN)

	packed := IdentifyRegions(NopContext(), l)
	if UnpackRegionID(packed[0]) == UnpackRegionID(packed[1]) {
		t.Fatalf("precondition failed: cells should start in different regions")
	}

	WeldRegions(NopContext(), l, packed, NewRNG(1))

	idx0 := UnpackTileIndex(packed[0])
	idx1 := UnpackTileIndex(packed[1])
	if !HasPort(idx0, East) || !HasPort(idx1, West) {
		t.Fatalf("expected welder to carve a matching East/West port pair, got idx0=%d idx1=%d", idx0, idx1)
	}
}

func TestWeldRegionsNoopOnSingleRegion(t *testing.T) {
	l := newLayer(3, 1)
	l.Set(0, 0, TileDeadEndE)
	l.Set(1, 0, TileStraightWE)
	l.Set(2, 0, TileDeadEndW)

	packed := IdentifyRegions(NopContext(), l)
	before := append([]PackedCell(nil), packed...)

	WeldRegions(NopContext(), l, packed, NewRNG(1))

	for i := range packed {
		if packed[i] != before[i] {
			t.Fatalf("expected no change when already a single region, cell %d changed", i)
		}
	}
}

func TestUnionFindPathCompression(t *testing.T) {
	uf := newUnionFind(5)
	if !uf.union(0, 1) {
		t.Fatalf("expected first union to succeed")
	}
	if !uf.union(1, 2) {
		t.Fatalf("expected second union to succeed")
	}
	if uf.union(0, 2) {
		t.Fatalf("expected union of already-joined roots to report false")
	}
	if uf.find(0) != uf.find(2) {
		t.Fatalf("expected 0 and 2 to share a root after transitive union")
	}
}
