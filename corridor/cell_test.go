package corridor

import "testing"

func TestPackCellRoundTrip(t *testing.T) {
	ttable := []struct {
		tileIndex, regionID int
	}{
		{0, 1}, {15, 4095}, {10, 0}, {3, 2048},
	}
	for _, tt := range ttable {
		p := PackCell(tt.tileIndex, tt.regionID)
		if got := UnpackTileIndex(p); got != tt.tileIndex {
			t.Fatalf("UnpackTileIndex(PackCell(%d,%d)) = %d", tt.tileIndex, tt.regionID, got)
		}
		if got := UnpackRegionID(p); got != tt.regionID {
			t.Fatalf("UnpackRegionID(PackCell(%d,%d)) = %d", tt.tileIndex, tt.regionID, got)
		}
	}
}

func TestWithRegionIDPreservesTile(t *testing.T) {
	p := PackCell(7, 3)
	p2 := WithRegionID(p, 99)
	if UnpackTileIndex(p2) != 7 {
		t.Fatalf("WithRegionID changed tile index")
	}
	if UnpackRegionID(p2) != 99 {
		t.Fatalf("WithRegionID did not update region id")
	}
}

func TestWithTileIndexPreservesRegion(t *testing.T) {
	p := PackCell(7, 3)
	p2 := WithTileIndex(p, 2)
	if UnpackRegionID(p2) != 3 {
		t.Fatalf("WithTileIndex changed region id")
	}
	if UnpackTileIndex(p2) != 2 {
		t.Fatalf("WithTileIndex did not update tile index")
	}
}
