package corridor

import "testing"

func TestOpenClosedMasksComplementary(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		if OpenMask(d)|ClosedMask(d) != AllPossible {
			t.Fatalf("direction %v: open|closed != AllPossible", d)
		}
		if OpenMask(d)&ClosedMask(d) != 0 {
			t.Fatalf("direction %v: open&closed != 0", d)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	ttable := []struct {
		d, want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}
	for _, tt := range ttable {
		if got := tt.d.Opposite(); got != tt.want {
			t.Fatalf("Opposite(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestVariantForFlagsRoundTrip(t *testing.T) {
	for idx := 0; idx < NumTiles; idx++ {
		if idx == TileIndex(TileSpecialX) {
			continue
		}
		flags := PortFlags(idx)
		got := VariantForFlags(flags)
		if got != idx {
			t.Fatalf("VariantForFlags(PortFlags(%d)) = %d, want %d", idx, got, idx)
		}
	}
}

func TestVariantForFlagsRejectsZero(t *testing.T) {
	if got := VariantForFlags(0); got != -1 {
		t.Fatalf("VariantForFlags(0) = %d, want -1", got)
	}
}

func TestPopcount(t *testing.T) {
	ttable := []struct {
		mask uint16
		want int
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{AllPossible, 16},
	}
	for _, tt := range ttable {
		if got := Popcount(tt.mask); got != tt.want {
			t.Fatalf("Popcount(%#04x) = %d, want %d", tt.mask, got, tt.want)
		}
	}
}

func TestCategoryCoversEveryNaturalTile(t *testing.T) {
	for idx := 0; idx < NumTiles; idx++ {
		if idx == TileIndex(TileSpecialX) {
			continue
		}
		if cat := Category(idx); cat < CategoryX || cat >= CategorySpecialX {
			t.Fatalf("tile %d has unexpected category %d", idx, cat)
		}
	}
}

func TestHasPortMatchesPortFlags(t *testing.T) {
	for idx := 0; idx < NumTiles; idx++ {
		flags := PortFlags(idx)
		for d := Direction(0); d < NumDirections; d++ {
			want := flags&portBit(d) != 0
			if got := HasPort(idx, d); got != want {
				t.Fatalf("tile %d direction %v: HasPort=%v, PortFlags bit=%v", idx, d, got, want)
			}
		}
	}
}
