package corridor

// Cell is a single grid position during WFC solving: a 16-bit set of still-
// possible tile variants. Void (0) means outside the mask; popcount 1 means
// collapsed; popcount > 1 means superposition; popcount 0 is a transient
// contradiction the solver must revive (§3, §4.4).
type Cell = uint16

// PackedCell is the 16-bit [RegionID:12 | TileIndex:4] representation used
// during region identification and welding (§3). PackedVoid (0xFFFF) marks
// a cell outside the mask in this view.
type PackedCell = uint16

const (
	packedTileBits = 4
	packedTileMask = (1 << packedTileBits) - 1

	// MaxRegionID is the largest region id the 12-bit region field can
	// hold (§4.8: "Stop if RegionID would exceed 4095").
	MaxRegionID = (1 << (16 - packedTileBits)) - 1
)

// PackCell combines a tile index (0..15) and a region id (1..MaxRegionID)
// into a PackedCell.
func PackCell(tileIndex int, regionID int) PackedCell {
	return PackedCell(uint16(regionID)<<packedTileBits | uint16(tileIndex&packedTileMask))
}

// UnpackTileIndex extracts the 4-bit tile index from a packed cell.
func UnpackTileIndex(p PackedCell) int {
	return int(p & packedTileMask)
}

// UnpackRegionID extracts the 12-bit region id from a packed cell.
func UnpackRegionID(p PackedCell) int {
	return int(p >> packedTileBits)
}

// WithRegionID returns p with its region-id field replaced, keeping the
// same tile index.
func WithRegionID(p PackedCell, regionID int) PackedCell {
	return PackCell(UnpackTileIndex(p), regionID)
}

// WithTileIndex returns p with its tile-index field replaced, keeping the
// same region id.
func WithTileIndex(p PackedCell, tileIndex int) PackedCell {
	return PackCell(tileIndex, UnpackRegionID(p))
}
