package corridor

// The sixteen corridor tile variants, each represented as a single set bit
// within a 16-bit word. A Cell during solving stores the OR of every
// variant still possible at that position; a collapsed cell has exactly one
// bit set.
//
// Bit layout mirrors the serialization contract a file writer depends on:
// bit index equals tile index, and 1<<index is the tile's mask value.
const (
	TileNECorner uint16 = 1 << iota // 0: opening pair N,E
	TileSECorner                    // 1: opening pair S,E
	TileSWCorner                    // 2: opening pair S,W
	TileNWCorner                    // 3: opening pair N,W
	TileStraightNS                  // 4: N-S straight
	TileStraightWE                  // 5: W-E straight
	TileTMissingN                   // 6: T-junction, opening on E,S,W
	TileTMissingE                   // 7: T-junction, opening on N,S,W
	TileTMissingS                   // 8: T-junction, opening on N,E,W
	TileTMissingW                   // 9: T-junction, opening on N,E,S
	TileNormalX                     // 10: four-way junction
	TileSpecialX                    // 11: four-way junction, inter-layer stair
	TileDeadEndN                    // 12: single opening N
	TileDeadEndE                    // 13: single opening E
	TileDeadEndS                    // 14: single opening S
	TileDeadEndW                    // 15: single opening W
)

// NumTiles is the size of the tile vocabulary.
const NumTiles = 16

// Void marks a cell outside the mask, or the architect's pre-fill state.
const Void uint16 = 0

// AllPossible is the bitwise-OR of every tile variant: the universal
// superposition a freshly-filled cell starts in.
const AllPossible uint16 = (1 << NumTiles) - 1

// PackedVoid is the sentinel packed-cell value meaning "no region, no
// tile" during the region-identification and welding phases (§3).
const PackedVoid uint16 = 0xFFFF

// Direction enumerates the four cardinal ports a tile can open on.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the number of cardinal directions.
const NumDirections = 4

// Opposite returns the direction facing the opposite way, e.g. the
// direction a neighbor must open on to match an open port of ours.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// dx/dy give the cell-offset to step to the neighbor in direction d, with
// y increasing southward (row-major iteration order, matching §5's
// ordering guarantee).
var dirDX = [NumDirections]int{0, 1, 0, -1}
var dirDY = [NumDirections]int{-1, 0, 1, 0}

// Step returns the neighbor coordinate reached by moving one cell from
// (x, y) in direction d.
func (d Direction) Step(x, y int) (int, int) {
	return x + dirDX[d], y + dirDY[d]
}

// portBit returns the single flag bit (1, 2, 4, 8) used in the flags<->variant
// tables for direction d.
func portBit(d Direction) uint8 {
	return 1 << uint8(d)
}

// tilePorts holds, for each of the 16 tile indices, which of the four
// directions are open. Built once in init from the vocabulary definition
// above rather than hand-duplicated, so the rest of the package can derive
// every other table (open/closed masks, flags<->variant) mechanically.
var tilePorts [NumTiles][NumDirections]bool

func init() {
	set := func(idx int, dirs ...Direction) {
		for _, d := range dirs {
			tilePorts[idx][d] = true
		}
	}
	set(0, North, East)          // NE corner
	set(1, South, East)          // SE corner
	set(2, South, West)          // SW corner
	set(3, North, West)          // NW corner
	set(4, North, South)         // N-S straight
	set(5, West, East)           // W-E straight
	set(6, East, South, West)    // T, missing N
	set(7, North, South, West)   // T, missing E
	set(8, North, East, West)    // T, missing S
	set(9, North, East, South)   // T, missing W
	set(10, North, East, South, West) // normal X
	set(11, North, East, South, West) // special X (stair)
	set(12, North)                    // dead end N
	set(13, East)                     // dead end E
	set(14, South)                    // dead end S
	set(15, West)                     // dead end W
}

// TileIndex returns the 0..15 index of a single-bit tile mask. Panics (via
// assert) if mask is not a power of two in range, since callers only ever
// pass already-collapsed cells here.
func TileIndex(mask uint16) int {
	assertSingleBit(mask)
	idx := 0
	for mask > 1 {
		mask >>= 1
		idx++
	}
	return idx
}

// TileMask returns the single-bit mask for a tile index 0..15.
func TileMask(idx int) uint16 {
	return 1 << uint(idx)
}

// HasPort reports whether the collapsed tile at idx has an open port
// facing direction d.
func HasPort(idx int, d Direction) bool {
	return tilePorts[idx][d]
}

// PortFlags packs the four-direction openness of a tile into a 4-bit set,
// bit d set iff the tile opens on direction d. Used by the edge sealer and
// fixup pass to go from "which sides must be open" back to a tile.
func PortFlags(idx int) uint8 {
	var f uint8
	for d := Direction(0); d < NumDirections; d++ {
		if tilePorts[idx][d] {
			f |= portBit(d)
		}
	}
	return f
}

// openMask[d] is the bitwise-OR of every tile variant with an open port on
// side d; closedMask[d] is its complement within AllPossible.
var openMask [NumDirections]uint16
var closedMask [NumDirections]uint16

func init() {
	for idx := 0; idx < NumTiles; idx++ {
		for d := Direction(0); d < NumDirections; d++ {
			if tilePorts[idx][d] {
				openMask[d] |= TileMask(idx)
			}
		}
	}
	for d := Direction(0); d < NumDirections; d++ {
		closedMask[d] = AllPossible &^ openMask[d]
	}
}

// OpenMask returns the open-mask for direction d (§3 "derived" masks).
func OpenMask(d Direction) uint16 { return openMask[d] }

// ClosedMask returns the closed-mask for direction d.
func ClosedMask(d Direction) uint16 { return closedMask[d] }

// flagsToVariant maps a non-zero 4-bit port-flag set to the tile index
// whose open ports exactly match it. Index 15 (all four ports open) maps
// to NormalX; SpecialX is never produced by this derivation since it is
// placed only by the architect (§4.7, §9).
var flagsToVariant [1 << NumDirections]int

func init() {
	for i := range flagsToVariant {
		flagsToVariant[i] = -1
	}
	for idx := 0; idx < NumTiles; idx++ {
		if idx == TileIndex(TileSpecialX) {
			continue
		}
		flagsToVariant[PortFlags(idx)] = idx
	}
}

// VariantForFlags returns the tile index whose port set exactly matches
// flags (a non-zero subset of {1,2,4,8}), or -1 if flags is zero or does
// not correspond to any receivable shape.
func VariantForFlags(flags uint8) int {
	if flags == 0 || int(flags) >= len(flagsToVariant) {
		return -1
	}
	return flagsToVariant[flags]
}

// category indices into the spawn-rate vector (§4.3/§4.5).
const (
	CategoryX = iota
	CategoryT
	CategoryL
	CategoryI
	CategoryD
	CategorySpecialX
	NumCategories
)

// tileCategory maps each tile index to its spawn-rate category.
var tileCategory [NumTiles]int

func init() {
	tileCategory[TileIndex(TileNormalX)] = CategoryX
	tileCategory[TileIndex(TileSpecialX)] = CategorySpecialX
	for _, idx := range []uint16{TileTMissingN, TileTMissingE, TileTMissingS, TileTMissingW} {
		tileCategory[TileIndex(idx)] = CategoryT
	}
	for _, idx := range []uint16{TileNECorner, TileSECorner, TileSWCorner, TileNWCorner} {
		tileCategory[TileIndex(idx)] = CategoryL
	}
	for _, idx := range []uint16{TileStraightNS, TileStraightWE} {
		tileCategory[TileIndex(idx)] = CategoryI
	}
	for _, idx := range []uint16{TileDeadEndN, TileDeadEndE, TileDeadEndS, TileDeadEndW} {
		tileCategory[TileIndex(idx)] = CategoryD
	}
}

// Category returns the spawn-rate category of a tile index.
func Category(idx int) int {
	return tileCategory[idx]
}

// Popcount returns the number of set bits in a cell mask — the cell's
// entropy measure before collapse (§3).
func Popcount(mask uint16) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}
