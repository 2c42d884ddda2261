package corridor

// sealEdges implements §4.7's edge sealing: a void cell adjacent to a
// collapsed neighbor whose port points at it is not left empty — it is
// filled with the receiver variant matching whichever sides have an
// incoming port, turning a stray open port against the void into a real
// dead-end or junction instead of leaving a hole. Cells that already
// collapsed are never touched by this pass.
func sealEdges(l *Layer) {
	for y := 0; y < l.Length; y++ {
		for x := 0; x < l.Width; x++ {
			if l.At(x, y) != Void {
				continue
			}

			var flags uint8
			for d := Direction(0); d < NumDirections; d++ {
				nx, ny, ok := l.Neighbor(x, y, d)
				if !ok {
					continue
				}
				nc := l.At(nx, ny)
				if nc == Void || Popcount(nc) != 1 {
					continue
				}
				if HasPort(TileIndex(nc), d.Opposite()) {
					flags |= portBit(d)
				}
			}

			if flags == 0 {
				continue
			}
			if newIdx := VariantForFlags(flags); newIdx >= 0 {
				l.Set(x, y, TileMask(newIdx))
			}
		}
	}
}

// fixupEdges implements §4.7's boundary fixup: cells on the outermost ring
// of the layer can never have a neighbor outside the grid, so any port
// pointing off the edge of the array is cleared and the cell re-derived
// from its remaining ports (voided if none remain). Ports facing a void
// cell inside the grid are left to sealEdges.
func fixupEdges(l *Layer) {
	for y := 0; y < l.Length; y++ {
		for x := 0; x < l.Width; x++ {
			c := l.At(x, y)
			if c == Void || Popcount(c) != 1 {
				continue
			}
			idx := TileIndex(c)
			flags := PortFlags(idx)

			if y == 0 {
				flags &^= portBit(North)
			}
			if y == l.Length-1 {
				flags &^= portBit(South)
			}
			if x == 0 {
				flags &^= portBit(West)
			}
			if x == l.Width-1 {
				flags &^= portBit(East)
			}

			if flags == PortFlags(idx) {
				continue
			}
			reseal(l, x, y, flags)
		}
	}
}

// reseal rewrites the cell at (x, y) to the tile matching the reduced flag
// set, or voids it if no flags remain.
func reseal(l *Layer, x, y int, flags uint8) {
	if flags == 0 {
		l.Set(x, y, Void)
		return
	}
	newIdx := VariantForFlags(flags)
	if newIdx < 0 {
		l.Set(x, y, Void)
		return
	}
	l.Set(x, y, TileMask(newIdx))
}
