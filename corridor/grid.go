package corridor

import "fmt"

// Layer is one z-slice of the maze: a flat, row-major array of cells sized
// Width*Length. During WFC each layer is solved independently; layers
// interact only through the pre-placed stair pairs the architect writes
// before any solver runs (§3, §5).
type Layer struct {
	Width, Length int
	Cells         []uint16
}

// newLayer allocates a Width*Length layer, every cell starting Void. This
// is the one allocation point spec §4.1 calls out: a failed make() in Go
// cannot fail softly the way a C allocator can, so there is nothing to
// propagate here and newLayer returns no error.
func newLayer(width, length int) *Layer {
	return &Layer{
		Width:  width,
		Length: length,
		Cells:  make([]uint16, width*length),
	}
}

// InBounds reports whether (x, y) lies within the layer.
func (l *Layer) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Length
}

// At returns the cell value at (x, y), or Void if out of bounds — callers
// that need to distinguish "out of bounds" from "void" use InBounds first.
func (l *Layer) At(x, y int) uint16 {
	if !l.InBounds(x, y) {
		return Void
	}
	return l.Cells[y*l.Width+x]
}

// Set writes a cell value at (x, y). Out-of-bounds writes are ignored,
// mirroring At's treatment of out-of-bounds reads as void.
func (l *Layer) Set(x, y int, v uint16) {
	if !l.InBounds(x, y) {
		return
	}
	l.Cells[y*l.Width+x] = v
}

// Neighbor returns the neighboring cell in direction d from (x, y), and
// whether that neighbor lies within the layer.
func (l *Layer) Neighbor(x, y int, d Direction) (nx, ny int, ok bool) {
	nx, ny = d.Step(x, y)
	return nx, ny, l.InBounds(nx, ny)
}

// CountNonVoid returns the number of non-void cells in the layer.
func (l *Layer) CountNonVoid() int {
	n := 0
	for _, c := range l.Cells {
		if c != Void {
			n++
		}
	}
	return n
}

// Grid is the generator's output: a 3D array of layers addressed [z][y][x],
// allocated and owned by the orchestrator for the lifetime of a Generate
// call (§3's ownership rule — per-layer scratch is owned by the layer task
// that allocates it and is released before that task returns, while the
// Grid itself outlives every worker).
type Grid struct {
	Width, Length, Height int
	Layers                []*Layer
}

// NewGrid allocates an empty Grid of the given dimensions, every layer
// filled with Void cells.
func NewGrid(width, length, height int) *Grid {
	g := &Grid{Width: width, Length: length, Height: height}
	g.Layers = make([]*Layer, height)
	for z := range g.Layers {
		g.Layers[z] = newLayer(width, length)
	}
	return g
}

// At returns the cell at (x, y, z), or Void if out of bounds.
func (g *Grid) At(x, y, z int) uint16 {
	if z < 0 || z >= g.Height {
		return Void
	}
	return g.Layers[z].At(x, y)
}

// String renders a short human-readable summary, mirroring the teacher's
// habit of giving debug-oriented types a String() method.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid{%dx%dx%d}", g.Width, g.Length, g.Height)
}
