// Package corridorfile implements the external binary file format spec §6
// assigns to "the external file-writer": a small header followed by every
// cell value, each one of {0, 2^0, ..., 2^15} per the canonical bit-to-tile
// mapping. It is deliberately kept outside the corridor package itself —
// the core generator is oblivious to how, or whether, its output is ever
// written to disk.
package corridorfile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// magic identifies the file format; version allows the header to grow
// later without breaking readers of existing files.
const (
	magic   uint32 = 0x434f5231 // "COR1"
	version uint32 = 1
)

// Header carries the generation parameters a reader needs to reshape the
// flat cell stream back into a 3D grid.
type Header struct {
	Width, Length, Height uint32
	Seed                  uint32
	Fullness              uint32
}

// Write encodes header followed by cells (row-major within a layer, layers
// in ascending z order) to w, little-endian throughout.
func Write(w io.Writer, h Header, cells []uint16) error {
	want := int(h.Width) * int(h.Length) * int(h.Height)
	if len(cells) != want {
		return fmt.Errorf("corridorfile: expected %d cells, got %d", want, len(cells))
	}

	fields := []uint32{magic, version, h.Width, h.Length, h.Height, h.Seed, h.Fullness}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	for _, c := range cells {
		if err := binary.Write(w, binary.LittleEndian, c); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes a file written by Write, validating the magic number, that
// the version is one this reader understands, and that every decoded cell
// value is a legal {0, 2^0..2^15} tile value.
func Read(r io.Reader) (Header, []uint16, error) {
	var h Header
	var gotMagic, gotVersion uint32

	for _, p := range []*uint32{&gotMagic, &gotVersion, &h.Width, &h.Length, &h.Height, &h.Seed, &h.Fullness} {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return Header{}, nil, err
		}
	}
	if gotMagic != magic {
		return Header{}, nil, fmt.Errorf("corridorfile: bad magic %#08x", gotMagic)
	}
	if gotVersion != version {
		return Header{}, nil, fmt.Errorf("corridorfile: unsupported version %d", gotVersion)
	}

	n := int(h.Width) * int(h.Length) * int(h.Height)
	cells := make([]uint16, n)
	for i := range cells {
		if err := binary.Read(r, binary.LittleEndian, &cells[i]); err != nil {
			return Header{}, nil, err
		}
		if cells[i] != 0 && cells[i]&(cells[i]-1) != 0 {
			return Header{}, nil, fmt.Errorf("corridorfile: cell %d has invalid value %#04x", i, cells[i])
		}
	}
	return h, cells, nil
}
