// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

// SubLayer is an auxiliary per-cell data plane attached to a layer,
// used for per-cell metadata that does not fit a 16-bit tile id. Cells
// are a uniform width of 0 to 4 bytes, stored row-major in a single
// backing buffer whose length is always width x height x cell size.
//
// A sublayer's dimensions track its owning layer: [Layer.Resize]
// resizes every attached sublayer, and [Layer.AddSublayer] sizes new
// ones to match. Resizing a sublayer directly is only sensible when
// reattaching it to a layer of that size.
type SubLayer struct {
	data         []byte
	defaultValue [4]byte
	cellSize     uint8
	width        uint32
	height       uint32
}

// NewSubLayer returns an empty sublayer with the given default value.
// The cell size becomes min(len(defaultValue), 4); see
// [SubLayer.SetDefault].
func NewSubLayer(defaultValue []byte) *SubLayer {
	sublayer := &SubLayer{}
	sublayer.SetDefault(defaultValue)
	return sublayer
}

// Width returns the sublayer's width in cells.
func (s *SubLayer) Width() uint32 { return s.width }

// Height returns the sublayer's height in cells.
func (s *SubLayer) Height() uint32 { return s.height }

// CellSize returns the width of one cell in bytes (0 to 4).
func (s *SubLayer) CellSize() uint8 { return s.cellSize }

// Default returns a copy of the significant bytes of the sublayer's
// default value (cell-size bytes).
func (s *SubLayer) Default() []byte {
	value := make([]byte, s.cellSize)
	copy(value, s.defaultValue[:s.cellSize])
	return value
}

// Data returns the sublayer's backing buffer: width x height cells of
// cell-size bytes each, row-major. The slice aliases the sublayer's
// storage; writes through it are visible to the sublayer, and any
// resize invalidates it.
func (s *SubLayer) Data() []byte { return s.data }

// Cell returns the cell at (x, y) as a cell-size byte slice aliasing
// the backing buffer, or nil when the position is out of bounds.
func (s *SubLayer) Cell(x, y uint32) []byte {
	if x >= s.width || y >= s.height {
		return nil
	}
	size := uint32(s.cellSize)
	start := (y*s.width + x) * size
	return s.data[start : start+size]
}

// SetCell copies value into the cell at (x, y), truncated or left
// as-is beyond min(len(value), cell size). Returns false when the
// position is out of bounds.
func (s *SubLayer) SetCell(x, y uint32, value []byte) bool {
	cell := s.Cell(x, y)
	if cell == nil {
		return false
	}
	copy(cell, value)
	return true
}

// Resize changes the sublayer's dimensions, filling new cells with
// the default value and discarding cells outside the new bounds.
// Shrinking is lossy: growing back afterwards does not restore the
// dropped cells.
func (s *SubLayer) Resize(width, height uint32) {
	wasEmpty := s.width == 0 || s.height == 0
	if (s.width == width && s.height == height) || (wasEmpty && (width == 0 || height == 0)) {
		return
	}
	if width == 0 || height == 0 {
		s.width = 0
		s.height = 0
		s.data = nil
		return
	}
	defaultCell := s.defaultValue[:s.cellSize]
	if wasEmpty {
		s.data = filledGrid(defaultCell, int(width)*int(height))
		s.width = width
		s.height = height
		return
	}
	s.data = resizeGrid(s.data, s.width, s.height, width, height, defaultCell)
	s.width = width
	s.height = height
}

// SetDefault replaces the sublayer's default value and migrates every
// cell to the new width. The cell size becomes min(len(value), 4) and
// the stored default is value truncated or zero-padded to 4 bytes.
//
// Cell migration preserves the first min(old, new) bytes of each cell:
// growing zero-pads on the right, shrinking truncates. Two quirks are
// kept from the original format implementation: growing from cell size
// 0 fills the buffer with zero bytes rather than the new default, and
// no migration at all happens when the size is unchanged or the grid
// is empty.
func (s *SubLayer) SetDefault(value []byte) {
	oldSize := int(s.cellSize)
	newSize := min(len(value), 4)
	s.defaultValue = [4]byte{}
	copy(s.defaultValue[:], value)
	s.cellSize = uint8(newSize)

	if newSize == oldSize || s.width == 0 || s.height == 0 {
		return
	}
	if newSize == 0 {
		s.data = nil
		return
	}
	if oldSize == 0 {
		s.data = make([]byte, int(s.width)*int(s.height)*newSize)
		return
	}

	rebuilt := make([]byte, 0, int(s.width)*int(s.height)*newSize)
	for start := 0; start < len(s.data); start += oldSize {
		cell := s.data[start : start+oldSize]
		if newSize > oldSize {
			rebuilt = append(rebuilt, cell...)
			rebuilt = append(rebuilt, make([]byte, newSize-oldSize)...)
		} else {
			rebuilt = append(rebuilt, cell[:newSize]...)
		}
	}
	s.data = rebuilt
}
