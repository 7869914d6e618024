// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import "encoding/binary"

// Tile is one cell of a layer's grid: two raw bytes stored in on-disk
// order. The format admits two readings of the same storage — a 16-bit
// tile identifier, or a pair of tileset coordinates [x, y] — with no
// tag recording which one a file meant. Both accessors are always
// valid; equality and the default value operate on the raw bits.
//
// The format's contract is that identifiers are stored big-endian, so
// the first byte is the x coordinate and the second is y. An
// identifier written with little-endian byte order is not invalid, but
// reading it back through [Tile.Position] swaps x and y. That is a
// documented hazard of the format, not something this package can
// detect or repair.
type Tile [2]byte

// DefaultTile returns the tile value used to fill newly allocated grid
// cells: all bits set (identifier 0xFFFF).
func DefaultTile() Tile {
	return Tile{0xFF, 0xFF}
}

// ID returns the tile's identifier, reading the two bytes big-endian
// per the format contract.
func (t Tile) ID() uint16 {
	return binary.BigEndian.Uint16(t[:])
}

// SetID stores id big-endian, keeping [Tile.Position] consistent.
func (t *Tile) SetID(id uint16) {
	binary.BigEndian.PutUint16(t[:], id)
}

// Position returns the tile's tileset coordinates.
func (t Tile) Position() (x, y byte) {
	return t[0], t[1]
}

// SetPosition stores the tile's tileset coordinates.
func (t *Tile) SetPosition(x, y byte) {
	t[0], t[1] = x, y
}
