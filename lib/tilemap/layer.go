// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

// Unlinked is the sublayer-link index meaning "no sublayer linked".
const Unlinked uint8 = 0xFF

// SubLayerLink records which of a layer's sublayers drive its tileset,
// animation, and animation-frame selection. Each index is [Unlinked]
// (0xFF) when unset.
type SubLayerLink struct {
	Tileset        uint8
	Animation      uint8
	AnimationFrame uint8
}

// Layer is one 2D tile grid of a tilemap. Tiles are stored row-major
// (index = y*width + x); the backing buffer length always equals
// width x height. A layer with either dimension zero is "empty" and
// has no grid at all.
//
// The zero value is not a usable layer: a fresh layer is visible, has
// full opacity, 16x16 tile dimensions, and an unlinked sublayer link.
// Use [NewLayer].
type Layer struct {
	tiles  []Tile
	width  uint32
	height uint32

	// Tileset and Collision index into the owning map's tilesets.
	Tileset   uint8
	Collision uint8

	// OffsetX and OffsetY position the layer in pixels.
	OffsetX, OffsetY int32

	// ScrollX and ScrollY are the per-axis parallax scroll factors.
	ScrollX, ScrollY float32

	// WrapX and WrapY make the layer tile infinitely on that axis.
	WrapX, WrapY bool

	// Visible toggles rendering of the layer.
	Visible bool

	// Opacity is the layer's alpha in [0, 1].
	Opacity float32

	// TileWidth and TileHeight are the pixel dimensions of one tile.
	TileWidth, TileHeight uint16

	// Sublayers are the layer's per-cell data planes. Their dimensions
	// track the layer's. Only the first 255 are saved.
	Sublayers []*SubLayer

	// Link selects which sublayers drive tileset/animation lookups.
	Link SubLayerLink
}

// NewLayer returns an empty layer with the format's defaults: visible,
// opacity 1, 16x16 pixel tiles, nothing linked.
func NewLayer() *Layer {
	return &Layer{
		Visible:    true,
		Opacity:    1.0,
		TileWidth:  16,
		TileHeight: 16,
		Link:       SubLayerLink{Tileset: Unlinked, Animation: Unlinked, AnimationFrame: Unlinked},
	}
}

// Width returns the layer's width in tiles.
func (l *Layer) Width() uint32 { return l.width }

// Height returns the layer's height in tiles.
func (l *Layer) Height() uint32 { return l.height }

// Tiles returns the layer's backing tile buffer, row-major. The slice
// aliases the layer's storage; any resize invalidates it.
func (l *Layer) Tiles() []Tile { return l.tiles }

// At returns the tile at (x, y). The second result is false when the
// position is out of bounds, or when the backing buffer is shorter
// than the dimensions claim (a decoded file may under-fill the grid).
func (l *Layer) At(x, y uint32) (Tile, bool) {
	if x >= l.width || y >= l.height {
		return Tile{}, false
	}
	index := int(y)*int(l.width) + int(x)
	if index >= len(l.tiles) {
		return Tile{}, false
	}
	return l.tiles[index], true
}

// SetAt stores tile at (x, y). Returns false when the position is out
// of bounds or past the end of an under-filled grid.
func (l *Layer) SetAt(x, y uint32, tile Tile) bool {
	if x >= l.width || y >= l.height {
		return false
	}
	index := int(y)*int(l.width) + int(x)
	if index >= len(l.tiles) {
		return false
	}
	l.tiles[index] = tile
	return true
}

// AddSublayer attaches a new sublayer with the given default value,
// sized to the layer's current dimensions and filled with that
// default. Returns the new sublayer.
func (l *Layer) AddSublayer(defaultValue []byte) *SubLayer {
	sublayer := NewSubLayer(defaultValue)
	sublayer.Resize(l.width, l.height)
	l.Sublayers = append(l.Sublayers, sublayer)
	return sublayer
}

// Resize changes the layer's dimensions and resizes every attached
// sublayer to match. New tiles are filled with [DefaultTile]; tiles
// outside the new bounds are discarded. Shrinking is lossy: growing
// back afterwards does not restore the dropped tiles.
//
// Resizing to the current dimensions is a no-op, as is resizing an
// empty layer to empty. Resizing with either dimension zero clears
// the layer (and its sublayers) entirely.
func (l *Layer) Resize(width, height uint32) {
	wasEmpty := l.width == 0 || l.height == 0
	if (l.width == width && l.height == height) || (wasEmpty && (width == 0 || height == 0)) {
		return
	}
	if width == 0 || height == 0 {
		l.width = 0
		l.height = 0
		l.tiles = nil
		for _, sublayer := range l.Sublayers {
			sublayer.Resize(width, height)
		}
		return
	}
	defaultCell := []Tile{DefaultTile()}
	if wasEmpty {
		l.tiles = filledGrid(defaultCell, int(width)*int(height))
	} else {
		l.tiles = resizeGrid(l.tiles, l.width, l.height, width, height, defaultCell)
	}
	l.width = width
	l.height = height
	for _, sublayer := range l.Sublayers {
		sublayer.Resize(width, height)
	}
}
