// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

// RGB is a 24-bit color. On disk the channels are stored reversed
// behind a padding byte (padding, B, G, R); the codec performs the
// shuffle so this struct always holds them in the natural order.
type RGB struct {
	R, G, B uint8
}

// TileSet names a source texture for layer tiles: an image path plus
// the color that renderers treat as transparent.
type TileSet struct {
	// Path is the tileset image path as stored in the file. Paths
	// longer than 256 bytes are truncated on write (a format limit).
	Path string

	// Transparent is the color keyed out when drawing the tileset.
	Transparent RGB
}
