// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

// Retention limits applied when writing a file. Entries beyond these
// counts are silently dropped, not reported — a documented lossy
// policy of the format, preserved for round-trip fidelity.
const (
	maxProperties = 0xFFFF
	maxTileSets   = 0xFF
	maxLayers     = 0xFFFF
	maxSublayers  = 255
)

// TileMap is the root of a decoded tilemap file: ordered layers and
// tilesets plus a name-to-value property map. Ownership is strictly
// tree-shaped — the map owns its layers, layers own their sublayers —
// and nothing here is safe for concurrent mutation; callers that share
// a TileMap across goroutines must serialize access themselves.
type TileMap struct {
	// Layers in draw order. Only the first 65535 are saved.
	Layers []*Layer

	// TileSets referenced by layers' Tileset indices. Only the first
	// 255 are saved.
	TileSets []TileSet

	// Properties is the document metadata. Only the first 65535
	// entries (in map iteration order) are saved. Keys longer than
	// 256 bytes are truncated on write; empty keys fail the write.
	Properties map[string]Property
}

// New returns an empty tilemap.
func New() *TileMap {
	return &TileMap{Properties: make(map[string]Property)}
}
