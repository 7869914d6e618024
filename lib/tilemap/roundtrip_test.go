// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import (
	"bytes"
	"reflect"
	"testing"
)

// buildRichMap constructs a map exercising every model feature:
// properties of all three kinds, tilesets, an empty layer, and a
// populated layer with tiles and two sublayers of different cell
// widths.
func buildRichMap() *TileMap {
	tileMap := New()
	tileMap.Properties["Integer"] = IntegerProperty(196)
	tileMap.Properties["Float"] = FloatProperty(2.2)
	tileMap.Properties["String"] = StringProperty([]byte("Hello, world!"))

	tileMap.TileSets = append(tileMap.TileSets,
		TileSet{Path: "overworld.png", Transparent: RGB{R: 0x72, G: 0x89, B: 0xda}},
		TileSet{Path: "cave.png", Transparent: RGB{R: 0x36, G: 0x39, B: 0x3F}},
	)

	empty := NewLayer()
	empty.Visible = false
	tileMap.Layers = append(tileMap.Layers, empty)

	layer := NewLayer()
	layer.Resize(4, 3)
	layer.Tileset = 1
	layer.OffsetX = -32
	layer.OffsetY = 16
	layer.ScrollX = 0.5
	layer.WrapX = true
	layer.Opacity = 0.9
	layer.Link.Tileset = 0
	var tile Tile
	tile.SetID(0x1234)
	layer.SetAt(0, 0, tile)
	tile.SetPosition(5, 3)
	layer.SetAt(3, 2, tile)

	plain := layer.AddSublayer([]byte{0xAB})
	plain.SetCell(1, 1, []byte{0x42})
	wide := layer.AddSublayer([]byte{1, 2, 3})
	wide.SetCell(2, 0, []byte{9, 8, 7})
	tileMap.Layers = append(tileMap.Layers, layer)

	return tileMap
}

func TestRoundTrip(t *testing.T) {
	original := buildRichMap()

	var buffer bytes.Buffer
	if err := original.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buffer)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("roundtrip mismatch:\n got %#v\nwant %#v", decoded, original)
	}
}

func TestRoundTripIsStable(t *testing.T) {
	// Decoding the end-to-end fixture and re-encoding must produce a
	// file that decodes to the identical model.
	first, err := Decode(bytes.NewReader(endToEndFile(t)))
	if err != nil {
		t.Fatalf("first Decode: %v", err)
	}
	var buffer bytes.Buffer
	if err := first.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := Decode(&buffer)
	if err != nil {
		t.Fatalf("second Decode: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-encoded map differs:\n got %#v\nwant %#v", second, first)
	}
}

func TestRoundTripTileBits(t *testing.T) {
	// Tile equality is raw-bit equality; both byte orders must
	// survive a write/read cycle unchanged even though only the
	// big-endian convention reads back as a sensible position.
	tileMap := New()
	layer := NewLayer()
	layer.Resize(2, 1)
	layer.SetAt(0, 0, Tile{0x12, 0x34})
	layer.SetAt(1, 0, Tile{0x34, 0x12})
	tileMap.Layers = append(tileMap.Layers, layer)

	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buffer)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	tiles := decoded.Layers[0].Tiles()
	if tiles[0] != (Tile{0x12, 0x34}) || tiles[1] != (Tile{0x34, 0x12}) {
		t.Errorf("tiles: got %v", tiles)
	}
}
