// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestEncodeEmptyMap(t *testing.T) {
	var buffer bytes.Buffer
	if err := New().Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Magic plus the version word (5 with the permanent flag bit),
	// and no blocks at all.
	if got := buffer.Bytes(); !bytes.Equal(got, []byte("ACHTUNG!\x05\x01")) {
		t.Errorf("encoded bytes: got %x", got)
	}
}

func TestEncodeAlwaysWritesNewestVersion(t *testing.T) {
	// A version 0 file re-encodes as version 5.
	file := concat(
		[]byte("ACHTUNG!\x00\x01"),
		block("MAP ", concat(u16le(20), u16le(12))),
	)
	tileMap, err := Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(buffer.Bytes(), []byte("ACHTUNG!\x05\x01")) {
		t.Errorf("header: got %x", buffer.Bytes()[:10])
	}
}

func TestEncodeEmptyPropertyKeyFails(t *testing.T) {
	tileMap := New()
	tileMap.Properties[""] = IntegerProperty(0)
	if err := tileMap.Encode(&bytes.Buffer{}); err == nil {
		t.Fatal("Encode accepted an empty property key")
	}
}

func TestEncodeEmptyStringPropertyFails(t *testing.T) {
	tileMap := New()
	tileMap.Properties["Foo"] = StringProperty(nil)
	if err := tileMap.Encode(&bytes.Buffer{}); err == nil {
		t.Fatal("Encode accepted an empty string property value")
	}
}

func TestEncodeFailedBlockWritesNothing(t *testing.T) {
	// Write-side validation errors surface before the block reaches
	// the stream; only the file header may have been written.
	tileMap := New()
	tileMap.Properties[""] = IntegerProperty(0)
	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err == nil {
		t.Fatal("Encode accepted an empty property key")
	}
	if buffer.Len() > len("ACHTUNG!\x05\x01") {
		t.Errorf("partial block written: %x", buffer.Bytes())
	}
}

func TestEncodeLongKeyTruncatedTo256(t *testing.T) {
	key := strings.Repeat("k", 300)
	tileMap := New()
	tileMap.Properties[key] = IntegerProperty(0)

	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buffer)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for storedKey := range decoded.Properties {
		if len(storedKey) != 256 {
			t.Errorf("stored key length: got %d, want 256", len(storedKey))
		}
	}
}

func TestEncodeTileSetColorReversed(t *testing.T) {
	tileMap := New()
	tileMap.TileSets = append(tileMap.TileSets, TileSet{
		Path:        "tiles.png",
		Transparent: RGB{R: 0x72, G: 0x89, B: 0xda},
	})
	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Skip magic+version and the TILE block header, then the count
	// byte: the color is stored as padding, B, G, R.
	payload := buffer.Bytes()[10+8:]
	if !bytes.Equal(payload[1:5], []byte{0x00, 0xda, 0x89, 0x72}) {
		t.Errorf("stored color bytes: got %x, want 00da8972", payload[1:5])
	}
}

func TestEncodeTileSetCountTruncated(t *testing.T) {
	tileMap := New()
	for i := 0; i < 300; i++ {
		tileMap.TileSets = append(tileMap.TileSets, TileSet{Path: fmt.Sprintf("tiles-%d.png", i)})
	}
	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buffer)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.TileSets) != 255 {
		t.Errorf("retained tilesets: got %d, want 255", len(decoded.TileSets))
	}
	if decoded.TileSets[254].Path != "tiles-254.png" {
		t.Errorf("last retained tileset: got %q", decoded.TileSets[254].Path)
	}
}

func TestEncodeEmptyLayerWritesNoSections(t *testing.T) {
	tileMap := New()
	layer := NewLayer()
	layer.AddSublayer([]byte{1}) // lost on write: empty layers carry no data sections
	tileMap.Layers = append(tileMap.Layers, layer)

	var buffer bytes.Buffer
	if err := tileMap.Encode(&buffer); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buffer)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.Layers[0]
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("dimensions: got %dx%d, want 0x0", got.Width(), got.Height())
	}
	if len(got.Sublayers) != 0 {
		t.Errorf("sublayers survived an empty-layer write: %d", len(got.Sublayers))
	}
}
