// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package mapdigest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ctkit/tilemap/lib/tilemap"
)

func buildMap(opacity float32) *tilemap.TileMap {
	tileMap := tilemap.New()
	tileMap.Properties["Name"] = tilemap.StringProperty([]byte("test"))
	tileMap.Properties["Answer"] = tilemap.IntegerProperty(42)
	layer := tilemap.NewLayer()
	layer.Resize(3, 3)
	layer.Opacity = opacity
	tileMap.Layers = append(tileMap.Layers, layer)
	return tileMap
}

func TestDigestIsStable(t *testing.T) {
	first, err := Digest(buildMap(1.0))
	if err != nil {
		t.Fatalf("first Digest: %v", err)
	}
	second, err := Digest(buildMap(1.0))
	if err != nil {
		t.Fatalf("second Digest: %v", err)
	}
	if first != second {
		t.Errorf("equal maps produced different digests: %s != %s", Format(first), Format(second))
	}
}

func TestDigestSeesModelChanges(t *testing.T) {
	first, err := Digest(buildMap(1.0))
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	second, err := Digest(buildMap(0.5))
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if first == second {
		t.Error("different maps produced the same digest")
	}
}

func TestDigestFileMatchesDigest(t *testing.T) {
	tileMap := buildMap(1.0)
	path := filepath.Join(t.TempDir(), "map.l")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture file: %v", err)
	}
	if err := tileMap.Encode(file); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("closing fixture file: %v", err)
	}

	fromFile, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}
	direct, err := Digest(tileMap)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if fromFile != direct {
		t.Errorf("file digest %s != direct digest %s", Format(fromFile), Format(direct))
	}
}

func TestFormatParseRoundtrip(t *testing.T) {
	digest, err := Digest(buildMap(1.0))
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	parsed, err := Parse(Format(digest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != digest {
		t.Error("Format/Parse roundtrip mismatch")
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse("not-hex"); err == nil {
		t.Error("Parse accepted non-hex input")
	}
	if _, err := Parse("abcd"); err == nil {
		t.Error("Parse accepted a short digest")
	}
}
