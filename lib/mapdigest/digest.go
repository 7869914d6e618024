// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package mapdigest

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/zeebo/blake3"

	"github.com/ctkit/tilemap/lib/mapexport"
	"github.com/ctkit/tilemap/lib/tilemap"
)

// Digest computes the BLAKE3 digest of the map's canonical form (its
// deterministic CBOR export). Identical models produce identical
// digests regardless of how their files were laid out on disk.
func Digest(m *tilemap.TileMap) ([32]byte, error) {
	canonical, err := mapexport.MarshalCBOR(m)
	if err != nil {
		return [32]byte{}, fmt.Errorf("canonicalizing tilemap: %w", err)
	}
	return blake3.Sum256(canonical), nil
}

// DigestFile decodes the tilemap file at path and returns its
// canonical digest.
func DigestFile(path string) ([32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("opening %s for digesting: %w", path, err)
	}
	defer file.Close()

	decoded, err := tilemap.Decode(file)
	if err != nil {
		return [32]byte{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return Digest(decoded)
}

// Format returns the hex-encoded string representation of a digest.
func Format(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}

// Parse parses a hex-encoded digest string into a 32-byte array.
// Returns an error if the string is not a valid 64-character hex
// encoding of 32 bytes.
func Parse(hexString string) ([32]byte, error) {
	var digest [32]byte
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing map digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("map digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
