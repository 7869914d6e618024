// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

// Package tilemap reads and writes the Clickteam TileMap binary file
// format used by the TileMap plugin ecosystem.
//
// A file is an 8-byte magic string, a version word, and a sequence of
// tagged blocks ("MAP " for document properties, "TILE" for tilesets,
// "LAYR" for layers). Six on-disk versions exist with additive and
// removed fields; [Decode] accepts all of them, [TileMap.Encode]
// always emits the newest. The format carries several legacy quirks
// that are reproduced faithfully rather than cleaned up:
//
//   - the version word has bit 8 permanently set and must be unmasked
//   - string lengths are stored minus one, so the empty string is not
//     representable (writing one is an error)
//   - declared block lengths are informational and never used for
//     bounds-checking; the decoder trusts structural framing
//   - section counts above the format's limits are silently truncated
//     on write, not reported
//
// The in-memory model is a [TileMap] owning ordered [Layer] and
// [TileSet] slices and a [Property] map. Layers own a row-major grid
// of two-byte [Tile] values plus any number of [SubLayer] planes,
// parallel per-cell byte buffers with a configurable cell width.
// Layers and sublayers are resized in place with [Layer.Resize] and
// re-celled with [SubLayer.SetDefault]; both preserve the structural
// invariant that the backing buffer length always equals
// width x height x cell size.
//
// All operations are synchronous and single-owner. A decode builds a
// fresh TileMap; nothing in this package retains the reader or writer,
// and no internal locking is performed.
package tilemap
