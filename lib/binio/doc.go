// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

// Package binio implements the primitive wire encodings shared by the
// tilemap block formats: length-prefixed byte strings and zlib-framed
// compressed blocks.
//
// Both string forms store length-minus-one on disk, so a length byte
// of 0 means one byte of payload and the empty string is not
// representable at all. The short form uses a single length byte
// (payloads of 1 to 256 bytes; longer values are silently truncated on
// write). The long form uses a little-endian uint32 length with the
// same off-by-one contract.
//
// Compressed blocks are a little-endian uint32 byte count followed by
// that many bytes of zlib stream. Blocks are materialized whole in
// both directions — the format's payloads (per-cell grids) are small
// relative to memory, and the enclosing file format requires the
// compressed size up front.
//
// Length fields read from the stream are untrusted. Both the long
// string and compressed block readers refuse lengths above a hard cap
// before allocating.
package binio
