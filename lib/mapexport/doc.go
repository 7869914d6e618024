// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapexport converts a decoded tilemap into interchange
// formats for tooling: JSON for scripts and diffing, YAML for humans,
// and CBOR (Core Deterministic Encoding) when tools need a compact
// binary form whose bytes are stable for identical maps.
//
// The export goes through [Document], a plain-data mirror of the
// tilemap model. Tile grids are exported as rows of big-endian tile
// ids; sublayer buffers are exported raw and rely on each format's
// native byte-string representation (base64 in JSON and YAML, byte
// strings in CBOR). Export is one-way — the binary tilemap format
// remains the only source of truth, and nothing here reads these
// formats back.
package mapexport
