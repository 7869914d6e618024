// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapdigest computes BLAKE3 content digests of tilemaps.
//
// Two files can hold the same map and still differ byte for byte: the
// on-disk version, block presence, property order, and zlib output
// all vary without changing the decoded model. Hashing the raw file
// therefore overcounts. The digest is taken over the map's
// deterministic CBOR export instead (mapexport, Core Deterministic
// Encoding), which normalizes all of that away: identical models
// produce identical digests, across re-saves and across the format
// versions the decoder accepts.
package mapdigest
