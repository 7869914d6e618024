// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import (
	"errors"
	"fmt"
)

// Structural decode errors. A decode that hits one of these aborts
// immediately and returns no TileMap; they are distinct from transport
// errors, which wrap whatever the underlying reader reported.
var (
	// ErrInvalidMagic means the stream does not start with the
	// tilemap magic string.
	ErrInvalidMagic = errors.New("invalid tilemap magic string")

	// ErrInvalidLayerLength means a decompressed layer payload does
	// not match the dimensions it was declared with: an odd byte
	// count for a tile grid, or a sublayer buffer that is not exactly
	// width x height x cell size.
	ErrInvalidLayerLength = errors.New("layer data length does not match its dimensions")
)

// UnsupportedVersionError reports a file whose unmasked version word
// is newer than anything this package knows how to read.
//
//	var versionErr *tilemap.UnsupportedVersionError
//	if errors.As(err, &versionErr) { ... versionErr.Version ... }
type UnsupportedVersionError struct {
	// Version is the unmasked on-disk version value.
	Version uint16
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("tilemap version %d is not supported", e.Version)
}

// InvalidTypeError reports an unknown type tag in the property map.
type InvalidTypeError struct {
	// Type is the unrecognized on-disk type tag.
	Type uint8
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid property type 0x%02X", e.Type)
}

// InvalidHeaderError reports an unknown block or layer-data section
// tag. Unknown tags are hard errors: the format has no way to skip a
// section whose layout is unknown, since declared block lengths are
// not trustworthy.
type InvalidHeaderError struct {
	// Header is the unrecognized 4-byte tag, decoded as text.
	Header string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid block header %q", e.Header)
}
