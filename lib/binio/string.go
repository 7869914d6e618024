// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package binio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxLongStringLength caps how much a long string length field can ask
// us to allocate. Real tilemap strings are file paths and property
// values; anything near this limit is a corrupt or hostile file.
const maxLongStringLength = 256 * 1024 * 1024

// ReadShortString reads a short length-prefixed byte string: one
// length byte storing length-minus-one, then that many raw bytes. The
// result is 1 to 256 bytes and is not necessarily valid UTF-8.
func ReadShortString(r io.Reader) ([]byte, error) {
	var lengthByte [1]byte
	if _, err := io.ReadFull(r, lengthByte[:]); err != nil {
		return nil, fmt.Errorf("read short string length: %w", err)
	}
	payload := make([]byte, int(lengthByte[0])+1)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read short string payload: %w", err)
	}
	return payload, nil
}

// ReadLongString reads a long length-prefixed byte string: a
// little-endian uint32 storing length-minus-one, then that many raw
// bytes. Refuses implausibly large lengths before allocating.
func ReadLongString(r io.Reader) ([]byte, error) {
	var lengthField [4]byte
	if _, err := io.ReadFull(r, lengthField[:]); err != nil {
		return nil, fmt.Errorf("read long string length: %w", err)
	}
	length := int(binary.LittleEndian.Uint32(lengthField[:])) + 1
	if length > maxLongStringLength {
		return nil, fmt.Errorf("long string length %d exceeds maximum %d", length, maxLongStringLength)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read long string payload: %w", err)
	}
	return payload, nil
}

// WriteShortString writes value as a short length-prefixed string.
// Values longer than 256 bytes are silently truncated to 256 (a format
// limit, not an error); the empty string is not representable and
// returns an error before any bytes are written.
func WriteShortString(w io.Writer, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("cannot write an empty string")
	}
	if len(value) > 256 {
		value = value[:256]
	}
	if _, err := w.Write([]byte{byte(len(value) - 1)}); err != nil {
		return fmt.Errorf("write short string length: %w", err)
	}
	if _, err := w.Write(value); err != nil {
		return fmt.Errorf("write short string payload: %w", err)
	}
	return nil
}

// WriteLongString writes value as a long length-prefixed string. The
// empty string is not representable and returns an error before any
// bytes are written.
func WriteLongString(w io.Writer, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("cannot write an empty string")
	}
	var lengthField [4]byte
	binary.LittleEndian.PutUint32(lengthField[:], uint32(len(value)-1))
	if _, err := w.Write(lengthField[:]); err != nil {
		return fmt.Errorf("write long string length: %w", err)
	}
	if _, err := w.Write(value); err != nil {
		return fmt.Errorf("write long string payload: %w", err)
	}
	return nil
}
