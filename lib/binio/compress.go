// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package binio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// maxCompressedLength caps how much a compressed block length field
// can ask us to allocate. Layer grids compress to kilobytes; a length
// anywhere near this is a corrupt or hostile file.
const maxCompressedLength = 256 * 1024 * 1024

// ReadCompressed reads a compressed block: a little-endian uint32 byte
// count, then that many bytes of zlib stream. Returns the fully
// inflated payload.
func ReadCompressed(r io.Reader) ([]byte, error) {
	var lengthField [4]byte
	if _, err := io.ReadFull(r, lengthField[:]); err != nil {
		return nil, fmt.Errorf("read compressed block length: %w", err)
	}
	length := int(binary.LittleEndian.Uint32(lengthField[:]))
	if length > maxCompressedLength {
		return nil, fmt.Errorf("compressed block length %d exceeds maximum %d", length, maxCompressedLength)
	}
	compressed := make([]byte, length)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("read compressed block payload: %w", err)
	}

	inflater, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("open zlib stream: %w", err)
	}
	defer inflater.Close()

	inflated, err := io.ReadAll(inflater)
	if err != nil {
		return nil, fmt.Errorf("inflate block: %w", err)
	}
	return inflated, nil
}

// WriteCompressed deflates data and writes it as a compressed block:
// a little-endian uint32 count of compressed bytes, then the zlib
// stream. The whole block is assembled in memory because the length
// must precede the stream.
func WriteCompressed(w io.Writer, data []byte) error {
	var compressed bytes.Buffer
	deflater := zlib.NewWriter(&compressed)
	if _, err := deflater.Write(data); err != nil {
		return fmt.Errorf("deflate block: %w", err)
	}
	if err := deflater.Close(); err != nil {
		return fmt.Errorf("finish zlib stream: %w", err)
	}

	var lengthField [4]byte
	binary.LittleEndian.PutUint32(lengthField[:], uint32(compressed.Len()))
	if _, err := w.Write(lengthField[:]); err != nil {
		return fmt.Errorf("write compressed block length: %w", err)
	}
	if _, err := w.Write(compressed.Bytes()); err != nil {
		return fmt.Errorf("write compressed block payload: %w", err)
	}
	return nil
}
