// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ctkit/tilemap/lib/binio"
)

// fieldWriter accumulates a block payload in memory. Blocks must be
// buffered rather than streamed because the format puts each block's
// byte length before its content. Scalar writes into the buffer cannot
// fail; string and compression writes carry a sticky error.
type fieldWriter struct {
	buffer bytes.Buffer
	err    error
}

func (w *fieldWriter) u8(value uint8) {
	w.buffer.WriteByte(value)
}

func (w *fieldWriter) flag(value bool) {
	if value {
		w.buffer.WriteByte(1)
	} else {
		w.buffer.WriteByte(0)
	}
}

func (w *fieldWriter) u16(value uint16) {
	var field [2]byte
	binary.LittleEndian.PutUint16(field[:], value)
	w.buffer.Write(field[:])
}

func (w *fieldWriter) u32(value uint32) {
	var field [4]byte
	binary.LittleEndian.PutUint32(field[:], value)
	w.buffer.Write(field[:])
}

func (w *fieldWriter) i32(value int32) {
	w.u32(uint32(value))
}

func (w *fieldWriter) f32(value float32) {
	w.u32(math.Float32bits(value))
}

func (w *fieldWriter) raw(value []byte) {
	w.buffer.Write(value)
}

func (w *fieldWriter) shortString(field string, value []byte) {
	if w.err != nil {
		return
	}
	if err := binio.WriteShortString(&w.buffer, value); err != nil {
		w.err = fmt.Errorf("write %s: %w", field, err)
	}
}

func (w *fieldWriter) longString(field string, value []byte) {
	if w.err != nil {
		return
	}
	if err := binio.WriteLongString(&w.buffer, value); err != nil {
		w.err = fmt.Errorf("write %s: %w", field, err)
	}
}

func (w *fieldWriter) compressed(field string, value []byte) {
	if w.err != nil {
		return
	}
	if err := binio.WriteCompressed(&w.buffer, value); err != nil {
		w.err = fmt.Errorf("write %s: %w", field, err)
	}
}

// emit frames the accumulated payload as [tag][u32 length][payload]
// and writes it to dst.
func (w *fieldWriter) emit(dst io.Writer, tag string) error {
	if w.err != nil {
		return w.err
	}
	var header [8]byte
	copy(header[:4], tag)
	binary.LittleEndian.PutUint32(header[4:], uint32(w.buffer.Len()))
	if _, err := dst.Write(header[:]); err != nil {
		return fmt.Errorf("write %q block header: %w", tag, err)
	}
	if _, err := dst.Write(w.buffer.Bytes()); err != nil {
		return fmt.Errorf("write %q block payload: %w", tag, err)
	}
	return nil
}

// Encode writes the tilemap to dst in the newest on-disk version.
// Blocks for properties, tilesets, and layers are emitted only when
// non-empty, each assembled in memory first so its length can precede
// its content. Entries beyond the format's count limits are silently
// dropped. The only non-transport failures are the string-encoding
// errors: an empty property key or an empty string property value.
func (m *TileMap) Encode(dst io.Writer) error {
	header := []byte(fileMagic + "\x05\x01") // version 5 with the permanent flag bit
	if _, err := dst.Write(header); err != nil {
		return fmt.Errorf("write file header: %w", err)
	}

	if len(m.Properties) > 0 {
		writer := &fieldWriter{}
		m.encodeProperties(writer)
		if err := writer.emit(dst, "MAP "); err != nil {
			return err
		}
	}
	if len(m.TileSets) > 0 {
		writer := &fieldWriter{}
		m.encodeTileSets(writer)
		if err := writer.emit(dst, "TILE"); err != nil {
			return err
		}
	}
	if len(m.Layers) > 0 {
		writer := &fieldWriter{}
		m.encodeLayers(writer)
		if err := writer.emit(dst, "LAYR"); err != nil {
			return err
		}
	}
	return nil
}

func (m *TileMap) encodeProperties(writer *fieldWriter) {
	writer.u16(uint16(min(len(m.Properties), maxProperties)))
	written := 0
	for key, property := range m.Properties {
		if written == maxProperties {
			break
		}
		writer.shortString("property key", []byte(key))
		writer.u8(uint8(property.Kind))
		switch property.Kind {
		case PropertyInteger:
			writer.i32(property.Integer)
		case PropertyFloat:
			writer.f32(property.Float)
		case PropertyString:
			writer.longString("string property value", property.String)
		default:
			if writer.err == nil {
				writer.err = fmt.Errorf("property %q has unknown kind %d", key, property.Kind)
			}
		}
		written++
	}
}

func (m *TileMap) encodeTileSets(writer *fieldWriter) {
	writer.u8(uint8(min(len(m.TileSets), maxTileSets)))
	for i, tileSet := range m.TileSets {
		if i == maxTileSets {
			break
		}
		// Padding byte, then the color reversed: B, G, R.
		writer.u8(0)
		writer.u8(tileSet.Transparent.B)
		writer.u8(tileSet.Transparent.G)
		writer.u8(tileSet.Transparent.R)
		writer.shortString("tileset path", []byte(tileSet.Path))
	}
}

func (m *TileMap) encodeLayers(writer *fieldWriter) {
	writer.u16(uint16(min(len(m.Layers), maxLayers)))
	for i, layer := range m.Layers {
		if i == maxLayers {
			break
		}
		writer.u32(layer.width)
		writer.u32(layer.height)
		writer.u16(layer.TileWidth)
		writer.u16(layer.TileHeight)
		writer.u8(layer.Tileset)
		writer.u8(layer.Collision)
		writer.i32(layer.OffsetX)
		writer.i32(layer.OffsetY)
		writer.f32(layer.ScrollX)
		writer.f32(layer.ScrollY)
		writer.flag(layer.WrapX)
		writer.flag(layer.WrapY)
		writer.flag(layer.Visible)
		writer.f32(layer.Opacity)
		writer.u8(layer.Link.Tileset)
		writer.u8(layer.Link.Animation)
		writer.u8(layer.Link.AnimationFrame)

		if layer.width == 0 || layer.height == 0 {
			// An empty layer has no grid and no data sections.
			writer.u8(0)
			continue
		}

		writer.u8(uint8(min(1+len(layer.Sublayers), maxSublayers)))
		writer.raw([]byte("MAIN"))
		writer.compressed("layer tile data", tileBytes(layer.tiles))
		for j, sublayer := range layer.Sublayers {
			if j == maxSublayers {
				break
			}
			writer.raw([]byte("DATA"))
			writer.u8(sublayer.cellSize)
			writer.raw(sublayer.defaultValue[:])
			writer.compressed("sublayer cell data", sublayer.data)
		}
	}
}

// tileBytes flattens a tile grid to its on-disk byte run.
func tileBytes(tiles []Tile) []byte {
	flattened := make([]byte, len(tiles)*2)
	for i, tile := range tiles {
		flattened[2*i] = tile[0]
		flattened[2*i+1] = tile[1]
	}
	return flattened
}
