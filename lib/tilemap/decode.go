// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ctkit/tilemap/lib/binio"
)

// fileMagic opens every tilemap file.
const fileMagic = "ACHTUNG!"

// versionFlagBit is permanently set in the on-disk version word and
// must be XORed away before comparing versions.
const versionFlagBit = 0x0100

// newestVersion is the most recent on-disk format version. Decode
// accepts versions 0 through newestVersion; Encode always emits it.
const newestVersion = 5

// fieldReader reads little-endian scalar fields with a sticky error,
// so a run of consecutive field reads stays linear. The first failure
// wins; later reads return zero values without touching the stream.
type fieldReader struct {
	src     io.Reader
	err     error
	scratch [8]byte
}

func (r *fieldReader) fail(field string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("read %s: %w", field, err)
	}
}

func (r *fieldReader) read(n int, field string) []byte {
	if r.err != nil {
		return r.scratch[:n]
	}
	if _, err := io.ReadFull(r.src, r.scratch[:n]); err != nil {
		r.fail(field, err)
		return r.scratch[:n]
	}
	return r.scratch[:n]
}

func (r *fieldReader) u8(field string) uint8 {
	return r.read(1, field)[0]
}

func (r *fieldReader) flag(field string) bool {
	return r.u8(field) > 0
}

func (r *fieldReader) u16(field string) uint16 {
	return binary.LittleEndian.Uint16(r.read(2, field))
}

func (r *fieldReader) u32(field string) uint32 {
	return binary.LittleEndian.Uint32(r.read(4, field))
}

func (r *fieldReader) i32(field string) int32 {
	return int32(r.u32(field))
}

func (r *fieldReader) f32(field string) float32 {
	return math.Float32frombits(r.u32(field))
}

func (r *fieldReader) shortString(field string) []byte {
	if r.err != nil {
		return nil
	}
	value, err := binio.ReadShortString(r.src)
	if err != nil {
		r.fail(field, err)
	}
	return value
}

func (r *fieldReader) longString(field string) []byte {
	if r.err != nil {
		return nil
	}
	value, err := binio.ReadLongString(r.src)
	if err != nil {
		r.fail(field, err)
	}
	return value
}

func (r *fieldReader) compressed(field string) []byte {
	if r.err != nil {
		return nil
	}
	value, err := binio.ReadCompressed(r.src)
	if err != nil {
		r.fail(field, err)
	}
	return value
}

// Decode reads a tilemap file from src. On any failure no TileMap is
// returned: structural problems surface as [ErrInvalidMagic],
// [UnsupportedVersionError], [InvalidTypeError], [InvalidHeaderError],
// or [ErrInvalidLayerLength]; anything the underlying reader reports
// is wrapped and passed through.
//
// The declared length carried by each block is informational only and
// is never used for bounds-checking — real files rely on the decoder
// trusting the structural framing instead. End of stream is clean
// only when it falls exactly on a top-level block boundary.
func Decode(src io.Reader) (*TileMap, error) {
	reader := &fieldReader{src: src}

	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(src, magic); err != nil {
		return nil, fmt.Errorf("read magic string: %w", err)
	}
	if string(magic) != fileMagic {
		return nil, ErrInvalidMagic
	}

	version := reader.u16("version") ^ versionFlagBit
	if reader.err != nil {
		return nil, reader.err
	}
	if version > newestVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	tileMap := New()

	// Fallback tile dimensions for layers in files older than version
	// 2, which carried them in the "MAP " block instead of per layer.
	// Local to this decode on purpose; it is per-file state.
	globalTileWidth, globalTileHeight := uint16(16), uint16(16)

	for {
		var tag [4]byte
		if _, err := io.ReadFull(src, tag[:]); err != nil {
			if err == io.EOF {
				return tileMap, nil
			}
			return nil, fmt.Errorf("read block tag: %w", err)
		}
		// The declared block length. Read and discarded: see above.
		reader.u32("block length")
		if reader.err != nil {
			return nil, reader.err
		}

		switch string(tag[:]) {
		case "MAP ":
			if version >= 3 {
				if err := decodeProperties(reader, tileMap); err != nil {
					return nil, err
				}
			} else {
				globalTileWidth = reader.u16("global tile width")
				globalTileHeight = reader.u16("global tile height")
				if reader.err != nil {
					return nil, reader.err
				}
			}

		case "TILE":
			if err := decodeTileSets(reader, tileMap); err != nil {
				return nil, err
			}

		case "LAYR":
			if err := decodeLayers(reader, tileMap, version, globalTileWidth, globalTileHeight); err != nil {
				return nil, err
			}

		default:
			return nil, &InvalidHeaderError{Header: string(tag[:])}
		}
	}
}

// decodeProperties reads a version >= 3 "MAP " payload: a u16 entry
// count, then key/type/value triples. Duplicate keys overwrite.
func decodeProperties(reader *fieldReader, tileMap *TileMap) error {
	count := reader.u16("property count")
	for i := 0; i < int(count); i++ {
		key := reader.shortString("property key")
		typeTag := reader.u8("property type")
		if reader.err != nil {
			return reader.err
		}
		var property Property
		switch PropertyKind(typeTag) {
		case PropertyInteger:
			property = IntegerProperty(reader.i32("integer property value"))
		case PropertyFloat:
			property = FloatProperty(reader.f32("float property value"))
		case PropertyString:
			property = StringProperty(reader.longString("string property value"))
		default:
			return &InvalidTypeError{Type: typeTag}
		}
		if reader.err != nil {
			return reader.err
		}
		tileMap.Properties[string(key)] = property
	}
	return reader.err
}

// decodeTileSets reads a "TILE" payload: a u8 count, then per tileset
// a color stored as padding+B+G+R and a short-string path.
func decodeTileSets(reader *fieldReader, tileMap *TileMap) error {
	count := reader.u8("tileset count")
	for i := 0; i < int(count); i++ {
		color := reader.read(4, "tileset transparent color")
		transparent := RGB{R: color[3], G: color[2], B: color[1]}
		path := reader.shortString("tileset path")
		if reader.err != nil {
			return reader.err
		}
		tileMap.TileSets = append(tileMap.TileSets, TileSet{
			Path:        string(path),
			Transparent: transparent,
		})
	}
	return reader.err
}

// decodeLayers reads a "LAYR" payload. The layer count is a single
// byte in version 0 files and a u16 in everything later; per-layer
// tile dimensions exist from version 2, the sublayer link from
// version 4, and its animation-frame byte only in version 5.
func decodeLayers(reader *fieldReader, tileMap *TileMap, version uint16, globalTileWidth, globalTileHeight uint16) error {
	var count uint16
	if version == 0 {
		count = uint16(reader.u8("layer count"))
	} else {
		count = reader.u16("layer count")
	}
	if reader.err != nil {
		return reader.err
	}

	for i := 0; i < int(count); i++ {
		layer := NewLayer()
		layer.width = reader.u32("layer width")
		layer.height = reader.u32("layer height")
		if version >= 2 {
			layer.TileWidth = reader.u16("layer tile width")
			layer.TileHeight = reader.u16("layer tile height")
		} else {
			layer.TileWidth = globalTileWidth
			layer.TileHeight = globalTileHeight
		}
		layer.Tileset = reader.u8("layer tileset index")
		layer.Collision = reader.u8("layer collision index")
		layer.OffsetX = reader.i32("layer x offset")
		layer.OffsetY = reader.i32("layer y offset")
		layer.ScrollX = reader.f32("layer x scroll")
		layer.ScrollY = reader.f32("layer y scroll")
		layer.WrapX = reader.flag("layer x wrap")
		layer.WrapY = reader.flag("layer y wrap")
		layer.Visible = reader.flag("layer visibility")
		layer.Opacity = reader.f32("layer opacity")
		if version >= 4 {
			layer.Link.Tileset = reader.u8("sublayer tileset link")
			layer.Link.Animation = reader.u8("sublayer animation link")
			if version == newestVersion {
				layer.Link.AnimationFrame = reader.u8("sublayer animation frame link")
			}
		}

		sectionCount := reader.u8("layer data section count")
		if reader.err != nil {
			return reader.err
		}
		for j := 0; j < int(sectionCount); j++ {
			var sectionTag [4]byte
			if _, err := io.ReadFull(reader.src, sectionTag[:]); err != nil {
				return fmt.Errorf("read layer data section tag: %w", err)
			}
			switch string(sectionTag[:]) {
			case "MAIN":
				if err := decodeTileGrid(reader, layer); err != nil {
					return err
				}
			case "DATA":
				if err := decodeSubLayer(reader, layer); err != nil {
					return err
				}
			default:
				return &InvalidHeaderError{Header: string(sectionTag[:])}
			}
		}

		tileMap.Layers = append(tileMap.Layers, layer)
	}
	return reader.err
}

// decodeTileGrid reads a "MAIN" section: a compressed run of two
// bytes per tile, stored in on-disk order.
func decodeTileGrid(reader *fieldReader, layer *Layer) error {
	payload := reader.compressed("layer tile data")
	if reader.err != nil {
		return reader.err
	}
	if len(payload)%2 != 0 {
		return ErrInvalidLayerLength
	}
	tiles := make([]Tile, len(payload)/2)
	for i := range tiles {
		tiles[i] = Tile{payload[2*i], payload[2*i+1]}
	}
	layer.tiles = tiles
	return nil
}

// decodeSubLayer reads a "DATA" section: cell size, a 4-byte default
// value, and the compressed cell buffer, which must match the layer's
// dimensions exactly.
func decodeSubLayer(reader *fieldReader, layer *Layer) error {
	cellSize := min(reader.u8("sublayer cell size"), 4)
	defaultValue := reader.read(4, "sublayer default value")

	sublayer := &SubLayer{cellSize: cellSize}
	// Bytes past the cell size are on-disk padding, not data.
	copy(sublayer.defaultValue[:], defaultValue[:cellSize])
	if layer.width != 0 && layer.height != 0 {
		sublayer.width = layer.width
		sublayer.height = layer.height
	}

	payload := reader.compressed("sublayer cell data")
	if reader.err != nil {
		return reader.err
	}
	if len(payload) != int(sublayer.width)*int(sublayer.height)*int(cellSize) {
		return ErrInvalidLayerLength
	}
	sublayer.data = payload
	layer.Sublayers = append(layer.Sublayers, sublayer)
	return nil
}
