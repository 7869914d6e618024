// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package mapexport

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/ctkit/tilemap/lib/tilemap"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The same map always exports
// to identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("mapexport: CBOR encoder initialization failed: " + err.Error())
	}
}

// Document is the export mirror of a [tilemap.TileMap].
type Document struct {
	Properties map[string]Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	TileSets   []TileSet           `json:"tilesets,omitempty" yaml:"tilesets,omitempty"`
	Layers     []Layer             `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// Property is one exported metadata entry. Exactly one value field is
// set, matching Type ("integer", "float", or "string"). String values
// are exported as raw bytes since the format does not require them to
// be text.
type Property struct {
	Type    string   `json:"type" yaml:"type"`
	Integer *int32   `json:"integer,omitempty" yaml:"integer,omitempty"`
	Float   *float32 `json:"float,omitempty" yaml:"float,omitempty"`
	String  []byte   `json:"string,omitempty" yaml:"string,omitempty"`
}

// TileSet is one exported tileset entry.
type TileSet struct {
	Path        string `json:"path" yaml:"path"`
	Transparent string `json:"transparent" yaml:"transparent"`
}

// Layer is one exported layer.
type Layer struct {
	Width      uint32     `json:"width" yaml:"width"`
	Height     uint32     `json:"height" yaml:"height"`
	TileWidth  uint16     `json:"tile_width" yaml:"tile_width"`
	TileHeight uint16     `json:"tile_height" yaml:"tile_height"`
	Tileset    uint8      `json:"tileset" yaml:"tileset"`
	Collision  uint8      `json:"collision" yaml:"collision"`
	OffsetX    int32      `json:"offset_x" yaml:"offset_x"`
	OffsetY    int32      `json:"offset_y" yaml:"offset_y"`
	ScrollX    float32    `json:"scroll_x" yaml:"scroll_x"`
	ScrollY    float32    `json:"scroll_y" yaml:"scroll_y"`
	WrapX      bool       `json:"wrap_x" yaml:"wrap_x"`
	WrapY      bool       `json:"wrap_y" yaml:"wrap_y"`
	Visible    bool       `json:"visible" yaml:"visible"`
	Opacity    float32    `json:"opacity" yaml:"opacity"`
	Link       []uint8    `json:"sublayer_link" yaml:"sublayer_link"`
	Tiles      [][]uint16 `json:"tiles,omitempty" yaml:"tiles,omitempty"`
	Sublayers  []SubLayer `json:"sublayers,omitempty" yaml:"sublayers,omitempty"`
}

// SubLayer is one exported per-cell data plane. Data is the raw
// row-major cell buffer.
type SubLayer struct {
	CellSize uint8  `json:"cell_size" yaml:"cell_size"`
	Default  []byte `json:"default" yaml:"default"`
	Data     []byte `json:"data" yaml:"data"`
}

// FromTileMap builds the export document for a tilemap. Tile grids
// become rows of big-endian tile ids, top row first.
func FromTileMap(m *tilemap.TileMap) *Document {
	document := &Document{}

	if len(m.Properties) > 0 {
		document.Properties = make(map[string]Property, len(m.Properties))
		for key, property := range m.Properties {
			document.Properties[key] = exportProperty(property)
		}
	}

	for _, tileSet := range m.TileSets {
		document.TileSets = append(document.TileSets, TileSet{
			Path: tileSet.Path,
			Transparent: fmt.Sprintf("#%02x%02x%02x",
				tileSet.Transparent.R, tileSet.Transparent.G, tileSet.Transparent.B),
		})
	}

	for _, layer := range m.Layers {
		document.Layers = append(document.Layers, exportLayer(layer))
	}
	return document
}

func exportProperty(property tilemap.Property) Property {
	switch property.Kind {
	case tilemap.PropertyInteger:
		value := property.Integer
		return Property{Type: "integer", Integer: &value}
	case tilemap.PropertyFloat:
		value := property.Float
		return Property{Type: "float", Float: &value}
	default:
		return Property{Type: "string", String: property.String}
	}
}

func exportLayer(layer *tilemap.Layer) Layer {
	exported := Layer{
		Width:      layer.Width(),
		Height:     layer.Height(),
		TileWidth:  layer.TileWidth,
		TileHeight: layer.TileHeight,
		Tileset:    layer.Tileset,
		Collision:  layer.Collision,
		OffsetX:    layer.OffsetX,
		OffsetY:    layer.OffsetY,
		ScrollX:    layer.ScrollX,
		ScrollY:    layer.ScrollY,
		WrapX:      layer.WrapX,
		WrapY:      layer.WrapY,
		Visible:    layer.Visible,
		Opacity:    layer.Opacity,
		Link:       []uint8{layer.Link.Tileset, layer.Link.Animation, layer.Link.AnimationFrame},
	}

	for y := uint32(0); y < layer.Height(); y++ {
		row := make([]uint16, layer.Width())
		for x := uint32(0); x < layer.Width(); x++ {
			// An under-filled grid exports its missing cells as empty.
			tile, ok := layer.At(x, y)
			if !ok {
				tile = tilemap.DefaultTile()
			}
			row[x] = tile.ID()
		}
		exported.Tiles = append(exported.Tiles, row)
	}

	for _, sublayer := range layer.Sublayers {
		data := make([]byte, len(sublayer.Data()))
		copy(data, sublayer.Data())
		exported.Sublayers = append(exported.Sublayers, SubLayer{
			CellSize: sublayer.CellSize(),
			Default:  sublayer.Default(),
			Data:     data,
		})
	}
	return exported
}

// MarshalJSON exports m as indented JSON.
func MarshalJSON(m *tilemap.TileMap) ([]byte, error) {
	data, err := json.MarshalIndent(FromTileMap(m), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tilemap as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// MarshalYAML exports m as YAML.
func MarshalYAML(m *tilemap.TileMap) ([]byte, error) {
	data, err := yaml.Marshal(FromTileMap(m))
	if err != nil {
		return nil, fmt.Errorf("encoding tilemap as YAML: %w", err)
	}
	return data, nil
}

// MarshalCBOR exports m as deterministically encoded CBOR: the same
// map always produces identical bytes.
func MarshalCBOR(m *tilemap.TileMap) ([]byte, error) {
	data, err := encMode.Marshal(FromTileMap(m))
	if err != nil {
		return nil, fmt.Errorf("encoding tilemap as CBOR: %w", err)
	}
	return data, nil
}
