// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
	"github.com/ctkit/tilemap/lib/tilemap"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:    "info",
		Summary: "Show a summary of a map file",
		Description: `Print a one-screen summary of a map file: its properties,
tilesets, and per-layer dimensions.`,
		Usage: "tilemap info <file>",
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one map file argument, got %d", len(args))
			}
			return runInfo(args[0], os.Stdout)
		},
	}
}

func runInfo(path string, out io.Writer) error {
	tileMap, err := loadMap(path)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "file\t%s\n", path)
	fmt.Fprintf(writer, "properties\t%d\n", len(tileMap.Properties))
	fmt.Fprintf(writer, "tilesets\t%d\n", len(tileMap.TileSets))
	fmt.Fprintf(writer, "layers\t%d\n", len(tileMap.Layers))
	writer.Flush()

	if len(tileMap.Properties) > 0 {
		fmt.Fprintln(out)
		keys := make([]string, 0, len(tileMap.Properties))
		for key := range tileMap.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		propertyWriter := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
		for _, key := range keys {
			property := tileMap.Properties[key]
			fmt.Fprintf(propertyWriter, "  %s\t%s\t%s\n",
				key, propertyKindName(property.Kind), propertyValue(property))
		}
		propertyWriter.Flush()
	}

	if len(tileMap.TileSets) > 0 {
		fmt.Fprintln(out)
		tileSetWriter := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
		for i, tileSet := range tileMap.TileSets {
			fmt.Fprintf(tileSetWriter, "  tileset %d\t%s\ttransparent #%02x%02x%02x\n",
				i, tileSet.Path,
				tileSet.Transparent.R, tileSet.Transparent.G, tileSet.Transparent.B)
		}
		tileSetWriter.Flush()
	}

	if len(tileMap.Layers) > 0 {
		fmt.Fprintln(out)
		layerWriter := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
		for i, layer := range tileMap.Layers {
			visibility := "visible"
			if !layer.Visible {
				visibility = "hidden"
			}
			fmt.Fprintf(layerWriter, "  layer %d\t%dx%d tiles\t%dx%d px each\t%s\topacity %.2f\tsublayers %d\n",
				i, layer.Width(), layer.Height(),
				layer.TileWidth, layer.TileHeight,
				visibility, layer.Opacity, len(layer.Sublayers))
		}
		layerWriter.Flush()
	}
	return nil
}

func propertyKindName(kind tilemap.PropertyKind) string {
	switch kind {
	case tilemap.PropertyInteger:
		return "integer"
	case tilemap.PropertyFloat:
		return "float"
	case tilemap.PropertyString:
		return "string"
	}
	return fmt.Sprintf("unknown(%d)", kind)
}

func propertyValue(property tilemap.Property) string {
	switch property.Kind {
	case tilemap.PropertyInteger:
		return fmt.Sprintf("%d", property.Integer)
	case tilemap.PropertyFloat:
		return fmt.Sprintf("%g", property.Float)
	default:
		return string(property.String)
	}
}
