// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
	"github.com/ctkit/tilemap/lib/tilemap"
)

// tilePalette colors tile cells by id so adjacent runs of the same
// tile read as regions. Default (empty) cells render faint.
var tilePalette = []lipgloss.Color{
	"2", "3", "4", "5", "6", "9", "10", "11", "12", "13", "14",
}

func dumpCommand() *cli.Command {
	var showSublayers bool

	return &cli.Command{
		Name:    "dump",
		Summary: "Render a map's contents in the terminal",
		Description: `Pretty-print a map file: properties, tilesets, and every
layer's tile grid. Tile cells are printed as hex ids, colored by id;
empty cells render as dots.`,
		Usage: "tilemap dump [flags] <file>",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("dump", pflag.ContinueOnError)
			flags.BoolVar(&showSublayers, "sublayers", false, "also dump sublayer cell data")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one map file argument, got %d", len(args))
			}
			return runDump(args[0], showSublayers, os.Stdout)
		},
	}
}

func runDump(path string, showSublayers bool, out io.Writer) error {
	tileMap, err := loadMap(path)
	if err != nil {
		return err
	}

	headingStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle := lipgloss.NewStyle().Faint(true)

	if len(tileMap.Properties) > 0 {
		fmt.Fprintln(out, headingStyle.Render("Properties"))
		keys := make([]string, 0, len(tileMap.Properties))
		for key := range tileMap.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			property := tileMap.Properties[key]
			fmt.Fprintf(out, "  %s = %s %s\n",
				labelStyle.Render(key),
				propertyValue(property),
				faintStyle.Render("("+propertyKindName(property.Kind)+")"))
		}
		fmt.Fprintln(out)
	}

	if len(tileMap.TileSets) > 0 {
		fmt.Fprintln(out, headingStyle.Render("Tilesets"))
		for i, tileSet := range tileMap.TileSets {
			swatch := fmt.Sprintf("#%02x%02x%02x",
				tileSet.Transparent.R, tileSet.Transparent.G, tileSet.Transparent.B)
			fmt.Fprintf(out, "  %2d  %s  %s\n",
				i, tileSet.Path, faintStyle.Render("transparent "+swatch))
		}
		fmt.Fprintln(out)
	}

	for i, layer := range tileMap.Layers {
		title := fmt.Sprintf("Layer %d (%dx%d)", i, layer.Width(), layer.Height())
		fmt.Fprintln(out, headingStyle.Render(title))
		dumpTileGrid(out, layer, faintStyle)
		if showSublayers {
			for j, sublayer := range layer.Sublayers {
				fmt.Fprintf(out, "  %s\n",
					labelStyle.Render(fmt.Sprintf("sublayer %d (cell size %d)", j, sublayer.CellSize())))
				dumpSublayerGrid(out, sublayer, faintStyle)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func dumpTileGrid(out io.Writer, layer *tilemap.Layer, faintStyle lipgloss.Style) {
	if layer.Width() == 0 || layer.Height() == 0 {
		fmt.Fprintln(out, faintStyle.Render("  (empty)"))
		return
	}
	emptyID := tilemap.DefaultTile().ID()
	var row strings.Builder
	for y := uint32(0); y < layer.Height(); y++ {
		row.Reset()
		row.WriteString("  ")
		for x := uint32(0); x < layer.Width(); x++ {
			tile, _ := layer.At(x, y)
			id := tile.ID()
			if id == emptyID {
				row.WriteString(faintStyle.Render(" ···· "))
				continue
			}
			style := lipgloss.NewStyle().Foreground(tilePalette[int(id)%len(tilePalette)])
			row.WriteString(style.Render(fmt.Sprintf(" %04x ", id)))
		}
		fmt.Fprintln(out, row.String())
	}
}

func dumpSublayerGrid(out io.Writer, sublayer *tilemap.SubLayer, faintStyle lipgloss.Style) {
	if sublayer.Width() == 0 || sublayer.Height() == 0 {
		fmt.Fprintln(out, faintStyle.Render("  (empty)"))
		return
	}
	var row strings.Builder
	for y := uint32(0); y < sublayer.Height(); y++ {
		row.Reset()
		row.WriteString("  ")
		for x := uint32(0); x < sublayer.Width(); x++ {
			row.WriteString(fmt.Sprintf(" %x", sublayer.Cell(x, y)))
		}
		fmt.Fprintln(out, row.String())
	}
}
