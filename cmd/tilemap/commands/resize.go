// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
)

func resizeCommand() *cli.Command {
	var (
		layerIndex int
		width      uint32
		height     uint32
		output     string
	)

	return &cli.Command{
		Name:    "resize",
		Summary: "Resize a layer and rewrite the map file",
		Description: `Resize one layer of a map to new dimensions and write the map
back out. New tiles are empty; tiles outside the new bounds are
discarded, so shrinking is lossy. Attached sublayers are resized to
match, padding new cells with the sublayer's default value.

Without --out the file is rewritten in place (via a temp file, so a
failed encode never corrupts the original).`,
		Usage: "tilemap resize [flags] <file>",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("resize", pflag.ContinueOnError)
			flags.IntVar(&layerIndex, "layer", 0, "index of the layer to resize")
			flags.Uint32Var(&width, "width", 0, "new width in tiles")
			flags.Uint32Var(&height, "height", 0, "new height in tiles")
			flags.StringVarP(&output, "out", "o", "", "write to a new file instead of in place")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one map file argument, got %d", len(args))
			}
			target := output
			if target == "" {
				target = args[0]
			}
			return runResize(args[0], target, layerIndex, width, height)
		},
		Examples: []cli.Example{
			{
				Description: "Grow the first layer to 40x30 tiles in place",
				Command:     "tilemap resize --layer 0 --width 40 --height 30 overworld.map",
			},
			{
				Description: "Write the resized map to a new file",
				Command:     "tilemap resize --width 10 --height 10 -o small.map overworld.map",
			},
		},
	}
}

func runResize(inputPath, outputPath string, layerIndex int, width, height uint32) error {
	tileMap, err := loadMap(inputPath)
	if err != nil {
		return err
	}
	if layerIndex < 0 || layerIndex >= len(tileMap.Layers) {
		return fmt.Errorf("layer index %d out of range (map has %d layers)",
			layerIndex, len(tileMap.Layers))
	}

	tileMap.Layers[layerIndex].Resize(width, height)
	return saveMap(outputPath, tileMap)
}
