// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the tilemap CLI command tree. Each command
// lives in its own file; Root assembles them for the binary's main.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
	"github.com/ctkit/tilemap/lib/tilemap"
	"github.com/ctkit/tilemap/lib/version"
)

// Root builds and returns the complete tilemap CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "tilemap",
		Description: `tilemap: inspect and transform legacy tile map files.

Reads and writes the binary map format used by the classic
tile map editor, including its compressed tile grids and
per-cell data sublayers.`,
		Subcommands: []*cli.Command{
			infoCommand(),
			dumpCommand(),
			exportCommand(),
			digestCommand(),
			resizeCommand(),
			verifyCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ []string) error {
					fmt.Printf("tilemap %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show a one-screen summary of a map file",
				Command:     "tilemap info overworld.map",
			},
			{
				Description: "Render the map's layers in the terminal",
				Command:     "tilemap dump overworld.map",
			},
			{
				Description: "Convert a map to YAML",
				Command:     "tilemap export --format yaml overworld.map",
			},
			{
				Description: "Print a stable content digest",
				Command:     "tilemap digest overworld.map",
			},
			{
				Description: "Resize the first layer to 40x30 tiles",
				Command:     "tilemap resize --layer 0 --width 40 --height 30 overworld.map",
			},
			{
				Description: "Check that a file survives a rewrite cycle",
				Command:     "tilemap verify overworld.map",
			},
		},
	}
}

// loadMap opens and decodes a map file. Shared by every subcommand.
func loadMap(path string) (*tilemap.TileMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map file: %w", err)
	}
	defer file.Close()

	tileMap, err := tilemap.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return tileMap, nil
}

// saveMap encodes a map to path, writing through a temp file in the
// same directory so a failed encode never truncates the original.
func saveMap(path string, tileMap *tilemap.TileMap) error {
	temp, err := os.CreateTemp(filepath.Dir(path), ".tilemap-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempName := temp.Name()

	if err := tileMap.Encode(temp); err != nil {
		temp.Close()
		os.Remove(tempName)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
