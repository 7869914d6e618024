// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
	"github.com/ctkit/tilemap/lib/mapexport"
	"github.com/ctkit/tilemap/lib/tilemap"
)

func exportCommand() *cli.Command {
	var (
		format string
		output string
	)

	return &cli.Command{
		Name:    "export",
		Summary: "Convert a map file to JSON, YAML, or CBOR",
		Description: `Decode a map file and write it in a structured interchange
format. CBOR output uses deterministic encoding: the same map always
produces identical bytes, which makes it suitable for content
addressing and diffing.`,
		Usage: "tilemap export [flags] <file>",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
			flags.StringVar(&format, "format", "json", "output format: json, yaml, or cbor")
			flags.StringVarP(&output, "out", "o", "", "write to file instead of stdout")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one map file argument, got %d", len(args))
			}

			out := io.Writer(os.Stdout)
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer file.Close()
				out = file
			}
			return runExport(args[0], format, out)
		},
		Examples: []cli.Example{
			{
				Description: "Export to YAML on stdout",
				Command:     "tilemap export --format yaml overworld.map",
			},
			{
				Description: "Export deterministic CBOR to a file",
				Command:     "tilemap export --format cbor -o overworld.cbor overworld.map",
			},
		},
	}
}

func runExport(path, format string, out io.Writer) error {
	tileMap, err := loadMap(path)
	if err != nil {
		return err
	}

	data, err := marshalAs(tileMap, format)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func marshalAs(tileMap *tilemap.TileMap, format string) ([]byte, error) {
	switch format {
	case "json":
		return mapexport.MarshalJSON(tileMap)
	case "yaml":
		return mapexport.MarshalYAML(tileMap)
	case "cbor":
		return mapexport.MarshalCBOR(tileMap)
	}
	return nil, fmt.Errorf("unknown format %q (want json, yaml, or cbor)", format)
}
