// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
	"github.com/ctkit/tilemap/lib/tilemap"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:    "verify",
		Summary: "Check that a map survives a rewrite cycle",
		Description: `Decode a map file, re-encode it, and decode the result again.
Exits 0 when the two decoded maps are identical, 1 when the rewrite
would lose data (for example overlong strings that get truncated, or
more tilesets than the format can count).

Note that the file bytes themselves may legitimately differ after a
rewrite: old files are rewritten at the newest format version, and
property order is not preserved. Only the decoded content is compared.`,
		Usage: "tilemap verify <file>...",
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("expected at least one map file argument")
			}
			return runVerify(args, os.Stdout)
		},
	}
}

func runVerify(paths []string, out io.Writer) error {
	failures := 0
	for _, path := range paths {
		if err := verifyMap(path); err != nil {
			fmt.Fprintf(out, "%s: FAIL: %v\n", path, err)
			failures++
			continue
		}
		fmt.Fprintf(out, "%s: OK\n", path)
	}
	if failures > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func verifyMap(path string) error {
	original, err := loadMap(path)
	if err != nil {
		return err
	}

	var rewritten bytes.Buffer
	if err := original.Encode(&rewritten); err != nil {
		return fmt.Errorf("re-encoding: %w", err)
	}

	reloaded, err := tilemap.Decode(&rewritten)
	if err != nil {
		return fmt.Errorf("decoding rewritten map: %w", err)
	}

	if !reflect.DeepEqual(original, reloaded) {
		return fmt.Errorf("rewrite is lossy: decoded maps differ")
	}
	return nil
}
