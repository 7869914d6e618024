// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ctkit/tilemap/cmd/tilemap/cli"
	"github.com/ctkit/tilemap/lib/mapdigest"
)

func digestCommand() *cli.Command {
	var check string

	return &cli.Command{
		Name:    "digest",
		Summary: "Print a stable content digest of a map file",
		Description: `Compute a BLAKE3 digest over a map's content. The digest is
computed from a deterministic re-encoding of the decoded map, not the
raw file bytes, so two files that decode to the same map (for example
after a rewrite that reordered properties) share a digest.`,
		Usage: "tilemap digest [flags] <file>...",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("digest", pflag.ContinueOnError)
			flags.StringVar(&check, "check", "", "verify files against this hex digest instead of printing")
			return flags
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("expected at least one map file argument")
			}
			return runDigest(args, check, os.Stdout)
		},
		Examples: []cli.Example{
			{
				Description: "Print the digest of a map",
				Command:     "tilemap digest overworld.map",
			},
			{
				Description: "Verify a map against a known digest",
				Command:     "tilemap digest --check 9f3a... overworld.map",
			},
		},
	}
}

func runDigest(paths []string, check string, out io.Writer) error {
	var want [32]byte
	if check != "" {
		var err error
		want, err = mapdigest.Parse(check)
		if err != nil {
			return err
		}
	}

	mismatches := 0
	for _, path := range paths {
		digest, err := mapdigest.DigestFile(path)
		if err != nil {
			return err
		}
		if check == "" {
			fmt.Fprintf(out, "%s  %s\n", mapdigest.Format(digest), path)
			continue
		}
		if digest == want {
			fmt.Fprintf(out, "%s: OK\n", path)
		} else {
			fmt.Fprintf(out, "%s: MISMATCH (got %s)\n", path, mapdigest.Format(digest))
			mismatches++
		}
	}
	if mismatches > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
