// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	var ran []string
	root := &Command{
		Name: "tool",
		Subcommands: []*Command{
			{
				Name: "info",
				Run: func(args []string) error {
					ran = args
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"info", "map.bin"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "map.bin" {
		t.Fatalf("subcommand args = %v, want [map.bin]", ran)
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "tool",
		Subcommands: []*Command{
			{Name: "resize"},
			{Name: "digest"},
		},
	}

	err := root.Execute([]string{"resise"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `"resize"`) {
		t.Fatalf("error %q does not suggest resize", err)
	}
}

func TestExecuteUnknownCommandNoSuggestionWhenFar(t *testing.T) {
	root := &Command{
		Name:        "tool",
		Subcommands: []*Command{{Name: "resize"}},
	}

	err := root.Execute([]string{"zzzzzzzzzz"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("error %q should not carry a suggestion", err)
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var format string
	var positional []string
	command := &Command{
		Name: "export",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
			flags.StringVar(&format, "format", "json", "output format")
			return flags
		},
		Run: func(args []string) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute([]string{"--format", "yaml", "map.bin"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if format != "yaml" {
		t.Fatalf("format = %q, want yaml", format)
	}
	if len(positional) != 1 || positional[0] != "map.bin" {
		t.Fatalf("positional = %v, want [map.bin]", positional)
	}
}

func TestExecuteUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "export",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
			flags.String("format", "json", "output format")
			return flags
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--fromat", "yaml"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--format") {
		t.Fatalf("error %q does not suggest --format", err)
	}
}

func TestPrintHelpListsSubcommands(t *testing.T) {
	root := &Command{
		Name:    "tool",
		Summary: "manipulates map files",
		Subcommands: []*Command{
			{Name: "info", Summary: "show a summary"},
			{Name: "digest", Summary: "print a content digest"},
		},
	}

	var out strings.Builder
	root.PrintHelp(&out)
	help := out.String()
	for _, want := range []string{"info", "show a summary", "digest", "Commands:"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestFullNameWalksParents(t *testing.T) {
	root := &Command{Name: "tool"}
	sub := &Command{Name: "resize", Run: func([]string) error { return nil }}
	root.Subcommands = []*Command{sub}

	if err := root.Execute([]string{"resize"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := sub.fullName(); got != "tool resize" {
		t.Fatalf("fullName = %q, want %q", got, "tool resize")
	}
}

func TestExitErrorCode(t *testing.T) {
	var exitErr *ExitError
	err := error(&ExitError{Code: 3, Message: "maps differ"})
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As failed to match ExitError")
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("ExitCode = %d, want 3", exitErr.ExitCode())
	}
	if exitErr.Error() != "maps differ" {
		t.Fatalf("Error = %q", exitErr.Error())
	}

	silent := &ExitError{Code: 2}
	if !strings.Contains(silent.Error(), "2") {
		t.Fatalf("empty-message Error = %q, want the code mentioned", silent.Error())
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"resize", "resise", 1},
		{"digest", "diegst", 2},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
