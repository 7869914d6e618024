// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestionDistance is the largest edit distance at which a candidate is
// still considered a plausible typo of the input.
const maxSuggestionDistance = 3

// suggestCommand returns the name of the subcommand closest to input, or ""
// if nothing is close enough to be a plausible typo.
func suggestCommand(input string, commands []*Command) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, command := range commands {
		distance := levenshtein(input, command.Name)
		if distance < bestDistance {
			best = command.Name
			bestDistance = distance
		}
	}
	return best
}

// suggestFlag inspects args for the first unknown flag and returns the
// closest registered flag name (with dashes), or "" if nothing is close.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	var unknown string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if name != "" && flagSet.Lookup(name) == nil {
			unknown = name
			break
		}
	}
	if unknown == "" {
		return ""
	}

	best := ""
	bestDistance := maxSuggestionDistance + 1
	flagSet.VisitAll(func(flag *pflag.Flag) {
		distance := levenshtein(unknown, flag.Name)
		if distance < bestDistance {
			best = flag.Name
			bestDistance = distance
		}
	})
	if best == "" {
		return ""
	}
	return "--" + best
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 0; i < len(a); i++ {
		current[0] = i + 1
		for j := 0; j < len(b); j++ {
			substitutionCost := 1
			if a[i] == b[j] {
				substitutionCost = 0
			}
			current[j+1] = minInt(
				current[j]+1,
				previous[j+1]+1,
				previous[j]+substitutionCost,
			)
		}
		previous, current = current, previous
	}
	return previous[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
