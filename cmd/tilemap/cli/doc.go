// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the small command framework behind the
// tilemap tool: a [Command] tree dispatched by positional arguments,
// pflag-based flag parsing, structured help output, and typo
// suggestions for near-miss command and flag names.
//
// Commands that print their own diagnostics and only need a non-zero
// exit status return an [ExitError]; main treats it as an exit code
// rather than an error message.
package cli
