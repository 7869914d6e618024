// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError is an error that carries a specific process exit code. The main
// function checks for it (via errors.As) to set the exit status; any other
// error exits with code 1.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Message is the error message. May be empty when the command already
	// reported its findings on stdout and the code alone carries them.
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Message
}

// ExitCode returns the process exit code for this error.
func (e *ExitError) ExitCode() int {
	return e.Code
}
