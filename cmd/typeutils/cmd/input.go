// File: input.go
// Title: Command Input Helpers
// Description: Reads command input from positional arguments or stdin and
//              validates argument counts with structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/typeutils/core/errors"
)

// readInput joins the positional arguments with spaces. Without arguments
// stdin is read completely and one trailing line break is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleCLI, "read_stdin", err)
	}

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

// argsRange accepts between min and max positional arguments; max < 0
// means no upper bound
func argsRange(operation string, min, max int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) >= min && (max < 0 || len(args) <= max) {
			return nil
		}

		expected := fmt.Sprintf("%d to %d arguments", min, max)
		switch {
		case max < 0:
			expected = fmt.Sprintf("at least %d arguments", min)
		case min == max:
			expected = fmt.Sprintf("exactly %d arguments", min)
		}
		return errors.CLIInvalidArgument(operation, "args", len(args), expected)
	}
}
