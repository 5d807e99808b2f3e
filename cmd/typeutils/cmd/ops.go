// File: ops.go
// Title: String Operation Commands
// Description: One command per string utility. Flags that were set on the
//              command line take precedence over configured options.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-08
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: wordsafe accepts any limit like the library does

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/typeutils/core/log"
	"github.com/msto63/typeutils/utils/stringx"
)

func newStartsWithCmd(a *app) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "starts-with HAYSTACK NEEDLE",
		Short: "Check whether HAYSTACK begins with NEEDLE",
		Long: `Prints true when HAYSTACK begins with NEEDLE, otherwise false.
An empty NEEDLE always matches.

Examples:
  typeutils starts-with "Hello World" Hello
  typeutils starts-with --ignore-case "Hello World" hello`,
		Args: argsRange("starts-with", 2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseSensitive := a.caseSensitive(cmd, ignoreCase)
			result := stringx.StartsWith(args[0], args[1], caseSensitive)
			a.log().Debug("starts-with", log.Fields{"case_sensitive": caseSensitive, "result": result})
			printResult(cmd, result)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare ASCII letters case-insensitively")
	return cmd
}

func newEndsWithCmd(a *app) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "ends-with HAYSTACK NEEDLE",
		Short: "Check whether HAYSTACK ends with NEEDLE",
		Long: `Prints true when HAYSTACK ends with NEEDLE, otherwise false.
An empty NEEDLE always matches.

Examples:
  typeutils ends-with report.PDF .pdf --ignore-case`,
		Args: argsRange("ends-with", 2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseSensitive := a.caseSensitive(cmd, ignoreCase)
			result := stringx.EndsWith(args[0], args[1], caseSensitive)
			a.log().Debug("ends-with", log.Fields{"case_sensitive": caseSensitive, "result": result})
			printResult(cmd, result)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare ASCII letters case-insensitively")
	return cmd
}

func newOneLineCmd(a *app) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "one-line [TEXT...]",
		Short: "Collapse text to a single line",
		Long: `Removes all whitespace from every line of TEXT and joins the
non-empty lines with the separator. Reads stdin when TEXT is missing.

Examples:
  printf 'a b\nc\n' | typeutils one-line --separator ", "`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts := a.options()
			if cmd.Flags().Changed("separator") {
				opts.Separator = separator
			}
			printResult(cmd, opts.TrimToOneLine(text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", stringx.DefaultSeparator, "string placed between lines")
	return cmd
}

func newWordsafeCmd(a *app) *cobra.Command {
	var (
		limit    int
		ellipsis string
	)

	cmd := &cobra.Command{
		Use:   "wordsafe [TEXT...]",
		Short: "Truncate text at a word boundary",
		Long: `Shortens TEXT to at most --limit bytes, cutting at the last space
and appending the ellipsis. Text within the limit, or any text when the
limit is zero or below, is printed unchanged.

Examples:
  typeutils wordsafe --limit 12 "The quick brown fox"
  typeutils wordsafe --limit 12 --ellipsis " [...]" "The quick brown fox"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts := a.options()
			if cmd.Flags().Changed("ellipsis") {
				opts.Ellipsis = ellipsis
			}
			printResult(cmd, opts.SubstrWordsafe(text, limit))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum length in bytes before the ellipsis")
	cmd.Flags().StringVarP(&ellipsis, "ellipsis", "e", stringx.DefaultEllipsis, "suffix for truncated text")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func newLtrimBrCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ltrim-br [TEXT...]",
		Short: "Strip leading whitespace and <br> tags",
		Long: `Removes leading whitespace followed by any run of <br>, <br/>
or <br /> tags, in any letter case. Reads stdin when TEXT is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result := stringx.LtrimBr(text)
			a.log().Debug("ltrim-br", log.Fields{"removed": len(text) - len(result)})
			printResult(cmd, result)
			return nil
		},
	}
}

func newHasWhitespaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "has-ws [TEXT...]",
		Short: "Check whether text contains whitespace",
		Long: `Prints true when TEXT contains a space, tab, line feed, carriage
return, form feed or vertical tab. Several arguments are joined with
spaces, so quote the text to test a single word.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result := stringx.HasWhitespaces(text)
			a.log().Debug("has-ws", log.Fields{"bytes": len(text), "result": result})
			printResult(cmd, result)
			return nil
		},
	}
}

func newExtCmd(a *app) *cobra.Command {
	var returnFilename bool

	cmd := &cobra.Command{
		Use:   "ext FILENAME",
		Short: "Print the extension of a file name",
		Long: `Prints the text after the last dot of FILENAME. Without a dot an
empty line is printed, or FILENAME itself with --return-filename.

Examples:
  typeutils ext archive.tar.gz         # gz
  typeutils ext --return-filename Makefile`,
		Args: argsRange("ext", 1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			if cmd.Flags().Changed("return-filename") {
				opts.ReturnFilename = returnFilename
			}
			printResult(cmd, opts.GetFileExtension(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&returnFilename, "return-filename", stringx.DefaultReturnFilename, "print FILENAME when it has no extension")
	return cmd
}

// caseSensitive resolves --ignore-case against the configured default
func (a *app) caseSensitive(cmd *cobra.Command, ignoreCase bool) bool {
	if cmd.Flags().Changed("ignore-case") {
		return !ignoreCase
	}
	return a.options().CaseSensitive
}
