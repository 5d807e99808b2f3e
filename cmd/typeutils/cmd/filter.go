// File: filter.go
// Title: Line Filter Command
// Description: Applies one string operation to every line read from stdin.
//              With --watch the configured options are reloaded when the
//              config file changes while the filter runs.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-09
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Trace output per line, log level follows reloads,
//                      limits of zero or below pass text through

package cmd

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/msto63/typeutils/core/config"
	"github.com/msto63/typeutils/core/errors"
	"github.com/msto63/typeutils/core/log"
	"github.com/msto63/typeutils/utils/stringx"
)

// lineOp transforms a single input line with the current options
type lineOp func(opts stringx.Options, line string, limit int) string

var lineOps = map[string]lineOp{
	"one-line": func(opts stringx.Options, line string, _ int) string {
		return opts.TrimToOneLine(line)
	},
	"wordsafe": func(opts stringx.Options, line string, limit int) string {
		return opts.SubstrWordsafe(line, limit)
	},
	"ltrim-br": func(_ stringx.Options, line string, _ int) string {
		return stringx.LtrimBr(line)
	},
	"ext": func(opts stringx.Options, line string, _ int) string {
		return opts.GetFileExtension(line)
	},
}

func lineOpNames() string {
	names := make([]string, 0, len(lineOps))
	for name := range lineOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func newFilterCmd(a *app) *cobra.Command {
	var (
		op    string
		limit int
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "filter --op OP",
		Short: "Apply an operation to each line of stdin",
		Long: fmt.Sprintf(`Reads stdin line by line and writes the result of OP for each line.

Operations: %s

The wordsafe limit defaults to filter.limit from the config file. A limit
of zero or below leaves lines unchanged. With --watch and --config,
changes to the [stringx] section and to log.level take effect for the
following lines. At log level trace every line is logged.

Examples:
  cat titles.txt | typeutils filter --op wordsafe --limit 40
  ls | typeutils filter --op ext`, lineOpNames()),
		Args: argsRange("filter", 0, 0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			apply, ok := lineOps[op]
			if !ok {
				return errors.CLIInvalidArgument("filter", "op", op, lineOpNames())
			}
			if !cmd.Flags().Changed("limit") && a.cfg != nil {
				limit = a.cfg.GetInt("filter.limit", limit)
			}
			if watch {
				if err := a.watchConfig(cmd); err != nil {
					return err
				}
			}
			return a.runFilter(cmd, op, apply, limit)
		},
	}
	cmd.Flags().StringVar(&op, "op", "", "operation: "+lineOpNames())
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "limit for the wordsafe operation")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload options when the config file changes")
	return cmd
}

func (a *app) runFilter(cmd *cobra.Command, op string, apply lineOp, limit int) error {
	scope := log.Fields{"op": op, "limit": limit}
	timer := a.log().WithFields(scope).StartTimer("filter")
	out := bufio.NewWriter(cmd.OutOrStdout())
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines, size := 0, 0
	for scanner.Scan() {
		if err := cmd.Context().Err(); err != nil {
			break
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		result := apply(a.options(), line, limit)
		if logger := a.log(); logger.IsLevelEnabled(log.LevelTrace) {
			logger.Trace("line filtered", scope, log.Int("line", lines+1),
				log.Int("in", len(line)), log.Int("out", len(result)))
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			timer.StopWithError(err)
			return errors.OperationFailed(errors.ModuleCLI, "filter", err)
		}
		lines++
		size += len(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		timer.StopWithError(err)
		return errors.OperationFailed(errors.ModuleCLI, "read_stdin", err)
	}
	if err := out.Flush(); err != nil {
		timer.StopWithError(err)
		return errors.OperationFailed(errors.ModuleCLI, "filter", err)
	}

	timer.WithField("lines", lines).WithField("input", humanize.Bytes(uint64(size))).Stop()
	return nil
}

// watchConfig starts the config watcher. Every successful reload swaps in
// new stringx options and, unless --verbose pins it, the configured level.
func (a *app) watchConfig(cmd *cobra.Command) error {
	if a.cfg == nil {
		return errors.CLIInvalidArgument("filter", "watch", true, "--config to be set")
	}

	a.cfg.OnChange(func(_, newConfig *config.Config) {
		opts := newConfig.StringxOptions()
		a.setOptions(opts)
		if !a.verbose {
			if level, err := log.ParseLevel(newConfig.GetString("log.level", "info")); err == nil {
				a.log().SetLevel(level)
			}
		}
		a.log().Info("options reloaded", log.String("options", opts.String()))
	})
	a.cfg.OnError(func(err error) {
		a.log().LogError(err)
	})
	return a.cfg.Watch(cmd.Context())
}
