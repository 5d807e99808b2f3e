// File: root.go
// Title: typeutils Root Command
// Description: Builds the command tree, wires configuration, logging and
//              the per-run correlation ID, and resolves string utility
//              options from flags, configuration and defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/typeutils/core/config"
	"github.com/msto63/typeutils/core/errors"
	"github.com/msto63/typeutils/core/log"
	"github.com/msto63/typeutils/utils/stringx"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	runID  string
	logger *log.Logger
	cfg    *config.Config

	mu   sync.RWMutex
	opts stringx.Options
}

// configRules are checked after the configuration file is loaded
var configRules = config.ValidationRules{
	"log.level":              {Type: "string", Allowed: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
	"log.format":             {Type: "string", Allowed: []string{"json", "text", "logfmt"}},
	config.KeyCaseSensitive:  {Type: "bool"},
	config.KeyReturnFilename: {Type: "bool"},
	config.KeySeparator:      {Type: "string"},
	config.KeyEllipsis:       {Type: "string"},
	"filter.limit":           {Type: "int"},
}

// Execute runs the typeutils command with the process arguments
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	root := newRootCmd(a)
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.log().LogError(err)
	}
	a.close()
	return err
}

// NewRootCmd returns a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "typeutils",
		Short: "String utilities for the command line",
		Long: `typeutils applies small string operations to arguments or stdin.

Commands:
  starts-with, ends-with  - prefix and suffix checks
  one-line                - collapse text to a single line
  wordsafe                - truncate at a word boundary
  ltrim-br                - strip leading <br> tags
  has-ws                  - report whether text contains whitespace
  ext                     - file extension of a name
  filter                  - apply an operation to each line of stdin

Defaults come from the [stringx] section of the config file and can be
overridden with TYPEUTILS_* environment variables and command flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json or logfmt (default text)")

	rootCmd.AddCommand(
		newStartsWithCmd(a),
		newEndsWithCmd(a),
		newOneLineCmd(a),
		newWordsafeCmd(a),
		newLtrimBrCmd(a),
		newHasWhitespaceCmd(a),
		newExtCmd(a),
		newFilterCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the logger. Logs go to stderr,
// results to stdout.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := validateLogFormat(a.logFormat); err != nil {
		return err
	}

	a.runID = uuid.New().String()
	a.logger = a.buildLogger(cmd.ErrOrStderr(), nil)
	a.setOptions(stringx.DefaultOptions())

	if a.cfgFile == "" {
		a.logger.Debug("no config file, using defaults")
		return nil
	}

	cfg, err := config.LoadWithOptions(a.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: config.DefaultEnvPrefix,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = a.buildLogger(cmd.ErrOrStderr(), cfg)
	a.setOptions(cfg.StringxOptions())
	a.logger.Debug("configuration applied", log.Fields{
		"path":    cfg.FilePath(),
		"options": a.options().String(),
	})
	return nil
}

// buildLogger applies --verbose and --log-format over the log section
func (a *app) buildLogger(out io.Writer, cfg *config.Config) *log.Logger {
	level := log.LevelInfo
	format := log.FormatText

	if cfg != nil {
		if parsed, err := log.ParseLevel(cfg.GetString("log.level", "info")); err == nil {
			level = parsed
		}
		if parsed, err := log.ParseFormat(cfg.GetString("log.format", "text")); err == nil {
			format = parsed
		}
	}
	if a.verbose {
		level = log.LevelDebug
	}
	if a.logFormat != "" {
		if parsed, err := log.ParseFormat(a.logFormat); err == nil {
			format = parsed
		}
	}

	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "typeutils",
	}).WithCorrelationID(a.runID)
	log.SetDefault(logger)
	return logger
}

func (a *app) log() *log.Logger {
	if a.logger == nil {
		return log.GetDefault()
	}
	return a.logger
}

func (a *app) options() stringx.Options {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.opts
}

func (a *app) setOptions(opts stringx.Options) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opts = opts
}

func (a *app) close() {
	if a.cfg != nil {
		if err := a.cfg.Close(); err != nil {
			a.log().WarnWithErr("closing config watcher failed", err)
		}
	}
}

// validateLogFormat rejects unknown --log-format values before any work is done
func validateLogFormat(value string) error {
	if value == "" {
		return nil
	}
	if _, err := log.ParseFormat(value); err != nil {
		return errors.CLIInvalidArgument("root", "log-format", value, "text|json|logfmt")
	}
	return nil
}

func printResult(cmd *cobra.Command, value interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), value)
}
