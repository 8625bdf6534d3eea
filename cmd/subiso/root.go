// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/internal/config"
	"github.com/katalvlaran/subiso/internal/logging"
)

// app carries state shared by all subcommands after flag parsing.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "subiso",
		Short:         "Ullman subgraph isomorphism testing",
		Long:          `subiso decides whether a pattern graph occurs as a subgraph of a target graph using Ullman's backtracking algorithm.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(newMatchCmd(a), newGenerateCmd(a), newInfoCmd(a), newServeCmd(a))

	return root
}

// init loads configuration, applies global flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Log.Format, cfg.Log.Level, a.stderr)

	return nil
}
