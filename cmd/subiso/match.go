// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/graphio"
	"github.com/katalvlaran/subiso/ullman"
)

type matchFlags struct {
	pattern  string
	target   string
	mode     string
	parallel int
	timeout  time.Duration
	stats    bool
}

func newMatchCmd(a *app) *cobra.Command {
	var f matchFlags

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Test whether --pattern occurs as a subgraph of --target",
		Long: `Reads two graph documents (YAML or JSON, chosen by file extension) and
prints true or false. Exit status: 0 found, 1 not found, 2 error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMatch(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "pattern graph document")
	cmd.Flags().StringVar(&f.target, "target", "", "target graph document")
	cmd.Flags().StringVar(&f.mode, "mode", "", "pruning mode: strict or mono (default from config)")
	cmd.Flags().IntVar(&f.parallel, "parallel", 0, "number of top-level workers (default from config)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the search after this long (default from config)")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print search statistics to stderr")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, f matchFlags) error {
	mc := a.cfg.Match
	if cmd.Flags().Changed("mode") {
		mc.Mode = f.mode
	}
	if cmd.Flags().Changed("parallel") {
		mc.Parallelism = f.parallel
	}
	if cmd.Flags().Changed("timeout") {
		mc.Timeout = f.timeout
	}
	opts, err := mc.MatchOptions()
	if err != nil {
		return err
	}

	pattern, err := graphio.ReadFile(f.pattern)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	target, err := graphio.ReadFile(f.target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	ctx := cmd.Context()
	if mc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mc.Timeout)
		defer cancel()
	}
	var st ullman.Stats
	opts = append(opts, ullman.WithContext(ctx), ullman.WithLogger(a.logger), ullman.WithStats(&st))

	a.logger.Info("match",
		slog.String("pattern", f.pattern),
		slog.String("target", f.target),
		slog.Int("pattern_vertices", pattern.VertexCount()),
		slog.Int("target_vertices", target.VertexCount()),
	)
	ok, err := ullman.IsSubgraphIsomorphic(pattern, target, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, ok)
	if f.stats {
		fmt.Fprintf(a.stderr, "nodes=%d assignments=%d dead_branches=%d cleared=%d max_depth=%d\n",
			st.Nodes, st.Assignments, st.DeadBranches, st.Cleared, st.MaxDepth)
	}
	if !ok {
		return errNotFound
	}

	return nil
}
