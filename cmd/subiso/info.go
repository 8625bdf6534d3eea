// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso/bfs"
	"github.com/katalvlaran/subiso/graphio"
)

func newInfoCmd(a *app) *cobra.Command {
	var (
		path   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the structural profile of a graph document",
		Long: `Prints vertex and edge counts, the degree sequence, connected component
sizes and the diameter. Useful for checking the degree-feasibility of a
pattern against a target before running match.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := graphio.ReadFile(path)
			if err != nil {
				return err
			}
			p, err := bfs.Describe(g)
			if err != nil {
				return err
			}
			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}

			switch f {
			case graphio.FormatJSON:
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			default:
				enc := yaml.NewEncoder(a.stdout)
				enc.SetIndent(2)
				if err = enc.Encode(p); err != nil {
					return fmt.Errorf("info: %w", err)
				}
				return enc.Close()
			}
		},
	}
	cmd.Flags().StringVar(&path, "graph", "", "graph document")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
