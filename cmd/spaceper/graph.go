// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/graph"
	"github.com/pdiddy/spaceper/internal/upstream"
	"github.com/pdiddy/spaceper/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph <paper title>",
	Short: "Show the knowledge graph around a paper",
	Long: `Graph fetches the knowledge subgraph connected to papers whose title contains
the given text and prints its nodes and edges with display colors. Use
--format json or yaml for the element list and counts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().Int("limit", upstream.DefaultGraphLimit, "maximum rows returned by the backend")
	graphCmd.Flags().String("format", formatTable, "output format: table, json, or yaml")

	rootCmd.AddCommand(graphCmd)
}

type graphOutput struct {
	Elements []types.GraphElement `json:"elements" yaml:"elements"`
	Stats    graph.Stats          `json:"stats" yaml:"stats"`
}

func runGraph(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	g, err := upstream.New(cfg.Upstream).FetchGraph(cmd.Context(), upstream.GraphRequest{
		Title: strings.Join(args, " "),
		Limit: limit,
	})
	if err != nil {
		return fmt.Errorf("graph lookup failed: %w", err)
	}

	elements := graph.ToElements(g)
	out := graphOutput{Elements: elements, Stats: graph.Summarize(elements)}
	if ok, err := writeStructured(os.Stdout, format, out); ok {
		return err
	}
	printGraph(os.Stdout, out)
	return nil
}

func printGraph(w io.Writer, out graphOutput) {
	if len(out.Elements) == 0 {
		fmt.Fprintln(w, "No graph data.")
		return
	}
	for _, e := range out.Elements {
		switch e.Kind {
		case types.ElementNode:
			fmt.Fprintf(w, "node %-8s %-12s %-8s %s\n", e.ID, e.Type, e.Color, e.Label)
		case types.ElementEdge:
			fmt.Fprintf(w, "edge %-8s %s -[%s]-> %s\n", e.ID, e.Source, e.Label, e.Target)
		}
	}
	fmt.Fprintf(w, "\n%d nodes, %d edges\n", out.Stats.Nodes, out.Stats.Edges)
	for _, t := range graph.SortedTypes(out.Stats.NodeTypes) {
		fmt.Fprintf(w, "  %-14s %d\n", t, out.Stats.NodeTypes[t])
	}
}
