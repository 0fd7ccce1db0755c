// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/upstream"
	"github.com/pdiddy/spaceper/internal/view"
	"github.com/pdiddy/spaceper/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the BioSpace backend and print normalized documents",
	Long: `Search sends the query to the BioSpace backend and prints the normalized
documents in backend order: ID, certainty score, source host, title, and
keywords. Use --format json or yaml for the full records.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 0, "number of hits to request (default 10)")
	searchCmd.Flags().Bool("only-full-content", true, "only return hits that carry full text")
	searchCmd.Flags().Int("keywords", 0, "keywords extracted per document (default 6)")
	searchCmd.Flags().String("format", formatTable, "output format: table, json, or yaml")
	searchCmd.Flags().Bool("synopsis", false, "print a summary of the top result after the table")

	_ = viper.BindPFlag("search.limit", searchCmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("search.keyword_limit", searchCmd.Flags().Lookup("keywords"))

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}

	onlyFull := cfg.Search.OnlyFullContent
	if cmd.Flags().Changed("only-full-content") {
		onlyFull, _ = cmd.Flags().GetBool("only-full-content")
	}

	client, closeCache, err := newUpstreamClient(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer closeCache()

	query := strings.Join(args, " ")
	docs, err := client.SearchDocuments(cmd.Context(), query, upstream.SearchOptions{
		Limit:           cfg.Search.Limit,
		OnlyFullContent: &onlyFull,
		KeywordLimit:    cfg.Search.KeywordLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if ok, err := writeStructured(os.Stdout, format, docs); ok {
		return err
	}
	printDocuments(os.Stdout, docs)
	if withSynopsis, _ := cmd.Flags().GetBool("synopsis"); withSynopsis && len(docs) > 0 {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, view.Synopsis(query, docs))
	}
	return nil
}

// printDocuments renders docs as an aligned table.
func printDocuments(w io.Writer, docs []types.DocumentView) {
	if len(docs) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCORE\tSOURCE\tTITLE\tKEYWORDS")
	for _, d := range docs {
		score := "-"
		if d.CertaintyScore != nil {
			score = fmt.Sprintf("%d%%", *d.CertaintyScore)
		}
		host := "-"
		if d.SourceHost != nil {
			host = *d.SourceHost
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, score, host, truncate(d.Title, 60), strings.Join(d.Keywords, ", "))
	}
	tw.Flush()
	color.New(color.Faint).Fprintf(w, "%d document(s)\n", len(docs))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
