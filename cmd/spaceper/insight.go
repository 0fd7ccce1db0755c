// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/upstream"
)

var insightCmd = &cobra.Command{
	Use:   "insight <query>",
	Short: "Generate a research insight for a query",
	Long: `Insight asks the BioSpace backend for a short paragraph about the top papers
matching the query. If the backend fails or returns nothing, a generic
fallback sentence is printed and a warning goes to stderr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInsight,
}

func init() {
	insightCmd.Flags().Int("papers", upstream.DefaultInsightPapers, "number of top papers the backend should consider")
	insightCmd.Flags().Duration("insight-timeout", 0, "insight request timeout (default 30s)")

	_ = viper.BindPFlag("upstream.insight_timeout", insightCmd.Flags().Lookup("insight-timeout"))

	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	papers, _ := cmd.Flags().GetInt("papers")

	insight, err := upstream.New(cfg.Upstream).GenerateInsight(cmd.Context(), strings.Join(args, " "), papers)
	if err != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: insight generation failed: %v\n", err)
	} else if insight.Fallback {
		color.New(color.FgYellow).Fprintln(os.Stderr, "warning: backend returned an empty insight")
	}
	fmt.Fprintln(cmd.OutOrStdout(), insight.Text)
	return nil
}
