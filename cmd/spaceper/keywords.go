// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spaceper/internal/normalize"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text]",
	Short: "Extract keywords from text without contacting the backend",
	Long: `Keywords runs the same keyword extraction used for search results on the
given text (or stdin) and prints the most frequent eligible words, most
frequent first.`,
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().Int("limit", normalize.DefaultKeywordLimit, "maximum keywords to print")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	text, err := argsOrStdin(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	kws := normalize.ExtractKeywords(text, limit)
	if len(kws) == 0 {
		return fmt.Errorf("no keywords found")
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(kws, "\n"))
	return nil
}
