// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/upstream"
)

var titleCmd = &cobra.Command{
	Use:   "title [text]",
	Short: "Generate an editorial title for a passage",
	Long: `Title asks the BioSpace backend for a short editorial title summarizing the
given text. Text is read from the arguments, or from stdin when none are
given. Text shorter than three characters produces no title.`,
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
}

func runTitle(cmd *cobra.Command, args []string) error {
	text, err := argsOrStdin(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}

	title, err := upstream.New(cfg.Upstream).GenerateTitle(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("title generation failed: %w", err)
	}
	if title == nil {
		fmt.Fprintln(os.Stderr, "Text too short; no title generated.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), title.Title)
	if title.Source != "" {
		fmt.Fprintf(os.Stderr, "source: %s\n", title.Source)
	}
	return nil
}

// argsOrStdin joins args, or reads all of r when args is empty.
func argsOrStdin(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
