// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the spaceper CLI. It serves the
// search API for the browser UI and exposes the same operations as
// subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the spaceper CLI.
var rootCmd = &cobra.Command{
	Use:   "spaceper",
	Short: "Search space-biology research papers through the BioSpace backend",
	Long: `spaceper sends queries to the BioSpace research backend, normalizes the
hits into display-ready documents (IDs, snippets, keywords, source hosts,
certainty scores), and serves them to the browser UI.

Use "serve" to run the HTTP API, or the search, title, insight, graph, and
keywords subcommands to work from a terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./spaceper.yaml or ~/.config/spaceper/spaceper.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of plain-text secret files")
	rootCmd.PersistentFlags().String("base-url", "", "BioSpace backend base URL")
	rootCmd.PersistentFlags().Duration("timeout", 0, "backend request timeout (default 15s)")

	_ = viper.BindPFlag("upstream.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("upstream.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("spaceper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "spaceper"))
		}
	}

	viper.SetEnvPrefix("SPACEPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setConfigDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
