// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/cache"
	"github.com/pdiddy/spaceper/internal/metrics"
	"github.com/pdiddy/spaceper/internal/server"
	"github.com/pdiddy/spaceper/internal/upstream"
	"github.com/pdiddy/spaceper/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API for the browser UI",
	Long: `Serve starts the HTTP API used by the browser UI: search, current results,
document detail, knowledge graph, title and insight generation, plus
/healthz and /metrics. It stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("cache", "", "upstream cache backend: none, memory, or redis")
	serveCmd.Flags().String("redis-addr", "", "Redis host:port for the redis cache")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("cache.backend", serveCmd.Flags().Lookup("cache"))
	_ = viper.BindPFlag("cache.redis_addr", serveCmd.Flags().Lookup("redis-addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	client, closeCache, err := newUpstreamClient(ctx, cfg, m)
	if err != nil {
		return err
	}
	defer closeCache()

	fmt.Fprintf(os.Stderr, "Backend: %s (cache: %s)\n", cfg.Upstream.BaseURL, cfg.Cache.Backend)
	return server.New(cfg, client, m).Run(ctx)
}

// newUpstreamClient builds the backend client with the configured cache.
// The returned func closes the cache.
func newUpstreamClient(ctx context.Context, cfg types.Config, m *metrics.Metrics) (*upstream.Client, func(), error) {
	c, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening cache: %w", err)
	}
	client := upstream.New(cfg.Upstream)
	client.Cache = c
	client.CacheTTL = cfg.Cache.TTL
	client.Metrics = m
	return client, func() { _ = c.Close() }, nil
}
