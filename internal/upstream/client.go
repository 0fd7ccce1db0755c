// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upstream talks to the remote BioSpace backend: semantic search,
// editorial title generation, insight generation, and knowledge-graph
// lookups. Every call is made once; there is no retry.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/spaceper/internal/cache"
	"github.com/pdiddy/spaceper/internal/httputil"
	"github.com/pdiddy/spaceper/internal/metrics"
	"github.com/pdiddy/spaceper/pkg/types"
)

// ErrEmptyQuery is returned when a search query is empty after trimming.
var ErrEmptyQuery = errors.New("search query is empty")

// Endpoint names, used as metric labels and path suffixes.
const (
	endpointSearch  = "search"
	endpointTitle   = "title"
	endpointInsight = "generate-insight"
	endpointGraph   = "graph"
)

// Client calls the BioSpace backend. The zero value is not usable; build one
// with New or fill BaseURL and HTTP directly.
type Client struct {
	BaseURL   string
	HTTP      *http.Client
	UserAgent string

	// APIKey is sent as X-API-Key when non-empty.
	APIKey string

	// Timeout bounds search, title and graph calls. InsightTimeout bounds
	// insight generation. Zero means no per-call bound beyond ctx.
	Timeout        time.Duration
	InsightTimeout time.Duration

	// Cache holds raw search hits for CacheTTL. Nil disables caching.
	Cache    cache.Cache
	CacheTTL time.Duration

	// Metrics may be nil.
	Metrics *metrics.Metrics

	Logger *log.Logger
}

// New builds a Client from cfg. Defaults are applied to zero fields.
func New(cfg types.UpstreamConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = types.DefaultTimeout
	}
	if cfg.InsightTimeout <= 0 {
		cfg.InsightTimeout = types.DefaultInsightTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = types.DefaultUserAgent
	}
	return &Client{
		BaseURL:        cfg.BaseURL,
		HTTP:           &http.Client{},
		UserAgent:      cfg.UserAgent,
		APIKey:         cfg.APIKey,
		Timeout:        cfg.Timeout,
		InsightTimeout: cfg.InsightTimeout,
		Logger:         log.New(os.Stderr, "[UPSTREAM] ", log.LstdFlags),
	}
}

func (c *Client) url(endpoint string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + endpoint
}

func (c *Client) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// post sends one JSON request to endpoint, bounded by timeout, and records
// the outcome.
func (c *Client) post(ctx context.Context, endpoint string, timeout time.Duration, payload, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := httputil.Request{URL: c.url(endpoint), UserAgent: c.UserAgent}
	if c.APIKey != "" {
		req.Header = http.Header{"X-API-Key": []string{c.APIKey}}
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	started := time.Now()
	err := httputil.PostJSON(ctx, httpClient, req, payload, out)
	c.Metrics.ObserveUpstream(endpoint, started, err)
	if err != nil {
		c.logf("%s failed after %s: %v", endpoint, time.Since(started).Round(time.Millisecond), err)
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	return nil
}
