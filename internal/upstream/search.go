// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upstream

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pdiddy/spaceper/internal/cache"
	"github.com/pdiddy/spaceper/internal/normalize"
	"github.com/pdiddy/spaceper/pkg/types"
)

// SearchOptions tunes one search request. Zero values take the defaults.
type SearchOptions struct {
	Limit int

	// OnlyFullContent is a pointer so that an explicit false can be told
	// apart from "use the default" (true).
	OnlyFullContent *bool

	// KeywordLimit applies to SearchDocuments only.
	KeywordLimit int
}

func (o SearchOptions) resolved() (limit int, onlyFull bool) {
	limit = o.Limit
	if limit <= 0 {
		limit = types.DefaultSearchLimit
	}
	onlyFull = true
	if o.OnlyFullContent != nil {
		onlyFull = *o.OnlyFullContent
	}
	return limit, onlyFull
}

type searchRequest struct {
	Query           string `json:"query"`
	Limit           int    `json:"limit"`
	OnlyFullContent bool   `json:"only_full_content"`
}

// searchResponse keeps items raw; see decodeHits.
type searchResponse struct {
	Items []json.RawMessage `json:"items"`
}

// Search sends query to the backend and returns the raw hits in backend
// order. A null items list is returned as an empty slice. Items with
// wrongly typed fields are kept; see decodeHit.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]types.RawHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	limit, onlyFull := opts.resolved()

	key := cache.SearchKey(query, limit, onlyFull)
	if hits, ok := c.cacheGet(ctx, key); ok {
		return hits, nil
	}

	var resp searchResponse
	req := searchRequest{Query: query, Limit: limit, OnlyFullContent: onlyFull}
	if err := c.post(ctx, endpointSearch, c.Timeout, req, &resp); err != nil {
		return nil, err
	}
	hits := decodeHits(resp.Items)

	c.cacheSet(ctx, key, hits)
	return hits, nil
}

// SearchDocuments runs Search and normalizes the hits. Normalization is
// skipped entirely when the call fails.
func (c *Client) SearchDocuments(ctx context.Context, query string, opts SearchOptions) ([]types.DocumentView, error) {
	hits, err := c.Search(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	limit := opts.KeywordLimit
	if limit <= 0 {
		limit = normalize.ListKeywordLimit
	}
	docs := normalize.NormalizeWithLimit(hits, limit)
	c.Metrics.AddNormalized(len(docs))
	return docs, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]types.RawHit, bool) {
	if c.Cache == nil {
		return nil, false
	}
	hits, ok, err := c.Cache.Get(ctx, key)
	switch {
	case err != nil:
		c.Metrics.IncCache("error")
		c.logf("cache get %q: %v", key, err)
		return nil, false
	case !ok:
		c.Metrics.IncCache("miss")
		return nil, false
	}
	c.Metrics.IncCache("hit")
	return hits, true
}

func (c *Client) cacheSet(ctx context.Context, key string, hits []types.RawHit) {
	if c.Cache == nil || c.CacheTTL <= 0 {
		return
	}
	if err := c.Cache.Set(ctx, key, hits, c.CacheTTL); err != nil {
		c.logf("cache set %q: %v", key, err)
	}
}
