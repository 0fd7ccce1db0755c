// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache stores raw upstream search hits for a short time so that
// repeated identical searches do not hit the BioSpace backend again.
//
// Only raw hits are cached. Normalization runs on every response, so
// DocumentViews are never stored.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/spaceper/pkg/types"
)

// Cache is implemented by Redis, Memory, and Nop.
type Cache interface {
	// Get returns the cached hits and true, or false on a miss.
	Get(ctx context.Context, key string) ([]types.RawHit, bool, error)

	// Set stores hits under key for ttl.
	Set(ctx context.Context, key string, hits []types.RawHit, ttl time.Duration) error

	Close() error
}

// SearchKey builds the cache key for a search request. The query is
// whitespace-collapsed and lowercased so trivially different spellings share
// an entry.
func SearchKey(query string, limit int, onlyFullContent bool) string {
	q := strings.ToLower(strings.Join(strings.Fields(query), " "))
	return fmt.Sprintf("search:%d:%t:%s", limit, onlyFullContent, q)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]types.RawHit, bool, error) { return nil, false, nil }

func (Nop) Set(context.Context, string, []types.RawHit, time.Duration) error { return nil }

func (Nop) Close() error { return nil }
