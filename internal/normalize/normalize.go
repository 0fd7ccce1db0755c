// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns raw search hits into display-ready documents.
//
// Normalize is pure and synchronous: it performs no I/O, keeps no state
// between calls, and never fails the batch because of one malformed hit.
// A bad link degrades only that hit's SourceHost.
package normalize

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/pdiddy/spaceper/pkg/types"
)

// ListKeywordLimit is the number of keywords attached to each list item.
const ListKeywordLimit = 6

// Normalize converts hits into DocumentViews using ListKeywordLimit.
// The output has the same length and order as hits.
func Normalize(hits []types.RawHit) []types.DocumentView {
	return NormalizeWithLimit(hits, ListKeywordLimit)
}

// NormalizeWithLimit is Normalize with an explicit keyword limit.
func NormalizeWithLimit(hits []types.RawHit, keywordLimit int) []types.DocumentView {
	docs := make([]types.DocumentView, len(hits))
	for i, h := range hits {
		docs[i] = Document(h, i, keywordLimit)
	}
	return docs
}

// Document normalizes the hit found at position in its result list.
func Document(h types.RawHit, position, keywordLimit int) types.DocumentView {
	return types.DocumentView{
		RawHit:         h,
		ID:             DocumentID(h, position),
		Snippet:        Snippet(h),
		Keywords:       ExtractKeywords(KeywordSource(h), keywordLimit),
		SourceHost:     SourceHost(h.LinkValue()),
		CertaintyScore: CertaintyScore(h.Certainty),
	}
}

// DocumentID derives an ID from the link when present. Otherwise it combines
// position and title, so link-less hits in one response never collide.
func DocumentID(h types.RawHit, position int) string {
	if link := h.LinkValue(); link != "" {
		return fmt.Sprintf("doc-%d", HashString(link))
	}
	return fmt.Sprintf("doc-%d-%d", position, HashString(h.Title))
}

// Snippet returns the trimmed abstract, else the trimmed content preview.
func Snippet(h types.RawHit) string {
	if s := strings.TrimSpace(h.Abstract); s != "" {
		return s
	}
	return strings.TrimSpace(h.ContentPreview)
}

// KeywordSource is the text keywords are drawn from: the abstract, or the
// content preview when the abstract is empty.
func KeywordSource(h types.RawHit) string {
	if h.Abstract != "" {
		return h.Abstract
	}
	return h.ContentPreview
}

// SourceHost returns the hostname of an absolute URL with a leading "www."
// removed. It returns nil for an empty link, a relative reference, or
// anything that does not parse.
func SourceHost(link string) *string {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}
	host = strings.TrimPrefix(host, "www.")
	return &host
}

// CertaintyScore converts a [0,1] certainty into a rounded percentage.
// Nil, NaN, and infinite inputs yield nil.
func CertaintyScore(certainty *float64) *int {
	if certainty == nil {
		return nil
	}
	v := *certainty
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	score := int(math.Floor(v*100 + 0.5))
	return &score
}
