// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/spaceper/internal/httputil"
	"github.com/pdiddy/spaceper/pkg/types"
)

const (
	// minTitleText is the shortest text worth sending to the title endpoint.
	minTitleText = 3

	// maxTitleText is the longest text sent; longer input is cut.
	maxTitleText = 5000

	// DefaultInsightPapers is how many top papers the backend considers.
	DefaultInsightPapers = 5
)

// Fallback insight texts shown when the backend gives nothing usable.
const (
	FallbackInsightEmpty = "Analysis of search results shows significant findings in space biology research."
	FallbackInsightError = "Analyzing the latest research in this field reveals important developments in space biology."
)

type titleRequest struct {
	Text string `json:"text"`
}

// GenerateTitle asks the backend for an editorial title summarizing text.
// Text shorter than three characters returns (nil, nil) without a call.
func (c *Client) GenerateTitle(ctx context.Context, text string) (*types.TitleResponse, error) {
	if utf8.RuneCountInString(text) < minTitleText {
		return nil, nil
	}
	var resp types.TitleResponse
	if err := c.post(ctx, endpointTitle, c.Timeout, titleRequest{Text: truncateRunes(text, maxTitleText)}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type insightRequest struct {
	Query  string `json:"query"`
	Papers int    `json:"papers"`
}

type insightResponse struct {
	Insight string `json:"insight"`
}

// GenerateInsight asks the backend for a short paragraph about the top
// papers for query. The returned Insight always carries displayable text.
// An empty reply yields FallbackInsightEmpty with a nil error. A non-2xx
// reply with a JSON body is read like a success, so its insight or
// FallbackInsightEmpty is returned together with the error. Any other
// failure yields FallbackInsightError and the error.
func (c *Client) GenerateInsight(ctx context.Context, query string, papers int) (types.Insight, error) {
	if papers <= 0 {
		papers = DefaultInsightPapers
	}
	var resp insightResponse
	err := c.post(ctx, endpointInsight, c.InsightTimeout, insightRequest{Query: strings.TrimSpace(query), Papers: papers}, &resp)
	if err != nil {
		var se *httputil.StatusError
		if !errors.As(err, &se) || json.Unmarshal([]byte(se.Body), &resp) != nil {
			return types.Insight{Text: FallbackInsightError, Fallback: true}, err
		}
	}
	if strings.TrimSpace(resp.Insight) == "" {
		return types.Insight{Text: FallbackInsightEmpty, Fallback: true}, err
	}
	return types.Insight{Text: resp.Insight}, err
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
