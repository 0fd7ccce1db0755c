// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upstream

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/spaceper/pkg/types"
)

// DefaultGraphLimit caps the number of graph rows returned by the backend.
const DefaultGraphLimit = 100

// GraphRequest selects a subgraph. An empty Title asks for the backend's
// default graph.
type GraphRequest struct {
	Title string
	Limit int
}

type graphRequest struct {
	Query *string `json:"query"`
	Limit int     `json:"limit"`
}

// GraphQuery returns the query string sent for a paper title, or nil when
// title is blank.
func GraphQuery(title string) *string {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(title)
	q := fmt.Sprintf(`MATCH (p:Paper)-[r]-(n) WHERE p.title CONTAINS "%s" RETURN p, r, n LIMIT 50`, escaped)
	return &q
}

// FetchGraph retrieves the knowledge subgraph around a paper.
func (c *Client) FetchGraph(ctx context.Context, r GraphRequest) (types.Graph, error) {
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultGraphLimit
	}
	var g types.Graph
	if err := c.post(ctx, endpointGraph, c.Timeout, graphRequest{Query: GraphQuery(r.Title), Limit: limit}, &g); err != nil {
		return types.Graph{}, err
	}
	return g, nil
}
