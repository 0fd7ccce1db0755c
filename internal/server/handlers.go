// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/spaceper/internal/graph"
	"github.com/pdiddy/spaceper/internal/upstream"
	"github.com/pdiddy/spaceper/internal/view"
	"github.com/pdiddy/spaceper/pkg/types"
)

// maxSearchLimit caps the number of hits a client may request.
const maxSearchLimit = 100

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query           string `json:"query"`
	Limit           int    `json:"limit"`
	OnlyFullContent *bool  `json:"only_full_content"`
}

// SearchResponse is the reply of POST /api/search. Stale is set when a newer
// search started before this one finished; its items were not installed as
// the current result set.
type SearchResponse struct {
	Query    string               `json:"query"`
	Items    []types.DocumentView `json:"items"`
	Synopsis string               `json:"synopsis"`
	Stale    bool                 `json:"stale"`
}

// TitleRequest is the body of POST /api/title.
type TitleRequest struct {
	Text string `json:"text"`
}

// InsightRequest is the body of POST /api/insight.
type InsightRequest struct {
	Query  string `json:"query"`
	Papers int    `json:"papers"`
}

// GraphResponse is the reply of GET /api/documents/:id/graph.
type GraphResponse struct {
	DocumentID string               `json:"documentId"`
	Elements   []types.GraphElement `json:"elements"`
	Stats      graph.Stats          `json:"stats"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "spaceper"})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		sendValidationError(c, upstream.ErrEmptyQuery.Error())
		return
	}
	if req.Limit < 0 || req.Limit > maxSearchLimit {
		sendValidationError(c, "limit must be between 1 and "+strconv.Itoa(maxSearchLimit))
		return
	}

	opts := upstream.SearchOptions{
		Limit:           req.Limit,
		OnlyFullContent: req.OnlyFullContent,
		KeywordLimit:    s.cfg.Search.KeywordLimit,
	}
	if opts.Limit == 0 {
		opts.Limit = s.cfg.Search.Limit
	}
	if opts.OnlyFullContent == nil {
		only := s.cfg.Search.OnlyFullContent
		opts.OnlyFullContent = &only
	}

	ticket := s.state.Begin(query)
	docs, err := s.backend.SearchDocuments(c.Request.Context(), query, opts)
	if err != nil {
		if !s.state.Fail(ticket, err) {
			s.metrics.IncStale()
		}
		if errors.Is(err, upstream.ErrEmptyQuery) {
			sendValidationError(c, err.Error())
			return
		}
		sendUpstreamError(c, "search", err)
		return
	}

	resp := SearchResponse{Query: query, Items: docs, Synopsis: view.Synopsis(query, docs)}
	if !s.state.Complete(ticket, docs) {
		s.metrics.IncStale()
		resp.Stale = true
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleResults(c *gin.Context) {
	c.JSON(http.StatusOK, s.state.Snapshot())
}

func (s *Server) handleDocument(c *gin.Context) {
	doc, ok := s.lookup(c)
	if !ok {
		return
	}
	full, _ := strconv.ParseBool(c.Query("full"))
	c.JSON(http.StatusOK, view.BuildDetail(doc, full))
}

func (s *Server) handleGraph(c *gin.Context) {
	doc, ok := s.lookup(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			sendValidationError(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	g, err := s.backend.FetchGraph(c.Request.Context(), upstream.GraphRequest{Title: doc.Title, Limit: limit})
	if err != nil {
		sendUpstreamError(c, "graph", err)
		return
	}
	elements := graph.ToElements(g)
	c.JSON(http.StatusOK, GraphResponse{
		DocumentID: doc.ID,
		Elements:   elements,
		Stats:      graph.Summarize(elements),
	})
}

func (s *Server) handleTitle(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}
	title, err := s.backend.GenerateTitle(c.Request.Context(), req.Text)
	if err != nil {
		sendUpstreamError(c, "title generation", err)
		return
	}
	if title == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, title)
}

// handleInsight always answers 200: a failed backend call yields fallback text.
func (s *Server) handleInsight(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		sendValidationError(c, "query is required")
		return
	}
	insight, err := s.backend.GenerateInsight(c.Request.Context(), req.Query, req.Papers)
	if err != nil && s.logger != nil {
		s.logger.Printf("insight for %q fell back: %v", req.Query, err)
	}
	c.JSON(http.StatusOK, insight)
}

// lookup resolves :id against the current result set, writing a 404 when
// it is unknown.
func (s *Server) lookup(c *gin.Context) (types.DocumentView, bool) {
	id := c.Param("id")
	doc, ok := s.state.Lookup(id)
	if !ok {
		SendError(c, http.StatusNotFound, ErrorCodeDocumentNotFound,
			"Document '"+id+"': "+ErrDocumentNotFound.Error(), false)
		return types.DocumentView{}, false
	}
	return doc, true
}
