// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view builds what the browser UI renders: the detail projection of
// one document, a synopsis of the top result, and the current result set
// guarded against stale responses.
package view

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/spaceper/internal/normalize"
	"github.com/pdiddy/spaceper/pkg/types"
)

const (
	// DetailKeywordLimit is the number of keywords shown on the detail page.
	DetailKeywordLimit = 8

	// PreviewLimit is the longest preview shown before it is cut.
	PreviewLimit = 280

	// ContentLimit bounds the collapsed content section, in characters.
	ContentLimit = 1800

	// NoPreview replaces an empty preview.
	NoPreview = "Preview not available for this document."

	ellipsis = "…"
)

// Detail is the detail-page projection of a DocumentView.
type Detail struct {
	Document           types.DocumentView `json:"document" yaml:"document"`
	Keywords           []string           `json:"keywords" yaml:"keywords"`
	Preview            string             `json:"preview" yaml:"preview"`
	AbstractParagraphs []string           `json:"abstractParagraphs" yaml:"abstract_paragraphs"`
	ContentParagraphs  []string           `json:"contentParagraphs" yaml:"content_paragraphs"`
	HasMoreContent     bool               `json:"hasMoreContent" yaml:"has_more_content"`
	Full               bool               `json:"full" yaml:"full"`
}

// BuildDetail projects doc for the detail page. When full is false the
// content paragraphs are cut at ContentLimit characters.
func BuildDetail(doc types.DocumentView, full bool) Detail {
	contentSource := firstNonEmpty(doc.FullContent, doc.FullAbstract, doc.Snippet)
	return Detail{
		Document:           doc,
		Keywords:           detailKeywords(doc),
		Preview:            preview(doc),
		AbstractParagraphs: splitParagraphs(firstNonEmpty(doc.FullAbstract, doc.Snippet), false),
		ContentParagraphs:  contentParagraphs(contentSource, full),
		HasMoreContent:     utf8.RuneCountInString(doc.FullContent) > ContentLimit,
		Full:               full,
	}
}

// detailKeywords returns up to DetailKeywordLimit keywords. A list view built
// with a smaller limit is topped up by re-running extraction, which yields
// the same leading keywords.
func detailKeywords(doc types.DocumentView) []string {
	kws := doc.Keywords
	if len(kws) < DetailKeywordLimit {
		kws = normalize.ExtractKeywords(normalize.KeywordSource(doc.RawHit), DetailKeywordLimit)
	}
	if len(kws) > DetailKeywordLimit {
		kws = kws[:DetailKeywordLimit]
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

func preview(doc types.DocumentView) string {
	base := firstNonEmpty(doc.ContentPreview, doc.Snippet)
	if base == "" {
		return NoPreview
	}
	if utf8.RuneCountInString(base) > PreviewLimit {
		return cutRunes(base, PreviewLimit-3) + ellipsis
	}
	return base
}

func contentParagraphs(text string, full bool) []string {
	paragraphs := splitParagraphs(text, true)
	if full {
		return paragraphs
	}
	out := make([]string, 0, len(paragraphs))
	total := 0
	for _, p := range paragraphs {
		n := utf8.RuneCountInString(p)
		if total+n > ContentLimit {
			out = append(out, cutRunes(p, ContentLimit-total)+ellipsis)
			break
		}
		out = append(out, p)
		total += n
	}
	return out
}

// splitParagraphs splits on runs of newlines and drops empty pieces.
func splitParagraphs(text string, trim bool) []string {
	out := []string{}
	for _, p := range strings.Split(text, "\n") {
		if trim {
			p = strings.TrimSpace(p)
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func cutRunes(s string, n int) string {
	if n <= 0 {
		return ""
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
