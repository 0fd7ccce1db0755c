// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for spaceper.
//
// RawHit is the wire shape of one search hit returned by the remote BioSpace
// backend; DocumentView is the display-ready record produced by the
// normalization pipeline. Graph and text-generation payloads live alongside.
package types

// RawHit is one search result as returned by the remote search endpoint.
// It carries no identity field that is stable across requests.
type RawHit struct {
	// Title is the document display name.
	Title string `json:"title" yaml:"title"`

	// Abstract may be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// ContentPreview is a short excerpt, may be empty.
	ContentPreview string `json:"content_preview" yaml:"content_preview"`

	// Link points to the original document. Nil when unknown.
	Link *string `json:"link" yaml:"link"`

	// Certainty is the backend confidence in [0,1]. Nil when unscored.
	Certainty *float64 `json:"certainty" yaml:"certainty"`

	FullAbstract string `json:"full_abstract" yaml:"full_abstract"`
	FullContent  string `json:"full_content" yaml:"full_content"`
}

// LinkValue returns the link or "" when absent.
func (h RawHit) LinkValue() string {
	if h.Link == nil {
		return ""
	}
	return *h.Link
}

// DocumentView is a RawHit plus the fields derived by the normalization
// pipeline. Views are built fresh for every search response and never
// mutated afterwards.
type DocumentView struct {
	RawHit `yaml:",inline"`

	// ID is derived from the link, or from position and title when the link
	// is absent. Stable for a given (title, link, position).
	ID string `json:"id" yaml:"id"`

	// Snippet is the trimmed abstract, else the trimmed content preview.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Keywords holds the most frequent eligible tokens, most frequent first.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// SourceHost is the link hostname without a leading "www.". Nil when the
	// link is missing or not an absolute URL.
	SourceHost *string `json:"sourceHost" yaml:"source_host"`

	// CertaintyScore is round(certainty*100). Nil when certainty is absent.
	CertaintyScore *int `json:"certaintyScore" yaml:"certainty_score"`
}

// TitleResponse is the reply of the remote title endpoint.
type TitleResponse struct {
	Title  string `json:"title" yaml:"title"`
	Source string `json:"source" yaml:"source"`
}

// Insight is a generated paragraph about a result set. Fallback marks text
// substituted locally because the remote insight endpoint failed.
type Insight struct {
	Text     string `json:"insight" yaml:"insight"`
	Fallback bool   `json:"fallback" yaml:"fallback"`
}
