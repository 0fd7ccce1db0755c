// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/spaceper/pkg/types"
)

func TestSynopsis_Empty(t *testing.T) {
	assert.Equal(t, "", Synopsis("bone", nil))
}

func TestSynopsis_TopResult(t *testing.T) {
	link := "https://example.com/p"
	c := 0.8734
	docs := []types.DocumentView{
		docFrom(types.RawHit{Title: "Bone loss", Abstract: "Osteoclasts.", Link: &link, Certainty: &c}),
		docFrom(types.RawHit{Title: "Second"}),
	}

	got := Synopsis(" bone ", docs)
	assert.Contains(t, got, "**Top Result:** Bone loss")
	assert.Contains(t, got, "**Abstract:** Osteoclasts.")
	assert.Contains(t, got, "**Certainty Score:** 87.3%")
	assert.Contains(t, got, "**Source:** https://example.com/p")
	assert.Contains(t, got, `your search "bone"`)
	assert.Contains(t, got, "87.3% certainty match")
	assert.NotContains(t, got, "Second")
}

func TestSynopsis_MissingFields(t *testing.T) {
	got := Synopsis("q", []types.DocumentView{docFrom(types.RawHit{Title: "T", ContentPreview: "preview"})})
	assert.Contains(t, got, "**Abstract:** preview")
	assert.Contains(t, got, "**Certainty Score:** n/a")
	assert.Contains(t, got, "**Source:** not available")
	assert.NotContains(t, got, "certainty match")
}
