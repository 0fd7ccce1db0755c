// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spaceper/pkg/types"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func sampleHits() []types.RawHit {
	return []types.RawHit{
		{
			Title:          "Bone loss in long-duration spaceflight",
			Abstract:       "  Osteoclast activity increases; osteoclast markers rise while bone formation declines. ",
			ContentPreview: "preview one",
			Link:           strPtr("https://www.ncbi.nlm.nih.gov/pmc/articles/PMC1/"),
			Certainty:      floatPtr(0.873),
		},
		{
			Title:          "Arabidopsis root gravitropism",
			ContentPreview: "Root growth and root curvature under altered loading.",
		},
		{
			Title:     "Radiation and cardiovascular risk",
			Abstract:  "Radiation exposure raises cardiovascular risk.",
			Link:      strPtr("not a url"),
			Certainty: floatPtr(0.5),
		},
	}
}

// --- Normalize ---

func TestNormalize_Empty(t *testing.T) {
	docs := Normalize([]types.RawHit{})
	require.NotNil(t, docs)
	assert.Empty(t, docs)

	docs = Normalize(nil)
	require.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestNormalize_PreservesOrderAndFields(t *testing.T) {
	hits := sampleHits()
	docs := Normalize(hits)

	require.Len(t, docs, len(hits))
	for i := range hits {
		assert.Equal(t, hits[i], docs[i].RawHit, "hit %d fields must be retained", i)
	}
}

func TestNormalize_DerivedFields(t *testing.T) {
	docs := Normalize(sampleHits())

	first := docs[0]
	assert.Equal(t, fmt.Sprintf("doc-%d", HashString("https://www.ncbi.nlm.nih.gov/pmc/articles/PMC1/")), first.ID)
	assert.Equal(t, "Osteoclast activity increases; osteoclast markers rise while bone formation declines.", first.Snippet)
	assert.Equal(t, []string{"osteoclast", "activity", "increases", "markers", "formation", "declines"}, first.Keywords)
	require.NotNil(t, first.SourceHost)
	assert.Equal(t, "ncbi.nlm.nih.gov", *first.SourceHost)
	require.NotNil(t, first.CertaintyScore)
	assert.Equal(t, 87, *first.CertaintyScore)

	second := docs[1]
	assert.Equal(t, fmt.Sprintf("doc-1-%d", HashString("Arabidopsis root gravitropism")), second.ID)
	assert.Equal(t, "Root growth and root curvature under altered loading.", second.Snippet)
	assert.Equal(t, []string{"growth", "curvature", "altered", "loading"}, second.Keywords)
	assert.Nil(t, second.SourceHost)
	assert.Nil(t, second.CertaintyScore)

	third := docs[2]
	assert.Equal(t, fmt.Sprintf("doc-%d", HashString("not a url")), third.ID)
	assert.Nil(t, third.SourceHost, "malformed link degrades only the host")
	require.NotNil(t, third.CertaintyScore)
	assert.Equal(t, 50, *third.CertaintyScore)
}

func TestNormalize_Deterministic(t *testing.T) {
	hits := sampleHits()
	a := Normalize(hits)
	b := Normalize(hits)
	assert.Equal(t, a, b)
}

func TestNormalize_SameLinkSameID(t *testing.T) {
	link := "https://example.org/paper"
	hits := []types.RawHit{
		{Title: "First", Link: strPtr(link)},
		{Title: "Other"},
		{Title: "Completely different title", Link: strPtr(link)},
	}
	docs := Normalize(hits)
	assert.Equal(t, docs[0].ID, docs[2].ID)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
}

func TestNormalize_LinklessRepeatedTitlesDoNotCollide(t *testing.T) {
	hits := make([]types.RawHit, 20)
	for i := range hits {
		hits[i] = types.RawHit{Title: "Same title"}
	}
	docs := Normalize(hits)

	seen := make(map[string]bool)
	for _, d := range docs {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}

func TestNormalize_EmptyLinkUsesPosition(t *testing.T) {
	docs := Normalize([]types.RawHit{{Title: "t", Link: strPtr("")}})
	assert.Equal(t, fmt.Sprintf("doc-0-%d", HashString("t")), docs[0].ID)
	assert.Nil(t, docs[0].SourceHost)
}

func TestNormalizeWithLimit(t *testing.T) {
	hit := types.RawHit{Abstract: "alpha1 alpha2 alpha3 alpha4 alpha5 alpha6 alpha7 alpha8 alpha9"}
	assert.Len(t, NormalizeWithLimit([]types.RawHit{hit}, 8)[0].Keywords, 8)
	assert.Len(t, NormalizeWithLimit([]types.RawHit{hit}, 0)[0].Keywords, DefaultKeywordLimit)
	assert.Len(t, Normalize([]types.RawHit{hit})[0].Keywords, ListKeywordLimit)
}

// --- Snippet ---

func TestSnippet(t *testing.T) {
	tests := []struct {
		name string
		hit  types.RawHit
		want string
	}{
		{"abstract wins", types.RawHit{Abstract: " abs ", ContentPreview: "prev"}, "abs"},
		{"preview fallback", types.RawHit{ContentPreview: "  prev  "}, "prev"},
		{"whitespace abstract falls back", types.RawHit{Abstract: "   ", ContentPreview: "prev"}, "prev"},
		{"both empty", types.RawHit{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Snippet(tt.hit))
		})
	}
}

func TestKeywordSource(t *testing.T) {
	assert.Equal(t, "abs", KeywordSource(types.RawHit{Abstract: "abs", ContentPreview: "prev"}))
	assert.Equal(t, "prev", KeywordSource(types.RawHit{ContentPreview: "prev"}))
}

// --- SourceHost ---

func TestSourceHost(t *testing.T) {
	tests := []struct {
		link string
		want string // "" means absent
	}{
		{"https://www.example.com/x", "example.com"},
		{"https://example.com", "example.com"},
		{"http://WWW.Example.COM:8080/path?q=1", "example.com"},
		{"https://sub.www.example.com/", "sub.www.example.com"},
		{"https://wwwexample.com/", "wwwexample.com"},
		{"  https://www.nasa.gov/  ", "nasa.gov"},
		{"not a url", ""},
		{"/relative/path", ""},
		{"www.example.com", ""},
		{"http://[::1", ""},
		{"mailto:someone@example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got := SourceHost(tt.link)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

// --- CertaintyScore ---

func TestCertaintyScore(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want *int
	}{
		{"nil", nil, nil},
		{"0.873", floatPtr(0.873), intPtr(87)},
		{"zero", floatPtr(0), intPtr(0)},
		{"one", floatPtr(1), intPtr(100)},
		{"half rounds up", floatPtr(0.125), intPtr(13)},
		{"NaN", floatPtr(math.NaN()), nil},
		{"Inf", floatPtr(math.Inf(1)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CertaintyScore(tt.in))
		})
	}
}

func intPtr(i int) *int { return &i }

// --- HashString ---

func TestHashString_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		{"https://www.example.com/x", 355226336},
		{"Bone loss in microgravity", 753117924},
		{"é", 233},
		{"😀", 1772899},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HashString(tt.in))
		})
	}
}

func TestHashString_NonNegative(t *testing.T) {
	for i := 0; i < 500; i++ {
		s := strings.Repeat(fmt.Sprintf("paper-%d-", i), i%7+1)
		assert.GreaterOrEqual(t, HashString(s), int64(0), s)
	}
}

func TestHashString_OrderSensitive(t *testing.T) {
	assert.NotEqual(t, HashString("ab"), HashString("ba"))
}
