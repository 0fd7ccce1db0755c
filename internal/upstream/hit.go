// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upstream

import (
	"encoding/json"

	"github.com/pdiddy/spaceper/pkg/types"
)

// decodeHits decodes each search item on its own so that a malformed item
// degrades field by field instead of failing the whole response.
func decodeHits(items []json.RawMessage) []types.RawHit {
	hits := make([]types.RawHit, len(items))
	for i, raw := range items {
		hits[i] = decodeHit(raw)
	}
	return hits
}

// decodeHit reads the known hit fields. A text field that is not a string
// becomes "", a link that is not a string and a certainty that is not a
// number become nil. An item that is not an object yields an empty hit.
func decodeHit(raw json.RawMessage) types.RawHit {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.RawHit{}
	}
	return types.RawHit{
		Title:          stringField(fields["title"]),
		Abstract:       stringField(fields["abstract"]),
		ContentPreview: stringField(fields["content_preview"]),
		Link:           optionalString(fields["link"]),
		Certainty:      optionalNumber(fields["certainty"]),
		FullAbstract:   stringField(fields["full_abstract"]),
		FullContent:    stringField(fields["full_content"]),
	}
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func optionalString(raw json.RawMessage) *string {
	var s *string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return s
}

func optionalNumber(raw json.RawMessage) *float64 {
	var f *float64
	if len(raw) == 0 || json.Unmarshal(raw, &f) != nil {
		return nil
	}
	return f
}
