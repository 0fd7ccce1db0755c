// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"strings"

	"github.com/pdiddy/spaceper/pkg/types"
)

// Synopsis renders a short markdown summary of the top result for query.
// It returns "" when docs is empty.
func Synopsis(query string, docs []types.DocumentView) string {
	if len(docs) == 0 {
		return ""
	}
	top := docs[0]

	certainty := "n/a"
	if top.Certainty != nil {
		certainty = fmt.Sprintf("%.1f%%", *top.Certainty*100)
	}
	source := top.LinkValue()
	if source == "" {
		source = "not available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Top Result:** %s\n\n", top.Title)
	fmt.Fprintf(&b, "**Abstract:** %s\n\n", firstNonEmpty(top.Abstract, top.Snippet))
	fmt.Fprintf(&b, "**Certainty Score:** %s\n\n", certainty)
	fmt.Fprintf(&b, "**Source:** %s\n\n", source)
	fmt.Fprintf(&b, "This paper represents one of the most relevant findings for your search %q.", strings.TrimSpace(query))
	if top.Certainty != nil {
		fmt.Fprintf(&b, " The research shows a %s certainty match with your query.", certainty)
	}
	return b.String()
}
