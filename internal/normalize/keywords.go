// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"sort"
	"strings"
)

// DefaultKeywordLimit applies when a caller passes a non-positive limit.
const DefaultKeywordLimit = 5

// minKeywordLen is exclusive: a token must be longer than this to qualify.
const minKeywordLen = 4

// ExtractKeywords returns up to limit lowercase tokens from text, most
// frequent first. Ties keep the order in which tokens first appear.
// Tokens of four characters or fewer and stop words are skipped.
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}
	if text == "" {
		return []string{}
	}

	type entry struct {
		token string
		count int
	}
	var table []entry
	index := make(map[string]int)

	for _, tok := range tokenize(text) {
		if len(tok) <= minKeywordLen {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if i, ok := index[tok]; ok {
			table[i].count++
			continue
		}
		index[tok] = len(table)
		table = append(table, entry{token: tok, count: 1})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].count > table[j].count
	})

	if len(table) > limit {
		table = table[:limit]
	}
	keywords := make([]string, len(table))
	for i, e := range table {
		keywords[i] = e.token
	}
	return keywords
}

// tokenize collapses whitespace, lowercases, turns every character outside
// [a-z0-9] into a separator, and splits.
func tokenize(text string) []string {
	collapsed := strings.ToLower(strings.Join(strings.Fields(text), " "))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, collapsed)
	return strings.Fields(cleaned)
}
