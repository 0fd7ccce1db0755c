// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed stopwords.yaml
var stopWordsAsset []byte

// stopWordList mirrors the layout of stopwords.yaml.
type stopWordList struct {
	General []string `yaml:"general"`
	Domain  []string `yaml:"domain"`
}

// stopWords is loaded once at package init and never modified.
var stopWords = mustLoadStopWords(stopWordsAsset)

func mustLoadStopWords(data []byte) map[string]struct{} {
	set, err := loadStopWords(data)
	if err != nil {
		panic(fmt.Sprintf("normalize: %v", err))
	}
	return set
}

func loadStopWords(data []byte) (map[string]struct{}, error) {
	var list stopWordList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing stop words: %w", err)
	}
	set := make(map[string]struct{}, len(list.General)+len(list.Domain))
	for _, group := range [][]string{list.General, list.Domain} {
		for _, w := range group {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				set[w] = struct{}{}
			}
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("stop word list is empty")
	}
	return set, nil
}

// IsStopWord reports whether word (any case) is on the stop-word list.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}
