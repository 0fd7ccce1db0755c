// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph converts knowledge-graph payloads from the BioSpace backend
// into flat display elements for a graph renderer.
package graph

import (
	"fmt"
	"sort"

	"github.com/pdiddy/spaceper/pkg/types"
)

// DefaultColor is used for node types without a palette entry.
const DefaultColor = "#666"

// UnknownType labels nodes that carry no labels.
const UnknownType = "Unknown"

var palette = map[string]string{
	"Paper":         "#667eea",
	"Topic":         "#764ba2",
	"Organism":      "#f093fb",
	"Environment":   "#4facfe",
	"Related Paper": "#4facfe",
}

// Color returns the display color for a node type.
func Color(nodeType string) string {
	if c, ok := palette[nodeType]; ok {
		return c
	}
	return DefaultColor
}

// ToElements flattens g into nodes followed by edges, preserving payload
// order. A graph without nodes or relationships yields an empty slice.
func ToElements(g types.Graph) []types.GraphElement {
	out := make([]types.GraphElement, 0, len(g.Nodes)+len(g.Relationships))
	for _, n := range g.Nodes {
		out = append(out, nodeElement(n))
	}
	for _, r := range g.Relationships {
		out = append(out, types.GraphElement{
			Kind:       types.ElementEdge,
			ID:         string(r.ID),
			Label:      r.Type,
			Source:     string(r.StartNode),
			Target:     string(r.EndNode),
			Properties: r.Properties,
		})
	}
	return out
}

func nodeElement(n types.GraphNode) types.GraphElement {
	label := propString(n.Properties, "name")
	if label == "" {
		label = propString(n.Properties, "title")
	}
	if label == "" {
		label = fmt.Sprintf("Node %s", n.ID)
	}

	nodeType := UnknownType
	if len(n.Labels) > 0 && n.Labels[0] != "" {
		nodeType = n.Labels[0]
	}

	return types.GraphElement{
		Kind:       types.ElementNode,
		ID:         string(n.ID),
		Label:      label,
		Type:       nodeType,
		Color:      Color(nodeType),
		Properties: n.Properties,
	}
}

// propString returns a property rendered as text, or "" when it is missing,
// null, false, or an empty string.
func propString(props map[string]any, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
	}
	return fmt.Sprint(v)
}

// Stats counts graph elements by type.
type Stats struct {
	Nodes     int            `json:"nodes" yaml:"nodes"`
	Edges     int            `json:"edges" yaml:"edges"`
	NodeTypes map[string]int `json:"nodeTypes" yaml:"node_types"`
	EdgeTypes map[string]int `json:"edgeTypes" yaml:"edge_types"`
}

// Summarize computes Stats over display elements.
func Summarize(elements []types.GraphElement) Stats {
	s := Stats{NodeTypes: map[string]int{}, EdgeTypes: map[string]int{}}
	for _, e := range elements {
		switch e.Kind {
		case types.ElementNode:
			s.Nodes++
			s.NodeTypes[e.Type]++
		case types.ElementEdge:
			s.Edges++
			s.EdgeTypes[e.Label]++
		}
	}
	return s
}

// SortedTypes returns the keys of counts ordered by descending count, then name.
func SortedTypes(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
