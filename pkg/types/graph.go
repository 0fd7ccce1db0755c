// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexID is an identifier that arrives either as a JSON number or a JSON
// string. It is kept as its decimal or string text.
type FlexID string

// UnmarshalJSON accepts numbers, strings, and null.
func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("graph id must be a number or string: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

// GraphNode is one node of the knowledge graph as returned by the remote
// graph endpoint (Neo4j-style: numeric or string id, labels, properties).
type GraphNode struct {
	ID         FlexID         `json:"id" yaml:"id"`
	Labels     []string       `json:"labels" yaml:"labels"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// GraphRelationship connects two GraphNodes.
type GraphRelationship struct {
	ID         FlexID         `json:"id" yaml:"id"`
	Type       string         `json:"type" yaml:"type"`
	StartNode  FlexID         `json:"start_node" yaml:"start_node"`
	EndNode    FlexID         `json:"end_node" yaml:"end_node"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// Graph is the raw graph payload.
type Graph struct {
	Nodes         []GraphNode         `json:"nodes" yaml:"nodes"`
	Relationships []GraphRelationship `json:"relationships" yaml:"relationships"`
}

// ElementKind distinguishes graph display elements.
type ElementKind string

const (
	ElementNode ElementKind = "node"
	ElementEdge ElementKind = "edge"
)

// GraphElement is a display-ready node or edge for a graph renderer.
// Source and Target are set for edges only; Type and Color for nodes only.
type GraphElement struct {
	Kind       ElementKind    `json:"kind" yaml:"kind"`
	ID         string         `json:"id" yaml:"id"`
	Label      string         `json:"label" yaml:"label"`
	Type       string         `json:"type,omitempty" yaml:"type,omitempty"`
	Color      string         `json:"color,omitempty" yaml:"color,omitempty"`
	Source     string         `json:"source,omitempty" yaml:"source,omitempty"`
	Target     string         `json:"target,omitempty" yaml:"target,omitempty"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}
