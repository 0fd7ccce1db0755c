// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spaceper/pkg/types"
)

func decodeGraph(t *testing.T, raw string) types.Graph {
	t.Helper()
	var g types.Graph
	require.NoError(t, json.Unmarshal([]byte(raw), &g))
	return g
}

func TestToElements(t *testing.T) {
	g := decodeGraph(t, `{
		"nodes":[
			{"id":1,"labels":["Paper"],"properties":{"title":"Bone loss in mice"}},
			{"id":2,"labels":["Topic"],"properties":{"name":"Osteoporosis","title":"ignored"}},
			{"id":"x3","labels":[],"properties":{}},
			{"id":4,"labels":["Mineral"],"properties":{"name":""}}
		],
		"relationships":[
			{"id":10,"type":"HAS_TOPIC","start_node":1,"end_node":2,"properties":{"weight":0.5}}
		]
	}`)

	els := ToElements(g)
	require.Len(t, els, 5)

	assert.Equal(t, types.GraphElement{
		Kind: types.ElementNode, ID: "1", Label: "Bone loss in mice", Type: "Paper", Color: "#667eea",
		Properties: map[string]any{"title": "Bone loss in mice"},
	}, els[0])

	assert.Equal(t, "Osteoporosis", els[1].Label)
	assert.Equal(t, "#764ba2", els[1].Color)

	assert.Equal(t, "Node x3", els[2].Label)
	assert.Equal(t, UnknownType, els[2].Type)
	assert.Equal(t, DefaultColor, els[2].Color)

	assert.Equal(t, "Node 4", els[3].Label)
	assert.Equal(t, DefaultColor, els[3].Color)

	edge := els[4]
	assert.Equal(t, types.ElementEdge, edge.Kind)
	assert.Equal(t, "10", edge.ID)
	assert.Equal(t, "1", edge.Source)
	assert.Equal(t, "2", edge.Target)
	assert.Equal(t, "HAS_TOPIC", edge.Label)
	assert.Empty(t, edge.Color)
}

func TestToElements_Empty(t *testing.T) {
	els := ToElements(types.Graph{})
	assert.NotNil(t, els)
	assert.Empty(t, els)
}

func TestColor(t *testing.T) {
	tests := map[string]string{
		"Paper":         "#667eea",
		"Topic":         "#764ba2",
		"Organism":      "#f093fb",
		"Environment":   "#4facfe",
		"Related Paper": "#4facfe",
		"paper":         DefaultColor,
		"":              DefaultColor,
	}
	for in, want := range tests {
		assert.Equal(t, want, Color(in), in)
	}
}

func TestPropString(t *testing.T) {
	props := map[string]any{"s": "x", "n": 42.0, "f": false, "t": true, "nil": nil}
	assert.Equal(t, "x", propString(props, "s"))
	assert.Equal(t, "42", propString(props, "n"))
	assert.Equal(t, "", propString(props, "f"))
	assert.Equal(t, "true", propString(props, "t"))
	assert.Equal(t, "", propString(props, "nil"))
	assert.Equal(t, "", propString(props, "missing"))
	assert.Equal(t, "", propString(nil, "s"))
}

func TestSummarize(t *testing.T) {
	els := ToElements(decodeGraph(t, `{
		"nodes":[{"id":1,"labels":["Paper"]},{"id":2,"labels":["Topic"]},{"id":3,"labels":["Topic"]}],
		"relationships":[{"id":4,"type":"HAS_TOPIC","start_node":1,"end_node":2},{"id":5,"type":"HAS_TOPIC","start_node":1,"end_node":3}]
	}`))

	s := Summarize(els)
	assert.Equal(t, 3, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, map[string]int{"Paper": 1, "Topic": 2}, s.NodeTypes)
	assert.Equal(t, map[string]int{"HAS_TOPIC": 2}, s.EdgeTypes)
	assert.Equal(t, []string{"Topic", "Paper"}, SortedTypes(s.NodeTypes))
}
