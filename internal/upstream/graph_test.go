// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upstream

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spaceper/pkg/types"
)

func TestGraphQuery(t *testing.T) {
	assert.Nil(t, GraphQuery(""))
	assert.Nil(t, GraphQuery("   "))

	q := GraphQuery("Bone loss")
	require.NotNil(t, q)
	assert.Equal(t, `MATCH (p:Paper)-[r]-(n) WHERE p.title CONTAINS "Bone loss" RETURN p, r, n LIMIT 50`, *q)

	q = GraphQuery(`The "bone" \ study`)
	require.NotNil(t, q)
	assert.Contains(t, *q, `CONTAINS "The \"bone\" \\ study"`)
}

func TestFetchGraph(t *testing.T) {
	b := &backend{reply: `{
		"nodes":[{"id":1,"labels":["Paper"],"properties":{"title":"Bone loss"}},{"id":"t-2","labels":["Topic"],"properties":{"name":"Bone"}}],
		"relationships":[{"id":7,"type":"HAS_TOPIC","start_node":1,"end_node":"t-2","properties":{}}]
	}`}
	c, _ := newTestClient(t, b)

	g, err := c.FetchGraph(context.Background(), GraphRequest{Title: "Bone loss"})
	require.NoError(t, err)

	assert.Equal(t, "/graph", b.path())
	assert.Equal(t, float64(DefaultGraphLimit), b.body()["limit"])
	assert.Contains(t, b.body()["query"], `CONTAINS "Bone loss"`)

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, types.FlexID("1"), g.Nodes[0].ID)
	assert.Equal(t, types.FlexID("t-2"), g.Nodes[1].ID)
	require.Len(t, g.Relationships, 1)
	assert.Equal(t, types.FlexID("1"), g.Relationships[0].StartNode)
}

func TestFetchGraph_NoTitleSendsNullQuery(t *testing.T) {
	b := &backend{reply: `{}`}
	c, _ := newTestClient(t, b)

	g, err := c.FetchGraph(context.Background(), GraphRequest{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)

	v, present := b.body()["query"]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.Equal(t, float64(10), b.body()["limit"])
}

func TestFetchGraph_Error(t *testing.T) {
	b := &backend{status: http.StatusInternalServerError}
	c, _ := newTestClient(t, b)

	_, err := c.FetchGraph(context.Background(), GraphRequest{Title: "x"})
	assert.Error(t, err)
}
