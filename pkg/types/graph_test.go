package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexID
	}{
		{"integer", `{"id": 42}`, "42"},
		{"string", `{"id": "4:abc:7"}`, "4:abc:7"},
		{"null", `{"id": null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n GraphNode
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, n.ID)
		})
	}
}

func TestFlexID_RejectsObjects(t *testing.T) {
	var n GraphNode
	err := json.Unmarshal([]byte(`{"id": {"x": 1}}`), &n)
	assert.Error(t, err)
}
