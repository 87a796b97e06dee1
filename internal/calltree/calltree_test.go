package calltree

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Fixture(t *testing.T) {
	doc, err := Open(filepath.Join("..", "..", "testdata", "calltree.json"))
	require.NoError(t, err)

	require.True(t, doc.HasTree())
	assert.Equal(t, time.Millisecond, doc.LogThreshold)
	assert.Equal(t, "org.example.web.OrderController.submit", doc.Root["name"])
	assert.Equal(t, json.Number("2500000000"), doc.Root["total"])
	assert.Len(t, doc.Root["children"], 2)
}

func TestOpen_MessageOnly(t *testing.T) {
	doc, err := Open(filepath.Join("..", "..", "testdata", "nodata.json"))
	require.NoError(t, err)

	assert.False(t, doc.HasTree())
	assert.Equal(t, "No call tree available yet", doc.Message)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantTree bool
		wantName string
	}{
		{name: "root node", input: `{"rootNode":{"name":"a"}}`, wantTree: true, wantName: "a"},
		{name: "bare node", input: `{"name":"b","total":5}`, wantTree: true, wantName: "b"},
		{name: "message", input: `{"message":"CallTree callback not registered"}`},
		{name: "null root with message", input: `{"rootNode":null,"message":"x"}`},
		{name: "empty object", input: `{}`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "root not object", input: `{"rootNode":[1]}`, wantErr: true},
		{name: "message not string", input: `{"message":1}`, wantErr: true},
		{name: "threshold not number", input: `{"logThreshold":"x","message":"m"}`, wantErr: true},
		{name: "threshold fraction", input: `{"logThreshold":1.5,"message":"m"}`, wantErr: true},
		{name: "not json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTree, doc.HasTree())
			if tt.wantTree {
				assert.Equal(t, tt.wantName, doc.Root["name"])
			}
		})
	}
}

func TestParse_EmptyIsSentinel(t *testing.T) {
	_, err := Parse([]byte(`{}`))
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestHasTree_Nil(t *testing.T) {
	var doc *Document
	assert.False(t, doc.HasTree())
}
