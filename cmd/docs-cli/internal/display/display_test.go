package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods_JSONKeepsOrder(t *testing.T) {
	cat := catalog.Default()
	var buf bytes.Buffer
	require.NoError(t, Methods(&buf, FormatJSON, cat.Version(), cat.Methods()))

	var resp handlers.MethodListResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, cat.Len(), resp.Count)
	for i, m := range cat.Methods() {
		assert.Equal(t, m.Name, resp.Methods[i].Name)
	}
}

func TestMethods_Table(t *testing.T) {
	methods := catalog.Default().Filter(catalog.EntityKeysend)
	var buf bytes.Buffer
	require.NoError(t, Methods(&buf, FormatTable, "abc123", methods))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	for _, m := range methods {
		assert.Contains(t, out, m.Name)
	}
	assert.Contains(t, out, "catalog abc123")
}

func TestMethods_UnknownFormat(t *testing.T) {
	err := Methods(&bytes.Buffer{}, "yaml", "v", nil)
	assert.ErrorContains(t, err, `"yaml"`)
}

func TestColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Colors(&buf, FormatJSON))

	var entities []handlers.EntityResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entities))
	require.Len(t, entities, len(catalog.Entities()))
	assert.Equal(t, "#795b06", entities[1].Hex)

	buf.Reset()
	require.NoError(t, Colors(&buf, FormatTable))
	assert.Contains(t, buf.String(), "lightning-address")
	assert.Contains(t, buf.String(), catalog.DefaultColor.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate(strings.Repeat("x", 20), 10)
	assert.Equal(t, "xxxxxxx...", got)
}
