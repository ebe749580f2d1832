package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatterPrintTable(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf)

	err := f.PrintTable(
		[]string{"brand", "products"},
		[][]string{
			{"Driscoll's", "4"},
			{"Dole", "2"},
		})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BRAND")
	assert.Contains(t, out, "PRODUCTS")
	assert.Contains(t, out, "Driscoll's")
	assert.Contains(t, out, "Dole")
}

func TestTextFormatterMessages(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf)

	require.NoError(t, f.PrintSuccess("seeded 4 products"))
	require.NoError(t, f.PrintError("connection refused"))

	out := buf.String()
	assert.Contains(t, out, "✓ seeded 4 products")
	assert.Contains(t, out, "✗ connection refused")
}

func TestJSONFormatterPrintTable(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	err := f.PrintTable(
		[]string{"brand", "products"},
		[][]string{{"Driscoll's", "4"}})
	require.NoError(t, err)

	var payload struct {
		Headers []string            `json:"headers"`
		Data    []map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, []string{"brand", "products"}, payload.Headers)
	require.Len(t, payload.Data, 1)
	assert.Equal(t, "Driscoll's", payload.Data[0]["brand"])
	assert.Equal(t, "4", payload.Data[0]["products"])
}

func TestNewFormatterSelection(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, nil))
	assert.IsType(t, &TextFormatter{}, NewFormatter(FormatText, nil))
	assert.IsType(t, &TextFormatter{}, NewFormatter("bogus", nil))
}
