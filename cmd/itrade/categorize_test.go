package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Armib20/iTradeDemo/internal/extract"
	"github.com/Armib20/iTradeDemo/internal/pipeline"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func newCaptureCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func partialRunResult() *pipeline.RunResult {
	return &pipeline.RunResult{
		Description: "STRAWBERRY ZEBRA 8/1LB",
		Raw: &extract.Attributes{
			Brand:        strPtr("Zebra Industries"),
			ProductType:  strPtr("Strawberry"),
			PackQuantity: intPtr(8),
			PackSize:     floatPtr(1.0),
			UOM:          strPtr("LB"),
		},
	}
}

func TestPrintPartialResultJSON(t *testing.T) {
	cmd, buf := newCaptureCommand()

	printPartialResult(cmd, partialRunResult(), "json")

	var payload struct {
		Description string `json:"description"`
		Raw         struct {
			Brand *string `json:"brand"`
		} `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "STRAWBERRY ZEBRA 8/1LB", payload.Description)
	require.NotNil(t, payload.Raw.Brand)
	assert.Equal(t, "Zebra Industries", *payload.Raw.Brand)
}

func TestPrintPartialResultText(t *testing.T) {
	cmd, buf := newCaptureCommand()

	printPartialResult(cmd, partialRunResult(), "text")

	out := buf.String()
	assert.Contains(t, out, "Extracted attributes:")
	assert.Contains(t, out, "Zebra Industries")
	assert.NotContains(t, out, "{")
}

func TestPrintPartialResultNothingToShow(t *testing.T) {
	cmd, buf := newCaptureCommand()

	printPartialResult(cmd, nil, "json")
	printPartialResult(cmd, &pipeline.RunResult{Description: "x"}, "json")

	assert.Empty(t, buf.String())
}
