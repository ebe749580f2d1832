package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Armib20/iTradeDemo/internal/llm"
	"github.com/Armib20/iTradeDemo/internal/llm/providers"
	"github.com/Armib20/iTradeDemo/internal/observability"
	"github.com/Armib20/iTradeDemo/internal/types"
)

func TestExtract(t *testing.T) {
	ctx := context.Background()
	mock := providers.NewMockProvider([]string{
		`{"brand": "Driscoll", "product_type": "Strawberry", "pack_quantity": 8, "pack_size": 1, "uom": "LB"}`,
	})

	extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))
	attrs, err := extractor.Extract(ctx, "STRAWBERRY DRISCOLL 8/1LB")
	require.NoError(t, err)

	assert.Equal(t, "Driscoll", attrs.BrandOrEmpty())
	assert.Equal(t, "Strawberry", attrs.ProductTypeOrEmpty())
	require.NotNil(t, attrs.PackQuantity)
	assert.Equal(t, 8, *attrs.PackQuantity)
	require.NotNil(t, attrs.PackSize)
	assert.Equal(t, 1.0, *attrs.PackSize)
	require.NotNil(t, attrs.UOM)
	assert.Equal(t, "LB", *attrs.UOM)

	// One completion per description, in JSON mode, with the description
	// appended as the user turn
	calls := mock.Calls()
	require.Len(t, calls, 1)
	req := calls[0].Request
	assert.True(t, req.JSONMode)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, "Product Description: STRAWBERRY DRISCOLL 8/1LB", req.Messages[1].Content)
}

func TestExtractFractionalPackSize(t *testing.T) {
	mock := providers.NewMockProvider([]string{
		`{"brand": "Driscoll", "product_type": "Raspberry", "pack_quantity": 12, "pack_size": 4.5, "uom": "OZ"}`,
	})

	extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))
	attrs, err := extractor.Extract(context.Background(), "RASPBERRY DRISCOLL 12/4.5OZ")
	require.NoError(t, err)

	require.NotNil(t, attrs.PackSize)
	assert.Equal(t, 4.5, *attrs.PackSize)
}

func TestExtractFencedResponse(t *testing.T) {
	mock := providers.NewMockProvider([]string{
		"```json\n{\"brand\": \"Dole\", \"product_type\": \"Banana\", \"pack_quantity\": 1, \"pack_size\": 40, \"uom\": \"LB\"}\n```",
	})

	extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))
	attrs, err := extractor.Extract(context.Background(), "BANANA DOLE 40LB")
	require.NoError(t, err)
	assert.Equal(t, "Dole", attrs.BrandOrEmpty())
}

func TestExtractNullAndMistypedValues(t *testing.T) {
	tests := []struct {
		name     string
		response string
		check    func(t *testing.T, attrs *Attributes)
	}{
		{
			name:     "explicit nulls",
			response: `{"brand": null, "product_type": "Strawberry", "pack_quantity": null, "pack_size": null, "uom": null}`,
			check: func(t *testing.T, attrs *Attributes) {
				assert.Nil(t, attrs.Brand)
				assert.Nil(t, attrs.PackQuantity)
				assert.Nil(t, attrs.PackSize)
				assert.Nil(t, attrs.UOM)
				assert.Equal(t, "Strawberry", attrs.ProductTypeOrEmpty())
			},
		},
		{
			name:     "quantity as whole float",
			response: `{"brand": "Dole", "product_type": "Banana", "pack_quantity": 8.0, "pack_size": 1, "uom": "LB"}`,
			check: func(t *testing.T, attrs *Attributes) {
				require.NotNil(t, attrs.PackQuantity)
				assert.Equal(t, 8, *attrs.PackQuantity)
			},
		},
		{
			name:     "quantity as fractional float drops to nil",
			response: `{"brand": "Dole", "product_type": "Banana", "pack_quantity": 8.5, "pack_size": 1, "uom": "LB"}`,
			check: func(t *testing.T, attrs *Attributes) {
				assert.Nil(t, attrs.PackQuantity)
			},
		},
		{
			name:     "mistyped brand drops to nil",
			response: `{"brand": 42, "product_type": "Banana", "pack_quantity": 1, "pack_size": 1, "uom": "LB"}`,
			check: func(t *testing.T, attrs *Attributes) {
				assert.Nil(t, attrs.Brand)
			},
		},
		{
			name:     "empty string treated as absent",
			response: `{"brand": "", "product_type": "Banana", "pack_quantity": 1, "pack_size": 1, "uom": "LB"}`,
			check: func(t *testing.T, attrs *Attributes) {
				assert.Nil(t, attrs.Brand)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := providers.NewMockProvider([]string{tt.response})
			extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))

			attrs, err := extractor.Extract(context.Background(), "some description")
			require.NoError(t, err)
			tt.check(t, attrs)
		})
	}
}

func TestExtractInvalidResponses(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		expectedCode types.ErrorCode
	}{
		{
			name:         "no json",
			response:     "sorry, I cannot help with that",
			expectedCode: ErrResponseInvalid,
		},
		{
			name:         "array instead of object",
			response:     `["brand", "product_type"]`,
			expectedCode: ErrResponseInvalid,
		},
		{
			name:         "unexpected key",
			response:     `{"brand": "Dole", "color": "yellow"}`,
			expectedCode: ErrResponseInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := providers.NewMockProvider([]string{tt.response})
			extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))

			_, err := extractor.Extract(context.Background(), "some description")
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, types.CodeOf(err))
		})
	}
}

func TestExtractEmptyDescription(t *testing.T) {
	mock := providers.NewMockProvider([]string{"{}"})
	extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))

	for _, description := range []string{"", "   ", "\t\n"} {
		_, err := extractor.Extract(context.Background(), description)
		require.Error(t, err)
		assert.Equal(t, ErrEmptyDescription, types.CodeOf(err))
	}
	assert.Zero(t, mock.CallCount())
}

func TestExtractCompletionFailure(t *testing.T) {
	mock := providers.NewMockProvider([]string{"{}"})
	mock.SetCompleteError(errors.New("provider down"))
	extractor := New(mock, "gpt-4o-mini", WithLogger(observability.Discard()))

	_, err := extractor.Extract(context.Background(), "STRAWBERRY DRISCOLL 8/1LB")
	require.Error(t, err)
	assert.Equal(t, ErrCompletionFailed, types.CodeOf(err))
}

func TestExtractPackOnlySchema(t *testing.T) {
	mock := providers.NewMockProvider([]string{
		`{"brand": "Tuscan", "product_type": "Whole Milk", "pack_size": 1, "uom": "GAL"}`,
	})

	extractor := New(mock, "gpt-4o-mini",
		WithSchema(SchemaPackOnly),
		WithLogger(observability.Discard()))

	attrs, err := extractor.Extract(context.Background(), "MILK TUSCAN WHOLE GAL")
	require.NoError(t, err)
	assert.Equal(t, "Tuscan", attrs.BrandOrEmpty())
	assert.Equal(t, "Whole Milk", attrs.ProductTypeOrEmpty())
	assert.Nil(t, attrs.PackQuantity)

	// pack_quantity is not part of the reduced contract
	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0].Request.Messages[0].Content, "pack_quantity")
}

func TestExtractPackOnlySchemaRejectsFullKey(t *testing.T) {
	mock := providers.NewMockProvider([]string{
		`{"brand": "Tuscan", "product_type": "Milk", "pack_quantity": 1, "pack_size": 1, "uom": "GAL"}`,
	})

	extractor := New(mock, "gpt-4o-mini",
		WithSchema(SchemaPackOnly),
		WithLogger(observability.Discard()))

	_, err := extractor.Extract(context.Background(), "MILK TUSCAN GAL")
	require.Error(t, err)
	assert.Equal(t, ErrResponseInvalid, types.CodeOf(err))
}
