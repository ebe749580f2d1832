package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Armib20/iTradeDemo/internal/catalog"
	"github.com/Armib20/iTradeDemo/internal/graph"
	"github.com/Armib20/iTradeDemo/internal/normalize"
	"github.com/Armib20/iTradeDemo/internal/observability"
	"github.com/Armib20/iTradeDemo/internal/types"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func record(brand, productType string, quantity int, size float64) *normalize.Normalized {
	return &normalize.Normalized{
		Brand:        brand,
		ProductType:  productType,
		PackQuantity: intPtr(quantity),
		PackSize:     floatPtr(size),
	}
}

func TestMatchSingleCandidate(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.DefaultProducts())
	matcher := New(store, observability.Discard())

	result, err := matcher.Match(context.Background(), record("Driscoll's", "Strawberry", 8, 1.0))
	require.NoError(t, err)

	assert.Equal(t, OutcomeMatched, result.Outcome)
	require.NotNil(t, result.Product)
	assert.Equal(t, int64(7669), result.Product.CanonicalID)
	assert.Empty(t, result.Candidates)
}

func TestMatchNoCandidates(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.DefaultProducts())
	matcher := New(store, observability.Discard())

	tests := []struct {
		name   string
		record *normalize.Normalized
	}{
		{"unknown product type", record("Driscoll's", "Kiwi", 8, 1.0)},
		{"wrong pack quantity", record("Driscoll's", "Strawberry", 6, 1.0)},
		{"wrong pack size", record("Driscoll's", "Strawberry", 8, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := matcher.Match(context.Background(), tt.record)
			require.NoError(t, err)
			assert.Equal(t, OutcomeNoMatch, result.Outcome)
			assert.Nil(t, result.Product)
		})
	}
}

func TestMatchAmbiguousCandidates(t *testing.T) {
	// Two canonical products share the full predicate tuple; only the
	// canonical id differs. The collision surfaces, never auto-resolves.
	store := catalog.NewMemoryStore([]catalog.Product{
		{CanonicalID: 900, Brand: "Dole", ProductType: "Pineapple", PackQuantity: 6, PackSize: 2, UOM: "LB"},
		{CanonicalID: 901, Brand: "Dole", ProductType: "Pineapple", PackQuantity: 6, PackSize: 2, UOM: "KG"},
	})
	matcher := New(store, observability.Discard())

	result, err := matcher.Match(context.Background(), record("Dole", "Pineapple", 6, 2))
	require.NoError(t, err)

	assert.Equal(t, OutcomeAmbiguous, result.Outcome)
	assert.Nil(t, result.Product)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, int64(900), result.Candidates[0].CanonicalID)
	assert.Equal(t, int64(901), result.Candidates[1].CanonicalID)
}

func TestMatchIncompleteRecordShortCircuits(t *testing.T) {
	// The store errors on any query; an incomplete record must never reach it.
	mock := graph.NewMockClient()
	mock.SetQueryError(errors.New("store must not be queried"))
	matcher := New(catalog.NewGraphStore(mock), observability.Discard())

	tests := []struct {
		name   string
		record *normalize.Normalized
	}{
		{
			name:   "missing brand",
			record: &normalize.Normalized{ProductType: "Strawberry", PackQuantity: intPtr(8), PackSize: floatPtr(1)},
		},
		{
			name:   "missing product type",
			record: &normalize.Normalized{Brand: "Driscoll's", PackQuantity: intPtr(8), PackSize: floatPtr(1)},
		},
		{
			name:   "missing pack quantity",
			record: &normalize.Normalized{Brand: "Driscoll's", ProductType: "Strawberry", PackSize: floatPtr(1)},
		},
		{
			name:   "missing pack size",
			record: &normalize.Normalized{Brand: "Driscoll's", ProductType: "Strawberry", PackQuantity: intPtr(8)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := matcher.Match(context.Background(), tt.record)
			require.NoError(t, err)
			assert.Equal(t, OutcomeNoMatch, result.Outcome)
		})
	}
	assert.Empty(t, mock.CallsTo("Query"))
}

func TestMatchStoreErrorPropagates(t *testing.T) {
	mock := graph.NewMockClient()
	mock.SetQueryError(errors.New("session expired"))
	matcher := New(catalog.NewGraphStore(mock), observability.Discard())

	_, err := matcher.Match(context.Background(), record("Driscoll's", "Strawberry", 8, 1.0))
	require.Error(t, err)
	assert.Equal(t, types.STORE_QUERY_FAILED, types.CodeOf(err))
}

func TestMatchDeterministic(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.DefaultProducts())
	matcher := New(store, observability.Discard())

	for i := 0; i < 10; i++ {
		result, err := matcher.Match(context.Background(), record("Driscoll's", "Blueberry", 6, 6.0))
		require.NoError(t, err)
		assert.Equal(t, OutcomeMatched, result.Outcome)
		assert.Equal(t, int64(7670), result.Product.CanonicalID)
	}
}
