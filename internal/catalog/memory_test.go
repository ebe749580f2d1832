package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreListBrands(t *testing.T) {
	store := NewMemoryStore([]Product{
		{CanonicalID: 1, Brand: "Driscoll's", ProductType: "Strawberry"},
		{CanonicalID: 2, Brand: "Dole", ProductType: "Banana"},
		{CanonicalID: 3, Brand: "Driscoll's", ProductType: "Raspberry"},
	})

	brands, err := store.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dole", "Driscoll's"}, brands)
}

func TestMemoryStoreFindMatch(t *testing.T) {
	store := NewMemoryStore(DefaultProducts())

	tests := []struct {
		name         string
		brand        string
		productType  string
		packQuantity int
		packSize     float64
		expectedIDs  []int64
	}{
		{
			name:         "exact match",
			brand:        "Driscoll's",
			productType:  "Strawberry",
			packQuantity: 8,
			packSize:     1.0,
			expectedIDs:  []int64{7669},
		},
		{
			name:         "unknown product type",
			brand:        "Driscoll's",
			productType:  "Kiwi",
			packQuantity: 8,
			packSize:     1.0,
			expectedIDs:  nil,
		},
		{
			name:         "pack size off by a little",
			brand:        "Driscoll's",
			productType:  "Raspberry",
			packQuantity: 12,
			packSize:     4.0,
			expectedIDs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := store.FindMatch(context.Background(),
				tt.brand, tt.productType, tt.packQuantity, tt.packSize)
			require.NoError(t, err)

			ids := make([]int64, 0, len(matches))
			for _, m := range matches {
				ids = append(ids, m.CanonicalID)
			}
			if tt.expectedIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.expectedIDs, ids)
			}
		})
	}
}

func TestMemoryStoreFindMatchIgnoresUOM(t *testing.T) {
	// Two products identical except for unit collide on the predicate.
	store := NewMemoryStore([]Product{
		{CanonicalID: 1, Brand: "Dole", ProductType: "Pineapple", PackQuantity: 6, PackSize: 2, UOM: "LB"},
		{CanonicalID: 2, Brand: "Dole", ProductType: "Pineapple", PackQuantity: 6, PackSize: 2, UOM: "KG"},
	})

	matches, err := store.FindMatch(context.Background(), "Dole", "Pineapple", 6, 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestMemoryStoreStats(t *testing.T) {
	store := NewMemoryStore(DefaultProducts())

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)

	byLabel := make(map[string]int)
	for _, nc := range stats.NodeCounts {
		byLabel[nc.Label] = nc.Count
	}
	assert.Equal(t, 4, byLabel["Product"])
	assert.Equal(t, 1, byLabel["Brand"])
	assert.Equal(t, 4, byLabel["ProductType"])

	require.Len(t, stats.RelationshipCounts, 2)
	for _, rc := range stats.RelationshipCounts {
		assert.Equal(t, 4, rc.Count)
	}
}

func TestMemoryStoreListProductsOrdered(t *testing.T) {
	store := NewMemoryStore([]Product{
		{CanonicalID: 1, Brand: "Driscoll's", ProductType: "Strawberry"},
		{CanonicalID: 2, Brand: "Dole", ProductType: "Pineapple"},
		{CanonicalID: 3, Brand: "Dole", ProductType: "Banana"},
	})

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, int64(3), products[0].CanonicalID)
	assert.Equal(t, int64(2), products[1].CanonicalID)
	assert.Equal(t, int64(1), products[2].CanonicalID)
}

func TestMemoryStoreDetailedCounts(t *testing.T) {
	store := NewMemoryStore([]Product{
		{CanonicalID: 1, Brand: "Driscoll's", ProductType: "Strawberry"},
		{CanonicalID: 2, Brand: "Driscoll's", ProductType: "Raspberry"},
		{CanonicalID: 3, Brand: "Dole", ProductType: "Strawberry"},
	})

	brands, err := store.ListBrandsDetailed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []BrandCount{
		{Name: "Driscoll's", ProductCount: 2},
		{Name: "Dole", ProductCount: 1},
	}, brands)

	productTypes, err := store.ListProductTypesDetailed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ProductTypeCount{
		{Name: "Strawberry", ProductCount: 2},
		{Name: "Raspberry", ProductCount: 1},
	}, productTypes)
}

func TestMemoryStoreCopiesInput(t *testing.T) {
	products := []Product{{CanonicalID: 1, Brand: "Dole", ProductType: "Banana", PackQuantity: 1, PackSize: 40}}
	store := NewMemoryStore(products)

	products[0].Brand = "Mutated"

	matches, err := store.FindMatch(context.Background(), "Dole", "Banana", 1, 40)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
