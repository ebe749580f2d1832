package catalog

import (
	"context"
	"sort"
)

// MemoryStore implements Store over a fixed in-memory product list. It is
// the degenerate store variant used by tests and by offline mode, where no
// graph database is available. The product list is read-only after
// construction.
type MemoryStore struct {
	products []Product
}

// NewMemoryStore creates a Store over the given products. The slice is
// copied; later mutation of the argument does not affect the store.
func NewMemoryStore(products []Product) *MemoryStore {
	copied := make([]Product, len(products))
	copy(copied, products)
	return &MemoryStore{products: copied}
}

// ListBrands returns the distinct brand names, sorted.
func (s *MemoryStore) ListBrands(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, p := range s.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands, nil
}

// FindMatch applies the exact-equality predicate over the product list.
// UOM is excluded, mirroring the graph query.
func (s *MemoryStore) FindMatch(ctx context.Context, brand, productType string, packQuantity int, packSize float64) ([]Product, error) {
	var matches []Product
	for _, p := range s.products {
		if p.Brand == brand &&
			p.ProductType == productType &&
			p.PackQuantity == packQuantity &&
			p.PackSize == packSize {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Stats computes node and relationship counts as the graph seeding would
// produce them: one Product node per product, one vocabulary node per
// distinct brand and type, one relationship of each kind per product.
func (s *MemoryStore) Stats(ctx context.Context) (*Stats, error) {
	brands := make(map[string]struct{})
	productTypes := make(map[string]struct{})
	for _, p := range s.products {
		brands[p.Brand] = struct{}{}
		productTypes[p.ProductType] = struct{}{}
	}

	stats := &Stats{
		NodeCounts: []LabelCount{
			{Label: "Product", Count: len(s.products)},
			{Label: "Brand", Count: len(brands)},
			{Label: "ProductType", Count: len(productTypes)},
		},
		RelationshipCounts: []LabelCount{
			{Label: "HAS_BRAND", Count: len(s.products)},
			{Label: "IS_TYPE", Count: len(s.products)},
		},
	}
	sort.Slice(stats.NodeCounts, func(i, j int) bool {
		return stats.NodeCounts[i].Count > stats.NodeCounts[j].Count
	})
	return stats, nil
}

// ListProducts returns all products ordered by brand then product type.
func (s *MemoryStore) ListProducts(ctx context.Context) ([]Product, error) {
	products := make([]Product, len(s.products))
	copy(products, s.products)
	sort.Slice(products, func(i, j int) bool {
		if products[i].Brand != products[j].Brand {
			return products[i].Brand < products[j].Brand
		}
		return products[i].ProductType < products[j].ProductType
	})
	return products, nil
}

// ListBrandsDetailed returns brands with product counts, most products first.
func (s *MemoryStore) ListBrandsDetailed(ctx context.Context) ([]BrandCount, error) {
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[p.Brand]++
	}

	out := make([]BrandCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, BrandCount{Name: name, ProductCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductCount != out[j].ProductCount {
			return out[i].ProductCount > out[j].ProductCount
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// ListProductTypesDetailed returns product types with product counts.
func (s *MemoryStore) ListProductTypesDetailed(ctx context.Context) ([]ProductTypeCount, error) {
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[p.ProductType]++
	}

	out := make([]ProductTypeCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, ProductTypeCount{Name: name, ProductCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductCount != out[j].ProductCount {
			return out[i].ProductCount > out[j].ProductCount
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
