// Package catalog provides read access to the canonical product knowledge
// graph and the offline seeding path that populates it.
//
// Graph schema: (:Product {canonical_id, standard_description, pack_quantity,
// pack_size, uom})-[:HAS_BRAND]->(:Brand {name}) and
// (:Product)-[:IS_TYPE]->(:ProductType {name}). Brand and ProductType are
// shared vocabulary nodes; they carry no data beyond their unique name.
package catalog

import "context"

// Product is a canonical catalog entry: one standardized SKU.
type Product struct {
	// CanonicalID uniquely identifies the product node.
	CanonicalID int64 `json:"canonical_id" yaml:"canonical_id"`

	// Description is the standard description the SKU was loaded with.
	Description string `json:"standard_description" yaml:"standard_description"`

	Brand       string `json:"brand" yaml:"brand"`
	ProductType string `json:"product_type" yaml:"product_type"`

	PackQuantity int     `json:"pack_quantity" yaml:"pack_quantity"`
	PackSize     float64 `json:"pack_size" yaml:"pack_size"`

	// UOM is carried for display only; it is not part of the match
	// predicate (see internal/match).
	UOM string `json:"uom" yaml:"uom"`
}

// BrandCount is a brand vocabulary entry with its product count.
type BrandCount struct {
	Name         string `json:"brand"`
	ProductCount int    `json:"product_count"`
}

// ProductTypeCount is a product-type vocabulary entry with its product count.
type ProductTypeCount struct {
	Name         string `json:"product_type"`
	ProductCount int    `json:"product_count"`
}

// LabelCount is a node or relationship count used by Stats.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats holds aggregate counts over the knowledge graph.
type Stats struct {
	NodeCounts         []LabelCount `json:"node_counts"`
	RelationshipCounts []LabelCount `json:"relationship_counts"`
}

// Store is the read-only adapter over the canonical product store.
//
// FindMatch implements the exact-equality predicate used by the matcher and
// returns zero, one, or many products; multiplicity is never an error here.
// The remaining operations are the exploration surface. All operations fail
// with STORE_*/GRAPH_* coded errors only on connectivity or query failure.
type Store interface {
	// ListBrands returns all distinct brand names. The order is stable
	// within a session so fuzzy-match scan order is reproducible.
	ListBrands(ctx context.Context) ([]string, error)

	// FindMatch returns every product whose brand name, product type name,
	// pack quantity, and pack size all equal the arguments exactly.
	FindMatch(ctx context.Context, brand, productType string, packQuantity int, packSize float64) ([]Product, error)

	// Stats returns aggregate node and relationship counts.
	Stats(ctx context.Context) (*Stats, error)

	// ListProducts returns all products with their vocabulary joins,
	// ordered by brand then product type.
	ListProducts(ctx context.Context) ([]Product, error)

	// ListBrandsDetailed returns brands with product counts, most products first.
	ListBrandsDetailed(ctx context.Context) ([]BrandCount, error)

	// ListProductTypesDetailed returns product types with product counts,
	// most products first.
	ListProductTypesDetailed(ctx context.Context) ([]ProductTypeCount, error)
}
