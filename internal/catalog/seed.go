package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Armib20/iTradeDemo/internal/graph"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// Seeding is an offline administrative operation. It is never run
// concurrently with categorization traffic; the pipeline treats the store
// as read-only.

const wipeCypher = `MATCH (n) DETACH DELETE n`

// upsertCypher merges each product by canonical id and merges the two
// vocabulary relationships. Running it twice for the same id is a no-op
// apart from property refresh.
const upsertCypher = `
MERGE (p:Product {canonical_id: $canonical_id})
SET p.standard_description = $standard_description,
    p.pack_quantity = $pack_quantity,
    p.pack_size = $pack_size,
    p.uom = $uom
MERGE (b:Brand {name: $brand})
MERGE (p)-[:HAS_BRAND]->(b)
MERGE (pt:ProductType {name: $product_type})
MERGE (p)-[:IS_TYPE]->(pt)`

// Seeder bulk-loads canonical products into the knowledge graph.
type Seeder struct {
	client graph.Client
	logger *slog.Logger
}

// NewSeeder creates a Seeder over a connected graph client.
func NewSeeder(client graph.Client, logger *slog.Logger) *Seeder {
	return &Seeder{client: client, logger: logger}
}

// SeedResult reports what a seeding run did.
type SeedResult struct {
	Wiped    bool
	Upserted int
}

// Seed upserts the given products. When wipe is true the whole graph is
// cleared first, reproducing a from-scratch load.
func (s *Seeder) Seed(ctx context.Context, products []Product, wipe bool) (*SeedResult, error) {
	result := &SeedResult{}

	if wipe {
		if _, err := s.client.Write(ctx, wipeCypher, nil); err != nil {
			return nil, types.WrapError(types.STORE_SEED_FAILED, "wiping graph failed", err)
		}
		result.Wiped = true
		s.logger.Info("graph wiped before seeding")
	}

	for _, p := range products {
		params := map[string]any{
			"canonical_id":         p.CanonicalID,
			"standard_description": p.Description,
			"brand":                p.Brand,
			"product_type":         p.ProductType,
			"pack_quantity":        p.PackQuantity,
			"pack_size":            p.PackSize,
			"uom":                  p.UOM,
		}

		if _, err := s.client.Write(ctx, upsertCypher, params); err != nil {
			return nil, types.WrapError(types.STORE_SEED_FAILED,
				fmt.Sprintf("upserting product %d failed", p.CanonicalID), err)
		}
		result.Upserted++

		s.logger.Debug("product upserted",
			"canonical_id", p.CanonicalID,
			"brand", p.Brand,
			"product_type", p.ProductType)
	}

	s.logger.Info("seeding complete", "products", result.Upserted, "wiped", result.Wiped)
	return result, nil
}

// seedFile is the on-disk YAML shape for a product dataset.
type seedFile struct {
	Products []Product `yaml:"products"`
}

// LoadProductsFile reads a YAML product dataset from path.
func LoadProductsFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.STORE_SEED_FAILED, "reading seed file failed", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, types.WrapError(types.STORE_SEED_FAILED, "parsing seed file failed", err)
	}

	if len(file.Products) == 0 {
		return nil, types.NewError(types.STORE_SEED_FAILED, "seed file contains no products")
	}

	for i, p := range file.Products {
		if p.CanonicalID == 0 {
			return nil, types.NewError(types.STORE_SEED_FAILED,
				fmt.Sprintf("product %d has no canonical_id", i))
		}
		if p.Brand == "" || p.ProductType == "" {
			return nil, types.NewError(types.STORE_SEED_FAILED,
				fmt.Sprintf("product %d is missing brand or product_type", p.CanonicalID))
		}
	}

	return file.Products, nil
}

// DefaultProducts returns the built-in demo dataset: four Driscoll's
// berry SKUs.
func DefaultProducts() []Product {
	return []Product{
		{
			CanonicalID:  7669,
			Description:  "STRAWBERRY DRISCOLL 8/1LB",
			Brand:        "Driscoll's",
			ProductType:  "Strawberry",
			PackQuantity: 8,
			PackSize:     1.0,
			UOM:          "LB",
		},
		{
			CanonicalID:  7670,
			Description:  "BLUEBERRY DRISCOLL 6/6OZ",
			Brand:        "Driscoll's",
			ProductType:  "Blueberry",
			PackQuantity: 6,
			PackSize:     6.0,
			UOM:          "OZ",
		},
		{
			CanonicalID:  7671,
			Description:  "RASPBERRY DRISCOLL 12/4.5OZ",
			Brand:        "Driscoll's",
			ProductType:  "Raspberry",
			PackQuantity: 12,
			PackSize:     4.5,
			UOM:          "OZ",
		},
		{
			CanonicalID:  7672,
			Description:  "BLACKBERRY DRISCOLL 12/6OZ",
			Brand:        "Driscoll's",
			ProductType:  "Blackberry",
			PackQuantity: 12,
			PackSize:     6.0,
			UOM:          "OZ",
		},
	}
}
