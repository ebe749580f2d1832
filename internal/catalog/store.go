package catalog

import (
	"context"
	"fmt"

	"github.com/Armib20/iTradeDemo/internal/graph"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// Cypher for the exact-match predicate. UOM is deliberately absent from the
// WHERE clause; two products identical in brand/type/quantity/size but
// differing in unit collide here and surface as an ambiguous match.
const findMatchCypher = `
MATCH (p:Product)-[:HAS_BRAND]->(b:Brand {name: $brand})
MATCH (p)-[:IS_TYPE]->(pt:ProductType {name: $product_type})
WHERE p.pack_quantity = $pack_quantity AND p.pack_size = $pack_size
RETURN p.canonical_id AS canonical_id,
       p.standard_description AS standard_description,
       p.pack_quantity AS pack_quantity,
       p.pack_size AS pack_size,
       p.uom AS uom,
       b.name AS brand,
       pt.name AS product_type`

const listBrandsCypher = `
MATCH (b:Brand)
RETURN b.name AS brand_name
ORDER BY brand_name`

const listProductsCypher = `
MATCH (p:Product)-[:HAS_BRAND]->(b:Brand)
MATCH (p)-[:IS_TYPE]->(pt:ProductType)
RETURN p.canonical_id AS canonical_id,
       p.standard_description AS standard_description,
       p.pack_quantity AS pack_quantity,
       p.pack_size AS pack_size,
       p.uom AS uom,
       b.name AS brand,
       pt.name AS product_type
ORDER BY brand, product_type`

const nodeCountsCypher = `
MATCH (n)
RETURN labels(n)[0] AS node_type, count(n) AS count
ORDER BY count DESC`

const relationshipCountsCypher = `
MATCH ()-[r]->()
RETURN type(r) AS relationship_type, count(r) AS count
ORDER BY count DESC`

const brandsDetailedCypher = `
MATCH (b:Brand)<-[:HAS_BRAND]-(p:Product)
RETURN b.name AS brand_name, count(p) AS product_count
ORDER BY product_count DESC, brand_name`

const productTypesDetailedCypher = `
MATCH (pt:ProductType)<-[:IS_TYPE]-(p:Product)
RETURN pt.name AS product_type, count(p) AS product_count
ORDER BY product_count DESC, product_type`

// GraphStore implements Store over a graph.Client.
type GraphStore struct {
	client graph.Client
}

// NewGraphStore creates a Store backed by the given graph client.
// The client must already be connected.
func NewGraphStore(client graph.Client) *GraphStore {
	return &GraphStore{client: client}
}

// ListBrands returns all distinct brand names, ordered by name.
func (s *GraphStore) ListBrands(ctx context.Context) ([]string, error) {
	result, err := s.client.Query(ctx, listBrandsCypher, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "listing brands failed", err)
	}

	brands := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		name, err := stringValue(record, "brand_name")
		if err != nil {
			return nil, err
		}
		brands = append(brands, name)
	}
	return brands, nil
}

// FindMatch returns every product matching brand, product type, pack quantity,
// and pack size exactly. Zero and many rows are valid results.
func (s *GraphStore) FindMatch(ctx context.Context, brand, productType string, packQuantity int, packSize float64) ([]Product, error) {
	params := map[string]any{
		"brand":         brand,
		"product_type":  productType,
		"pack_quantity": packQuantity,
		"pack_size":     packSize,
	}

	result, err := s.client.Query(ctx, findMatchCypher, params)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "match query failed", err)
	}

	return productsFromRecords(result.Records)
}

// Stats returns aggregate node and relationship counts.
func (s *GraphStore) Stats(ctx context.Context) (*Stats, error) {
	nodes, err := s.client.Query(ctx, nodeCountsCypher, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "node count query failed", err)
	}

	rels, err := s.client.Query(ctx, relationshipCountsCypher, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "relationship count query failed", err)
	}

	stats := &Stats{}
	for _, record := range nodes.Records {
		label, err := stringValue(record, "node_type")
		if err != nil {
			return nil, err
		}
		count, err := intValue(record, "count")
		if err != nil {
			return nil, err
		}
		stats.NodeCounts = append(stats.NodeCounts, LabelCount{Label: label, Count: count})
	}
	for _, record := range rels.Records {
		label, err := stringValue(record, "relationship_type")
		if err != nil {
			return nil, err
		}
		count, err := intValue(record, "count")
		if err != nil {
			return nil, err
		}
		stats.RelationshipCounts = append(stats.RelationshipCounts, LabelCount{Label: label, Count: count})
	}
	return stats, nil
}

// ListProducts returns all products with their vocabulary joins.
func (s *GraphStore) ListProducts(ctx context.Context) ([]Product, error) {
	result, err := s.client.Query(ctx, listProductsCypher, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "listing products failed", err)
	}
	return productsFromRecords(result.Records)
}

// ListBrandsDetailed returns brands with product counts.
func (s *GraphStore) ListBrandsDetailed(ctx context.Context) ([]BrandCount, error) {
	result, err := s.client.Query(ctx, brandsDetailedCypher, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "listing brands failed", err)
	}

	counts := make([]BrandCount, 0, len(result.Records))
	for _, record := range result.Records {
		name, err := stringValue(record, "brand_name")
		if err != nil {
			return nil, err
		}
		count, err := intValue(record, "product_count")
		if err != nil {
			return nil, err
		}
		counts = append(counts, BrandCount{Name: name, ProductCount: count})
	}
	return counts, nil
}

// ListProductTypesDetailed returns product types with product counts.
func (s *GraphStore) ListProductTypesDetailed(ctx context.Context) ([]ProductTypeCount, error) {
	result, err := s.client.Query(ctx, productTypesDetailedCypher, nil)
	if err != nil {
		return nil, types.WrapError(types.STORE_QUERY_FAILED, "listing product types failed", err)
	}

	counts := make([]ProductTypeCount, 0, len(result.Records))
	for _, record := range result.Records {
		name, err := stringValue(record, "product_type")
		if err != nil {
			return nil, err
		}
		count, err := intValue(record, "product_count")
		if err != nil {
			return nil, err
		}
		counts = append(counts, ProductTypeCount{Name: name, ProductCount: count})
	}
	return counts, nil
}

// productsFromRecords converts query rows to Product values.
func productsFromRecords(records []map[string]any) ([]Product, error) {
	products := make([]Product, 0, len(records))
	for _, record := range records {
		p, err := productFromRecord(record)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func productFromRecord(record map[string]any) (Product, error) {
	id, err := int64Value(record, "canonical_id")
	if err != nil {
		return Product{}, err
	}
	quantity, err := intValue(record, "pack_quantity")
	if err != nil {
		return Product{}, err
	}
	size, err := floatValue(record, "pack_size")
	if err != nil {
		return Product{}, err
	}
	brand, err := stringValue(record, "brand")
	if err != nil {
		return Product{}, err
	}
	productType, err := stringValue(record, "product_type")
	if err != nil {
		return Product{}, err
	}

	// Optional display fields
	description, _ := record["standard_description"].(string)
	uom, _ := record["uom"].(string)

	return Product{
		CanonicalID:  id,
		Description:  description,
		Brand:        brand,
		ProductType:  productType,
		PackQuantity: quantity,
		PackSize:     size,
		UOM:          uom,
	}, nil
}

// The Neo4j driver returns integers as int64 and floats as float64; seeded
// data may carry either for numeric properties.

func stringValue(record map[string]any, key string) (string, error) {
	v, ok := record[key]
	if !ok || v == nil {
		return "", types.NewError(types.STORE_RESULT_INVALID,
			fmt.Sprintf("missing column %q in result", key))
	}
	s, ok := v.(string)
	if !ok {
		return "", types.NewError(types.STORE_RESULT_INVALID,
			fmt.Sprintf("column %q is not a string", key))
	}
	return s, nil
}

func int64Value(record map[string]any, key string) (int64, error) {
	switch v := record[key].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, types.NewError(types.STORE_RESULT_INVALID,
			fmt.Sprintf("column %q is not numeric", key))
	}
}

func intValue(record map[string]any, key string) (int, error) {
	v, err := int64Value(record, key)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func floatValue(record map[string]any, key string) (float64, error) {
	switch v := record[key].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, types.NewError(types.STORE_RESULT_INVALID,
			fmt.Sprintf("column %q is not numeric", key))
	}
}
