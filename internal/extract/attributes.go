package extract

import (
	"encoding/json"
	"fmt"

	"github.com/Armib20/iTradeDemo/internal/types"
)

// Extraction error codes
const (
	ErrEmptyDescription types.ErrorCode = "EXTRACT_EMPTY_DESCRIPTION"
	ErrCompletionFailed types.ErrorCode = "EXTRACT_COMPLETION_FAILED"
	ErrResponseInvalid  types.ErrorCode = "EXTRACT_RESPONSE_INVALID"
)

// Attributes is the raw attribute record produced by extraction: a
// best-effort, unvalidated guess. Every field is optional; nil means the
// model could not find the attribute. PackQuantity is defaulted to 1 by the
// model when no case/pack notation is present, per the system prompt; it is
// never re-defaulted downstream.
type Attributes struct {
	Brand        *string  `json:"brand"`
	ProductType  *string  `json:"product_type"`
	PackQuantity *int     `json:"pack_quantity"`
	PackSize     *float64 `json:"pack_size"`
	UOM          *string  `json:"uom"`
}

// BrandOrEmpty returns the brand or "" when absent.
func (a *Attributes) BrandOrEmpty() string {
	if a.Brand == nil {
		return ""
	}
	return *a.Brand
}

// ProductTypeOrEmpty returns the product type or "" when absent.
func (a *Attributes) ProductTypeOrEmpty() string {
	if a.ProductType == nil {
		return ""
	}
	return *a.ProductType
}

// Schema selects which attribute keys the extraction contract requires.
type Schema int

const (
	// SchemaFull expects brand, product_type, pack_quantity, pack_size, uom.
	SchemaFull Schema = iota

	// SchemaPackOnly is the reduced four-key variant for datasets without
	// case quantities; it omits pack_quantity.
	SchemaPackOnly
)

// keys returns the exact key set the schema allows.
func (s Schema) keys() map[string]bool {
	switch s {
	case SchemaPackOnly:
		return map[string]bool{
			"brand":        true,
			"product_type": true,
			"pack_size":    true,
			"uom":          true,
		}
	default:
		return map[string]bool{
			"brand":         true,
			"product_type":  true,
			"pack_quantity": true,
			"pack_size":     true,
			"uom":           true,
		}
	}
}

// decodeAttributes validates and decodes the model's JSON object into an
// Attributes record. The shape is strict: the payload must be a JSON object
// and every key must belong to the schema. Values are lenient: null or a
// mistyped value maps to nil rather than failing the whole extraction.
func decodeAttributes(jsonStr string, schema Schema) (*Attributes, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, types.WrapError(ErrResponseInvalid,
			"extraction response is not a JSON object", err)
	}

	allowed := schema.keys()
	for key := range raw {
		if !allowed[key] {
			return nil, types.NewError(ErrResponseInvalid,
				fmt.Sprintf("extraction response contains unexpected key %q", key))
		}
	}

	attrs := &Attributes{}
	attrs.Brand = decodeString(raw["brand"])
	attrs.ProductType = decodeString(raw["product_type"])
	attrs.PackSize = decodeFloat(raw["pack_size"])
	attrs.UOM = decodeString(raw["uom"])
	if schema != SchemaPackOnly {
		attrs.PackQuantity = decodeInt(raw["pack_quantity"])
	}

	return attrs, nil
}

func decodeString(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func decodeInt(raw json.RawMessage) *int {
	if raw == nil {
		return nil
	}
	var n *int
	if err := json.Unmarshal(raw, &n); err != nil {
		// Models occasionally emit whole numbers as floats ("8.0")
		f := decodeFloat(raw)
		if f != nil && *f == float64(int(*f)) {
			i := int(*f)
			return &i
		}
		return nil
	}
	return n
}

func decodeFloat(raw json.RawMessage) *float64 {
	if raw == nil {
		return nil
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}
