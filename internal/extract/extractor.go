// Package extract turns raw free-text product descriptions into structured
// attribute records using a single LLM completion per description. It holds
// no state and never touches the store.
package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Armib20/iTradeDemo/internal/llm"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// systemPrompt is the fixed instruction for the full attribute schema.
// The rules mirror the supply-chain conventions the catalog uses: case/pack
// notation, singular product types, and an explicit null for anything the
// model cannot find.
const systemPrompt = `You are an expert supply chain data analyst. Your task is to extract and standardize
key attributes from a raw product description string. Many descriptions use a
case/pack format like '8/1LB' which means 8 units of 1 LB each.

Return a JSON object with the following keys:
'brand', 'product_type', 'pack_quantity', 'pack_size', and 'uom'.

- CRITICAL RULE: For 'product_type', always return the singular, base form.
  (e.g., "Strawberries" -> "Strawberry").
- Case/Pack Logic:
  - For "STRAWBERRY DRISCOLL 8/1LB", 'pack_quantity' is 8 and 'pack_size' is 1.
  - If no case format is present, 'pack_quantity' should be 1.
- If a value isn't found, the value should be null.`

// systemPromptPackOnly is the reduced variant for datasets that carry no
// case quantity.
const systemPromptPackOnly = `You are an expert supply chain data analyst. Your task is to extract and standardize
key attributes from a raw product description string.

Return a JSON object with the following keys:
'brand', 'product_type', 'pack_size', and 'uom'.

- CRITICAL RULE: For 'product_type', always return the singular, base form.
  (e.g., "Strawberries" -> "Strawberry").
- If a value isn't found, the value should be null.`

// Extractor wraps a text-completion request behind the extraction contract.
type Extractor struct {
	provider llm.Provider
	model    string
	schema   Schema
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSchema selects the attribute schema variant.
func WithSchema(schema Schema) Option {
	return func(e *Extractor) {
		e.schema = schema
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor that sends completions to provider using model.
func New(provider llm.Provider, model string, opts ...Option) *Extractor {
	e := &Extractor{
		provider: provider,
		model:    model,
		schema:   SchemaFull,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract issues one completion request for the description and returns the
// decoded attribute record. Failures are coded EXTRACT_* errors; they are
// reported, never retried here, and never fatal to the calling session.
func (e *Extractor) Extract(ctx context.Context, description string) (*Attributes, error) {
	if strings.TrimSpace(description) == "" {
		return nil, types.NewError(ErrEmptyDescription, "product description cannot be empty")
	}

	prompt := systemPrompt
	if e.schema == SchemaPackOnly {
		prompt = systemPromptPackOnly
	}

	req := llm.CompletionRequest{
		Model: e.model,
		Messages: []llm.Message{
			llm.NewSystemMessage(prompt),
			llm.NewUserMessage("Product Description: " + description),
		},
		JSONMode: true,
	}

	resp, err := e.provider.Complete(ctx, req)
	if err != nil {
		return nil, types.WrapError(ErrCompletionFailed, "attribute extraction failed", err)
	}

	jsonStr, err := llm.ExtractJSON(resp.Message.Content)
	if err != nil {
		return nil, types.WrapError(ErrResponseInvalid,
			"extraction response contained no JSON object", err)
	}

	attrs, err := decodeAttributes(jsonStr, e.schema)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("attributes extracted",
		"brand", attrs.BrandOrEmpty(),
		"product_type", attrs.ProductTypeOrEmpty(),
		"has_pack_quantity", attrs.PackQuantity != nil,
		"has_pack_size", attrs.PackSize != nil)

	return attrs, nil
}
