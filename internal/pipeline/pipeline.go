// Package pipeline wires the categorization stages together: extract a raw
// attribute record from free text, normalize it against the controlled
// vocabularies, and match it against the canonical store. One Run is one
// synchronous attempt; every stage fails fast and independently, and no
// stage retries on behalf of the caller.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Armib20/iTradeDemo/internal/catalog"
	"github.com/Armib20/iTradeDemo/internal/extract"
	"github.com/Armib20/iTradeDemo/internal/match"
	"github.com/Armib20/iTradeDemo/internal/normalize"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// Pipeline error codes
const (
	ErrEmptyDescription types.ErrorCode = "PIPELINE_EMPTY_DESCRIPTION"
)

// RunResult carries every stage's output so a UI can show the extracted
// attributes, the standardized brand, and the match outcome separately.
type RunResult struct {
	Description string
	Raw         *extract.Attributes
	Normalized  *normalize.Normalized
	Match       *match.Result
}

// Pipeline runs the extract → normalize → match flow. Components are
// injected; the pipeline owns no connections and holds no mutable state
// across runs, so one Pipeline may serve concurrent sessions.
type Pipeline struct {
	extractor  *extract.Extractor
	normalizer *normalize.Normalizer
	matcher    *match.Matcher
	store      catalog.Store
	logger     *slog.Logger
}

// New creates a Pipeline from its stage components. The store is used for
// the known-brand vocabulary snapshot.
func New(extractor *extract.Extractor, normalizer *normalize.Normalizer, matcher *match.Matcher, store catalog.Store, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractor:  extractor,
		normalizer: normalizer,
		matcher:    matcher,
		store:      store,
		logger:     logger,
	}
}

// Run categorizes one product description.
//
// The brand vocabulary is loaded fresh per run; staleness across runs is an
// accepted trade-off since vocabulary changes are rare and out of band. A
// failure at any stage aborts the run: later stages are never invoked with
// partial input, and no stage result is ever guessed.
func (p *Pipeline) Run(ctx context.Context, description string) (*RunResult, error) {
	if strings.TrimSpace(description) == "" {
		return nil, types.NewError(ErrEmptyDescription, "product description cannot be empty")
	}

	result := &RunResult{Description: description}

	raw, err := p.extractor.Extract(ctx, description)
	if err != nil {
		return result, err
	}
	result.Raw = raw

	knownBrands, err := p.store.ListBrands(ctx)
	if err != nil {
		return result, err
	}

	normalized, err := p.normalizer.Normalize(raw, knownBrands)
	if err != nil {
		return result, err
	}
	result.Normalized = normalized

	matchResult, err := p.matcher.Match(ctx, normalized)
	if err != nil {
		return result, err
	}
	result.Match = matchResult

	p.logger.Info("categorization complete",
		"description", description,
		"brand", normalized.Brand,
		"product_type", normalized.ProductType,
		"outcome", matchResult.Outcome)

	return result, nil
}
