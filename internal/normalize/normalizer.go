// Package normalize reconciles extracted attribute records against the
// controlled vocabularies of the canonical catalog: fuzzy matching for brand
// names and morphological lemmatization for product types.
package normalize

import (
	"fmt"
	"log/slog"

	"github.com/Armib20/iTradeDemo/internal/extract"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// Normalization error codes
const (
	ErrBrandNotConfident types.ErrorCode = "NORMALIZE_BRAND_NOT_CONFIDENT"
)

// DefaultBrandThreshold is the minimum fuzzy score a known brand must beat
// (strictly) to be accepted.
const DefaultBrandThreshold = 80

// Normalized is the only record type the matcher accepts: the brand is a
// member of the known-brand vocabulary, and the product type has been reduced
// to its singular lemma. An empty ProductType is a guaranteed non-match
// downstream.
type Normalized struct {
	Brand           string
	BrandConfidence int
	ProductType     string
	PackQuantity    *int
	PackSize        *float64
	UOM             *string
}

// Normalizer performs brand and product-type normalization. Construct once
// and reuse; the lemmatizer cache warms across calls.
type Normalizer struct {
	scorer     Scorer
	lemmatizer *Lemmatizer
	threshold  int
	logger     *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithScorer replaces the similarity scoring strategy.
func WithScorer(scorer Scorer) Option {
	return func(n *Normalizer) {
		n.scorer = scorer
	}
}

// WithThreshold overrides the brand acceptance threshold (exclusive).
func WithThreshold(threshold int) Option {
	return func(n *Normalizer) {
		n.threshold = threshold
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New creates a Normalizer with the WRatio scorer and the default threshold.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		scorer:     WRatioScorer{},
		lemmatizer: NewLemmatizer(),
		threshold:  DefaultBrandThreshold,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize reconciles raw against the known-brand vocabulary.
//
// The brand must fuzzy-match a known brand with a score strictly above the
// threshold, otherwise normalization fails with NORMALIZE_BRAND_NOT_CONFIDENT.
// The product type is lemmatized to its singular form; a missing type passes
// through as "". Pack fields are copied unchanged; a nil pack quantity is
// not re-defaulted here (defaulting is the extractor's contract).
func (n *Normalizer) Normalize(raw *extract.Attributes, knownBrands []string) (*Normalized, error) {
	brand, score, ok := BestMatch(n.scorer, raw.BrandOrEmpty(), knownBrands)
	if !ok || score <= n.threshold {
		return nil, types.NewError(ErrBrandNotConfident,
			fmt.Sprintf("no known brand scored above %d for %q", n.threshold, raw.BrandOrEmpty()))
	}

	lemma := n.lemmatizer.Lemmatize(raw.ProductTypeOrEmpty())

	n.logger.Debug("attributes normalized",
		"brand", brand,
		"brand_confidence", score,
		"product_type", lemma)

	return &Normalized{
		Brand:           brand,
		BrandConfidence: score,
		ProductType:     lemma,
		PackQuantity:    raw.PackQuantity,
		PackSize:        raw.PackSize,
		UOM:             raw.UOM,
	}, nil
}
