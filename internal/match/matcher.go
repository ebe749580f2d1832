// Package match applies the exact-match precision policy against the
// canonical product store. The predicate requires exact equality on brand,
// product type, pack quantity, and pack size; UOM is not part of the
// predicate. That exclusion is a known precision gap: two products identical
// in all four fields but differing in unit surface as Ambiguous rather than
// being told apart.
package match

import (
	"context"
	"log/slog"

	"github.com/Armib20/iTradeDemo/internal/catalog"
	"github.com/Armib20/iTradeDemo/internal/normalize"
)

// Outcome is the three-valued terminal result of a match attempt.
// Ambiguous and NoMatch are not errors; both require human judgment and must
// stay distinguishable from each other and from hard failures.
type Outcome string

const (
	// OutcomeMatched means exactly one canonical product satisfied the predicate.
	OutcomeMatched Outcome = "matched"

	// OutcomeAmbiguous means two or more products satisfied the predicate.
	// This signals a data-quality problem in the canonical store and is
	// never auto-resolved.
	OutcomeAmbiguous Outcome = "ambiguous"

	// OutcomeNoMatch means no product satisfied the predicate.
	OutcomeNoMatch Outcome = "no_match"
)

// Result is the outcome of one match attempt. Product is set only for
// OutcomeMatched; Candidates carries the colliding products for
// OutcomeAmbiguous so a human can inspect them.
type Result struct {
	Outcome    Outcome
	Product    *catalog.Product
	Candidates []catalog.Product
}

// Matcher runs the exact-match predicate against a canonical store.
type Matcher struct {
	store  catalog.Store
	logger *slog.Logger
}

// New creates a Matcher over the given store.
func New(store catalog.Store, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{store: store, logger: logger}
}

// Match finds the canonical product for a normalized record.
//
// A record without a product type, pack quantity, or pack size can never
// satisfy the predicate, so it short-circuits to NoMatch without querying;
// the store is only consulted for fully populated records. For a fixed store
// state and record the result is deterministic.
func (m *Matcher) Match(ctx context.Context, record *normalize.Normalized) (*Result, error) {
	if record.Brand == "" || record.ProductType == "" ||
		record.PackQuantity == nil || record.PackSize == nil {
		return &Result{Outcome: OutcomeNoMatch}, nil
	}

	candidates, err := m.store.FindMatch(ctx, record.Brand, record.ProductType,
		*record.PackQuantity, *record.PackSize)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return &Result{Outcome: OutcomeNoMatch}, nil

	case 1:
		return &Result{
			Outcome: OutcomeMatched,
			Product: &candidates[0],
		}, nil

	default:
		m.logger.Warn("ambiguous match in canonical store",
			"brand", record.Brand,
			"product_type", record.ProductType,
			"candidates", len(candidates))
		return &Result{
			Outcome:    OutcomeAmbiguous,
			Candidates: candidates,
		}, nil
	}
}
