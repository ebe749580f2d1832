package config

import (
	"fmt"

	"github.com/Armib20/iTradeDemo/internal/types"
)

// Validator validates a loaded configuration.
type Validator interface {
	Validate(cfg *Config) error
}

// validator implements Validator.
type validator struct{}

// NewValidator creates a Validator.
func NewValidator() Validator {
	return &validator{}
}

// Validate checks the configuration for values that would fail later in a
// harder-to-diagnose place.
func (v *validator) Validate(cfg *Config) error {
	if cfg == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "configuration is nil")
	}

	if err := cfg.LLM.Validate(); err != nil {
		return types.WrapError(types.CONFIG_VALIDATION_FAILED, "llm section invalid", err)
	}

	if cfg.Graph.URI == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "graph.uri cannot be empty")
	}
	if cfg.Graph.Username == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "graph.username cannot be empty")
	}
	if cfg.Graph.Password == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "graph.password cannot be empty")
	}

	if cfg.Normalize.BrandThreshold < 0 || cfg.Normalize.BrandThreshold > 100 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("normalize.brand_threshold must be in [0,100], got %d",
				cfg.Normalize.BrandThreshold))
	}

	switch cfg.Logging.Format {
	case "", "text", "json":
	default:
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("logging.format must be text or json, got %q", cfg.Logging.Format))
	}

	return nil
}
