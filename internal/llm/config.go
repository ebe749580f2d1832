package llm

import (
	"fmt"

	"github.com/Armib20/iTradeDemo/internal/types"
)

// ProviderType represents the type of LLM provider.
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOllama    ProviderType = "ollama"
	ProviderMock      ProviderType = "mock"
)

// IsValid checks if the provider type is a known value.
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderOpenAI, ProviderAnthropic, ProviderOllama, ProviderMock:
		return true
	default:
		return false
	}
}

// ProviderConfig contains configuration for a specific LLM provider.
// It includes authentication credentials, the API endpoint, and the model
// used for attribute extraction.
type ProviderConfig struct {
	Type         ProviderType `mapstructure:"type" yaml:"type"`
	APIKey       string       `mapstructure:"api_key" yaml:"api_key"`
	BaseURL      string       `mapstructure:"base_url" yaml:"base_url"`
	DefaultModel string       `mapstructure:"default_model" yaml:"default_model"`
}

// Validate performs validation on the ProviderConfig.
// API keys may come from the environment at construction time, so only the
// type and model are required here.
func (p *ProviderConfig) Validate() error {
	if p.Type == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "provider type cannot be empty")
	}
	if !p.Type.IsValid() {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown provider type '%s'", p.Type))
	}
	if p.DefaultModel == "" && p.Type != ProviderMock {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "default_model cannot be empty")
	}
	return nil
}
