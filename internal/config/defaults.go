package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Armib20/iTradeDemo/internal/llm"
	"github.com/Armib20/iTradeDemo/internal/normalize"
)

// DefaultConfigPath returns the default config file location
// (~/.itrade/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "itrade.yaml"
	}
	return filepath.Join(home, ".itrade", "config.yaml")
}

// DefaultConfig returns the configuration used when no config file exists.
// The OpenAI API key is expected in OPENAI_API_KEY when not set here.
func DefaultConfig() *Config {
	return &Config{
		LLM: llm.ProviderConfig{
			Type:         llm.ProviderOpenAI,
			DefaultModel: "gpt-4o-mini",
		},
		Graph: GraphConfig{
			URI:               "bolt://localhost:7687",
			Username:          "neo4j",
			Password:          "password",
			ConnectionTimeout: 30 * time.Second,
		},
		Normalize: NormalizeConfig{
			BrandThreshold: normalize.DefaultBrandThreshold,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
