package config

import (
	"time"

	"github.com/Armib20/iTradeDemo/internal/graph"
	"github.com/Armib20/iTradeDemo/internal/llm"
)

// Config is the root configuration for the categorization service.
type Config struct {
	LLM       llm.ProviderConfig `mapstructure:"llm" yaml:"llm"`
	Graph     GraphConfig        `mapstructure:"graph" yaml:"graph"`
	Normalize NormalizeConfig    `mapstructure:"normalize" yaml:"normalize"`
	Logging   LoggingConfig      `mapstructure:"logging" yaml:"logging"`
}

// GraphConfig contains Neo4j connection configuration.
type GraphConfig struct {
	URI                   string        `mapstructure:"uri" yaml:"uri"`
	Username              string        `mapstructure:"username" yaml:"username"`
	Password              string        `mapstructure:"password" yaml:"password"`
	Database              string        `mapstructure:"database" yaml:"database"`
	MaxConnectionPoolSize int           `mapstructure:"max_connection_pool_size" yaml:"max_connection_pool_size"`
	ConnectionTimeout     time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout"`
}

// ClientConfig converts the section into a graph.ClientConfig.
func (g GraphConfig) ClientConfig() graph.ClientConfig {
	cfg := graph.DefaultConfig()
	if g.URI != "" {
		cfg.URI = g.URI
	}
	if g.Username != "" {
		cfg.Username = g.Username
	}
	if g.Password != "" {
		cfg.Password = g.Password
	}
	cfg.Database = g.Database
	if g.MaxConnectionPoolSize > 0 {
		cfg.MaxConnectionPoolSize = g.MaxConnectionPoolSize
	}
	if g.ConnectionTimeout > 0 {
		cfg.ConnectionTimeout = g.ConnectionTimeout
	}
	return cfg
}

// NormalizeConfig contains vocabulary normalization settings.
type NormalizeConfig struct {
	// BrandThreshold is the fuzzy score a known brand must exceed
	// (strictly) to be accepted. Range 0-100.
	BrandThreshold int `mapstructure:"brand_threshold" yaml:"brand_threshold"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}
