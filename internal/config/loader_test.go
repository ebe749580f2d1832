package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Armib20/iTradeDemo/internal/llm"
	"github.com/Armib20/iTradeDemo/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
llm:
  type: openai
  default_model: gpt-4o-mini
graph:
  uri: bolt://graph.internal:7687
  username: neo4j
  password: s3cret
normalize:
  brand_threshold: 85
logging:
  level: debug
  format: json
`)

	cfg, err := NewLoader(NewValidator()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Type)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.DefaultModel)
	assert.Equal(t, "bolt://graph.internal:7687", cfg.Graph.URI)
	assert.Equal(t, "s3cret", cfg.Graph.Password)
	assert.Equal(t, 85, cfg.Normalize.BrandThreshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadAppliesDefaultsForOmittedSections(t *testing.T) {
	path := writeConfig(t, `
graph:
  password: s3cret
`)

	cfg, err := NewLoader(NewValidator()).Load(path)
	require.NoError(t, err)

	// Omitted fields keep their defaults
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Type)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "neo4j", cfg.Graph.Username)
	assert.Equal(t, 80, cfg.Normalize.BrandThreshold)
}

func TestLoadInterpolatesEnvVars(t *testing.T) {
	t.Setenv("TEST_ITRADE_GRAPH_PASSWORD", "from-env")
	t.Setenv("TEST_ITRADE_API_KEY", "sk-env")

	path := writeConfig(t, `
llm:
  type: openai
  api_key: ${TEST_ITRADE_API_KEY}
  default_model: gpt-4o-mini
graph:
  password: ${TEST_ITRADE_GRAPH_PASSWORD}
`)

	cfg, err := NewLoader(NewValidator()).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Graph.Password)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
}

func TestLoadUnsetEnvVarFailsValidation(t *testing.T) {
	path := writeConfig(t, `
graph:
  password: ${TEST_ITRADE_UNSET_VAR}
`)

	// ${VAR} interpolates to "" and clears the default, which validation
	// then reports against graph.password
	_, err := NewLoader(NewValidator()).Load(path)
	require.Error(t, err)
	assert.Equal(t, types.CONFIG_VALIDATION_FAILED, types.CodeOf(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(NewValidator()).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, types.CONFIG_LOAD_FAILED, types.CodeOf(err))
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := NewLoader(NewValidator()).LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "graph: [not: a: mapping")

	_, err := NewLoader(NewValidator()).Load(path)
	require.Error(t, err)
	assert.Equal(t, types.CONFIG_LOAD_FAILED, types.CodeOf(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults pass",
			mutate: func(c *Config) {},
		},
		{
			name:    "nil config",
			mutate:  nil,
			wantErr: true,
		},
		{
			name:    "bad provider type",
			mutate:  func(c *Config) { c.LLM.Type = "palm" },
			wantErr: true,
		},
		{
			name:    "empty graph uri",
			mutate:  func(c *Config) { c.Graph.URI = "" },
			wantErr: true,
		},
		{
			name:    "empty graph password",
			mutate:  func(c *Config) { c.Graph.Password = "" },
			wantErr: true,
		},
		{
			name:    "threshold above range",
			mutate:  func(c *Config) { c.Normalize.BrandThreshold = 101 },
			wantErr: true,
		},
		{
			name:    "threshold below range",
			mutate:  func(c *Config) { c.Normalize.BrandThreshold = -1 },
			wantErr: true,
		},
		{
			name:    "unknown logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:   "empty logging format allowed",
			mutate: func(c *Config) { c.Logging.Format = "" },
		},
	}

	validator := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *Config
			if tt.mutate != nil {
				cfg = DefaultConfig()
				tt.mutate(cfg)
			}

			err := validator.Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, types.CONFIG_VALIDATION_FAILED, types.CodeOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGraphConfigClientConfig(t *testing.T) {
	gc := GraphConfig{
		URI:               "bolt://graph.internal:7687",
		Password:          "s3cret",
		ConnectionTimeout: 5 * time.Second,
	}

	cc := gc.ClientConfig()
	assert.Equal(t, "bolt://graph.internal:7687", cc.URI)
	assert.Equal(t, "s3cret", cc.Password)
	assert.Equal(t, 5*time.Second, cc.ConnectionTimeout)

	// Unset fields fall back to driver defaults
	assert.Equal(t, "neo4j", cc.Username)
	assert.Equal(t, 50, cc.MaxConnectionPoolSize)
}
