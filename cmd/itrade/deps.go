package main

import (
	"context"

	"github.com/Armib20/iTradeDemo/cmd/itrade/internal"
	"github.com/Armib20/iTradeDemo/internal/catalog"
	"github.com/Armib20/iTradeDemo/internal/extract"
	"github.com/Armib20/iTradeDemo/internal/graph"
	"github.com/Armib20/iTradeDemo/internal/llm"
	"github.com/Armib20/iTradeDemo/internal/llm/providers"
	"github.com/Armib20/iTradeDemo/internal/match"
	"github.com/Armib20/iTradeDemo/internal/normalize"
	"github.com/Armib20/iTradeDemo/internal/pipeline"
)

// connectGraph creates and connects the Neo4j client from configuration.
// The returned cleanup func closes the connection.
func connectGraph(ctx context.Context) (graph.Client, func(), error) {
	client, err := graph.NewNeo4jClient(cfg.Graph.ClientConfig())
	if err != nil {
		return nil, nil, err
	}

	if err := client.Connect(ctx); err != nil {
		return nil, nil, internal.WrapError(internal.ExitStoreError,
			"could not connect to Neo4j; check graph credentials in the config", err)
	}

	cleanup := func() {
		_ = client.Close(context.Background())
	}
	return client, cleanup, nil
}

// newProvider creates the configured LLM provider.
func newProvider() (llm.Provider, error) {
	provider, err := providers.NewProvider(cfg.LLM)
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError,
			"could not initialize LLM provider", err)
	}
	return provider, nil
}

// newPipeline assembles the categorization pipeline over a connected store.
func newPipeline(store catalog.Store) (*pipeline.Pipeline, error) {
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}

	extractor := extract.New(provider, cfg.LLM.DefaultModel,
		extract.WithLogger(logger))

	normalizer := normalize.New(
		normalize.WithThreshold(cfg.Normalize.BrandThreshold),
		normalize.WithLogger(logger))

	matcher := match.New(store, logger)

	return pipeline.New(extractor, normalizer, matcher, store, logger), nil
}
