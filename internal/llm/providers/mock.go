package providers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Armib20/iTradeDemo/internal/llm"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// MockCall represents a recorded call to the mock provider
type MockCall struct {
	Request llm.CompletionRequest
}

// MockProvider implements llm.Provider for testing. It replays a fixed
// sequence of canned responses and records every request for verification.
type MockProvider struct {
	mu            sync.RWMutex
	responses     []string
	responseIndex int
	calls         []MockCall
	completeError error
}

// NewMockProvider creates a new mock provider that cycles through responses
func NewMockProvider(responses []string) *MockProvider {
	return &MockProvider{
		responses:     responses,
		responseIndex: 0,
		calls:         make([]MockCall, 0),
	}
}

// SetCompleteError makes subsequent Complete calls fail with err
func (p *MockProvider) SetCompleteError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completeError = err
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// Models returns mock model information
func (p *MockProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	return []llm.ModelInfo{
		{
			Name:          "mock-model",
			ContextWindow: 4096,
			MaxOutput:     2048,
			Features:      []string{"chat", "json"},
		},
	}, nil
}

// Complete generates a completion from the canned response list
func (p *MockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, MockCall{Request: req})

	if p.completeError != nil {
		return nil, p.completeError
	}

	if len(p.responses) == 0 {
		return nil, llm.NewCompletionError("mock provider has no responses configured", nil)
	}

	response := p.responses[p.responseIndex%len(p.responses)]
	p.responseIndex++

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        req.Model,
		Message:      llm.NewAssistantMessage(response),
		FinishReason: llm.FinishReasonStop,
	}, nil
}

// Health reports the mock as healthy unless an error is configured
func (p *MockProvider) Health(ctx context.Context) types.HealthStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.completeError != nil {
		return types.Unhealthy(p.completeError.Error())
	}
	return types.Healthy("mock provider")
}

// Calls returns all recorded calls
func (p *MockProvider) Calls() []MockCall {
	p.mu.RLock()
	defer p.mu.RUnlock()

	calls := make([]MockCall, len(p.calls))
	copy(calls, p.calls)
	return calls
}

// CallCount returns the number of Complete calls received
func (p *MockProvider) CallCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.calls)
}
