package graph

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Armib20/iTradeDemo/internal/types"
)

// MockCall represents a recorded method call on the mock graph client.
type MockCall struct {
	Method    string
	Cypher    string
	Params    map[string]any
	Timestamp time.Time
}

// MockClient is a mock implementation of Client for testing.
// It provides configurable responses and tracks all method calls for
// verification. Query responses are matched by Cypher substring so a test
// can stage different results for different queries.
type MockClient struct {
	mu sync.RWMutex

	connected    bool
	healthStatus types.HealthStatus
	calls        []MockCall

	// Configurable responses
	queryResults map[string]QueryResult // keyed by Cypher substring
	defaultRows  QueryResult
	queryError   error
	writeError   error
	connectError error
	closeError   error
}

// NewMockClient creates a new mock graph client for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		healthStatus: types.Healthy("mock graph client"),
		calls:        make([]MockCall, 0),
		queryResults: make(map[string]QueryResult),
	}
}

// StageResult registers a QueryResult returned for any query whose Cypher
// contains the given substring.
func (m *MockClient) StageResult(cypherContains string, result QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryResults[cypherContains] = result
}

// SetQueryError makes subsequent Query calls fail with err.
func (m *MockClient) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
}

// SetWriteError makes subsequent Write calls fail with err.
func (m *MockClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// SetConnectError makes subsequent Connect calls fail with err.
func (m *MockClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetHealth overrides the reported health status.
func (m *MockClient) SetHealth(status types.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthStatus = status
}

// Connect records the call and simulates connection.
func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Connect", "", nil)
	if m.connectError != nil {
		return m.connectError
	}
	m.connected = true
	return nil
}

// Close records the call and simulates disconnection.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Close", "", nil)
	if m.closeError != nil {
		return m.closeError
	}
	m.connected = false
	return nil
}

// Health returns the configured health status.
func (m *MockClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthStatus
}

// Query returns the staged result whose key is contained in the Cypher text.
func (m *MockClient) Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Query", cypher, params)

	if m.queryError != nil {
		return QueryResult{}, m.queryError
	}

	return m.lookup(cypher), nil
}

// Write behaves like Query but honors the staged write error.
func (m *MockClient) Write(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Write", cypher, params)

	if m.writeError != nil {
		return QueryResult{}, m.writeError
	}

	return m.lookup(cypher), nil
}

// Calls returns all recorded method calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallsTo returns recorded calls for a single method.
func (m *MockClient) CallsTo(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []MockCall
	for _, c := range m.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockClient) record(method, cypher string, params map[string]any) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Cypher:    cypher,
		Params:    params,
		Timestamp: time.Now(),
	})
}

func (m *MockClient) lookup(cypher string) QueryResult {
	for key, result := range m.queryResults {
		if key != "" && strings.Contains(cypher, key) {
			return result
		}
	}
	return m.defaultRows
}
