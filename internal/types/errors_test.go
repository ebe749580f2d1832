package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestITradeErrorFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      *ITradeError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewError(STORE_QUERY_FAILED, "query failed"),
			expected: "[STORE_QUERY_FAILED] query failed",
		},
		{
			name:     "with cause",
			err:      WrapError(GRAPH_CONNECTION_FAILED, "connect failed", errors.New("refused")),
			expected: "[GRAPH_CONNECTION_FAILED] connect failed: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestITradeErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapError(STORE_SEED_FAILED, "seed failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestITradeErrorIsMatchesByCode(t *testing.T) {
	err := NewError(GRAPH_QUERY_FAILED, "one message")
	target := NewError(GRAPH_QUERY_FAILED, "another message")

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, NewError(GRAPH_WRITE_FAILED, "different code")))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "direct error",
			err:      NewError(CONFIG_LOAD_FAILED, "load failed"),
			expected: CONFIG_LOAD_FAILED,
		},
		{
			name:     "wrapped in fmt chain",
			err:      fmt.Errorf("outer: %w", NewError(STORE_RESULT_INVALID, "bad row")),
			expected: STORE_RESULT_INVALID,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestRetryableFlag(t *testing.T) {
	assert.False(t, NewError(STORE_QUERY_FAILED, "m").Retryable)
	assert.True(t, NewRetryableError(GRAPH_CONNECTION_FAILED, "m").Retryable)
}

func TestHealthStatusConstructors(t *testing.T) {
	healthy := Healthy("ok")
	assert.Equal(t, HealthStateHealthy, healthy.State)
	assert.True(t, healthy.IsHealthy())
	assert.False(t, healthy.IsUnhealthy())
	assert.False(t, healthy.CheckedAt.IsZero())

	unhealthy := Unhealthy("down")
	assert.True(t, unhealthy.IsUnhealthy())
	assert.Equal(t, "down", unhealthy.Message)

	degraded := Degraded("slow")
	assert.Equal(t, HealthStateDegraded, degraded.State)
}

func TestHealthStateUnmarshalRejectsUnknown(t *testing.T) {
	var s HealthState
	err := s.UnmarshalJSON([]byte(`"sideways"`))
	require.Error(t, err)

	err = s.UnmarshalJSON([]byte(`"degraded"`))
	require.NoError(t, err)
	assert.Equal(t, HealthStateDegraded, s)
}
