package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Armib20/iTradeDemo/internal/extract"
	"github.com/Armib20/iTradeDemo/internal/normalize"
	"github.com/Armib20/iTradeDemo/internal/types"
)

// Exit code constants for the CLI. NoMatch and Ambiguous are terminal
// pipeline outcomes, not failures, but scripts need to tell them apart.
const (
	// ExitSuccess indicates successful execution (a match, for categorize)
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitNoMatch indicates categorization completed with no canonical match
	ExitNoMatch = 2
	// ExitAmbiguous indicates multiple canonical products matched
	ExitAmbiguous = 3
	// ExitTimeout indicates the operation timed out
	ExitTimeout = 4
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 5
	// ExitConfigError indicates a configuration error
	ExitConfigError = 10
	// ExitExtractionError indicates the LLM extraction stage failed
	ExitExtractionError = 11
	// ExitStoreError indicates a graph/store connectivity or query error
	ExitStoreError = 12
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// HandleError handles an error and returns the appropriate exit code.
// It also prints the error message to the command's error output.
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		cmd.PrintErrln("Operation timed out")
		return ExitTimeout
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		cmd.PrintErrln("Error:", cliErr.Message)
		if cliErr.Cause != nil && IsVerbose() {
			cmd.PrintErrln("Cause:", cliErr.Cause)
		}
		return cliErr.Code
	}

	var itErr *types.ITradeError
	if errors.As(err, &itErr) {
		cmd.PrintErrln("Error:", itErr.Error())
		if itErr.Retryable {
			cmd.PrintErrln("This error is transient; resubmitting may succeed.")
		}
		return mapErrorCodeToExitCode(itErr.Code)
	}

	cmd.PrintErrln("Error:", err)
	return ExitError
}

func mapErrorCodeToExitCode(code types.ErrorCode) int {
	switch code {
	case types.CONFIG_LOAD_FAILED, types.CONFIG_PARSE_FAILED, types.CONFIG_VALIDATION_FAILED:
		return ExitConfigError

	case extract.ErrEmptyDescription, extract.ErrCompletionFailed, extract.ErrResponseInvalid:
		return ExitExtractionError

	case normalize.ErrBrandNotConfident:
		// Not confident is a normal outcome for unknown brands
		return ExitNoMatch

	case types.GRAPH_CONNECTION_FAILED, types.GRAPH_CONNECTION_CLOSED,
		types.GRAPH_QUERY_FAILED, types.GRAPH_WRITE_FAILED,
		types.STORE_QUERY_FAILED, types.STORE_RESULT_INVALID, types.STORE_SEED_FAILED:
		return ExitStoreError

	default:
		return ExitError
	}
}
