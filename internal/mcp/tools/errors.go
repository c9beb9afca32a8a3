package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/usestring/tripfinder-mcp/internal/reviews"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeStorageError = "STORAGE_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeTimeout      = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapStorageError converts an error from a store or persistence layer into
// a coded error. Validation failures become INVALID_INPUT.
func WrapStorageError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}

	switch {
	case errors.Is(err, types.ErrInvalidCriteria), errors.Is(err, reviews.ErrInvalidReview):
		return ErrInvalidInput(err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		coded = &CodedError{
			Code:    ErrCodeTimeout,
			Message: "operation canceled or timed out",
			Cause:   err,
		}
	default:
		coded = &CodedError{
			Code:    ErrCodeStorageError,
			Message: "persisting state failed",
			Cause:   err,
		}
	}

	slog.Warn("tripfinder storage error",
		slog.String("code", coded.Code),
		slog.String("error", err.Error()),
	)

	return coded
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
