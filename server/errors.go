package server

import (
	"errors"
	"fmt"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/vault"
)

var (
	// ErrServerNotStarted indicates the server has not been started or is not yet ready.
	ErrServerNotStarted = errors.New("server: server not started or not ready")

	// ErrServerAlreadyStarted indicates an attempt to start an already running server.
	ErrServerAlreadyStarted = errors.New("server: server already started")

	// ErrServerStopped indicates the server has been stopped and cannot process requests.
	ErrServerStopped = errors.New("server: server stopped")

	// ErrRateLimited indicates the request was rejected due to rate limiting policies.
	ErrRateLimited = errors.New("server: request rate limited")

	// ErrShutdownTimeout indicates the server's graceful shutdown process timed out.
	ErrShutdownTimeout = errors.New("server: shutdown timed out")

	// ErrInvalidRequest indicates the request is malformed or contains invalid parameters
	// not caught by more specific validation errors.
	ErrInvalidRequest = errors.New("server: invalid request")
)

// ValidationError represents a request validation error with details about the specific field.
type ValidationError struct {
	Field   string // The name of the field that failed validation.
	Value   any    // The value of the field that caused the error.
	Message string // A descriptive message explaining the validation failure.
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Error implements the error interface, providing a structured validation error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("server: validation error for field '%s' (value: %v): %s", e.Field, e.Value, e.Message)
}

// ServerError represents a generic internal server error, potentially wrapping an underlying cause.
type ServerError struct {
	Operation string // The operation being performed when the error occurred.
	Cause     error  // The underlying error, if any.
	Message   string // A high-level message describing the server error.
}

// NewServerError creates a new ServerError.
func NewServerError(operation string, cause error, message string) *ServerError {
	return &ServerError{
		Operation: operation,
		Cause:     cause,
		Message:   message,
	}
}

// Error implements the error interface, providing context about the operation and cause.
func (e *ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("server: error during %s: %s (cause: %v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("server: error during %s: %s", e.Operation, e.Message)
}

// Unwrap provides compatibility with Go's errors.Is and errors.As by returning the cause.
func (e *ServerError) Unwrap() error {
	return e.Cause
}

// ErrorToProtoError converts Go errors to protobuf ErrorDetail messages.
// This function maps vault and server errors to appropriate ErrorCode values
// and provides structured error information for clients.
func ErrorToProtoError(err error) *pb.ErrorDetail {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	var serverErr *ServerError

	if errors.As(err, &validationErr) {
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_INVALID_ARGUMENT,
			Message: validationErr.Message,
			Details: map[string]string{
				"field": validationErr.Field,
				"value": fmt.Sprintf("%v", validationErr.Value),
			},
		}
	}
	if errors.As(err, &serverErr) {
		details := map[string]string{
			"operation": serverErr.Operation,
		}
		if serverErr.Cause != nil {
			details["cause"] = serverErr.Cause.Error()
		}
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_INTERNAL_ERROR,
			Message: serverErr.Message, // e.Error() is too verbose and may leak internals
			Details: details,
		}
	}

	switch {
	case errors.Is(err, vault.ErrUnauthorized):
		return &pb.ErrorDetail{Code: pb.ErrorCode_UNAUTHORIZED, Message: err.Error()}
	case errors.Is(err, vault.ErrTokenNotValid):
		return &pb.ErrorDetail{Code: pb.ErrorCode_TOKEN_NOT_VALID, Message: err.Error()}
	case errors.Is(err, vault.ErrLockerExists):
		return &pb.ErrorDetail{Code: pb.ErrorCode_LOCKER_EXISTS, Message: err.Error()}
	case errors.Is(err, vault.ErrLockerNotFound):
		return &pb.ErrorDetail{Code: pb.ErrorCode_LOCKER_NOT_FOUND, Message: err.Error()}
	case errors.Is(err, vault.ErrInvalidState):
		return &pb.ErrorDetail{Code: pb.ErrorCode_INVALID_STATE, Message: err.Error()}
	case errors.Is(err, vault.ErrInvalidAmount), errors.Is(err, vault.ErrLockerLimit):
		return &pb.ErrorDetail{Code: pb.ErrorCode_INVALID_AMOUNT, Message: err.Error()}
	case errors.Is(err, vault.ErrInsufficientBalance):
		return &pb.ErrorDetail{Code: pb.ErrorCode_INSUFFICIENT_BALANCE, Message: err.Error()}
	case errors.Is(err, vault.ErrTransferFailed):
		return &pb.ErrorDetail{Code: pb.ErrorCode_TRANSFER_FAILED, Message: err.Error()}
	case errors.Is(err, ErrRateLimited):
		return &pb.ErrorDetail{Code: pb.ErrorCode_RATE_LIMITED, Message: ErrRateLimited.Error()}
	case errors.Is(err, vault.ErrEngineClosed),
		errors.Is(err, ErrServerNotStarted),
		errors.Is(err, ErrServerStopped):
		return &pb.ErrorDetail{Code: pb.ErrorCode_UNAVAILABLE, Message: err.Error()}
	case errors.Is(err, ErrInvalidRequest):
		return &pb.ErrorDetail{Code: pb.ErrorCode_INVALID_ARGUMENT, Message: ErrInvalidRequest.Error()}
	case errors.Is(err, ErrServerAlreadyStarted), errors.Is(err, ErrShutdownTimeout):
		return &pb.ErrorDetail{Code: pb.ErrorCode_INTERNAL_ERROR, Message: err.Error()}
	default:
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_INTERNAL_ERROR,
			Message: "An unexpected internal error occurred.",
		}
	}
}
