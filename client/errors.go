package client

import (
	"errors"
	"fmt"

	pb "github.com/jathurchan/vaultlock/proto"
)

// Common client errors
var (
	// ErrUnauthorized is returned when the caller lacks permission for the operation
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrTokenNotValid is returned when the token is not whitelisted
	ErrTokenNotValid = errors.New("token is not whitelisted")

	// ErrLockerExists is returned when the locker ID is already in use
	ErrLockerExists = errors.New("locker already exists")

	// ErrLockerNotFound is returned when the specified locker does not exist
	ErrLockerNotFound = errors.New("locker not found")

	// ErrInvalidState is returned when the locker's state forbids the operation
	ErrInvalidState = errors.New("locker is in the wrong state")

	// ErrInvalidAmount is returned when an amount or rate is out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrTransferFailed is returned when the underlying token transfer fails
	ErrTransferFailed = errors.New("token transfer failed")

	// ErrInvalidArgument is returned when request parameters are invalid
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRateLimited is returned when the request is rate limited
	ErrRateLimited = errors.New("request rate limited")

	// ErrUnavailable is returned when the service is unavailable
	ErrUnavailable = errors.New("service unavailable")

	// ErrInternal is returned on unexpected server-side failures
	ErrInternal = errors.New("internal server error")

	// ErrClientClosed is returned when attempting to use a closed client
	ErrClientClosed = errors.New("client is closed")
)

// ErrorFromCode converts a protobuf error code to a Go error.
func ErrorFromCode(code pb.ErrorCode) error {
	switch code {
	case pb.ErrorCode_UNAUTHORIZED:
		return ErrUnauthorized
	case pb.ErrorCode_TOKEN_NOT_VALID:
		return ErrTokenNotValid
	case pb.ErrorCode_LOCKER_EXISTS:
		return ErrLockerExists
	case pb.ErrorCode_LOCKER_NOT_FOUND:
		return ErrLockerNotFound
	case pb.ErrorCode_INVALID_STATE:
		return ErrInvalidState
	case pb.ErrorCode_INVALID_AMOUNT:
		return ErrInvalidAmount
	case pb.ErrorCode_INSUFFICIENT_BALANCE:
		return ErrInsufficientBalance
	case pb.ErrorCode_TRANSFER_FAILED:
		return ErrTransferFailed
	case pb.ErrorCode_INVALID_ARGUMENT:
		return ErrInvalidArgument
	case pb.ErrorCode_RATE_LIMITED:
		return ErrRateLimited
	case pb.ErrorCode_UNAVAILABLE:
		return ErrUnavailable
	case pb.ErrorCode_INTERNAL_ERROR:
		return ErrInternal
	default:
		return fmt.Errorf("unknown error code: %v", code)
	}
}

// ClientError wraps a server-reported error with additional client context.
type ClientError struct {
	Op      string            // Operation that failed
	Err     error             // Underlying error
	Code    pb.ErrorCode      // Error code from server
	Details map[string]string // Additional error details
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("client %s failed: %v (code: %v, details: %v)", e.Op, e.Err, e.Code, e.Details)
	}
	return fmt.Sprintf("client %s failed: %v (code: %v)", e.Op, e.Err, e.Code)
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error.
func (e *ClientError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewClientError creates a new ClientError.
func NewClientError(op string, err error, code pb.ErrorCode, details map[string]string) *ClientError {
	return &ClientError{
		Op:      op,
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// errorFromDetail converts a server ErrorDetail into a ClientError.
// Returns nil if the detail is nil or reports success.
func errorFromDetail(op string, detail *pb.ErrorDetail) error {
	if detail == nil || detail.Code == pb.ErrorCode_OK {
		return nil
	}
	return NewClientError(op, ErrorFromCode(detail.Code), detail.Code, detail.Details)
}

// errorCodeOf extracts the server error code from an error chain.
// Returns OK when the error carries no server code.
func errorCodeOf(err error) pb.ErrorCode {
	var cerr *ClientError
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return pb.ErrorCode_OK
}
