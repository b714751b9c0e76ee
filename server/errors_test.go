package server

import (
	"errors"
	"fmt"
	"testing"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/vault"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("amount", 0, "amount must be positive")
	testutil.AssertContains(t, err.Error(), "amount")
	testutil.AssertContains(t, err.Error(), "must be positive")
}

func TestServerErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewServerError("snapshot", cause, "failed to persist snapshot")

	testutil.AssertErrorIs(t, err, cause)
	testutil.AssertContains(t, err.Error(), "snapshot")
	testutil.AssertContains(t, err.Error(), "disk full")

	bare := NewServerError("start", nil, "boom")
	testutil.AssertNil(t, errors.Unwrap(bare))
}

func TestErrorToProtoError(t *testing.T) {
	testutil.AssertNil(t, ErrorToProtoError(nil))

	tests := []struct {
		name string
		err  error
		want pb.ErrorCode
	}{
		{"unauthorized", vault.ErrUnauthorized, pb.ErrorCode_UNAUTHORIZED},
		{"token not valid", vault.ErrTokenNotValid, pb.ErrorCode_TOKEN_NOT_VALID},
		{"locker exists", vault.ErrLockerExists, pb.ErrorCode_LOCKER_EXISTS},
		{"locker not found", vault.ErrLockerNotFound, pb.ErrorCode_LOCKER_NOT_FOUND},
		{"invalid state", vault.ErrInvalidState, pb.ErrorCode_INVALID_STATE},
		{"invalid amount", vault.ErrInvalidAmount, pb.ErrorCode_INVALID_AMOUNT},
		{"locker limit", vault.ErrLockerLimit, pb.ErrorCode_INVALID_AMOUNT},
		{"insufficient balance", vault.ErrInsufficientBalance, pb.ErrorCode_INSUFFICIENT_BALANCE},
		{"transfer failed", vault.ErrTransferFailed, pb.ErrorCode_TRANSFER_FAILED},
		{"wrapped transfer failed", fmt.Errorf("%w: bank down", vault.ErrTransferFailed), pb.ErrorCode_TRANSFER_FAILED},
		{"rate limited", ErrRateLimited, pb.ErrorCode_RATE_LIMITED},
		{"engine closed", vault.ErrEngineClosed, pb.ErrorCode_UNAVAILABLE},
		{"server not started", ErrServerNotStarted, pb.ErrorCode_UNAVAILABLE},
		{"invalid request", ErrInvalidRequest, pb.ErrorCode_INVALID_ARGUMENT},
		{"unknown", errors.New("mystery"), pb.ErrorCode_INTERNAL_ERROR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ErrorToProtoError(tt.err)
			testutil.RequireNotNil(t, detail)
			testutil.AssertEqual(t, tt.want, detail.Code)
		})
	}
}

func TestErrorToProtoError_ValidationDetails(t *testing.T) {
	detail := ErrorToProtoError(NewValidationError("token_id", "x", "too long"))
	testutil.RequireNotNil(t, detail)
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_ARGUMENT, detail.Code)
	testutil.AssertEqual(t, "token_id", detail.Details["field"])
	testutil.AssertEqual(t, "x", detail.Details["value"])
}

func TestErrorToProtoError_ServerDetails(t *testing.T) {
	detail := ErrorToProtoError(NewServerError("restore", errors.New("bad crc"), "snapshot corrupt"))
	testutil.RequireNotNil(t, detail)
	testutil.AssertEqual(t, pb.ErrorCode_INTERNAL_ERROR, detail.Code)
	testutil.AssertEqual(t, "restore", detail.Details["operation"])
	testutil.AssertEqual(t, "bad crc", detail.Details["cause"])
}

func TestErrorToProtoError_UnknownErrorHidesInternals(t *testing.T) {
	detail := ErrorToProtoError(errors.New("pq: connection refused on 10.0.0.3"))
	testutil.RequireNotNil(t, detail)
	testutil.AssertEqual(t, pb.ErrorCode_INTERNAL_ERROR, detail.Code)
	testutil.AssertFalse(t, detail.Message == "" || detail.Message == "pq: connection refused on 10.0.0.3",
		"internal error text must not leak to clients")
}
