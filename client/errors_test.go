package client

import (
	"errors"
	"testing"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
)

func TestErrorFromCode(t *testing.T) {
	tests := []struct {
		code pb.ErrorCode
		want error
	}{
		{pb.ErrorCode_UNAUTHORIZED, ErrUnauthorized},
		{pb.ErrorCode_TOKEN_NOT_VALID, ErrTokenNotValid},
		{pb.ErrorCode_LOCKER_EXISTS, ErrLockerExists},
		{pb.ErrorCode_LOCKER_NOT_FOUND, ErrLockerNotFound},
		{pb.ErrorCode_INVALID_STATE, ErrInvalidState},
		{pb.ErrorCode_INVALID_AMOUNT, ErrInvalidAmount},
		{pb.ErrorCode_INSUFFICIENT_BALANCE, ErrInsufficientBalance},
		{pb.ErrorCode_TRANSFER_FAILED, ErrTransferFailed},
		{pb.ErrorCode_INVALID_ARGUMENT, ErrInvalidArgument},
		{pb.ErrorCode_RATE_LIMITED, ErrRateLimited},
		{pb.ErrorCode_UNAVAILABLE, ErrUnavailable},
		{pb.ErrorCode_INTERNAL_ERROR, ErrInternal},
	}
	for _, tt := range tests {
		testutil.AssertErrorIs(t, ErrorFromCode(tt.code), tt.want)
	}

	err := ErrorFromCode(pb.ErrorCode(255))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "unknown error code")
}

func TestClientError(t *testing.T) {
	err := NewClientError("CreateLocker", ErrLockerExists, pb.ErrorCode_LOCKER_EXISTS,
		map[string]string{"locker_id": "ab"})

	testutil.AssertErrorIs(t, err, ErrLockerExists)
	testutil.AssertEqual(t, ErrLockerExists, errors.Unwrap(err))
	testutil.AssertContains(t, err.Error(), "CreateLocker")
	testutil.AssertContains(t, err.Error(), "locker_id")

	bare := NewClientError("Withdraw", ErrInsufficientBalance, pb.ErrorCode_INSUFFICIENT_BALANCE, nil)
	testutil.AssertContains(t, bare.Error(), "Withdraw")
}

func TestErrorFromDetail(t *testing.T) {
	testutil.AssertNil(t, errorFromDetail("op", nil))
	testutil.AssertNil(t, errorFromDetail("op", &pb.ErrorDetail{Code: pb.ErrorCode_OK}))

	err := errorFromDetail("DepositLocker", &pb.ErrorDetail{
		Code:    pb.ErrorCode_INVALID_STATE,
		Message: "locker is closed",
	})
	testutil.RequireError(t, err)
	testutil.AssertErrorIs(t, err, ErrInvalidState)
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_STATE, errorCodeOf(err))
}

func TestErrorCodeOf(t *testing.T) {
	testutil.AssertEqual(t, pb.ErrorCode_OK, errorCodeOf(errors.New("plain")))
	testutil.AssertEqual(t, pb.ErrorCode_OK, errorCodeOf(nil))

	wrapped := NewClientError("op", ErrRateLimited, pb.ErrorCode_RATE_LIMITED, nil)
	testutil.AssertEqual(t, pb.ErrorCode_RATE_LIMITED, errorCodeOf(wrapped))
}
