package server

import (
	"fmt"
	"strings"

	"github.com/jathurchan/vaultlock/logger"
	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/types"
)

// RequestValidator defines the interface for validating incoming gRPC requests
// to the VaultLock server. Each method should return an error if the request is invalid.
type RequestValidator interface {
	// ValidateCreateLockerRequest validates a CreateLockerRequest.
	ValidateCreateLockerRequest(req *pb.CreateLockerRequest) error

	// ValidateDepositLockerRequest validates a DepositLockerRequest.
	ValidateDepositLockerRequest(req *pb.DepositLockerRequest) error

	// ValidateCloseLockerRequest validates a CloseLockerRequest.
	ValidateCloseLockerRequest(req *pb.CloseLockerRequest) error

	// ValidateSetWinnerRequest validates a SetWinnerRequest.
	ValidateSetWinnerRequest(req *pb.SetWinnerRequest) error

	// ValidateWithdrawLockerRequest validates a WithdrawLockerRequest.
	ValidateWithdrawLockerRequest(req *pb.WithdrawLockerRequest) error

	// ValidateWithdrawRequest validates a WithdrawRequest.
	ValidateWithdrawRequest(req *pb.WithdrawRequest) error

	// ValidateWithdrawFeeRequest validates a WithdrawFeeRequest.
	ValidateWithdrawFeeRequest(req *pb.WithdrawFeeRequest) error

	// ValidateAddTokensRequest validates an AddTokensRequest.
	ValidateAddTokensRequest(req *pb.AddTokensRequest) error

	// ValidateSetFeeRequest validates a SetFeeRequest.
	ValidateSetFeeRequest(req *pb.SetFeeRequest) error

	// ValidateGetLockerRequest validates a GetLockerRequest.
	ValidateGetLockerRequest(req *pb.GetLockerRequest) error

	// ValidateGetLockersRequest validates a GetLockersRequest.
	ValidateGetLockersRequest(req *pb.GetLockersRequest) error

	// ValidateGetBalanceRequest validates a GetBalanceRequest.
	ValidateGetBalanceRequest(req *pb.GetBalanceRequest) error

	// ValidateGetFeeBalanceRequest validates a GetFeeBalanceRequest.
	ValidateGetFeeBalanceRequest(req *pb.GetFeeBalanceRequest) error

	// ValidateGetTokenRequest validates a GetTokenRequest.
	ValidateGetTokenRequest(req *pb.GetTokenRequest) error

	// ValidateHealthRequest validates a HealthRequest.
	ValidateHealthRequest(req *pb.HealthRequest) error
}

// requestValidator implements the RequestValidator interface.
type requestValidator struct {
	logger logger.Logger
}

// NewRequestValidator creates a new default request validator.
func NewRequestValidator(logger logger.Logger) RequestValidator {
	return &requestValidator{
		logger: logger,
	}
}

// ValidateCreateLockerRequest validates a create locker request.
func (v *requestValidator) ValidateCreateLockerRequest(req *pb.CreateLockerRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	if err := v.validateLockerID(req.LockerId); err != nil {
		return err
	}
	if err := v.validateTokenID(req.TokenId); err != nil {
		return err
	}
	return v.validateAmount(req.Amount)
}

// ValidateDepositLockerRequest validates a deposit request.
func (v *requestValidator) ValidateDepositLockerRequest(req *pb.DepositLockerRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	return v.validateLockerID(req.LockerId)
}

// ValidateCloseLockerRequest validates a close locker request.
func (v *requestValidator) ValidateCloseLockerRequest(req *pb.CloseLockerRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	return v.validateLockerID(req.LockerId)
}

// ValidateSetWinnerRequest validates a winner resolution request.
func (v *requestValidator) ValidateSetWinnerRequest(req *pb.SetWinnerRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	if err := v.validateLockerID(req.LockerId); err != nil {
		return err
	}
	return v.validateAccountID("winner_id", req.WinnerId)
}

// ValidateWithdrawLockerRequest validates a stake cancellation request.
func (v *requestValidator) ValidateWithdrawLockerRequest(req *pb.WithdrawLockerRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	if err := v.validateLockerID(req.LockerId); err != nil {
		return err
	}
	return v.validateAccountID("to_id", req.ToId)
}

// ValidateWithdrawRequest validates a balance withdrawal request.
func (v *requestValidator) ValidateWithdrawRequest(req *pb.WithdrawRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	if err := v.validateAccountID("to_id", req.ToId); err != nil {
		return err
	}
	if err := v.validateTokenID(req.TokenId); err != nil {
		return err
	}
	return v.validateAmount(req.Amount)
}

// ValidateWithdrawFeeRequest validates a fee withdrawal request.
func (v *requestValidator) ValidateWithdrawFeeRequest(req *pb.WithdrawFeeRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	if err := v.validateAccountID("to_id", req.ToId); err != nil {
		return err
	}
	if err := v.validateTokenID(req.TokenId); err != nil {
		return err
	}
	return v.validateAmount(req.Amount)
}

// ValidateAddTokensRequest validates a token whitelist request.
func (v *requestValidator) ValidateAddTokensRequest(req *pb.AddTokensRequest) error {
	if err := v.validateAccountID("caller_id", req.CallerId); err != nil {
		return err
	}
	if len(req.TokenIds) == 0 {
		return NewValidationError("token_ids", nil, "token_ids cannot be empty")
	}
	if len(req.TokenIds) > MaxTokensPerRequest {
		return NewValidationError("token_ids", len(req.TokenIds),
			fmt.Sprintf("cannot whitelist more than %d tokens per request", MaxTokensPerRequest))
	}
	for _, tok := range req.TokenIds {
		if err := v.validateTokenID(tok); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSetFeeRequest validates a fee rate update request.
func (v *requestValidator) ValidateSetFeeRequest(req *pb.SetFeeRequest) error {
	return v.validateAccountID("caller_id", req.CallerId)
}

// ValidateGetLockerRequest validates a get locker request.
func (v *requestValidator) ValidateGetLockerRequest(req *pb.GetLockerRequest) error {
	return v.validateLockerID(req.LockerId)
}

// ValidateGetLockersRequest validates a locker listing request.
func (v *requestValidator) ValidateGetLockersRequest(req *pb.GetLockersRequest) error {
	if req.Limit < 0 {
		return NewValidationError("limit", req.Limit, "limit cannot be negative")
	}
	if req.Limit > MaxPageLimit {
		return NewValidationError("limit", req.Limit,
			fmt.Sprintf("limit cannot exceed %d", MaxPageLimit))
	}
	if req.Offset < 0 {
		return NewValidationError("offset", req.Offset, "offset cannot be negative")
	}
	if req.Filter != nil {
		if err := v.validateLockerFilter(req.Filter); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGetBalanceRequest validates a balance query.
func (v *requestValidator) ValidateGetBalanceRequest(req *pb.GetBalanceRequest) error {
	if err := v.validateAccountID("account_id", req.AccountId); err != nil {
		return err
	}
	return v.validateTokenID(req.TokenId)
}

// ValidateGetFeeBalanceRequest validates a fee balance query.
func (v *requestValidator) ValidateGetFeeBalanceRequest(req *pb.GetFeeBalanceRequest) error {
	return v.validateTokenID(req.TokenId)
}

// ValidateGetTokenRequest validates a token whitelist query.
func (v *requestValidator) ValidateGetTokenRequest(req *pb.GetTokenRequest) error {
	return v.validateTokenID(req.TokenId)
}

// ValidateHealthRequest validates a HealthRequest.
func (v *requestValidator) ValidateHealthRequest(req *pb.HealthRequest) error {
	// No specific validation rules for HealthRequest fields beyond what gRPC does.
	return nil
}

func (v *requestValidator) validateAccountID(field, accountID string) error {
	if accountID == "" {
		return NewValidationError(field, accountID, fmt.Sprintf("%s cannot be empty", field))
	}
	if len(accountID) > MaxAccountIDLength {
		return NewValidationError(field, accountID,
			fmt.Sprintf(ErrMsgInvalidAccountID, field, MaxAccountIDLength))
	}
	if strings.ContainsAny(accountID, "\x00\n\r\t") {
		return NewValidationError(field, accountID,
			fmt.Sprintf("%s contains invalid characters (null, newline, tab)", field))
	}
	return nil
}

func (v *requestValidator) validateLockerID(lockerID []byte) error {
	if len(lockerID) != types.LockerIDSize {
		return NewValidationError("locker_id", fmt.Sprintf("len:%d", len(lockerID)),
			fmt.Sprintf(ErrMsgInvalidLockerID, types.LockerIDSize))
	}
	id, err := types.LockerIDFromBytes(lockerID)
	if err != nil {
		return NewValidationError("locker_id", fmt.Sprintf("len:%d", len(lockerID)), err.Error())
	}
	if id.IsZero() {
		return NewValidationError("locker_id", id.String(), "locker_id cannot be all zeros")
	}
	return nil
}

func (v *requestValidator) validateTokenID(tokenID string) error {
	if tokenID == "" {
		return NewValidationError("token_id", tokenID, "token_id cannot be empty")
	}
	if len(tokenID) > MaxTokenIDLength {
		return NewValidationError("token_id", tokenID,
			fmt.Sprintf(ErrMsgInvalidTokenID, MaxTokenIDLength))
	}
	if strings.ContainsAny(tokenID, "\x00\n\r\t") {
		return NewValidationError("token_id", tokenID,
			"token_id contains invalid characters (null, newline, tab)")
	}
	return nil
}

func (v *requestValidator) validateAmount(amount uint64) error {
	if amount == 0 {
		return NewValidationError("amount", amount, "amount must be positive")
	}
	return nil
}

func (v *requestValidator) validateLockerFilter(filter *pb.LockerFilter) error {
	if filter.State != pb.LockerState_LOCKER_STATE_UNSPECIFIED {
		if _, ok := pb.LockerState_name[int32(filter.State)]; !ok {
			return NewValidationError("filter.state", filter.State, "unknown locker state")
		}
	}
	if filter.TokenId != "" && len(filter.TokenId) > MaxTokenIDLength {
		return NewValidationError("filter.token_id", filter.TokenId,
			fmt.Sprintf("token_id too long (max %d)", MaxTokenIDLength))
	}
	if filter.CreatorId != "" && len(filter.CreatorId) > MaxAccountIDLength {
		return NewValidationError("filter.creator_id", filter.CreatorId,
			fmt.Sprintf("creator_id too long (max %d)", MaxAccountIDLength))
	}
	return nil
}
