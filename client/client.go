package client

import (
	"context"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/types"
)

// vaultLockClient implements the participant-facing VaultLockClient.
type vaultLockClient struct {
	base baseClient
}

// NewVaultLockClient creates a client for participant operations against the
// configured VaultLock endpoints.
func NewVaultLockClient(config Config) (VaultLockClient, error) {
	base, err := newBaseClient(config)
	if err != nil {
		return nil, err
	}
	return &vaultLockClient{base: base}, nil
}

// CreateLocker creates a new locker and stakes the first deposit.
func (c *vaultLockClient) CreateLocker(ctx context.Context, req *CreateLockerRequest) (*types.LockerInfo, error) {
	if req == nil {
		return nil, ErrInvalidArgument
	}

	var resp *pb.LockerResponse
	err := c.base.executeWithRetry(ctx, "CreateLocker", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.CreateLocker(ctx, &pb.CreateLockerRequest{
			CallerId: string(req.CallerID),
			LockerId: req.LockerID[:],
			TokenId:  string(req.Token),
			Amount:   req.Amount,
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("CreateLocker", r.Error); e != nil {
			return e
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lockerFromProto(resp.Locker)
}

// DepositLocker joins an open locker by staking its fixed deposit.
func (c *vaultLockClient) DepositLocker(ctx context.Context, req *DepositLockerRequest) (*types.LockerInfo, error) {
	if req == nil {
		return nil, ErrInvalidArgument
	}

	var resp *pb.LockerResponse
	err := c.base.executeWithRetry(ctx, "DepositLocker", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.DepositLocker(ctx, &pb.DepositLockerRequest{
			CallerId: string(req.CallerID),
			LockerId: req.LockerID[:],
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("DepositLocker", r.Error); e != nil {
			return e
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lockerFromProto(resp.Locker)
}

// WithdrawLocker cancels one of the caller's stakes in an open locker.
func (c *vaultLockClient) WithdrawLocker(ctx context.Context, req *WithdrawLockerRequest) (*WithdrawLockerResult, error) {
	if req == nil {
		return nil, ErrInvalidArgument
	}

	var resp *pb.WithdrawLockerResponse
	err := c.base.executeWithRetry(ctx, "WithdrawLocker", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.WithdrawLocker(ctx, &pb.WithdrawLockerRequest{
			CallerId: string(req.CallerID),
			LockerId: req.LockerID[:],
			ToId:     string(req.To),
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("WithdrawLocker", r.Error); e != nil {
			return e
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	locker, err := lockerFromProto(resp.Locker)
	if err != nil {
		return nil, err
	}
	return &WithdrawLockerResult{Refunded: resp.Refunded, Locker: locker}, nil
}

// Withdraw pays out part of the caller's withdrawable balance.
func (c *vaultLockClient) Withdraw(ctx context.Context, req *WithdrawRequest) (uint64, error) {
	if req == nil {
		return 0, ErrInvalidArgument
	}

	var remaining uint64
	err := c.base.executeWithRetry(ctx, "Withdraw", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.Withdraw(ctx, &pb.WithdrawRequest{
			CallerId: string(req.CallerID),
			ToId:     string(req.To),
			TokenId:  string(req.Token),
			Amount:   req.Amount,
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("Withdraw", r.Error); e != nil {
			return e
		}
		remaining = r.Remaining
		return nil
	})
	return remaining, err
}

// GetLocker fetches the current record of a locker.
func (c *vaultLockClient) GetLocker(ctx context.Context, id types.LockerID) (*types.LockerInfo, error) {
	var resp *pb.LockerResponse
	err := c.base.executeWithRetry(ctx, "GetLocker", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.GetLocker(ctx, &pb.GetLockerRequest{LockerId: id[:]})
		if err != nil {
			return err
		}
		if e := errorFromDetail("GetLocker", r.Error); e != nil {
			return e
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lockerFromProto(resp.Locker)
}

// GetLockers fetches a filtered, paginated list of lockers.
func (c *vaultLockClient) GetLockers(ctx context.Context, req *GetLockersRequest) (*GetLockersResult, error) {
	if req == nil {
		req = &GetLockersRequest{}
	}

	var resp *pb.GetLockersResponse
	err := c.base.executeWithRetry(ctx, "GetLockers", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.GetLockers(ctx, &pb.GetLockersRequest{
			Filter: filterToProto(req.Filter),
			Limit:  int32(req.Limit),
			Offset: int32(req.Offset),
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("GetLockers", r.Error); e != nil {
			return e
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	lockers := make([]*types.LockerInfo, 0, len(resp.Lockers))
	for _, msg := range resp.Lockers {
		locker, err := lockerFromProto(msg)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, locker)
	}
	return &GetLockersResult{Lockers: lockers, Total: int(resp.Total)}, nil
}

// GetBalance fetches an account's withdrawable balance for a token.
func (c *vaultLockClient) GetBalance(ctx context.Context, account types.AccountID, token types.TokenID) (uint64, error) {
	var balance uint64
	err := c.base.executeWithRetry(ctx, "GetBalance", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.GetBalance(ctx, &pb.GetBalanceRequest{
			AccountId: string(account),
			TokenId:   string(token),
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("GetBalance", r.Error); e != nil {
			return e
		}
		balance = r.Balance
		return nil
	})
	return balance, err
}

// GetFee fetches the current protocol fee rate.
func (c *vaultLockClient) GetFee(ctx context.Context) (uint32, error) {
	var rate uint32
	err := c.base.executeWithRetry(ctx, "GetFee", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.GetFee(ctx, &pb.GetFeeRequest{})
		if err != nil {
			return err
		}
		if e := errorFromDetail("GetFee", r.Error); e != nil {
			return e
		}
		rate = r.RateBps
		return nil
	})
	return rate, err
}

// CalculateFee asks the server what fee it would charge on amount.
func (c *vaultLockClient) CalculateFee(ctx context.Context, amount uint64) (uint64, error) {
	var fee uint64
	err := c.base.executeWithRetry(ctx, "CalculateFee", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.CalculateFee(ctx, &pb.CalculateFeeRequest{Amount: amount})
		if err != nil {
			return err
		}
		if e := errorFromDetail("CalculateFee", r.Error); e != nil {
			return e
		}
		fee = r.Fee
		return nil
	})
	return fee, err
}

// IsTokenWhitelisted reports whether the token is accepted for new lockers.
func (c *vaultLockClient) IsTokenWhitelisted(ctx context.Context, token types.TokenID) (bool, error) {
	var whitelisted bool
	err := c.base.executeWithRetry(ctx, "GetToken", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.GetToken(ctx, &pb.GetTokenRequest{TokenId: string(token)})
		if err != nil {
			return err
		}
		if e := errorFromDetail("GetToken", r.Error); e != nil {
			return e
		}
		whitelisted = r.Whitelisted
		return nil
	})
	return whitelisted, err
}

// Close shuts down the client, releasing all connections.
func (c *vaultLockClient) Close() error {
	return c.base.close()
}
