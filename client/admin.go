package client

import (
	"context"
	"time"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/types"
)

// adminClient implements the owner-facing AdminClient.
type adminClient struct {
	base baseClient
}

// NewAdminClient creates a client for owner-gated and operational requests
// against the configured VaultLock endpoints.
func NewAdminClient(config Config) (AdminClient, error) {
	base, err := newBaseClient(config)
	if err != nil {
		return nil, err
	}
	return &adminClient{base: base}, nil
}

// CloseLocker stops further deposits into an open locker.
func (c *adminClient) CloseLocker(ctx context.Context, caller types.AccountID, id types.LockerID) (*types.LockerInfo, error) {
	var resp *pb.LockerResponse
	err := c.base.executeWithRetry(ctx, "CloseLocker", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.CloseLocker(ctx, &pb.CloseLockerRequest{
			CallerId: string(caller),
			LockerId: id[:],
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("CloseLocker", r.Error); e != nil {
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

// SetWinner resolves a closed locker.
func (c *adminClient) SetWinner(ctx context.Context, req *SetWinnerRequest) (*ResolveResult, error) {
	if req == nil {
		return nil, ErrInvalidArgument
	}

	var resp *pb.SetWinnerResponse
	err := c.base.executeWithRetry(ctx, "SetWinner", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.SetWinner(ctx, &pb.SetWinnerRequest{
			CallerId: string(req.CallerID),
			LockerId: req.LockerID[:],
			WinnerId: string(req.Winner),
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("SetWinner", r.Error); e != nil {
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
	return &ResolveResult{Locker: locker, Payout: resp.Payout, Fee: resp.Fee}, nil
}

// WithdrawFee pays out part of the accrued protocol fee balance.
func (c *adminClient) WithdrawFee(ctx context.Context, req *WithdrawFeeRequest) (uint64, error) {
	if req == nil {
		return 0, ErrInvalidArgument
	}

	var remaining uint64
	err := c.base.executeWithRetry(ctx, "WithdrawFee", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.WithdrawFee(ctx, &pb.WithdrawFeeRequest{
			CallerId: string(req.CallerID),
			ToId:     string(req.To),
			TokenId:  string(req.Token),
			Amount:   req.Amount,
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("WithdrawFee", r.Error); e != nil {
			return e
		}
		remaining = r.Remaining
		return nil
	})
	return remaining, err
}

// AddTokens whitelists tokens for new lockers.
func (c *adminClient) AddTokens(ctx context.Context, caller types.AccountID, tokens []types.TokenID) (int, error) {
	ids := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		ids = append(ids, string(tok))
	}

	var added int
	err := c.base.executeWithRetry(ctx, "AddTokens", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.AddTokens(ctx, &pb.AddTokensRequest{
			CallerId: string(caller),
			TokenIds: ids,
		})
		if err != nil {
			return err
		}
		if e := errorFromDetail("AddTokens", r.Error); e != nil {
			return e
		}
		added = int(r.Added)
		return nil
	})
	return added, err
}

// SetFee updates the protocol fee rate.
func (c *adminClient) SetFee(ctx context.Context, caller types.AccountID, rateBps uint32) error {
	return c.base.executeWithRetry(ctx, "SetFee", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.SetFee(ctx, &pb.SetFeeRequest{
			CallerId: string(caller),
			RateBps:  rateBps,
		})
		if err != nil {
			return err
		}
		return errorFromDetail("SetFee", r.Error)
	})
}

// GetFeeBalance fetches the accrued protocol fee balance for a token.
func (c *adminClient) GetFeeBalance(ctx context.Context, token types.TokenID) (uint64, error) {
	var balance uint64
	err := c.base.executeWithRetry(ctx, "GetFeeBalance", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.GetFeeBalance(ctx, &pb.GetFeeBalanceRequest{TokenId: string(token)})
		if err != nil {
			return err
		}
		if e := errorFromDetail("GetFeeBalance", r.Error); e != nil {
			return e
		}
		balance = r.Balance
		return nil
	})
	return balance, err
}

// Health checks the health of the VaultLock service.
func (c *adminClient) Health(ctx context.Context) (*HealthInfo, error) {
	var resp *pb.HealthResponse
	err := c.base.executeWithRetry(ctx, "Health", func(ctx context.Context, cl pb.VaultLockClient) error {
		r, err := cl.Health(ctx, &pb.HealthRequest{})
		if err != nil {
			return err
		}
		if e := errorFromDetail("Health", r.Error); e != nil {
			return e
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &HealthInfo{
		Serving:   resp.Status == pb.HealthStatus_HEALTH_STATUS_SERVING,
		Message:   resp.Message,
		Timestamp: time.UnixMilli(resp.TimestampMs).UTC(),
	}, nil
}

// Close shuts down the client and releases associated resources.
func (c *adminClient) Close() error {
	return c.base.close()
}
