package client

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/types"
)

const (
	testOwner = types.AccountID("acct-owner")
	testAlice = types.AccountID("acct-alice")
	testBob   = types.AccountID("acct-bob")

	testUSDC = types.TokenID("tok-usdc")
)

func testLockerID(b byte) types.LockerID {
	var id types.LockerID
	id[0] = b
	return id
}

func protoLocker(b byte, state pb.LockerState) *pb.Locker {
	id := testLockerID(b)
	return &pb.Locker{
		LockerId:       id[:],
		TokenId:        string(testUSDC),
		Stake:          100,
		TotalBalance:   200,
		PlayersCount:   2,
		State:          state,
		CreatorId:      string(testAlice),
		CreatedAtMs:    1_748_779_200_000,
		LastModifiedMs: 1_748_779_260_000,
	}
}

// fakeServiceClient is a scripted pb.VaultLockClient. Methods not backed by a
// response field fall through to the embedded nil interface and panic, which
// flags an unexpected call.
type fakeServiceClient struct {
	pb.VaultLockClient

	calls     int
	failUntil int   // calls up to this count return transportErr
	transport error // transport-level error to inject

	lockerResp         *pb.LockerResponse
	setWinnerResp      *pb.SetWinnerResponse
	withdrawLockerResp *pb.WithdrawLockerResponse
	withdrawResp       *pb.WithdrawResponse
	addTokensResp      *pb.AddTokensResponse
	setFeeResp         *pb.SetFeeResponse
	feeResp            *pb.FeeResponse
	calcFeeResp        *pb.CalculateFeeResponse
	getLockersResp     *pb.GetLockersResponse
	balanceResp        *pb.BalanceResponse
	tokenResp          *pb.GetTokenResponse
	healthResp         *pb.HealthResponse

	lastCreateReq    *pb.CreateLockerRequest
	lastSetWinnerReq *pb.SetWinnerRequest
	lastWithdrawReq  *pb.WithdrawRequest
}

func (f *fakeServiceClient) pre() error {
	f.calls++
	if f.transport != nil && f.calls <= f.failUntil {
		return f.transport
	}
	return nil
}

func (f *fakeServiceClient) CreateLocker(ctx context.Context, req *pb.CreateLockerRequest, _ ...grpc.CallOption) (*pb.LockerResponse, error) {
	f.lastCreateReq = req
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.lockerResp, nil
}

func (f *fakeServiceClient) DepositLocker(ctx context.Context, req *pb.DepositLockerRequest, _ ...grpc.CallOption) (*pb.LockerResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.lockerResp, nil
}

func (f *fakeServiceClient) CloseLocker(ctx context.Context, req *pb.CloseLockerRequest, _ ...grpc.CallOption) (*pb.LockerResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.lockerResp, nil
}

func (f *fakeServiceClient) SetWinner(ctx context.Context, req *pb.SetWinnerRequest, _ ...grpc.CallOption) (*pb.SetWinnerResponse, error) {
	f.lastSetWinnerReq = req
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.setWinnerResp, nil
}

func (f *fakeServiceClient) WithdrawLocker(ctx context.Context, req *pb.WithdrawLockerRequest, _ ...grpc.CallOption) (*pb.WithdrawLockerResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.withdrawLockerResp, nil
}

func (f *fakeServiceClient) Withdraw(ctx context.Context, req *pb.WithdrawRequest, _ ...grpc.CallOption) (*pb.WithdrawResponse, error) {
	f.lastWithdrawReq = req
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.withdrawResp, nil
}

func (f *fakeServiceClient) WithdrawFee(ctx context.Context, req *pb.WithdrawFeeRequest, _ ...grpc.CallOption) (*pb.WithdrawResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.withdrawResp, nil
}

func (f *fakeServiceClient) AddTokens(ctx context.Context, req *pb.AddTokensRequest, _ ...grpc.CallOption) (*pb.AddTokensResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.addTokensResp, nil
}

func (f *fakeServiceClient) SetFee(ctx context.Context, req *pb.SetFeeRequest, _ ...grpc.CallOption) (*pb.SetFeeResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.setFeeResp, nil
}

func (f *fakeServiceClient) GetFee(ctx context.Context, req *pb.GetFeeRequest, _ ...grpc.CallOption) (*pb.FeeResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.feeResp, nil
}

func (f *fakeServiceClient) CalculateFee(ctx context.Context, req *pb.CalculateFeeRequest, _ ...grpc.CallOption) (*pb.CalculateFeeResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.calcFeeResp, nil
}

func (f *fakeServiceClient) GetLocker(ctx context.Context, req *pb.GetLockerRequest, _ ...grpc.CallOption) (*pb.LockerResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.lockerResp, nil
}

func (f *fakeServiceClient) GetLockers(ctx context.Context, req *pb.GetLockersRequest, _ ...grpc.CallOption) (*pb.GetLockersResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.getLockersResp, nil
}

func (f *fakeServiceClient) GetBalance(ctx context.Context, req *pb.GetBalanceRequest, _ ...grpc.CallOption) (*pb.BalanceResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.balanceResp, nil
}

func (f *fakeServiceClient) GetFeeBalance(ctx context.Context, req *pb.GetFeeBalanceRequest, _ ...grpc.CallOption) (*pb.BalanceResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.balanceResp, nil
}

func (f *fakeServiceClient) GetToken(ctx context.Context, req *pb.GetTokenRequest, _ ...grpc.CallOption) (*pb.GetTokenResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.tokenResp, nil
}

func (f *fakeServiceClient) Health(ctx context.Context, req *pb.HealthRequest, _ ...grpc.CallOption) (*pb.HealthResponse, error) {
	if err := f.pre(); err != nil {
		return nil, err
	}
	return f.healthResp, nil
}

// newTestBase builds a base client whose endpoint calls are routed to fake.
func newTestBase(t *testing.T, fake pb.VaultLockClient, mutate func(*Config)) *baseClientImpl {
	t.Helper()

	config := DefaultClientConfig()
	config.Endpoints = []string{"127.0.0.1:0"}
	config.RetryPolicy.InitialBackoff = time.Millisecond
	config.RetryPolicy.MaxBackoff = 5 * time.Millisecond
	config.RetryPolicy.JitterFactor = 0
	if mutate != nil {
		mutate(&config)
	}

	b, err := newBaseClient(config)
	testutil.RequireNoError(t, err)

	impl := b.(*baseClientImpl)
	impl.tryEndpointFunc = func(ctx context.Context, endpoint string, fn func(context.Context, pb.VaultLockClient) error) error {
		return fn(ctx, fake)
	}
	return impl
}

func newTestClient(t *testing.T, fake pb.VaultLockClient) *vaultLockClient {
	t.Helper()
	return &vaultLockClient{base: newTestBase(t, fake, nil)}
}

func newTestAdmin(t *testing.T, fake pb.VaultLockClient) *adminClient {
	t.Helper()
	return &adminClient{base: newTestBase(t, fake, nil)}
}
