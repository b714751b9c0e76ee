package server

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/stats"
	"google.golang.org/grpc/status"

	"github.com/jathurchan/vaultlock/logger"
	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/storage"
	"github.com/jathurchan/vaultlock/types"
	"github.com/jathurchan/vaultlock/vault"
)

// vaultLockServer is the production implementation of VaultLockServer.
// It fronts a vault engine with a gRPC endpoint, request validation,
// optional rate limiting, and periodic snapshot persistence.
type vaultLockServer struct {
	pb.UnimplementedVaultLockServer

	mu    sync.RWMutex
	state ServerOperationalState

	engine      vault.VaultEngine
	store       storage.SnapshotStore
	validator   RequestValidator
	limiter     RateLimiter
	connections ConnectionManager

	grpcServer *grpc.Server
	listener   net.Listener

	config  VaultServerConfig
	logger  logger.Logger
	metrics ServerMetrics
	clock   vault.Clock

	startTime time.Time
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewVaultLockServer creates a server wired to the given engine. The server is
// not listening until Start is called.
//
// Returns an error if the configuration is invalid or the snapshot store
// cannot be initialized.
func NewVaultLockServer(engine vault.VaultEngine, config VaultServerConfig) (VaultLockServer, error) {
	if engine == nil {
		return nil, NewVaultServerConfigError("engine cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithComponent("server")

	metrics := config.Metrics
	if metrics == nil {
		metrics = NewNoOpServerMetrics()
	}

	clock := config.Clock
	if clock == nil {
		clock = vault.NewStandardClock()
	}

	s := &vaultLockServer{
		state:       ServerStateStopped,
		engine:      engine,
		validator:   NewRequestValidator(log),
		connections: NewConnectionManager(metrics, log, clock),
		config:      config,
		logger:      log,
		metrics:     metrics,
		clock:       clock,
		stopCh:      make(chan struct{}),
	}

	if config.EnablePersistence {
		store, err := storage.NewFileSnapshotStore(config.DataDir, storage.WithStoreLogger(log))
		if err != nil {
			return nil, NewServerError("init", err, "failed to initialize snapshot store")
		}
		s.store = store
	}

	if config.EnableRateLimit {
		s.limiter = NewTokenBucketRateLimiter(
			config.RateLimit, config.RateLimitBurst, config.RateLimitWindow, log)
	}

	return s, nil
}

// Start restores persisted state, binds the listen address, and begins serving
// gRPC requests. It returns once the server is accepting connections.
func (s *vaultLockServer) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state == ServerStateStarting || s.state == ServerStateRunning {
		s.mu.Unlock()
		return ErrServerAlreadyStarted
	}
	s.state = ServerStateStarting
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	if err := s.restoreState(ctx); err != nil {
		s.setState(ServerStateStopped)
		return err
	}

	listener, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		s.setState(ServerStateStopped)
		return NewServerError("start", err, "failed to bind listen address")
	}

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(s.config.MaxRequestSize),
		grpc.MaxSendMsgSize(s.config.MaxResponseSize),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    DefaultGRPCKeepaliveTime,
			Timeout: DefaultGRPCKeepaliveTimeout,
		}),
		grpc.ChainUnaryInterceptor(s.unaryInterceptor),
		grpc.StatsHandler(&connectionStatsHandler{connections: s.connections}),
	)
	pb.RegisterVaultLockServer(grpcServer, s)

	s.mu.Lock()
	s.listener = listener
	s.grpcServer = grpcServer
	s.startTime = s.clock.Now()
	s.state = ServerStateRunning
	s.mu.Unlock()

	s.metrics.SetServerState(true)
	s.logger.Infow("Server started",
		"listen_address", listener.Addr().String(),
		"persistence", s.config.EnablePersistence,
		"rate_limit", s.config.EnableRateLimit)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := grpcServer.Serve(listener); err != nil {
			s.logger.Errorw("gRPC server exited with error", "error", err)
		}
	}()

	if s.config.EnablePersistence {
		s.wg.Add(1)
		go s.snapshotLoop()
	}

	return nil
}

// Stop gracefully shuts the server down, draining in-flight requests up to the
// configured shutdown timeout and taking a final snapshot when persistence is
// enabled. Stop is idempotent.
func (s *vaultLockServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.state == ServerStateStopped || s.state == ServerStateStopping {
		s.mu.Unlock()
		return nil
	}
	s.state = ServerStateStopping
	grpcServer := s.grpcServer
	close(s.stopCh)
	s.mu.Unlock()

	s.metrics.SetServerState(false)
	s.logger.Infow("Server stopping")

	var stopErr error
	if grpcServer != nil {
		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()

		timeout := s.config.ShutdownTimeout
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining < timeout {
				timeout = remaining
			}
		}

		select {
		case <-done:
		case <-time.After(timeout):
			s.logger.Warnw("Graceful stop timed out, forcing shutdown",
				"timeout", timeout)
			grpcServer.Stop()
			stopErr = ErrShutdownTimeout
		}
	}

	s.wg.Wait()

	if s.config.EnablePersistence {
		if err := s.persistSnapshot(ctx); err != nil {
			s.logger.Errorw("Final snapshot failed during shutdown", "error", err)
			if stopErr == nil {
				stopErr = err
			}
		}
	}

	if err := s.engine.Close(); err != nil {
		s.logger.Errorw("Engine close failed", "error", err)
	}

	s.setState(ServerStateStopped)
	s.logger.Infow("Server stopped")
	return stopErr
}

// Metrics returns the server's metrics collector.
func (s *vaultLockServer) Metrics() ServerMetrics {
	return s.metrics
}

func (s *vaultLockServer) setState(state ServerOperationalState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *vaultLockServer) currentState() ServerOperationalState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// restoreState loads the latest snapshot from the store, if any, and replays
// it into the engine. A missing snapshot is a normal fresh start.
func (s *vaultLockServer) restoreState(ctx context.Context) error {
	if !s.config.EnablePersistence || s.store == nil {
		return nil
	}

	data, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoSnapshot) {
			s.logger.Infow("No snapshot found, starting with fresh state",
				"data_dir", s.config.DataDir)
			return nil
		}
		return NewServerError("restore", err, "failed to load snapshot")
	}

	if err := s.engine.RestoreSnapshot(ctx, data); err != nil {
		return NewServerError("restore", err, "failed to restore engine state from snapshot")
	}

	s.logger.Infow("Engine state restored from snapshot", "snapshot_bytes", len(data))
	return nil
}

// snapshotLoop periodically persists engine state until the server stops.
func (s *vaultLockServer) snapshotLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.config.RequestTimeout)
			if err := s.persistSnapshot(ctx); err != nil {
				s.logger.Errorw("Periodic snapshot failed", "error", err)
			}
			cancel()
		}
	}
}

// persistSnapshot serializes engine state and writes it to the snapshot store.
func (s *vaultLockServer) persistSnapshot(ctx context.Context) error {
	data, err := s.engine.Snapshot(ctx)
	if err != nil {
		s.metrics.IncrSnapshotPersist(false)
		return NewServerError("snapshot", err, "failed to serialize engine state")
	}
	if err := s.store.Save(ctx, data); err != nil {
		s.metrics.IncrSnapshotPersist(false)
		return NewServerError("snapshot", err, "failed to persist snapshot")
	}

	s.metrics.IncrSnapshotPersist(true)
	s.logger.Debugw("Snapshot persisted", "snapshot_bytes", len(data))
	return nil
}

// unaryInterceptor enforces server availability and rate limits, tracks
// request metrics, and applies the per-request timeout.
func (s *vaultLockServer) unaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	method := methodName(info.FullMethod)

	if s.currentState() != ServerStateRunning {
		s.metrics.IncrGRPCRequest(method, false)
		return nil, status.Error(codes.Unavailable, ErrServerNotStarted.Error())
	}

	if s.limiter != nil && !s.limiter.Allow() {
		s.metrics.IncrClientError(method, pb.ErrorCode_RATE_LIMITED)
		s.metrics.IncrGRPCRequest(method, false)
		return nil, status.Error(codes.ResourceExhausted, ErrRateLimited.Error())
	}

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		s.connections.OnRequest(p.Addr.String())
	}

	s.metrics.IncrConcurrentRequests(method, 1)
	start := s.clock.Now()

	reqCtx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	resp, err := handler(reqCtx, req)

	s.metrics.ObserveRequestLatency(method, s.clock.Now().Sub(start))
	s.metrics.IncrConcurrentRequests(method, -1)
	s.metrics.IncrGRPCRequest(method, err == nil)

	return resp, err
}

// methodName extracts the bare RPC name from a gRPC full method path
// (e.g., "/vaultlock.VaultLock/CreateLocker" -> "CreateLocker").
func methodName(fullMethod string) string {
	if idx := strings.LastIndex(fullMethod, "/"); idx >= 0 {
		return fullMethod[idx+1:]
	}
	return fullMethod
}

// connectionStatsHandler feeds gRPC connection lifecycle events into the
// connection manager.
type connectionStatsHandler struct {
	connections ConnectionManager
}

func (h *connectionStatsHandler) TagRPC(ctx context.Context, _ *stats.RPCTagInfo) context.Context {
	return ctx
}

func (h *connectionStatsHandler) HandleRPC(context.Context, stats.RPCStats) {}

func (h *connectionStatsHandler) TagConn(ctx context.Context, _ *stats.ConnTagInfo) context.Context {
	return ctx
}

func (h *connectionStatsHandler) HandleConn(ctx context.Context, stat stats.ConnStats) {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return
	}
	switch stat.(type) {
	case *stats.ConnBegin:
		h.connections.OnConnect(p.Addr.String())
	case *stats.ConnEnd:
		h.connections.OnDisconnect(p.Addr.String())
	}
}

// --- RPC handlers ---
//
// Application-level failures are reported inside the response body as an
// ErrorDetail rather than as gRPC status errors, so clients can distinguish
// transport problems from vault rejections.

// CreateLocker handles locker creation requests.
func (s *vaultLockServer) CreateLocker(ctx context.Context, req *pb.CreateLockerRequest) (*pb.LockerResponse, error) {
	if err := s.validator.ValidateCreateLockerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodCreateLocker, ErrorTypeInvalidFormat)
		return &pb.LockerResponse{Error: ErrorToProtoError(err)}, nil
	}

	id, _ := types.LockerIDFromBytes(req.LockerId)
	info, err := s.engine.CreateLocker(ctx,
		types.AccountID(req.CallerId), id, types.TokenID(req.TokenId), req.Amount)
	if err != nil {
		return &pb.LockerResponse{Error: s.engineError(MethodCreateLocker, err)}, nil
	}

	s.logger.Infow("Locker created",
		"locker_id", id.String(), "token_id", req.TokenId,
		"creator_id", req.CallerId, "stake", req.Amount)
	return &pb.LockerResponse{Locker: lockerToProto(info)}, nil
}

// DepositLocker handles stake deposit requests.
func (s *vaultLockServer) DepositLocker(ctx context.Context, req *pb.DepositLockerRequest) (*pb.LockerResponse, error) {
	if err := s.validator.ValidateDepositLockerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodDepositLocker, ErrorTypeInvalidFormat)
		return &pb.LockerResponse{Error: ErrorToProtoError(err)}, nil
	}

	id, _ := types.LockerIDFromBytes(req.LockerId)
	info, err := s.engine.DepositLocker(ctx, types.AccountID(req.CallerId), id)
	if err != nil {
		return &pb.LockerResponse{Error: s.engineError(MethodDepositLocker, err)}, nil
	}
	return &pb.LockerResponse{Locker: lockerToProto(info)}, nil
}

// CloseLocker handles owner requests to stop further deposits into a locker.
func (s *vaultLockServer) CloseLocker(ctx context.Context, req *pb.CloseLockerRequest) (*pb.LockerResponse, error) {
	if err := s.validator.ValidateCloseLockerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodCloseLocker, ErrorTypeInvalidFormat)
		return &pb.LockerResponse{Error: ErrorToProtoError(err)}, nil
	}

	id, _ := types.LockerIDFromBytes(req.LockerId)
	info, err := s.engine.CloseLocker(ctx, types.AccountID(req.CallerId), id)
	if err != nil {
		return &pb.LockerResponse{Error: s.engineError(MethodCloseLocker, err)}, nil
	}
	return &pb.LockerResponse{Locker: lockerToProto(info)}, nil
}

// SetWinner handles owner requests to resolve a closed locker.
func (s *vaultLockServer) SetWinner(ctx context.Context, req *pb.SetWinnerRequest) (*pb.SetWinnerResponse, error) {
	if err := s.validator.ValidateSetWinnerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodSetWinner, ErrorTypeInvalidFormat)
		return &pb.SetWinnerResponse{Error: ErrorToProtoError(err)}, nil
	}

	id, _ := types.LockerIDFromBytes(req.LockerId)
	res, err := s.engine.SetWinner(ctx,
		types.AccountID(req.CallerId), id, types.AccountID(req.WinnerId))
	if err != nil {
		return &pb.SetWinnerResponse{Error: s.engineError(MethodSetWinner, err)}, nil
	}

	s.logger.Infow("Locker resolved",
		"locker_id", id.String(), "winner_id", req.WinnerId,
		"payout", res.Payout, "fee", res.Fee)
	return &pb.SetWinnerResponse{
		Locker: lockerToProto(res.Locker),
		Payout: res.Payout,
		Fee:    res.Fee,
	}, nil
}

// WithdrawLocker handles stake cancellation requests on open lockers.
func (s *vaultLockServer) WithdrawLocker(ctx context.Context, req *pb.WithdrawLockerRequest) (*pb.WithdrawLockerResponse, error) {
	if err := s.validator.ValidateWithdrawLockerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodWithdrawLocker, ErrorTypeInvalidFormat)
		return &pb.WithdrawLockerResponse{Error: ErrorToProtoError(err)}, nil
	}

	id, _ := types.LockerIDFromBytes(req.LockerId)
	refunded, info, err := s.engine.WithdrawLocker(ctx,
		types.AccountID(req.CallerId), id, types.AccountID(req.ToId))
	if err != nil {
		return &pb.WithdrawLockerResponse{Error: s.engineError(MethodWithdrawLocker, err)}, nil
	}
	return &pb.WithdrawLockerResponse{
		Refunded: refunded,
		Locker:   lockerToProto(info),
	}, nil
}

// Withdraw handles withdrawable balance payout requests.
func (s *vaultLockServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	if err := s.validator.ValidateWithdrawRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodWithdraw, ErrorTypeInvalidFormat)
		return &pb.WithdrawResponse{Error: ErrorToProtoError(err)}, nil
	}

	remaining, err := s.engine.Withdraw(ctx,
		types.AccountID(req.CallerId), types.AccountID(req.ToId),
		types.TokenID(req.TokenId), req.Amount)
	if err != nil {
		return &pb.WithdrawResponse{Error: s.engineError(MethodWithdraw, err)}, nil
	}
	return &pb.WithdrawResponse{Remaining: remaining}, nil
}

// WithdrawFee handles owner requests to pay out accrued protocol fees.
func (s *vaultLockServer) WithdrawFee(ctx context.Context, req *pb.WithdrawFeeRequest) (*pb.WithdrawResponse, error) {
	if err := s.validator.ValidateWithdrawFeeRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodWithdrawFee, ErrorTypeInvalidFormat)
		return &pb.WithdrawResponse{Error: ErrorToProtoError(err)}, nil
	}

	remaining, err := s.engine.WithdrawFee(ctx,
		types.AccountID(req.CallerId), types.AccountID(req.ToId),
		types.TokenID(req.TokenId), req.Amount)
	if err != nil {
		return &pb.WithdrawResponse{Error: s.engineError(MethodWithdrawFee, err)}, nil
	}
	return &pb.WithdrawResponse{Remaining: remaining}, nil
}

// AddTokens handles owner requests to whitelist tokens.
func (s *vaultLockServer) AddTokens(ctx context.Context, req *pb.AddTokensRequest) (*pb.AddTokensResponse, error) {
	if err := s.validator.ValidateAddTokensRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodAddTokens, ErrorTypeInvalidFormat)
		return &pb.AddTokensResponse{Error: ErrorToProtoError(err)}, nil
	}

	tokens := make([]types.TokenID, 0, len(req.TokenIds))
	for _, tok := range req.TokenIds {
		tokens = append(tokens, types.TokenID(tok))
	}

	added, err := s.engine.AddTokens(ctx, types.AccountID(req.CallerId), tokens)
	if err != nil {
		return &pb.AddTokensResponse{Error: s.engineError(MethodAddTokens, err)}, nil
	}

	s.logger.Infow("Tokens whitelisted", "requested", len(tokens), "added", added)
	return &pb.AddTokensResponse{Added: uint32(added)}, nil
}

// SetFee handles owner requests to change the protocol fee rate.
func (s *vaultLockServer) SetFee(ctx context.Context, req *pb.SetFeeRequest) (*pb.SetFeeResponse, error) {
	if err := s.validator.ValidateSetFeeRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodSetFee, ErrorTypeInvalidFormat)
		return &pb.SetFeeResponse{Error: ErrorToProtoError(err)}, nil
	}

	if err := s.engine.SetFeeRate(ctx, types.AccountID(req.CallerId), req.RateBps); err != nil {
		return &pb.SetFeeResponse{Error: s.engineError(MethodSetFee, err)}, nil
	}

	s.logger.Infow("Fee rate updated", "rate_bps", req.RateBps)
	return &pb.SetFeeResponse{}, nil
}

// GetFee returns the current protocol fee rate.
func (s *vaultLockServer) GetFee(ctx context.Context, req *pb.GetFeeRequest) (*pb.FeeResponse, error) {
	return &pb.FeeResponse{RateBps: s.engine.FeeRate()}, nil
}

// CalculateFee returns the fee the vault would charge on the given amount.
func (s *vaultLockServer) CalculateFee(ctx context.Context, req *pb.CalculateFeeRequest) (*pb.CalculateFeeResponse, error) {
	return &pb.CalculateFeeResponse{Fee: s.engine.CalculateFee(req.Amount)}, nil
}

// GetLocker returns the current record of a single locker.
func (s *vaultLockServer) GetLocker(ctx context.Context, req *pb.GetLockerRequest) (*pb.LockerResponse, error) {
	if err := s.validator.ValidateGetLockerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodGetLocker, ErrorTypeInvalidFormat)
		return &pb.LockerResponse{Error: ErrorToProtoError(err)}, nil
	}

	id, _ := types.LockerIDFromBytes(req.LockerId)
	info, err := s.engine.GetLocker(ctx, id)
	if err != nil {
		return &pb.LockerResponse{Error: s.engineError(MethodGetLocker, err)}, nil
	}
	return &pb.LockerResponse{Locker: lockerToProto(info)}, nil
}

// GetLockers returns a filtered, paginated list of lockers.
func (s *vaultLockServer) GetLockers(ctx context.Context, req *pb.GetLockersRequest) (*pb.GetLockersResponse, error) {
	if err := s.validator.ValidateGetLockersRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodGetLockers, ErrorTypeOutOfRange)
		return &pb.GetLockersResponse{Error: ErrorToProtoError(err)}, nil
	}

	limit := int(req.Limit)
	if limit == 0 {
		limit = DefaultPageLimit
	}

	lockers, total, err := s.engine.GetLockers(ctx,
		filterFromProto(req.Filter), limit, int(req.Offset))
	if err != nil {
		return &pb.GetLockersResponse{Error: s.engineError(MethodGetLockers, err)}, nil
	}

	out := make([]*pb.Locker, 0, len(lockers))
	for _, l := range lockers {
		out = append(out, lockerToProto(l))
	}
	return &pb.GetLockersResponse{Lockers: out, Total: int32(total)}, nil
}

// GetBalance returns an account's withdrawable balance for a token.
func (s *vaultLockServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.BalanceResponse, error) {
	if err := s.validator.ValidateGetBalanceRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodGetBalance, ErrorTypeInvalidFormat)
		return &pb.BalanceResponse{Error: ErrorToProtoError(err)}, nil
	}

	balance := s.engine.GetBalance(ctx,
		types.AccountID(req.AccountId), types.TokenID(req.TokenId))
	return &pb.BalanceResponse{Balance: balance}, nil
}

// GetFeeBalance returns the accrued protocol fee balance for a token.
func (s *vaultLockServer) GetFeeBalance(ctx context.Context, req *pb.GetFeeBalanceRequest) (*pb.BalanceResponse, error) {
	if err := s.validator.ValidateGetFeeBalanceRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodGetFeeBalance, ErrorTypeInvalidFormat)
		return &pb.BalanceResponse{Error: ErrorToProtoError(err)}, nil
	}

	return &pb.BalanceResponse{
		Balance: s.engine.GetFeeBalance(ctx, types.TokenID(req.TokenId)),
	}, nil
}

// GetToken reports whether a token is whitelisted for new lockers.
func (s *vaultLockServer) GetToken(ctx context.Context, req *pb.GetTokenRequest) (*pb.GetTokenResponse, error) {
	if err := s.validator.ValidateGetTokenRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodGetToken, ErrorTypeInvalidFormat)
		return &pb.GetTokenResponse{Error: ErrorToProtoError(err)}, nil
	}

	return &pb.GetTokenResponse{
		Whitelisted: s.engine.IsTokenWhitelisted(types.TokenID(req.TokenId)),
	}, nil
}

// Health reports the server's operational status.
func (s *vaultLockServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	healthy := s.currentState() == ServerStateRunning
	s.metrics.IncrHealthCheck(healthy)

	hs := pb.HealthStatus_HEALTH_STATUS_SERVING
	msg := "serving"
	if !healthy {
		hs = pb.HealthStatus_HEALTH_STATUS_NOT_SERVING
		msg = "not serving: " + string(s.currentState())
	}

	return &pb.HealthResponse{
		Status:      hs,
		Message:     msg,
		TimestampMs: s.clock.Now().UnixMilli(),
	}, nil
}

// engineError converts an engine failure to its wire form and records metrics.
func (s *vaultLockServer) engineError(method string, err error) *pb.ErrorDetail {
	detail := ErrorToProtoError(err)
	if detail.Code == pb.ErrorCode_INTERNAL_ERROR || detail.Code == pb.ErrorCode_UNAVAILABLE {
		s.metrics.IncrServerError(method, ErrorTypeInternalError)
		s.logger.Errorw("Request failed", "method", method, "error", err)
	} else {
		s.metrics.IncrClientError(method, detail.Code)
		s.logger.Debugw("Request rejected", "method", method, "error", err)
	}
	return detail
}
