package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	pb "github.com/jathurchan/vaultlock/proto"
)

// connector defines an interface for establishing gRPC connections.
// Useful for injecting mocks in tests.
type connector interface {
	// GetConnection returns a new gRPC connection to the endpoint.
	GetConnection(endpoint string, opts ...grpc.DialOption) (*grpc.ClientConn, error)
}

// grpcConnector implements the default connector.
type grpcConnector struct{}

func (c *grpcConnector) GetConnection(endpoint string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	return grpc.NewClient(endpoint, opts...)
}

// clock abstracts time for backoff and latency measurements.
type clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	After(d time.Duration) <-chan time.Time
}

type standardClock struct{}

func (standardClock) Now() time.Time                         { return time.Now() }
func (standardClock) Since(t time.Time) time.Duration        { return time.Since(t) }
func (standardClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// jitterSource abstracts randomness for backoff jitter.
type jitterSource interface {
	Float64() float64
}

type standardJitter struct{}

func (standardJitter) Float64() float64 { return rand.Float64() }

// baseClient defines the internal VaultLock client transport.
// It manages connections, retries, failover, and metrics.
type baseClient interface {
	// executeWithRetry runs an operation with retry, backoff, and endpoint failover.
	executeWithRetry(ctx context.Context, operation string, fn func(ctx context.Context, client pb.VaultLockClient) error) error

	// isConnected reports whether the client has active connections.
	isConnected() bool

	// close releases all resources and shuts down the client.
	close() error

	// setRetryPolicy sets the retry policy for operations.
	setRetryPolicy(policy RetryPolicy)

	// getMetrics returns the metrics recorder used by the client.
	getMetrics() Metrics

	// setConnector replaces the connector (mainly for testing).
	setConnector(connector connector)
}

// baseClientImpl provides the default implementation of baseClient.
type baseClientImpl struct {
	config    Config
	endpoints []string

	mu    sync.RWMutex
	conns map[string]*grpc.ClientConn

	metrics   Metrics
	closed    atomic.Bool
	clock     clock
	jitter    jitterSource
	connector connector

	tryEndpointFunc func(ctx context.Context, endpoint string, fn func(context.Context, pb.VaultLockClient) error) error
}

// newBaseClient creates a new base client with the given configuration.
func newBaseClient(config Config) (baseClient, error) {
	if len(config.Endpoints) == 0 {
		return nil, errors.New("at least one endpoint must be provided")
	}
	c := &baseClientImpl{
		config:    config,
		endpoints: config.Endpoints,
		conns:     make(map[string]*grpc.ClientConn),
		clock:     standardClock{},
		jitter:    standardJitter{},
		connector: &grpcConnector{},
	}
	if config.EnableMetrics {
		c.metrics = newMetrics()
	} else {
		c.metrics = noOpMetrics{}
	}
	return c, nil
}

// setRetryPolicy updates the client's retry policy in a thread-safe manner.
func (c *baseClientImpl) setRetryPolicy(policy RetryPolicy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config.RetryPolicy = policy
}

// getMetrics returns the client's metrics collector.
func (c *baseClientImpl) getMetrics() Metrics {
	return c.metrics
}

// buildDialOptions returns gRPC dial options based on the current configuration.
func (c *baseClientImpl) buildDialOptions() []grpc.DialOption {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                c.config.KeepAlive.Time,
			Timeout:             c.config.KeepAlive.Timeout,
			PermitWithoutStream: c.config.KeepAlive.PermitWithoutStream,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(c.config.MaxMessageSize),
			grpc.MaxCallSendMsgSize(c.config.MaxMessageSize),
		),
	}
}

// getConnection returns a cached connection or establishes a new one.
func (c *baseClientImpl) getConnection(endpoint string) (*grpc.ClientConn, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	c.mu.RLock()
	if conn, ok := c.conns[endpoint]; ok {
		c.mu.RUnlock()
		return conn, nil
	}
	c.mu.RUnlock()

	dialOpts := c.buildDialOptions()

	c.mu.Lock()
	defer c.mu.Unlock()
	if conn, ok := c.conns[endpoint]; ok {
		return conn, nil
	}

	conn, err := c.connector.GetConnection(endpoint, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	c.conns[endpoint] = conn
	return conn, nil
}

// executeWithRetry runs an operation with retry logic, including exponential
// backoff and endpoint failover.
func (c *baseClientImpl) executeWithRetry(ctx context.Context, operation string, fn func(ctx context.Context, client pb.VaultLockClient) error) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	start := c.clock.Now()
	defer func() {
		c.metrics.ObserveLatency(operation, c.clock.Since(start))
	}()

	c.mu.RLock()
	maxRetries := c.config.RetryPolicy.MaxRetries
	c.mu.RUnlock()

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.tryOperation(ctx, operation, fn)
		if err == nil {
			c.metrics.IncrSuccess(operation)
			return nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		if !c.isRetryable(err) || attempt == maxRetries {
			break
		}

		c.metrics.IncrRetry(operation)
		backoff := c.calculateBackoff(attempt + 1)

		select {
		case <-c.clock.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.metrics.IncrFailure(operation)
	return lastErr
}

// tryOperation attempts the operation on each configured endpoint in turn,
// stopping at the first one that answers.
func (c *baseClientImpl) tryOperation(ctx context.Context, operation string, fn func(context.Context, pb.VaultLockClient) error) error {
	var lastErr error
	for _, endpoint := range c.endpoints {
		err := c.tryEndpoint(ctx, endpoint, fn)
		if err == nil {
			return nil
		}
		lastErr = err

		// Application-level rejections are definitive; only transport
		// failures justify moving to the next endpoint.
		if errorCodeOf(err) != pb.ErrorCode_OK {
			return err
		}
	}

	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("no available servers for operation %s", operation)
}

// tryEndpoint invokes the operation on the specified endpoint.
func (c *baseClientImpl) tryEndpoint(ctx context.Context, endpoint string, fn func(context.Context, pb.VaultLockClient) error) error {
	if c.tryEndpointFunc != nil {
		return c.tryEndpointFunc(ctx, endpoint, fn)
	}

	conn, err := c.getConnection(endpoint)
	if err != nil {
		return err
	}
	client := pb.NewVaultLockClient(conn)

	c.mu.RLock()
	timeout := c.config.RequestTimeout
	c.mu.RUnlock()

	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	return fn(reqCtx, client)
}

// calculateBackoff computes exponential backoff with optional jitter.
func (c *baseClientImpl) calculateBackoff(attempt int) time.Duration {
	c.mu.RLock()
	policy := c.config.RetryPolicy
	c.mu.RUnlock()

	backoff := float64(policy.InitialBackoff)
	for i := 1; i < attempt; i++ {
		backoff *= policy.BackoffMultiplier
	}
	if backoff > float64(policy.MaxBackoff) {
		backoff = float64(policy.MaxBackoff)
	}

	if policy.JitterFactor > 0 {
		jitter := (c.jitter.Float64()*2 - 1) * policy.JitterFactor * backoff
		backoff += jitter
	}

	if backoff < 0 {
		return 0
	}
	return time.Duration(backoff)
}

// isRetryable returns true if the error is considered retryable by config or gRPC code.
func (c *baseClientImpl) isRetryable(err error) bool {
	st, ok := status.FromError(err)
	if ok {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
			return true
		}
	}

	c.mu.RLock()
	retryable := c.config.RetryPolicy.RetryableErrors
	c.mu.RUnlock()

	if code := errorCodeOf(err); code != pb.ErrorCode_OK {
		return slices.Contains(retryable, code)
	}
	return false
}

// isConnected reports whether there are any active connections.
func (c *baseClientImpl) isConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.conns) > 0
}

// close shuts down all gRPC connections and marks the client as closed.
func (c *baseClientImpl) close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for ep, conn := range c.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection to %s: %w", ep, err))
		}
	}
	c.conns = make(map[string]*grpc.ClientConn)

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing connections: %v", errs)
	}
	return nil
}

// setConnector replaces the connector (mainly for testing).
func (c *baseClientImpl) setConnector(conn connector) {
	c.connector = conn
}
