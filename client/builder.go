package client

import (
	"errors"
	"time"

	pb "github.com/jathurchan/vaultlock/proto"
)

// VaultLockClientBuilder provides a fluent API for constructing VaultLock
// clients. It supports configuring and creating VaultLockClient, AdminClient,
// and AdvancedClient instances.
//
// Example:
//
//	client, err := client.NewVaultLockClientBuilder([]string{"localhost:8080"}).
//	    WithTimeouts(2*time.Second, 5*time.Second).
//	    Build()
type VaultLockClientBuilder struct {
	config      Config
	hasEndpoint bool
}

// NewVaultLockClientBuilder returns a new builder initialized with the given
// endpoints. At least one endpoint is required to build a client.
func NewVaultLockClientBuilder(endpoints []string) *VaultLockClientBuilder {
	b := &VaultLockClientBuilder{
		config: DefaultClientConfig(),
	}
	if len(endpoints) > 0 {
		b.config.Endpoints = endpoints
		b.hasEndpoint = true
	}
	return b
}

// WithEndpoints sets the server endpoints.
// This is required and overrides any previously set endpoints.
func (b *VaultLockClientBuilder) WithEndpoints(endpoints []string) *VaultLockClientBuilder {
	b.config.Endpoints = endpoints
	b.hasEndpoint = len(endpoints) > 0
	return b
}

// WithTimeouts sets the dial and request timeouts.
func (b *VaultLockClientBuilder) WithTimeouts(dialTimeout, requestTimeout time.Duration) *VaultLockClientBuilder {
	if dialTimeout > 0 {
		b.config.DialTimeout = dialTimeout
	}
	if requestTimeout > 0 {
		b.config.RequestTimeout = requestTimeout
	}
	return b
}

// WithKeepAlive sets gRPC keepalive parameters.
func (b *VaultLockClientBuilder) WithKeepAlive(time, timeout time.Duration, permitWithoutStream bool) *VaultLockClientBuilder {
	b.config.KeepAlive = KeepAliveConfig{
		Time:                time,
		Timeout:             timeout,
		PermitWithoutStream: permitWithoutStream,
	}
	return b
}

// WithRetryPolicy sets a custom retry policy.
func (b *VaultLockClientBuilder) WithRetryPolicy(policy RetryPolicy) *VaultLockClientBuilder {
	b.config.RetryPolicy = policy
	return b
}

// WithRetryOptions updates the default retry policy parameters.
func (b *VaultLockClientBuilder) WithRetryOptions(maxRetries int, initialBackoff, maxBackoff time.Duration, multiplier float64) *VaultLockClientBuilder {
	if maxRetries >= 0 {
		b.config.RetryPolicy.MaxRetries = maxRetries
	}
	if initialBackoff > 0 {
		b.config.RetryPolicy.InitialBackoff = initialBackoff
	}
	if maxBackoff > 0 {
		b.config.RetryPolicy.MaxBackoff = maxBackoff
	}
	if multiplier > 0 {
		b.config.RetryPolicy.BackoffMultiplier = multiplier
	}
	return b
}

// WithRetryableErrors sets the error codes that should trigger retries.
// Calling with no codes disables code-based retries.
func (b *VaultLockClientBuilder) WithRetryableErrors(codes ...pb.ErrorCode) *VaultLockClientBuilder {
	if len(codes) > 0 {
		b.config.RetryPolicy.RetryableErrors = codes
	} else {
		b.config.RetryPolicy.RetryableErrors = []pb.ErrorCode{}
	}
	return b
}

// WithMetrics enables or disables metrics collection.
func (b *VaultLockClientBuilder) WithMetrics(enabled bool) *VaultLockClientBuilder {
	b.config.EnableMetrics = enabled
	return b
}

// WithMaxMessageSize sets the max gRPC message size (bytes).
func (b *VaultLockClientBuilder) WithMaxMessageSize(size int) *VaultLockClientBuilder {
	if size > 0 {
		b.config.MaxMessageSize = size
	}
	return b
}

// validate checks if the builder has valid configuration.
func (b *VaultLockClientBuilder) validate() error {
	if !b.hasEndpoint || len(b.config.Endpoints) == 0 {
		return errors.New("builder: at least one endpoint must be set")
	}
	return nil
}

// Build returns a configured VaultLockClient.
func (b *VaultLockClientBuilder) Build() (VaultLockClient, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return NewVaultLockClient(b.config)
}

// BuildAdmin returns a configured AdminClient.
func (b *VaultLockClientBuilder) BuildAdmin() (AdminClient, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return NewAdminClient(b.config)
}

// BuildAdvanced returns a configured AdvancedClient.
func (b *VaultLockClientBuilder) BuildAdvanced() (AdvancedClient, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return NewAdvancedClient(b.config)
}
