package server

import (
	"fmt"
	"time"

	"github.com/jathurchan/vaultlock/logger"
	"github.com/jathurchan/vaultlock/types"
	"github.com/jathurchan/vaultlock/vault"
)

// VaultServerConfig holds the configuration settings for a VaultLock server instance.
type VaultServerConfig struct {
	// ListenAddress is the gRPC server's bind address (e.g., "0.0.0.0:8080").
	ListenAddress string

	// OwnerID is the account permitted to perform owner-gated vault
	// operations (close, resolve, fee management, whitelisting).
	OwnerID types.AccountID

	// DataDir is the path where state snapshots are persisted.
	// Ignored unless EnablePersistence is set.
	DataDir string

	// EnablePersistence controls whether engine state is restored at startup
	// and periodically snapshotted to DataDir.
	EnablePersistence bool

	// SnapshotInterval is how often the engine state is snapshotted.
	SnapshotInterval time.Duration

	RequestTimeout  time.Duration // Max time to handle a client request
	ShutdownTimeout time.Duration // Max time allowed for graceful shutdown
	MaxRequestSize  int           // Maximum size of incoming requests (in bytes)
	MaxResponseSize int           // Maximum size of outgoing responses (in bytes)

	EnableRateLimit bool          // Whether rate limiting is enforced
	RateLimit       int           // Requests per second allowed
	RateLimitBurst  int           // Burst capacity for client requests
	RateLimitWindow time.Duration // Time window used for rate calculation

	Logger  logger.Logger
	Metrics ServerMetrics
	Clock   vault.Clock
}

// DefaultVaultServerConfig returns a VaultServerConfig pre-populated with safe
// defaults. Callers must explicitly set OwnerID, and DataDir when persistence
// is enabled.
func DefaultVaultServerConfig() VaultServerConfig {
	return VaultServerConfig{
		ListenAddress:    DefaultListenAddress,
		SnapshotInterval: DefaultSnapshotInterval,
		RequestTimeout:   DefaultRequestTimeout,
		ShutdownTimeout:  DefaultShutdownTimeout,
		MaxRequestSize:   DefaultMaxRequestSize,
		MaxResponseSize:  DefaultMaxResponseSize,
		EnableRateLimit:  false,
		RateLimit:        DefaultRateLimit,
		RateLimitBurst:   DefaultRateLimitBurst,
		RateLimitWindow:  DefaultRateLimitWindow,
		Logger:           logger.NewNoOpLogger(),
		Metrics:          NewNoOpServerMetrics(),
		Clock:            vault.NewStandardClock(),
	}
}

// Validate checks if the server configuration is valid.
func (c *VaultServerConfig) Validate() error {
	if c.OwnerID == "" {
		return NewVaultServerConfigError("OwnerID cannot be empty")
	}
	if c.ListenAddress == "" {
		return NewVaultServerConfigError("ListenAddress cannot be empty")
	}
	if c.EnablePersistence && c.DataDir == "" {
		return NewVaultServerConfigError("DataDir cannot be empty when persistence is enabled")
	}

	checkPositiveDuration := func(val time.Duration, name string) error {
		if val <= 0 {
			return NewVaultServerConfigError(fmt.Sprintf("%s must be positive", name))
		}
		return nil
	}

	checkPositiveInt := func(val int, name string) error {
		if val <= 0 {
			return NewVaultServerConfigError(fmt.Sprintf("%s must be positive", name))
		}
		return nil
	}

	if err := checkPositiveDuration(c.RequestTimeout, "RequestTimeout"); err != nil {
		return err
	}
	if err := checkPositiveDuration(c.ShutdownTimeout, "ShutdownTimeout"); err != nil {
		return err
	}
	if err := checkPositiveInt(c.MaxRequestSize, "MaxRequestSize"); err != nil {
		return err
	}
	if err := checkPositiveInt(c.MaxResponseSize, "MaxResponseSize"); err != nil {
		return err
	}

	if c.EnablePersistence {
		if err := checkPositiveDuration(c.SnapshotInterval, "SnapshotInterval"); err != nil {
			return err
		}
	}

	if c.EnableRateLimit {
		if err := checkPositiveInt(c.RateLimit, "RateLimit"); err != nil {
			return err
		}
		if err := checkPositiveInt(c.RateLimitBurst, "RateLimitBurst"); err != nil {
			return err
		}
		if err := checkPositiveDuration(c.RateLimitWindow, "RateLimitWindow"); err != nil {
			return err
		}
	}

	return nil
}

// VaultServerConfigError represents a validation error in VaultServerConfig.
type VaultServerConfigError struct {
	Message string
}

// NewVaultServerConfigError returns a new config error instance.
func NewVaultServerConfigError(msg string) *VaultServerConfigError {
	return &VaultServerConfigError{Message: msg}
}

// Error implements the error interface.
func (e *VaultServerConfigError) Error() string {
	return "server config error: " + e.Message
}
