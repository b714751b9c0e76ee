package server

import "time"

const (
	// --- Default server configuration values ---

	// DefaultListenAddress is the default address for the server's client-facing gRPC endpoint.
	DefaultListenAddress = "0.0.0.0:8080"

	// DefaultRequestTimeout is the default timeout for processing individual client requests.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful server shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultMaxRequestSize is the default maximum size for incoming client gRPC requests (4MB).
	DefaultMaxRequestSize = 4 * 1024 * 1024

	// DefaultMaxResponseSize is the default maximum size for outgoing client gRPC responses (4MB).
	DefaultMaxResponseSize = 4 * 1024 * 1024

	// --- Rate limiting defaults ---

	// DefaultRateLimit is the default number of requests per second per client.
	DefaultRateLimit = 100

	// DefaultRateLimitBurst is the default burst size for rate limiting.
	DefaultRateLimitBurst = 200

	// DefaultRateLimitWindow is the default time window for rate limiting calculations.
	DefaultRateLimitWindow = time.Second

	// --- Snapshot persistence defaults ---

	// DefaultSnapshotInterval is the default interval between periodic state snapshots.
	DefaultSnapshotInterval = 30 * time.Second

	// --- Client-facing gRPC server configuration ---

	// DefaultGRPCKeepaliveTime is the default interval for the server to send keepalive pings
	// to idle client connections.
	DefaultGRPCKeepaliveTime = 30 * time.Second

	// DefaultGRPCKeepaliveTimeout is the default timeout for the server to wait for a
	// keepalive acknowledgment from clients.
	DefaultGRPCKeepaliveTimeout = 5 * time.Second

	// --- Validation limits for client-provided data ---

	// MaxAccountIDLength is the maximum allowed length for account IDs.
	MaxAccountIDLength = 256

	// MaxTokenIDLength is the maximum allowed length for token IDs.
	MaxTokenIDLength = 128

	// MaxTokensPerRequest is the maximum number of tokens a single AddTokens call may whitelist.
	MaxTokensPerRequest = 64

	// --- Pagination limits ---

	// DefaultPageLimit is the default number of items returned in paginated responses.
	DefaultPageLimit = 100

	// MaxPageLimit is the maximum number of items that can be requested in a single page.
	MaxPageLimit = 1000

	// --- Error message templates for validation ---

	// ErrMsgInvalidAccountID is the error message template for invalid account IDs.
	ErrMsgInvalidAccountID = "%s must be a non-empty string with length <= %d characters"
	// ErrMsgInvalidTokenID is the error message template for invalid token IDs.
	ErrMsgInvalidTokenID = "token_id must be a non-empty string with length <= %d characters"
	// ErrMsgInvalidLockerID is the error message template for invalid locker IDs.
	ErrMsgInvalidLockerID = "locker_id must be exactly %d bytes"
)

// ServerOperationalState defines the possible operational states of the server.
type ServerOperationalState string

const (
	// ServerStateStarting indicates the server is in the process of starting up.
	ServerStateStarting ServerOperationalState = "starting"
	// ServerStateRunning indicates the server is running and accepting requests.
	ServerStateRunning ServerOperationalState = "running"
	// ServerStateStopping indicates the server is in the process of shutting down.
	ServerStateStopping ServerOperationalState = "stopping"
	// ServerStateStopped indicates the server has been stopped.
	ServerStateStopped ServerOperationalState = "stopped"
)

// gRPC method names for metrics collection and logging
const (
	MethodCreateLocker   = "CreateLocker"
	MethodDepositLocker  = "DepositLocker"
	MethodCloseLocker    = "CloseLocker"
	MethodSetWinner      = "SetWinner"
	MethodWithdrawLocker = "WithdrawLocker"
	MethodWithdraw       = "Withdraw"
	MethodWithdrawFee    = "WithdrawFee"
	MethodAddTokens      = "AddTokens"
	MethodSetFee         = "SetFee"
	MethodGetFee         = "GetFee"
	MethodCalculateFee   = "CalculateFee"
	MethodGetLocker      = "GetLocker"
	MethodGetLockers     = "GetLockers"
	MethodGetBalance     = "GetBalance"
	MethodGetFeeBalance  = "GetFeeBalance"
	MethodGetToken       = "GetToken"
	MethodHealth         = "Health"
)

// Error types for metrics and logging (used with ServerMetrics.IncrValidationError/IncrServerError)
const (
	ErrorTypeMissingField  = "missing_field"
	ErrorTypeInvalidFormat = "invalid_format"
	ErrorTypeOutOfRange    = "out_of_range"
	ErrorTypeTooLong       = "too_long"
	ErrorTypeInternalError = "internal_error"
	ErrorTypeTimeout       = "timeout"
	ErrorTypeRateLimit     = "rate_limit_exceeded"
)
