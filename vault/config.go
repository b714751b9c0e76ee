package vault

import (
	"github.com/jathurchan/vaultlock/logger"
	"github.com/jathurchan/vaultlock/types"
)

// EngineOption defines a function that applies a configuration setting
// to a VaultEngine during initialization.
type EngineOption func(*EngineConfig)

// EngineConfig holds configuration parameters for a VaultEngine instance.
type EngineConfig struct {
	// MaxLockers limits the total number of lockers the vault tracks.
	MaxLockers int

	// MaxPlayersPerLocker limits the number of participants per locker.
	// Zero means unlimited.
	MaxPlayersPerLocker int

	// InitialFeeRateBps is the fee rate installed at construction,
	// in parts per thousand. Defaults to zero.
	InitialFeeRateBps uint32

	// InitialTokens are whitelisted at construction.
	InitialTokens []types.TokenID

	Serializer Serializer
	Clock      Clock
	Logger     logger.Logger
	Metrics    Metrics
}

// DefaultEngineConfig returns an EngineConfig with sensible defaults
// based on the predefined constants.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxLockers:          DefaultMaxLockers,
		MaxPlayersPerLocker: DefaultMaxPlayersPerLocker,
		InitialFeeRateBps:   0,
	}
}

// WithMaxLockers sets the maximum number of lockers the vault tracks.
func WithMaxLockers(max int) EngineOption {
	return func(cfg *EngineConfig) {
		if max > 0 {
			cfg.MaxLockers = max
		}
	}
}

// WithMaxPlayersPerLocker sets the participant limit per locker. Zero means unlimited.
func WithMaxPlayersPerLocker(max int) EngineOption {
	return func(cfg *EngineConfig) {
		if max >= 0 {
			cfg.MaxPlayersPerLocker = max
		}
	}
}

// WithFeeRate sets the fee rate installed at construction.
func WithFeeRate(rateBps uint32) EngineOption {
	return func(cfg *EngineConfig) {
		if rateBps <= MaxFeeRateBps {
			cfg.InitialFeeRateBps = rateBps
		}
	}
}

// WithTokens whitelists the given tokens at construction.
func WithTokens(tokens ...types.TokenID) EngineOption {
	return func(cfg *EngineConfig) {
		cfg.InitialTokens = append(cfg.InitialTokens, tokens...)
	}
}

// WithSerializer sets the serializer used for snapshots.
func WithSerializer(serializer Serializer) EngineOption {
	return func(cfg *EngineConfig) {
		if serializer != nil {
			cfg.Serializer = serializer
		}
	}
}

// WithClock sets the clock used to stamp locker records.
func WithClock(clock Clock) EngineOption {
	return func(cfg *EngineConfig) {
		if clock != nil {
			cfg.Clock = clock
		}
	}
}

// WithLogger sets the logger for internal events.
func WithLogger(logger logger.Logger) EngineOption {
	return func(cfg *EngineConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithMetrics sets the metrics collector for operational data.
func WithMetrics(metrics Metrics) EngineOption {
	return func(cfg *EngineConfig) {
		if metrics != nil {
			cfg.Metrics = metrics
		}
	}
}
