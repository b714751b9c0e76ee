package logger

import "github.com/jathurchan/vaultlock/types"

// Logger is the structured key-value logging interface used across the vault.
// Keys and values are passed as alternating arguments, e.g.:
//
//	log.Infow("Locker resolved", "lockerID", id, "winner", winner)
//
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debugw logs a message at debug level with optional key-value pairs.
	Debugw(msg string, keysAndValues ...any)

	// Infow logs a message at info level with optional key-value pairs.
	Infow(msg string, keysAndValues ...any)

	// Warnw logs a message at warn level with optional key-value pairs.
	Warnw(msg string, keysAndValues ...any)

	// Errorw logs a message at error level with optional key-value pairs.
	Errorw(msg string, keysAndValues ...any)

	// Fatalw logs a message at fatal level and terminates the process.
	Fatalw(msg string, keysAndValues ...any)

	// With returns a logger that includes the given key-value pairs
	// in every subsequent log entry.
	With(keysAndValues ...any) Logger

	// WithComponent returns a logger with a component name added to the context.
	WithComponent(name string) Logger

	// WithAccount returns a logger with an account ID added to the context.
	WithAccount(id types.AccountID) Logger

	// WithLocker returns a logger with a locker ID added to the context.
	WithLocker(id types.LockerID) Logger
}
