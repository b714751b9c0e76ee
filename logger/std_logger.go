package logger

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/jathurchan/vaultlock/types"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// ParseLogLevel maps a string to a LogLevel. Defaults to LevelInfo on unknown input.
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// StdLogger logs messages using Go's standard library log package.
// Persistent context keys are emitted in sorted order for stable output.
type StdLogger struct {
	context  map[string]any
	minLevel LogLevel
}

// NewStdLogger returns a new StdLogger with a minimum log level filter.
func NewStdLogger(minLevelStr string) Logger {
	return &StdLogger{
		context:  make(map[string]any),
		minLevel: ParseLogLevel(minLevelStr),
	}
}

// log outputs a structured log entry if the level meets the threshold.
func (l *StdLogger) log(level LogLevel, levelStr string, msg string, kvs ...any) {
	if level < l.minLevel {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", strings.ToUpper(levelStr), msg)

	keys := make([]string, 0, len(l.context))
	for k := range l.context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, l.context[k])
	}

	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", key, kvs[i+1])
	}

	log.Println(b.String())

	if level == LevelFatal {
		os.Exit(1)
	}
}

func (l *StdLogger) Debugw(msg string, kvs ...any) { l.log(LevelDebug, "debug", msg, kvs...) }
func (l *StdLogger) Infow(msg string, kvs ...any)  { l.log(LevelInfo, "info", msg, kvs...) }
func (l *StdLogger) Warnw(msg string, kvs ...any)  { l.log(LevelWarn, "warn", msg, kvs...) }
func (l *StdLogger) Errorw(msg string, kvs ...any) { l.log(LevelError, "error", msg, kvs...) }
func (l *StdLogger) Fatalw(msg string, kvs ...any) { l.log(LevelFatal, "fatal", msg, kvs...) }

// cloneWithContext returns a copy of the logger with merged context.
func (l *StdLogger) cloneWithContext(extra map[string]any) *StdLogger {
	newCtx := make(map[string]any, len(l.context)+len(extra))
	for k, v := range l.context {
		newCtx[k] = v
	}
	for k, v := range extra {
		newCtx[k] = v
	}
	return &StdLogger{context: newCtx, minLevel: l.minLevel}
}

// With adds key-value pairs to the logger's context.
func (l *StdLogger) With(kvs ...any) Logger {
	ctx := make(map[string]any)
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvs[i+1]
	}
	return l.cloneWithContext(ctx)
}

// WithComponent returns a logger with a component name added to the context.
func (l *StdLogger) WithComponent(name string) Logger {
	return l.cloneWithContext(map[string]any{"component": name})
}

// WithAccount returns a logger with an account ID added to the context.
func (l *StdLogger) WithAccount(id types.AccountID) Logger {
	return l.cloneWithContext(map[string]any{"account": id})
}

// WithLocker returns a logger with a locker ID added to the context.
func (l *StdLogger) WithLocker(id types.LockerID) Logger {
	return l.cloneWithContext(map[string]any{"locker": id.String()})
}
