package client

import (
	"sync"
	"time"
)

// ClientMetrics exposes client-side metrics for observability and monitoring.
type ClientMetrics interface {
	// GetRequestCount returns the total number of requests for the given operation type.
	GetRequestCount(operation string) uint64

	// GetSuccessRate returns the success rate (0.0 to 1.0) for the given operation type.
	GetSuccessRate(operation string) float64

	// GetAverageLatency returns the average latency for the given operation type.
	GetAverageLatency(operation string) time.Duration

	// GetRetryCount returns the total number of retries for the given operation type.
	GetRetryCount(operation string) uint64

	// Reset clears all collected metrics.
	Reset()
}

// Metrics is the recording side of client metrics, used internally by the
// base client. Implementations must be safe for concurrent use.
type Metrics interface {
	ClientMetrics

	// IncrSuccess records a successful operation.
	IncrSuccess(operation string)

	// IncrFailure records a failed operation (after all retries).
	IncrFailure(operation string)

	// IncrRetry records a retry attempt.
	IncrRetry(operation string)

	// ObserveLatency records the end-to-end latency of an operation.
	ObserveLatency(operation string, latency time.Duration)
}

// opStats accumulates per-operation counters.
type opStats struct {
	successes    uint64
	failures     uint64
	retries      uint64
	totalLatency time.Duration
	observations uint64
}

// clientMetrics is the default Metrics implementation.
type clientMetrics struct {
	mu    sync.RWMutex
	stats map[string]*opStats
}

func newMetrics() Metrics {
	return &clientMetrics{stats: make(map[string]*opStats)}
}

func (m *clientMetrics) get(operation string) *opStats {
	s, ok := m.stats[operation]
	if !ok {
		s = &opStats{}
		m.stats[operation] = s
	}
	return s
}

func (m *clientMetrics) IncrSuccess(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(operation).successes++
}

func (m *clientMetrics) IncrFailure(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(operation).failures++
}

func (m *clientMetrics) IncrRetry(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(operation).retries++
}

func (m *clientMetrics) ObserveLatency(operation string, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(operation)
	s.totalLatency += latency
	s.observations++
}

func (m *clientMetrics) GetRequestCount(operation string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.stats[operation]; ok {
		return s.successes + s.failures
	}
	return 0
}

func (m *clientMetrics) GetSuccessRate(operation string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stats[operation]
	if !ok || s.successes+s.failures == 0 {
		return 0
	}
	return float64(s.successes) / float64(s.successes+s.failures)
}

func (m *clientMetrics) GetAverageLatency(operation string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stats[operation]
	if !ok || s.observations == 0 {
		return 0
	}
	return s.totalLatency / time.Duration(s.observations)
}

func (m *clientMetrics) GetRetryCount(operation string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.stats[operation]; ok {
		return s.retries
	}
	return 0
}

func (m *clientMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = make(map[string]*opStats)
}

// noOpMetrics discards all measurements.
type noOpMetrics struct{}

func (noOpMetrics) IncrSuccess(string)                     {}
func (noOpMetrics) IncrFailure(string)                     {}
func (noOpMetrics) IncrRetry(string)                       {}
func (noOpMetrics) ObserveLatency(string, time.Duration)   {}
func (noOpMetrics) GetRequestCount(string) uint64          { return 0 }
func (noOpMetrics) GetSuccessRate(string) float64          { return 0 }
func (noOpMetrics) GetAverageLatency(string) time.Duration { return 0 }
func (noOpMetrics) GetRetryCount(string) uint64            { return 0 }
func (noOpMetrics) Reset()                                 {}
