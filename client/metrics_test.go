package client

import (
	"testing"
	"time"

	"github.com/jathurchan/vaultlock/testutil"
)

func TestClientMetricsCounters(t *testing.T) {
	m := newMetrics()

	m.IncrSuccess("CreateLocker")
	m.IncrSuccess("CreateLocker")
	m.IncrFailure("CreateLocker")
	m.IncrRetry("CreateLocker")
	m.IncrRetry("CreateLocker")
	m.IncrRetry("CreateLocker")

	testutil.AssertEqual(t, uint64(3), m.GetRequestCount("CreateLocker"))
	testutil.AssertEqual(t, uint64(3), m.GetRetryCount("CreateLocker"))

	rate := m.GetSuccessRate("CreateLocker")
	testutil.AssertTrue(t, rate > 0.66 && rate < 0.67, "expected 2/3 success rate, got", rate)

	testutil.AssertEqual(t, uint64(0), m.GetRequestCount("Withdraw"))
	testutil.AssertEqual(t, float64(0), m.GetSuccessRate("Withdraw"))
}

func TestClientMetricsLatency(t *testing.T) {
	m := newMetrics()

	m.ObserveLatency("GetFee", 10*time.Millisecond)
	m.ObserveLatency("GetFee", 30*time.Millisecond)

	testutil.AssertEqual(t, 20*time.Millisecond, m.GetAverageLatency("GetFee"))
	testutil.AssertEqual(t, time.Duration(0), m.GetAverageLatency("GetBalance"))
}

func TestClientMetricsReset(t *testing.T) {
	m := newMetrics()
	m.IncrSuccess("GetFee")
	m.ObserveLatency("GetFee", time.Millisecond)

	m.Reset()
	testutil.AssertEqual(t, uint64(0), m.GetRequestCount("GetFee"))
	testutil.AssertEqual(t, time.Duration(0), m.GetAverageLatency("GetFee"))
}

func TestNoOpMetrics(t *testing.T) {
	m := noOpMetrics{}
	m.IncrSuccess("x")
	m.IncrFailure("x")
	m.IncrRetry("x")
	m.ObserveLatency("x", time.Second)
	m.Reset()

	testutil.AssertEqual(t, uint64(0), m.GetRequestCount("x"))
	testutil.AssertEqual(t, float64(0), m.GetSuccessRate("x"))
	testutil.AssertEqual(t, time.Duration(0), m.GetAverageLatency("x"))
	testutil.AssertEqual(t, uint64(0), m.GetRetryCount("x"))
}
