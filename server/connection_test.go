package server

import (
	"testing"
	"time"

	"github.com/jathurchan/vaultlock/logger"
	"github.com/jathurchan/vaultlock/testutil"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time                  { return c.now }
func (c *stubClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }

func (c *stubClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestConnectionManagerLifecycle(t *testing.T) {
	clock := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cm := NewConnectionManager(NewNoOpServerMetrics(), logger.NewNoOpLogger(), clock)

	testutil.AssertEqual(t, 0, cm.GetActiveConnections())

	cm.OnConnect("10.0.0.1:50000")
	cm.OnConnect("10.0.0.2:50001")
	testutil.AssertEqual(t, 2, cm.GetActiveConnections())

	// Reconnecting the same address is a no-op.
	cm.OnConnect("10.0.0.1:50000")
	testutil.AssertEqual(t, 2, cm.GetActiveConnections())

	clock.advance(5 * time.Second)
	cm.OnRequest("10.0.0.1:50000")
	cm.OnRequest("10.0.0.1:50000")

	infos := cm.GetAllConnectionInfo()
	testutil.AssertLen(t, infos, 2)

	conn := infos["10.0.0.1:50000"]
	testutil.AssertEqual(t, int64(2), conn.RequestCount)
	testutil.AssertEqual(t, clock.now, conn.LastActive)
	testutil.AssertTrue(t, conn.LastActive.After(conn.ConnectedAt))

	cm.OnDisconnect("10.0.0.1:50000")
	testutil.AssertEqual(t, 1, cm.GetActiveConnections())

	// Disconnecting an unknown address is harmless.
	cm.OnDisconnect("10.9.9.9:1")
	testutil.AssertEqual(t, 1, cm.GetActiveConnections())
}

func TestConnectionManagerRequestForUnknownConnection(t *testing.T) {
	cm := NewConnectionManager(NewNoOpServerMetrics(), logger.NewNoOpLogger(), nil)

	cm.OnRequest("10.0.0.1:50000")
	testutil.AssertEqual(t, 0, cm.GetActiveConnections())
	testutil.AssertLen(t, cm.GetAllConnectionInfo(), 0)
}
