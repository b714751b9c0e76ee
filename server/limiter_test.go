package server

import (
	"context"
	"testing"
	"time"

	"github.com/jathurchan/vaultlock/logger"
	"github.com/jathurchan/vaultlock/testutil"
)

func TestTokenBucketRateLimiter_AllowWithinBurst(t *testing.T) {
	rl := NewTokenBucketRateLimiter(10, 5, time.Second, logger.NewNoOpLogger())

	for i := 0; i < 5; i++ {
		testutil.AssertTrue(t, rl.Allow(), "request within burst must be allowed")
	}
	testutil.AssertFalse(t, rl.Allow(), "request beyond burst must be rejected")
}

func TestTokenBucketRateLimiter_ZeroWindowDisablesLimiting(t *testing.T) {
	rl := NewTokenBucketRateLimiter(1, 1, 0, logger.NewNoOpLogger())

	for i := 0; i < 100; i++ {
		testutil.AssertTrue(t, rl.Allow())
	}
}

func TestTokenBucketRateLimiter_WaitHonorsContext(t *testing.T) {
	rl := NewTokenBucketRateLimiter(1, 1, time.Hour, logger.NewNoOpLogger())
	testutil.AssertTrue(t, rl.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)
	testutil.AssertError(t, err, "wait must fail when the context expires first")
}
