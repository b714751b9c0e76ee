package server

import (
	"context"

	pb "github.com/jathurchan/vaultlock/proto"
)

// VaultLockServer defines the interface for the gRPC front end of the escrow
// vault. It validates client requests, enforces rate limits, drives the vault
// engine, and periodically persists engine state.
type VaultLockServer interface {
	pb.VaultLockServer

	// Start binds the listen address, restores any persisted state, and runs
	// the gRPC server and background snapshot worker.
	//
	// Returns an error if initialization fails (e.g., port conflict, corrupt
	// snapshot).
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server, taking a final state snapshot
	// when persistence is enabled. The provided context can set a deadline
	// for shutdown.
	Stop(ctx context.Context) error

	// Metrics returns current metrics for observability and monitoring.
	Metrics() ServerMetrics
}
