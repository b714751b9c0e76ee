package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jathurchan/vaultlock/logger"
	"github.com/jathurchan/vaultlock/server"
	"github.com/jathurchan/vaultlock/token"
	"github.com/jathurchan/vaultlock/types"
	"github.com/jathurchan/vaultlock/vault"
)

const (
	exitFailure     = 1
	exitInterrupted = 130 // Exit code for SIGINT or SIGTERM

	custodyAccount = types.AccountID("vaultlock-custody")
)

// Command-line flags
var (
	listenAddr = flag.String("listen", server.DefaultListenAddress, "gRPC listen address")
	ownerID    = flag.String("owner", "", "Vault owner account ID (required)")
	dataDir    = flag.String("data-dir", "", "Directory for state snapshots (enables persistence)")
	snapshotIv = flag.Duration("snapshot-interval", server.DefaultSnapshotInterval, "Interval between periodic snapshots")
	tokensStr  = flag.String("tokens", "", "Comma-separated token IDs to whitelist at startup")
	feeRate    = flag.Uint("fee-rate", 0, "Protocol fee rate in parts per thousand (0-1000)")
	rateLimit  = flag.Int("rate-limit", 0, "Requests per second allowed (0 disables rate limiting)")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")

	faucetAccts  = flag.String("faucet-accounts", "", "Comma-separated accounts to pre-fund in the in-memory bank")
	faucetAmount = flag.Uint64("faucet-amount", 1_000_000, "Amount of each whitelisted token minted per faucet account")
)

func main() {
	flag.Parse()

	if *ownerID == "" {
		log.Printf("the -owner flag is required")
		flag.Usage()
		os.Exit(exitFailure)
	}
	if *feeRate > vault.MaxFeeRateBps {
		log.Printf("fee rate %d exceeds the maximum of %d", *feeRate, vault.MaxFeeRateBps)
		os.Exit(exitFailure)
	}

	appLogger := logger.NewStdLogger(*logLevel)

	engine, err := buildEngine(appLogger)
	if err != nil {
		log.Printf("failed to initialize vault engine: %v", err)
		os.Exit(exitFailure)
	}

	config := server.DefaultVaultServerConfig()
	config.ListenAddress = *listenAddr
	config.OwnerID = types.AccountID(*ownerID)
	config.Logger = appLogger
	if *dataDir != "" {
		config.EnablePersistence = true
		config.DataDir = *dataDir
		config.SnapshotInterval = *snapshotIv
	}
	if *rateLimit > 0 {
		config.EnableRateLimit = true
		config.RateLimit = *rateLimit
		config.RateLimitBurst = *rateLimit * 2
	}

	srv, err := server.NewVaultLockServer(engine, config)
	if err != nil {
		log.Printf("failed to initialize server: %v", err)
		os.Exit(exitFailure)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		log.Printf("failed to start server: %v", err)
		os.Exit(exitFailure)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	appLogger.Infow("Received signal, shutting down", "signal", sig.String())

	stopCtx, stopCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout+5*time.Second)
	defer stopCancel()

	if err := srv.Stop(stopCtx); err != nil {
		log.Printf("shutdown finished with error: %v", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitInterrupted)
}

// buildEngine assembles the vault engine for standalone operation, backed by
// the in-memory token bank.
func buildEngine(appLogger logger.Logger) (vault.VaultEngine, error) {
	tokens := splitIDs(*tokensStr)

	opts := []vault.EngineOption{
		vault.WithLogger(appLogger),
		vault.WithFeeRate(uint32(*feeRate)),
	}
	if len(tokens) > 0 {
		opts = append(opts, vault.WithTokens(tokens...))
	}

	bank := token.NewMemoryBank(custodyAccount)
	fundFaucetAccounts(bank, tokens, appLogger)
	return vault.NewVaultEngine(types.AccountID(*ownerID), bank, opts...)
}

// fundFaucetAccounts mints and approves a balance of every whitelisted token
// for each requested account. Only useful with the in-memory bank; real
// deployments fund accounts out of band.
func fundFaucetAccounts(bank *token.MemoryBank, tokens []types.TokenID, appLogger logger.Logger) {
	if *faucetAccts == "" || *faucetAmount == 0 {
		return
	}
	for _, acct := range strings.Split(*faucetAccts, ",") {
		acct = strings.TrimSpace(acct)
		if acct == "" {
			continue
		}
		for _, tok := range tokens {
			bank.Mint(tok, types.AccountID(acct), *faucetAmount)
			bank.Approve(tok, types.AccountID(acct), *faucetAmount)
		}
		appLogger.Infow("Funded faucet account", "account", acct, "amount", *faucetAmount, "tokens", len(tokens))
	}
}

func splitIDs(s string) []types.TokenID {
	var out []types.TokenID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, types.TokenID(part))
		}
	}
	return out
}
