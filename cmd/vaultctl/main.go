package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jathurchan/vaultlock/client"
	"github.com/jathurchan/vaultlock/types"
)

const (
	defaultAddr    = "localhost:50052"
	defaultTimeout = 5 * time.Second
)

// Command-line flags
var (
	addr   = flag.String("addr", defaultAddr, "Server address (host:port)")
	caller = flag.String("as", "", "Account ID issuing the command")
)

func main() {
	flag.Usage = showUsage
	flag.Parse()

	if flag.NArg() < 1 {
		showUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "create":
		handleCreate(args)
	case "deposit":
		handleDeposit(args)
	case "withdraw-locker":
		handleWithdrawLocker(args)
	case "withdraw":
		handleWithdraw(args)
	case "get":
		handleGet(args)
	case "list":
		handleList(args)
	case "balance":
		handleBalance(args)
	case "fee":
		handleFee(args)
	case "token":
		handleToken(args)
	case "close":
		handleClose(args)
	case "resolve":
		handleResolve(args)
	case "withdraw-fee":
		handleWithdrawFee(args)
	case "add-tokens":
		handleAddTokens(args)
	case "set-fee":
		handleSetFee(args)
	case "fee-balance":
		handleFeeBalance(args)
	case "health":
		handleHealth(args)
	case "help":
		showUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		showUsage()
		os.Exit(1)
	}
}

// newClient builds a participant client connected to -addr.
func newClient() client.VaultLockClient {
	c, err := client.NewVaultLockClientBuilder([]string{*addr}).Build()
	if err != nil {
		exitWithError("Error creating client", err)
	}
	return c
}

// newAdminClient builds an owner-facing client connected to -addr.
func newAdminClient() client.AdminClient {
	c, err := client.NewVaultLockClientBuilder([]string{*addr}).BuildAdmin()
	if err != nil {
		exitWithError("Error creating client", err)
	}
	return c
}

func callerID() types.AccountID {
	if *caller == "" {
		fmt.Fprintln(os.Stderr, "The -as flag is required for this command")
		os.Exit(1)
	}
	return types.AccountID(*caller)
}

// getLockerID parses the positional locker ID argument of a subcommand.
func getLockerID(cmd *flag.FlagSet, args []string, commandName string) types.LockerID {
	cmd.Parse(args)
	if cmd.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Locker ID required for %s command\n", commandName)
		os.Exit(1)
	}

	id, err := types.ParseLockerID(cmd.Arg(0))
	if err != nil {
		exitWithError("Invalid locker ID", err)
	}
	return id
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultTimeout)
}

func handleCreate(args []string) {
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	tokenID := createCmd.String("token", "", "Token to stake")
	amount := createCmd.Uint64("amount", 0, "Stake amount per player")
	createCmd.Parse(args)

	if *tokenID == "" || *amount == 0 {
		fmt.Fprintln(os.Stderr, "Both -token and -amount are required for create")
		os.Exit(1)
	}

	id, err := client.RandomLockerID()
	if err != nil {
		exitWithError("Error generating locker ID", err)
	}
	if createCmd.NArg() > 0 {
		if id, err = types.ParseLockerID(createCmd.Arg(0)); err != nil {
			exitWithError("Invalid locker ID", err)
		}
	}

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	locker, err := c.CreateLocker(ctx, &client.CreateLockerRequest{
		CallerID: callerID(),
		LockerID: id,
		Token:    types.TokenID(*tokenID),
		Amount:   *amount,
	})
	if err != nil {
		exitWithError("Error creating locker", err)
	}
	fmt.Printf("Created locker %s with stake %d %s\n", locker.LockerID, locker.Stake, locker.Token)
	os.Exit(0)
}

func handleDeposit(args []string) {
	depositCmd := flag.NewFlagSet("deposit", flag.ExitOnError)
	id := getLockerID(depositCmd, args, "deposit")

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	locker, err := c.DepositLocker(ctx, &client.DepositLockerRequest{
		CallerID: callerID(),
		LockerID: id,
	})
	if err != nil {
		exitWithError("Error depositing into locker", err)
	}
	fmt.Printf("Deposited %d %s; locker now holds %d across %d players\n",
		locker.Stake, locker.Token, locker.TotalBalance, locker.PlayersCount)
	os.Exit(0)
}

func handleWithdrawLocker(args []string) {
	wlCmd := flag.NewFlagSet("withdraw-locker", flag.ExitOnError)
	to := wlCmd.String("to", "", "Destination account (defaults to caller)")
	id := getLockerID(wlCmd, args, "withdraw-locker")

	caller := callerID()
	dest := caller
	if *to != "" {
		dest = types.AccountID(*to)
	}

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	res, err := c.WithdrawLocker(ctx, &client.WithdrawLockerRequest{
		CallerID: caller,
		LockerID: id,
		To:       dest,
	})
	if err != nil {
		exitWithError("Error withdrawing stake", err)
	}
	fmt.Printf("Refunded %d to %s; locker now holds %d across %d players\n",
		res.Refunded, dest, res.Locker.TotalBalance, res.Locker.PlayersCount)
	os.Exit(0)
}

func handleWithdraw(args []string) {
	wCmd := flag.NewFlagSet("withdraw", flag.ExitOnError)
	tokenID := wCmd.String("token", "", "Token to withdraw")
	amount := wCmd.Uint64("amount", 0, "Amount to withdraw (0 withdraws everything)")
	to := wCmd.String("to", "", "Destination account (defaults to caller)")
	wCmd.Parse(args)

	if *tokenID == "" {
		fmt.Fprintln(os.Stderr, "The -token flag is required for withdraw")
		os.Exit(1)
	}

	caller := callerID()
	dest := caller
	if *to != "" {
		dest = types.AccountID(*to)
	}

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	if *amount == 0 {
		withdrawn, err := client.WithdrawAll(ctx, c, caller, dest, types.TokenID(*tokenID))
		if err != nil {
			exitWithError("Error withdrawing balance", err)
		}
		fmt.Printf("Withdrew %d %s to %s\n", withdrawn, *tokenID, dest)
		os.Exit(0)
	}

	remaining, err := c.Withdraw(ctx, &client.WithdrawRequest{
		CallerID: caller,
		To:       dest,
		Token:    types.TokenID(*tokenID),
		Amount:   *amount,
	})
	if err != nil {
		exitWithError("Error withdrawing balance", err)
	}
	fmt.Printf("Withdrew %d %s to %s; remaining balance %d\n", *amount, *tokenID, dest, remaining)
	os.Exit(0)
}

func handleGet(args []string) {
	getCmd := flag.NewFlagSet("get", flag.ExitOnError)
	id := getLockerID(getCmd, args, "get")

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	locker, err := c.GetLocker(ctx, id)
	if err != nil {
		exitWithError("Error fetching locker", err)
	}
	printLocker(locker)
	os.Exit(0)
}

func handleList(args []string) {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	state := listCmd.String("state", "", "Filter by state: open, closed, resolved")
	tokenID := listCmd.String("token", "", "Filter by token")
	creator := listCmd.String("creator", "", "Filter by creator account")
	limit := listCmd.Int("limit", 0, "Maximum lockers to return (0 for server default)")
	offset := listCmd.Int("offset", 0, "Number of lockers to skip")
	listCmd.Parse(args)

	filter := &client.LockerFilter{
		Token:   types.TokenID(*tokenID),
		Creator: types.AccountID(*creator),
	}
	if *state != "" {
		parsed, err := parseState(*state)
		if err != nil {
			exitWithError("Invalid state filter", err)
		}
		filter.State = parsed
	}

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	res, err := c.GetLockers(ctx, &client.GetLockersRequest{
		Filter: filter,
		Limit:  *limit,
		Offset: *offset,
	})
	if err != nil {
		exitWithError("Error listing lockers", err)
	}

	fmt.Printf("%d of %d lockers:\n", len(res.Lockers), res.Total)
	for _, locker := range res.Lockers {
		fmt.Printf("  %s  %-8s  stake=%d  balance=%d  players=%d  token=%s\n",
			locker.LockerID, locker.State, locker.Stake, locker.TotalBalance,
			locker.PlayersCount, locker.Token)
	}
	os.Exit(0)
}

func handleBalance(args []string) {
	balCmd := flag.NewFlagSet("balance", flag.ExitOnError)
	tokenID := balCmd.String("token", "", "Token to query")
	account := balCmd.String("account", "", "Account to query (defaults to -as)")
	balCmd.Parse(args)

	if *tokenID == "" {
		fmt.Fprintln(os.Stderr, "The -token flag is required for balance")
		os.Exit(1)
	}
	who := types.AccountID(*account)
	if who == "" {
		who = callerID()
	}

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	balance, err := c.GetBalance(ctx, who, types.TokenID(*tokenID))
	if err != nil {
		exitWithError("Error fetching balance", err)
	}
	fmt.Printf("Balance of %s for %s: %d\n", who, *tokenID, balance)
	os.Exit(0)
}

func handleFee(args []string) {
	feeCmd := flag.NewFlagSet("fee", flag.ExitOnError)
	amount := feeCmd.Uint64("amount", 0, "If set, also show the fee charged on this amount")
	feeCmd.Parse(args)

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	rate, err := c.GetFee(ctx)
	if err != nil {
		exitWithError("Error fetching fee rate", err)
	}
	fmt.Printf("Fee rate: %d/1000\n", rate)

	if *amount > 0 {
		fee, err := c.CalculateFee(ctx, *amount)
		if err != nil {
			exitWithError("Error calculating fee", err)
		}
		fmt.Printf("Fee on %d: %d\n", *amount, fee)
	}
	os.Exit(0)
}

func handleToken(args []string) {
	tokCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokCmd.Parse(args)
	if tokCmd.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Token ID required for token command")
		os.Exit(1)
	}

	c := newClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	ok, err := c.IsTokenWhitelisted(ctx, types.TokenID(tokCmd.Arg(0)))
	if err != nil {
		exitWithError("Error checking token", err)
	}
	if ok {
		fmt.Printf("Token '%s' is whitelisted\n", tokCmd.Arg(0))
	} else {
		fmt.Printf("Token '%s' is NOT whitelisted\n", tokCmd.Arg(0))
	}
	os.Exit(0)
}

func handleClose(args []string) {
	closeCmd := flag.NewFlagSet("close", flag.ExitOnError)
	id := getLockerID(closeCmd, args, "close")

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	locker, err := c.CloseLocker(ctx, callerID(), id)
	if err != nil {
		exitWithError("Error closing locker", err)
	}
	fmt.Printf("Closed locker %s holding %d across %d players\n",
		locker.LockerID, locker.TotalBalance, locker.PlayersCount)
	os.Exit(0)
}

func handleResolve(args []string) {
	resolveCmd := flag.NewFlagSet("resolve", flag.ExitOnError)
	winner := resolveCmd.String("winner", "", "Winning account ID")
	id := getLockerID(resolveCmd, args, "resolve")

	if *winner == "" {
		fmt.Fprintln(os.Stderr, "The -winner flag is required for resolve")
		os.Exit(1)
	}

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	res, err := c.SetWinner(ctx, &client.SetWinnerRequest{
		CallerID: callerID(),
		LockerID: id,
		Winner:   types.AccountID(*winner),
	})
	if err != nil {
		exitWithError("Error resolving locker", err)
	}
	fmt.Printf("Resolved locker %s: payout %d to %s, fee %d\n",
		res.Locker.LockerID, res.Payout, res.Locker.Winner, res.Fee)
	os.Exit(0)
}

func handleWithdrawFee(args []string) {
	wfCmd := flag.NewFlagSet("withdraw-fee", flag.ExitOnError)
	tokenID := wfCmd.String("token", "", "Token to withdraw fees in")
	amount := wfCmd.Uint64("amount", 0, "Amount to withdraw")
	to := wfCmd.String("to", "", "Destination account (defaults to caller)")
	wfCmd.Parse(args)

	if *tokenID == "" || *amount == 0 {
		fmt.Fprintln(os.Stderr, "Both -token and -amount are required for withdraw-fee")
		os.Exit(1)
	}

	caller := callerID()
	dest := caller
	if *to != "" {
		dest = types.AccountID(*to)
	}

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	remaining, err := c.WithdrawFee(ctx, &client.WithdrawFeeRequest{
		CallerID: caller,
		To:       dest,
		Token:    types.TokenID(*tokenID),
		Amount:   *amount,
	})
	if err != nil {
		exitWithError("Error withdrawing fees", err)
	}
	fmt.Printf("Withdrew %d %s in fees to %s; remaining fee balance %d\n",
		*amount, *tokenID, dest, remaining)
	os.Exit(0)
}

func handleAddTokens(args []string) {
	addCmd := flag.NewFlagSet("add-tokens", flag.ExitOnError)
	addCmd.Parse(args)
	if addCmd.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "At least one token ID required for add-tokens")
		os.Exit(1)
	}

	var tokens []types.TokenID
	for _, arg := range addCmd.Args() {
		for _, tok := range strings.Split(arg, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				tokens = append(tokens, types.TokenID(tok))
			}
		}
	}

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	added, err := c.AddTokens(ctx, callerID(), tokens)
	if err != nil {
		exitWithError("Error adding tokens", err)
	}
	fmt.Printf("Whitelisted %d new token(s)\n", added)
	os.Exit(0)
}

func handleSetFee(args []string) {
	sfCmd := flag.NewFlagSet("set-fee", flag.ExitOnError)
	rate := sfCmd.Uint("rate", 0, "Fee rate in parts per thousand (0-1000)")
	sfCmd.Parse(args)

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	if err := c.SetFee(ctx, callerID(), uint32(*rate)); err != nil {
		exitWithError("Error setting fee rate", err)
	}
	fmt.Printf("Fee rate set to %d/1000\n", *rate)
	os.Exit(0)
}

func handleFeeBalance(args []string) {
	fbCmd := flag.NewFlagSet("fee-balance", flag.ExitOnError)
	fbCmd.Parse(args)
	if fbCmd.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Token ID required for fee-balance")
		os.Exit(1)
	}

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	balance, err := c.GetFeeBalance(ctx, types.TokenID(fbCmd.Arg(0)))
	if err != nil {
		exitWithError("Error fetching fee balance", err)
	}
	fmt.Printf("Fee balance for %s: %d\n", fbCmd.Arg(0), balance)
	os.Exit(0)
}

func handleHealth(args []string) {
	healthCmd := flag.NewFlagSet("health", flag.ExitOnError)
	healthCmd.Parse(args)

	c := newAdminClient()
	defer c.Close()

	ctx, cancel := newContext()
	defer cancel()

	info, err := c.Health(ctx)
	if err != nil {
		exitWithError("Error checking health", err)
	}
	status := "NOT SERVING"
	if info.Serving {
		status = "SERVING"
	}
	fmt.Printf("%s: %s (as of %s)\n", status, info.Message, info.Timestamp.Format(time.RFC3339))
	os.Exit(0)
}

func printLocker(locker *types.LockerInfo) {
	fmt.Printf("Locker:   %s\n", locker.LockerID)
	fmt.Printf("State:    %s\n", locker.State)
	fmt.Printf("Token:    %s\n", locker.Token)
	fmt.Printf("Stake:    %d\n", locker.Stake)
	fmt.Printf("Balance:  %d\n", locker.TotalBalance)
	fmt.Printf("Players:  %d\n", locker.PlayersCount)
	fmt.Printf("Creator:  %s\n", locker.Creator)
	if locker.Winner != "" {
		fmt.Printf("Winner:   %s\n", locker.Winner)
	}
	fmt.Printf("Created:  %s\n", locker.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Modified: %s\n", locker.LastModified.Format(time.RFC3339))
}

func parseState(s string) (types.LockerState, error) {
	switch strings.ToLower(s) {
	case "open":
		return types.StateOpen, nil
	case "closed":
		return types.StateClosed, nil
	case "resolved":
		return types.StateResolved, nil
	default:
		return 0, fmt.Errorf("unknown state %q (want open, closed, or resolved)", s)
	}
}

// showUsage prints help information for the CLI
func showUsage() {
	fmt.Println("VaultLock CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  vaultctl [global-options] <command> [command-options] [args]")
	fmt.Println("\nGlobal Options:")
	fmt.Println("  -addr string  Server address (default \"localhost:50052\")")
	fmt.Println("  -as string    Account ID issuing the command")
	fmt.Println("\nParticipant Commands:")
	fmt.Println("  create -token <id> -amount <n> [locker-id]   Create a locker and stake the first deposit")
	fmt.Println("  deposit <locker-id>                          Join an open locker")
	fmt.Println("  withdraw-locker [-to <acct>] <locker-id>     Cancel a stake in an open locker")
	fmt.Println("  withdraw -token <id> [-amount <n>] [-to <acct>]  Pay out withdrawable balance")
	fmt.Println("  get <locker-id>                              Show a locker")
	fmt.Println("  list [-state s] [-token t] [-creator c]      List lockers")
	fmt.Println("  balance -token <id> [-account <acct>]        Show a withdrawable balance")
	fmt.Println("  fee [-amount <n>]                            Show the fee rate")
	fmt.Println("  token <token-id>                             Check whether a token is whitelisted")
	fmt.Println("\nOwner Commands:")
	fmt.Println("  close <locker-id>                            Stop further deposits")
	fmt.Println("  resolve -winner <acct> <locker-id>           Declare the winner and settle")
	fmt.Println("  withdraw-fee -token <id> -amount <n>         Pay out accrued protocol fees")
	fmt.Println("  add-tokens <token-id>...                     Whitelist tokens")
	fmt.Println("  set-fee -rate <n>                            Update the fee rate")
	fmt.Println("  fee-balance <token-id>                       Show the accrued fee balance")
	fmt.Println("  health                                       Check server health")
}

func exitWithError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
