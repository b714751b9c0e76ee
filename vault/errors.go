package vault

import "errors"

var (
	// ErrUnauthorized indicates the caller lacks the permission an operation requires.
	ErrUnauthorized = errors.New("vault: caller is not authorized")

	// ErrTokenNotValid indicates the token is not on the vault's whitelist.
	ErrTokenNotValid = errors.New("vault: token is not whitelisted")

	// ErrLockerExists indicates an attempt to create a locker with an ID already in use.
	ErrLockerExists = errors.New("vault: locker already exists")

	// ErrLockerNotFound indicates the requested locker does not exist.
	ErrLockerNotFound = errors.New("vault: locker not found")

	// ErrInvalidState indicates the operation is not valid for the locker's
	// current state, including a second resolution of a Resolved locker.
	ErrInvalidState = errors.New("vault: operation not valid in current locker state")

	// ErrInvalidAmount indicates a zero, overflowing, or otherwise malformed amount or rate.
	ErrInvalidAmount = errors.New("vault: invalid amount")

	// ErrInsufficientBalance indicates a withdrawal exceeding the stored balance.
	ErrInsufficientBalance = errors.New("vault: insufficient balance")

	// ErrTransferFailed indicates the external token collaborator rejected a transfer.
	// The underlying cause is attached; the enclosing operation left no state change.
	ErrTransferFailed = errors.New("vault: token transfer failed")

	// ErrLockerLimit indicates the vault already tracks its maximum number of lockers.
	ErrLockerLimit = errors.New("vault: locker limit reached")

	// ErrEngineClosed indicates the engine has been shut down.
	ErrEngineClosed = errors.New("vault: engine is closed")

	// ErrCorruptSnapshot indicates snapshot data that cannot be decoded or
	// violates engine invariants.
	ErrCorruptSnapshot = errors.New("vault: corrupt snapshot")
)
