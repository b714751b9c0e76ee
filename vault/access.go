package vault

import "github.com/jathurchan/vaultlock/types"

// accessControl holds the vault owner identity, fixed at construction time.
// Ownership transfer is out of scope.
type accessControl struct {
	owner types.AccountID
}

// isOwner reports whether the caller is the stored owner. Pure check.
func (ac *accessControl) isOwner(caller types.AccountID) bool {
	return caller == ac.owner
}

// guard returns ErrUnauthorized unless the caller is the owner.
// Every owner-gated operation calls this at its top.
func (ac *accessControl) guard(caller types.AccountID) error {
	if !ac.isOwner(caller) {
		return ErrUnauthorized
	}
	return nil
}
