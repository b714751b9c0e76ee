package vault

import "github.com/jathurchan/vaultlock/types"

// tokenRegistry is the whitelist of tokens accepted for new lockers.
// Append-only: no removal operation exists.
type tokenRegistry struct {
	tokens map[types.TokenID]bool
}

func newTokenRegistry() *tokenRegistry {
	return &tokenRegistry{tokens: make(map[types.TokenID]bool)}
}

// add whitelists the given tokens and returns how many were newly added.
// Re-adding a token has no additional effect.
func (tr *tokenRegistry) add(tokens []types.TokenID) int {
	added := 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if !tr.tokens[tok] {
			tr.tokens[tok] = true
			added++
		}
	}
	return added
}

// isWhitelisted reports whether the token is accepted. Pure query.
func (tr *tokenRegistry) isWhitelisted(tok types.TokenID) bool {
	return tr.tokens[tok]
}

// list returns all whitelisted tokens in unspecified order.
func (tr *tokenRegistry) list() []types.TokenID {
	out := make([]types.TokenID, 0, len(tr.tokens))
	for tok := range tr.tokens {
		out = append(out, tok)
	}
	return out
}
