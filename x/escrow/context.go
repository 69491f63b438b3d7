package escrow

import (
	"context"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/x"
)

type contextKey int // local to the escrow module

const (
	contextKeyEscrow contextKey = iota
)

// withAuthority is a private method, as only this module
// can sign on behalf of derived addresses
func withAuthority(ctx tokenswap.Context, conds ...tokenswap.Condition) tokenswap.Context {
	return context.WithValue(ctx, contextKeyEscrow, conds)
}

// Authenticate reveals the derived addresses this package is acting for.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the derived conditions placed in the context.
func (Authenticate) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	val, _ := ctx.Value(contextKeyEscrow).([]tokenswap.Condition)
	return val
}

// HasAddress returns true if the context carries a derived condition for
// given address.
func (a Authenticate) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, cond := range a.GetConditions(ctx) {
		if addr.Equals(cond.Address()) {
			return true
		}
	}
	return false
}
