package x

import (
	"context"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestAuth(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()
	c := weavetest.NewCondition()

	ctx1 := &weavetest.CtxAuth{Key: "foo"}
	ctx2 := &weavetest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          tokenswap.Context
		auth         Authenticator
		wantInCtx    tokenswap.Condition
		wantNotInCtx tokenswap.Condition
		wantAll      []tokenswap.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &weavetest.Auth{},
			wantNotInCtx: b,
		},
		"single signer": {
			ctx:          context.Background(),
			auth:         &weavetest.Auth{Signer: a},
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []tokenswap.Condition{a},
		},
		"chained authenticators keep order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&weavetest.Auth{Signer: b},
				&weavetest.Auth{Signer: a}),
			wantInCtx:    a,
			wantNotInCtx: c,
			wantAll:      []tokenswap.Condition{b, a},
		},
		"context authenticator reads its own key": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx1,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []tokenswap.Condition{a, b},
		},
		"context authenticator with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantInCtx != nil && !tc.auth.HasAddress(tc.ctx, tc.wantInCtx.Address()) {
				t.Fatal("condition address that was expected in context not found")
			}
			if tc.wantNotInCtx != nil && tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx.Address()) {
				t.Fatal("condition address that was expected not to be in context found")
			}

			all := tc.auth.GetConditions(tc.ctx)
			assert.Equal(t, tc.wantAll, all)
			if !HasAllAddresses(tc.ctx, tc.auth, GetAddresses(tc.ctx, tc.auth)) {
				t.Fatal("not all addresses found")
			}
			if HasAllAddresses(tc.ctx, tc.auth, append(GetAddresses(tc.ctx, tc.auth), c.Address())) {
				t.Fatal("unexpected address found")
			}
		})
	}
}
