package app

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/iov-one/tokenswap/x/escrow"
)

func TestRouterDispatch(t *testing.T) {
	var (
		r       = NewRouter()
		ctx     = context.Background()
		db      = store.MemStore()
		handler = &weavetest.Handler{}
	)
	r.Handle("test/good", handler)

	good := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(ctx, db, good)
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, good)
	assert.Nil(t, err)
	assert.Equal(t, 2, handler.CallCount())

	missing := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/missing"}}
	_, err = r.Check(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)

	broken := &weavetest.Tx{Err: errors.ErrInput.New("broken")}
	_, err = r.Deliver(ctx, db, broken)
	assert.IsErr(t, errors.ErrInput, err)
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("escrow/initialize", &weavetest.Handler{})

	assert.Panics(t, func() {
		r.Handle("escrow/initialize", &weavetest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle("no spaces allowed", &weavetest.Handler{})
	})
}

func TestRoutesRegistersEveryMessage(t *testing.T) {
	authority, err := escrow.NewAuthority(escrow.DefaultProgramID)
	assert.Nil(t, err)
	r := Routes(Authenticator(), authority)

	paths := []string{
		"cash/send",
		"token/create_mint",
		"token/create_account",
		"token/mint",
		"token/transfer",
		"token/set_owner",
		"token/close_account",
		"escrow/initialize",
		"escrow/exchange",
		"escrow/cancel",
	}
	assert.Equal(t, len(paths), len(r.routes))
	for _, p := range paths {
		if _, ok := r.routes[p]; !ok {
			t.Errorf("no handler for %q", p)
		}
	}
}
