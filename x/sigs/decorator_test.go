package sigs

import (
	"context"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

// signersHandler records the conditions authenticated for the last call.
type signersHandler struct {
	weavetest.Handler
	signers []tokenswap.Condition
}

func (h *signersHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return h.Handler.Check(ctx, db, tx)
}

func (h *signersHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	const chainID = "deco-chain"
	ctx := tokenswap.WithChainID(context.Background(), chainID)
	key := weavetest.NewKey()

	tx := &signedTx{Payload: []byte("payload")}
	sig, err := SignTx(key, tx, chainID, 0)
	assert.Nil(t, err)

	db := store.MemStore()
	h := &signersHandler{}

	// unsigned transactions are rejected by default
	_, err = NewDecorator().Check(ctx, db, tx, h)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = NewDecorator().Deliver(ctx, db, &weavetest.Tx{}, h)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 0, h.CallCount())

	// unless explicitly allowed
	_, err = NewDecorator().AllowMissingSigs().Check(ctx, db, &weavetest.Tx{}, h)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(h.signers))

	tx.Signatures = []*StdSignature{sig}
	res, err := NewDecorator().Check(ctx, db, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, int64(signatureVerifyCost), res.GasAllocated)
	assert.Equal(t, 1, len(h.signers))
	if !(Authenticate{}).HasAddress(withSigners(ctx, h.signers), key.PublicKey().Address()) {
		t.Fatal("signer address not authenticated")
	}

	// check incremented the sequence, same signature cannot be delivered
	_, err = NewDecorator().Deliver(ctx, db, tx, h)
	assert.IsErr(t, ErrInvalidSequence, err)
}

func TestAuthenticateEmptyContext(t *testing.T) {
	var a Authenticate
	ctx := context.Background()
	assert.Equal(t, 0, len(a.GetConditions(ctx)))
	if a.HasAddress(ctx, weavetest.NewCondition().Address()) {
		t.Fatal("empty context must not authenticate anything")
	}
}
