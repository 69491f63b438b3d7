package app

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
	abci "github.com/tendermint/tendermint/abci/types"
)

const testChainID = "test-chain-app"

type swapParties struct {
	alice, bob       *crypto.PrivateKey
	aliceX, aliceY   tokenswap.Address
	bobX, bobY       tokenswap.Address
	authority        *escrow.Authority
	application      BaseApp
	aliceSeq, bobSeq int64
}

func newSwapParties(t *testing.T) *swapParties {
	t.Helper()

	authority, err := escrow.NewAuthority(escrow.DefaultProgramID)
	assert.Nil(t, err)

	p := &swapParties{
		alice:     weavetest.NewKey(),
		bob:       weavetest.NewKey(),
		aliceX:    weavetest.NewCondition().Address(),
		aliceY:    weavetest.NewCondition().Address(),
		bobX:      weavetest.NewCondition().Address(),
		bobY:      weavetest.NewCondition().Address(),
		authority: authority,
	}
	aliceAddr := p.alice.PublicKey().Address()
	bobAddr := p.bob.PublicKey().Address()

	appState, err := json.Marshal(map[string]interface{}{
		"cash": []cash.GenesisAccount{
			{Address: aliceAddr, Coins: []coin.Coin{coin.NewCoin(10, "SWP")}},
		},
		"token": token.Genesis{
			Mints: []token.GenesisMint{
				{Ticker: "XTK", Authority: aliceAddr},
				{Ticker: "YTK", Authority: bobAddr},
			},
			Accounts: []token.GenesisAccount{
				{Address: p.aliceX, Ticker: "XTK", Owner: aliceAddr, Amount: 500},
				{Address: p.aliceY, Ticker: "YTK", Owner: aliceAddr, Amount: 0},
				{Address: p.bobX, Ticker: "XTK", Owner: bobAddr, Amount: 0},
				{Address: p.bobY, Ticker: "YTK", Owner: bobAddr, Amount: 1000},
			},
		},
		"conf": map[string]interface{}{
			"token": token.Configuration{
				Metadata:    &tokenswap.Metadata{Schema: 1},
				AccountRent: coin.NewCoinp(1, "SWP"),
			},
			"escrow": escrow.Configuration{
				Metadata:   &tokenswap.Metadata{Schema: 1},
				RecordRent: coin.NewCoinp(2, "SWP"),
			},
		},
	})
	assert.Nil(t, err)

	application, err := Application("test", Stack(authority), TxDecoder, "", true)
	assert.Nil(t, err)
	application.WithInit(Initializers())
	application.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: appState})
	// Commit the genesis state so that CheckTx can see it.
	application.Commit()
	application.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, Time: time.Now()}})
	p.application = application
	return p
}

// signTx returns a serialized transaction carrying msg, signed by given key
// with given sequence.
func signTx(t testing.TB, signer *crypto.PrivateKey, seq int64, msg tokenswap.Msg) []byte {
	t.Helper()
	var tx Tx
	assert.Nil(t, tx.SetMsg(msg))
	sig, err := sigs.SignTx(signer, &tx, testChainID, seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := proto.Marshal(&tx)
	assert.Nil(t, err)
	return raw
}

func (p *swapParties) initialize(t testing.TB, id []byte, amount, want int64) []byte {
	t.Helper()
	vault, bump, err := p.authority.FindVault(id)
	assert.Nil(t, err)
	msg := &escrow.InitializeMsg{
		Metadata:           &tokenswap.Metadata{Schema: 1},
		EscrowID:           id,
		Initializer:        p.alice.PublicKey().Address(),
		Ticker:             "XTK",
		Vault:              vault,
		VaultBump:          uint32(bump),
		InitializerDeposit: p.aliceX,
		InitializerReceive: p.aliceY,
		InitializerAmount:  amount,
		TakerAmount:        want,
	}
	raw := signTx(t, p.alice, p.aliceSeq, msg)
	p.aliceSeq++
	return raw
}

func (p *swapParties) exchange(t testing.TB, id []byte, expectTaker int64) []byte {
	t.Helper()
	msg := &escrow.ExchangeMsg{
		Metadata:            &tokenswap.Metadata{Schema: 1},
		EscrowID:            id,
		Taker:               p.bob.PublicKey().Address(),
		TakerDeposit:        p.bobY,
		TakerReceive:        p.bobX,
		ExpectedTakerAmount: expectTaker,
	}
	raw := signTx(t, p.bob, p.bobSeq, msg)
	p.bobSeq++
	return raw
}

func (p *swapParties) cancel(t testing.TB, id []byte) []byte {
	t.Helper()
	msg := &escrow.CancelMsg{
		Metadata:           &tokenswap.Metadata{Schema: 1},
		EscrowID:           id,
		Initializer:        p.alice.PublicKey().Address(),
		InitializerDeposit: p.aliceX,
	}
	raw := signTx(t, p.alice, p.aliceSeq, msg)
	p.aliceSeq++
	return raw
}

func requireDelivered(t testing.TB, res abci.ResponseDeliverTx) {
	t.Helper()
	if res.Code != errors.SuccessABCICode {
		t.Fatalf("deliver failed with code %d: %s", res.Code, res.Log)
	}
}

func (p *swapParties) tokenBalance(t testing.TB, addr tokenswap.Address) int64 {
	t.Helper()
	res := p.application.Query(abci.RequestQuery{Path: "/tokens/accounts", Data: addr})
	assert.Equal(t, uint32(errors.SuccessABCICode), res.Code)
	var acc token.Account
	assert.Nil(t, unmarshalOneResult(res.Value, &acc))
	return acc.Amount
}

func (p *swapParties) escrowCount(t testing.TB, id []byte) int {
	t.Helper()
	res := p.application.Query(abci.RequestQuery{Path: "/escrows", Data: id})
	assert.Equal(t, uint32(errors.SuccessABCICode), res.Code)
	var keys, values ResultSet
	assert.Nil(t, proto.Unmarshal(res.Key, &keys))
	assert.Nil(t, proto.Unmarshal(res.Value, &values))
	models, err := joinResults(&keys, &values)
	assert.Nil(t, err)
	for _, m := range models {
		if !bytes.HasSuffix(m.Key, id) {
			t.Fatalf("unexpected escrow key %X", m.Key)
		}
	}
	return len(models)
}

func (p *swapParties) nativeBalance(t testing.TB, addr tokenswap.Address) int64 {
	t.Helper()
	res := p.application.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
	assert.Equal(t, uint32(errors.SuccessABCICode), res.Code)
	var wallet cash.Set
	assert.Nil(t, unmarshalOneResult(res.Value, &wallet))
	var total int64
	for _, c := range wallet.Coins {
		if c.Ticker == "SWP" {
			total += c.Amount
		}
	}
	return total
}

func TestAppSwapExchange(t *testing.T) {
	p := newSwapParties(t)
	app := p.application
	id := []byte("swap-1")

	tx := p.initialize(t, id, 300, 700)
	if res := app.CheckTx(tx); res.Code != errors.SuccessABCICode {
		t.Fatalf("check failed with code %d: %s", res.Code, res.Log)
	}
	res := app.DeliverTx(tx)
	requireDelivered(t, res)
	assert.Equal(t, id, res.Data)

	// The same signature cannot be used twice.
	replay := app.DeliverTx(tx)
	assert.Equal(t, sigs.ErrInvalidSequence.ABCICode(), replay.Code)

	// Changed terms are rejected, the sequence is consumed anyway.
	stale := app.DeliverTx(p.exchange(t, id, 600))
	assert.Equal(t, errors.ErrState.ABCICode(), stale.Code)

	requireDelivered(t, app.DeliverTx(p.exchange(t, id, 700)))

	// A completed escrow cannot be exchanged again.
	again := app.DeliverTx(p.exchange(t, id, 0))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), again.Code)

	app.Commit()

	assert.Equal(t, int64(200), p.tokenBalance(t, p.aliceX))
	assert.Equal(t, int64(700), p.tokenBalance(t, p.aliceY))
	assert.Equal(t, int64(300), p.tokenBalance(t, p.bobX))
	assert.Equal(t, int64(300), p.tokenBalance(t, p.bobY))
	assert.Equal(t, 0, p.escrowCount(t, id))
	// Both rents are refunded to the initializer.
	assert.Equal(t, int64(10), p.nativeBalance(t, p.alice.PublicKey().Address()))
}

func TestAppSwapCancel(t *testing.T) {
	p := newSwapParties(t)
	app := p.application
	id := []byte("swap-2")

	// Insufficient deposit fails without touching the state.
	tooMuch := app.DeliverTx(p.initialize(t, id, 5000, 700))
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), tooMuch.Code)

	requireDelivered(t, app.DeliverTx(p.initialize(t, id, 100, 700)))
	app.Commit()

	assert.Equal(t, int64(400), p.tokenBalance(t, p.aliceX))
	assert.Equal(t, 1, p.escrowCount(t, id))
	assert.Equal(t, int64(7), p.nativeBalance(t, p.alice.PublicKey().Address()))

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 2, Time: time.Now()}})
	requireDelivered(t, app.DeliverTx(p.cancel(t, id)))
	app.Commit()

	assert.Equal(t, int64(500), p.tokenBalance(t, p.aliceX))
	assert.Equal(t, 0, p.escrowCount(t, id))
	assert.Equal(t, int64(10), p.nativeBalance(t, p.alice.PublicKey().Address()))
}

func TestAppRejectsMalformedTx(t *testing.T) {
	p := newSwapParties(t)

	res := p.application.DeliverTx([]byte{0xff, 0xff, 0xff})
	assert.Equal(t, errors.ErrInput.ABCICode(), res.Code)

	unsigned, err := proto.Marshal(&Tx{
		EscrowCancelMsg: &escrow.CancelMsg{
			Metadata:           &tokenswap.Metadata{Schema: 1},
			EscrowID:           []byte("swap"),
			Initializer:        p.alice.PublicKey().Address(),
			InitializerDeposit: p.aliceX,
		},
	})
	assert.Nil(t, err)
	check := p.application.CheckTx(unsigned)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), check.Code)
}

func TestAppQueryUnknownPath(t *testing.T) {
	p := newSwapParties(t)
	res := p.application.Query(abci.RequestQuery{Path: "/nothing"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)
}
