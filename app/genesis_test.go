package app

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/gconf"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/token"
)

func loadGenesis(t *testing.T, raw json.RawMessage) tokenswap.KVStore {
	t.Helper()
	var opts tokenswap.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))
	db := store.MemStore()
	assert.Nil(t, Initializers().FromGenesis(opts, db))
	return db
}

func TestGenesisStateLoads(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	raw, err := GenesisState(addr)
	assert.Nil(t, err)
	db := loadGenesis(t, raw)

	coins, err := CashControl().Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, true, coins.Contains(coin.NewCoin(1000000, FeeTicker)))

	ctrl := token.NewController(Authenticator(), CashControl())
	for _, ticker := range []string{"XTK", "YTK"} {
		mint, err := ctrl.Mint(db, ticker)
		assert.Nil(t, err)
		assert.Equal(t, addr, mint.Authority)
	}

	var conf escrow.Configuration
	assert.Nil(t, gconf.Load(db, "escrow", &conf))
	assert.Equal(t, int64(2), conf.RecordRent.Amount)
}

func TestGenInitOptionsGeneratesKey(t *testing.T) {
	var out bytes.Buffer
	raw, err := GenInitOptions(&out)(nil)
	assert.Nil(t, err)

	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, "generated key seed: ") {
		t.Fatalf("unexpected output %q", line)
	}
	seed, err := hex.DecodeString(strings.TrimPrefix(line, "generated key seed: "))
	assert.Nil(t, err)
	addr := crypto.PrivKeyEd25519FromSeed(seed).PublicKey().Address()

	db := loadGenesis(t, raw)
	coins, err := cash.NewController(cash.NewBucket()).Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(coins))
}

func TestGenInitOptionsInvalidAddress(t *testing.T) {
	var out bytes.Buffer
	_, err := GenInitOptions(&out)([]string{"not-hex"})
	if err == nil {
		t.Fatal("invalid address accepted")
	}
	assert.Equal(t, 0, out.Len())
}
