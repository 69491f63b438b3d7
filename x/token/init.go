package token

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

const optKey = "token"

// GenesisMint declares a token at genesis.
type GenesisMint struct {
	Ticker    string            `json:"ticker"`
	Authority tokenswap.Address `json:"authority"`
}

// GenesisAccount is a pre-funded account. The amount is added to the
// supply of the account ticker.
type GenesisAccount struct {
	Address tokenswap.Address `json:"address"`
	Ticker  string            `json:"ticker"`
	Owner   tokenswap.Address `json:"owner"`
	Amount  int64             `json:"amount"`
}

// Genesis is the content of the "token" genesis key.
type Genesis struct {
	Mints    []GenesisMint    `json:"mints"`
	Accounts []GenesisAccount `json:"accounts"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ tokenswap.Initializer = Initializer{}

// FromGenesis stores the token configuration, mints and accounts.
func (Initializer) FromGenesis(opts tokenswap.Options, kv tokenswap.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, confPkg, &conf); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}

	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read %q: %s", optKey, err)
	}

	mints := NewMintBucket()
	for _, m := range gen.Mints {
		mint := &Mint{
			Metadata:  &tokenswap.Metadata{Schema: 1},
			Ticker:    m.Ticker,
			Authority: m.Authority,
		}
		if err := mints.Has(kv, []byte(m.Ticker)); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "genesis mint %s", m.Ticker)
		}
		if _, err := mints.Put(kv, []byte(m.Ticker), mint); err != nil {
			return errors.Wrapf(err, "genesis mint %s", m.Ticker)
		}
	}

	accounts := NewAccountBucket()
	for _, a := range gen.Accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account address")
		}
		var mint Mint
		if err := mints.One(kv, []byte(a.Ticker), &mint); err != nil {
			return errors.Wrapf(err, "genesis account %s mint", a.Address)
		}
		if err := accounts.Has(kv, a.Address); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "genesis account %s", a.Address)
		}
		if a.Amount < 0 {
			return errors.Wrapf(errors.ErrAmount, "genesis account %s", a.Address)
		}
		supply, err := coin.NewCoin(mint.Supply, mint.Ticker).Add(coin.NewCoin(a.Amount, mint.Ticker))
		if err != nil {
			return errors.Wrapf(err, "genesis mint %s supply", mint.Ticker)
		}
		mint.Supply = supply.Amount
		if _, err := mints.Put(kv, []byte(mint.Ticker), &mint); err != nil {
			return err
		}
		acc := &Account{
			Metadata: &tokenswap.Metadata{Schema: 1},
			Ticker:   a.Ticker,
			Owner:    a.Owner,
			Amount:   a.Amount,
		}
		if _, err := accounts.Put(kv, a.Address, acc); err != nil {
			return errors.Wrapf(err, "genesis account %s", a.Address)
		}
	}
	return nil
}
