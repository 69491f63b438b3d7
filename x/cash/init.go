package cash

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use tokenswap.Address, so address in hex, not base64
type GenesisAccount struct {
	Address tokenswap.Address `json:"address"`
	Coins   []coin.Coin       `json:"coins"`
}

// Initializer fulfils the InitStater interface to load data from
// the genesis file
type Initializer struct{}

var _ tokenswap.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts tokenswap.Options, kv tokenswap.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read %q: %s", optKey, err)
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis wallet address")
		}
		set, err := NewSet(acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "genesis wallet %s", acct.Address)
		}
		if _, err := bucket.Put(kv, acct.Address, set); err != nil {
			return errors.Wrapf(err, "genesis wallet %s", acct.Address)
		}
	}
	return nil
}
