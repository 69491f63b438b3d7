package escrow

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

// Initializer stores the escrow configuration from the genesis file. Open
// escrows cannot be declared in genesis, they always come with a funded
// vault.
type Initializer struct{}

var _ tokenswap.Initializer = Initializer{}

// FromGenesis reads the "conf.escrow" section. It is optional.
func (Initializer) FromGenesis(opts tokenswap.Options, kv tokenswap.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, confPkg, &conf); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}
	return nil
}
