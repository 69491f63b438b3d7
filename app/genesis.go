package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/token"
)

// FeeTicker is the native currency rents are paid in.
const FeeTicker = "SWP"

// GenInitOptions returns a generator of a development genesis app_state.
//
// The first argument is the address of the rich account that owns the
// native coins and the authority of the "XTK" and "YTK" mints. When no
// address is given, a new key is generated and its hex encoded seed is
// written to out.
func GenInitOptions(out io.Writer) func(args []string) (json.RawMessage, error) {
	return func(args []string) (json.RawMessage, error) {
		var addr tokenswap.Address
		if len(args) > 0 {
			a, err := tokenswap.ParseAddress(args[0])
			if err != nil {
				return nil, errors.Wrap(err, "address")
			}
			addr = a
		} else {
			key := crypto.GenPrivKeyEd25519()
			addr = key.PublicKey().Address()
			fmt.Fprintf(out, "generated key seed: %s\n", hex.EncodeToString(key.Ed25519[:32]))
		}
		return GenesisState(addr)
	}
}

// GenesisState returns the app_state of a development chain controlled by
// a single address.
func GenesisState(addr tokenswap.Address) (json.RawMessage, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}
	type dict map[string]interface{}
	raw, err := json.Marshal(dict{
		"cash": []cash.GenesisAccount{
			{Address: addr, Coins: []coin.Coin{coin.NewCoin(1000000, FeeTicker)}},
		},
		"token": token.Genesis{
			Mints: []token.GenesisMint{
				{Ticker: "XTK", Authority: addr},
				{Ticker: "YTK", Authority: addr},
			},
		},
		"conf": dict{
			"token": token.Configuration{
				Metadata:    &tokenswap.Metadata{Schema: 1},
				AccountRent: coin.NewCoinp(1, FeeTicker),
			},
			"escrow": escrow.Configuration{
				Metadata:   &tokenswap.Metadata{Schema: 1},
				RecordRent: coin.NewCoinp(2, FeeTicker),
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize app state")
	}
	return raw, nil
}
