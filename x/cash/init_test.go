package cash

import (
	"encoding/json"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesisWallets(t *testing.T) {
	Convey("Given a genesis file with native wallets", t, func() {
		const genesis = `{
			"cash": [
				{"address": "0102030405060708090021222324252627282930", "coins": ["50 SWP", "7 ETH"]}
			]
		}`
		var opts tokenswap.Options
		So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
		db := store.MemStore()

		Convey("When the initializer runs", func() {
			err := Initializer{}.FromGenesis(opts, db)
			So(err, ShouldBeNil)

			Convey("The wallet holds the declared coins", func() {
				addr, err := tokenswap.ParseAddress("0102030405060708090021222324252627282930")
				So(err, ShouldBeNil)
				w, err := NewController(NewBucket()).Balance(db, addr)
				So(err, ShouldBeNil)
				So(w.Get("SWP").Equals(coin.NewCoin(50, "SWP")), ShouldBeTrue)
				So(w.Get("ETH").Equals(coin.NewCoin(7, "ETH")), ShouldBeTrue)
			})
		})

		Convey("When the address is malformed", func() {
			bad := tokenswap.Options{"cash": []byte(`[{"address": "0102", "coins": ["1 SWP"]}]`)}
			So(Initializer{}.FromGenesis(bad, db), ShouldNotBeNil)
		})

		Convey("When there is no cash section", func() {
			So(Initializer{}.FromGenesis(tokenswap.Options{}, db), ShouldBeNil)
		})
	})
}
