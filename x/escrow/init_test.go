package escrow

import (
	"encoding/json"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesisConfiguration(t *testing.T) {
	Convey("Given a genesis file with escrow configuration", t, func() {
		const genesis = `{
			"conf": {
				"escrow": {"metadata": {"schema": 1}, "record_rent": "3 SWP"}
			}
		}`
		var opts tokenswap.Options
		So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)
		db := store.MemStore()

		Convey("The record rent is stored", func() {
			So(Initializer{}.FromGenesis(opts, db), ShouldBeNil)
			conf, err := loadConf(db)
			So(err, ShouldBeNil)
			So(conf.recordRent(), ShouldNotBeNil)
			So(conf.recordRent().Amount, ShouldEqual, 3)
		})

		Convey("Without configuration records are free", func() {
			So(Initializer{}.FromGenesis(tokenswap.Options{}, db), ShouldBeNil)
			conf, err := loadConf(db)
			So(err, ShouldBeNil)
			So(conf.recordRent(), ShouldBeNil)
		})

		Convey("A negative rent is rejected", func() {
			bad := tokenswap.Options{"conf": []byte(`{"escrow": {"metadata": {"schema": 1}, "record_rent": "-3 SWP"}}`)}
			So(Initializer{}.FromGenesis(bad, db), ShouldNotBeNil)
		})
	})
}
