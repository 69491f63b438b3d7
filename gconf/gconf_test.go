package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

type MyConfig struct {
	Number int64             `protobuf:"varint,1,opt,name=number,proto3" json:"number,omitempty"`
	Text   string            `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Addr   tokenswap.Address `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *MyConfig) Reset()         { *m = MyConfig{} }
func (m *MyConfig) String() string { return proto.CompactTextString(m) }
func (*MyConfig) ProtoMessage()    {}

func (m *MyConfig) Validate() error {
	if m.Number < 0 {
		return errors.Wrap(errors.ErrAmount, "number")
	}
	if m.Addr != nil {
		return m.Addr.Validate()
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	addr := tokenswap.NewCondition("test", "conf", []byte{1}).Address()

	cases := map[string]struct {
		Conf        *MyConfig
		WantSaveErr *errors.Error
	}{
		"all fields": {
			Conf: &MyConfig{Number: 852151421, Text: "foobar", Addr: addr},
		},
		"empty": {
			Conf: &MyConfig{},
		},
		"invalid address cannot be saved": {
			Conf:        &MyConfig{Addr: tokenswap.Address("too short")},
			WantSaveErr: errors.ErrInput,
		},
		"invalid number cannot be saved": {
			Conf:        &MyConfig{Number: -1},
			WantSaveErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "mypkg", tc.Conf)
			if tc.WantSaveErr != nil {
				assert.IsErr(t, tc.WantSaveErr, err)
				return
			}
			assert.Nil(t, err)

			var got MyConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Conf.Number, got.Number)
			assert.Equal(t, tc.Conf.Text, got.Text)
			if !tc.Conf.Addr.Equals(got.Addr) {
				t.Fatalf("want %s address, got %s", tc.Conf.Addr, got.Addr)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	var c MyConfig
	assert.IsErr(t, errors.ErrNotFound, Load(store.MemStore(), "nothing", &c))
}

func TestInitConfig(t *testing.T) {
	const genesis = `{
		"conf": {
			"mypkg": {"number": 7, "text": "seven"}
		}
	}`
	var opts tokenswap.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, InitConfig(db, opts, "mypkg", &MyConfig{}))

	var c MyConfig
	assert.Nil(t, Load(db, "mypkg", &c))
	assert.Equal(t, int64(7), c.Number)
	assert.Equal(t, "seven", c.Text)

	assert.IsErr(t, errors.ErrNotFound, InitConfig(db, opts, "otherpkg", &MyConfig{}))
}
