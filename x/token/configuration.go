package token

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

const confPkg = "token"

// Configuration of the token extension.
type Configuration struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// AccountRent is charged in native coins for every created account
	// and refunded when the account is closed. Zero means accounts are
	// free.
	AccountRent *coin.Coin `protobuf:"bytes,2,opt,name=account_rent,json=accountRent,proto3" json:"account_rent,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return err
	}
	if coin.IsEmpty(c.AccountRent) {
		return nil
	}
	if err := c.AccountRent.Validate(); err != nil {
		return errors.Wrap(err, "account rent")
	}
	if !c.AccountRent.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative account rent")
	}
	return nil
}

// loadConf returns the configuration stored in the database. Missing
// configuration means no rent is charged.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case errors.ErrNotFound.Is(err):
		return &Configuration{Metadata: &tokenswap.Metadata{Schema: 1}}, nil
	case err != nil:
		return nil, errors.Wrap(err, "token configuration")
	}
	return &conf, nil
}
