package escrow

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

const confPkg = "escrow"

// Configuration of the escrow extension.
type Configuration struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// RecordRent is paid by the initializer for storing the escrow record
	// and refunded to the initializer when the record is deleted.
	RecordRent *coin.Coin `protobuf:"bytes,2,opt,name=record_rent,json=recordRent,proto3" json:"record_rent,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return err
	}
	if coin.IsEmpty(c.RecordRent) {
		return nil
	}
	if err := c.RecordRent.Validate(); err != nil {
		return errors.Wrap(err, "record rent")
	}
	if !c.RecordRent.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative record rent")
	}
	return nil
}

// loadConf returns the configuration stored in the database. Without
// configuration no rent is charged.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case errors.ErrNotFound.Is(err):
		return &Configuration{Metadata: &tokenswap.Metadata{Schema: 1}}, nil
	case err != nil:
		return nil, errors.Wrap(err, "escrow configuration")
	}
	return &conf, nil
}

// recordRent returns the rent to charge, or nil if records are free.
func (c *Configuration) recordRent() *coin.Coin {
	if coin.IsEmpty(c.RecordRent) || !c.RecordRent.IsPositive() {
		return nil
	}
	return c.RecordRent
}
