package cash

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// SendMsg moves native coins between two wallets. It must be signed by the
// source.
type SendMsg struct {
	Metadata    *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      tokenswap.Address   `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Destination tokenswap.Address   `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      *coin.Coin          `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string              `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// Ensure we implement the Msg interface
var _ tokenswap.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	err = errors.Append(err, m.Metadata.Validate())
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		err = errors.Append(err, errors.Wrapf(errors.ErrAmount, "non-positive send: %v", m.Amount))
	} else if e := m.Amount.Validate(); e != nil {
		err = errors.Append(err, errors.Wrap(e, "amount"))
	}
	if e := m.Source.Validate(); e != nil {
		err = errors.Append(err, errors.Wrap(e, "source"))
	}
	if e := m.Destination.Validate(); e != nil {
		err = errors.Append(err, errors.Wrap(e, "destination"))
	}
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return err
}
