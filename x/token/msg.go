package token

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
)

// CreateMintMsg declares a new token. It must be signed by the authority.
type CreateMintMsg struct {
	Metadata  *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Ticker    string              `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Authority tokenswap.Address   `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
}

func (m *CreateMintMsg) Reset()         { *m = CreateMintMsg{} }
func (m *CreateMintMsg) String() string { return proto.CompactTextString(m) }
func (*CreateMintMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*CreateMintMsg)(nil)

func (CreateMintMsg) Path() string {
	return "token/create_mint"
}

func (m *CreateMintMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	if err := m.Authority.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "authority"))
	}
	return errs
}

// CreateAccountMsg creates an empty token account. It must be signed by
// the payer and by the account address.
type CreateAccountMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Payer    tokenswap.Address   `protobuf:"bytes,2,opt,name=payer,proto3" json:"payer,omitempty"`
	Account  tokenswap.Address   `protobuf:"bytes,3,opt,name=account,proto3" json:"account,omitempty"`
	Ticker   string              `protobuf:"bytes,4,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Owner    tokenswap.Address   `protobuf:"bytes,5,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *CreateAccountMsg) Reset()         { *m = CreateAccountMsg{} }
func (m *CreateAccountMsg) String() string { return proto.CompactTextString(m) }
func (*CreateAccountMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*CreateAccountMsg)(nil)

func (CreateAccountMsg) Path() string {
	return "token/create_account"
}

func (m *CreateAccountMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := m.Payer.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "payer"))
	}
	if err := m.Account.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "account"))
	}
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	if err := m.Owner.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "owner"))
	}
	return errs
}

// MintMsg issues new tokens into an account. It must be signed by the mint
// authority.
type MintMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Account  tokenswap.Address   `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Amount   int64               `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return "token/mint"
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := m.Account.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "account"))
	}
	if m.Amount <= 0 || m.Amount > coin.MaxAmount {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "mint %d", m.Amount))
	}
	return errs
}

// TransferMsg moves tokens between accounts. It must be signed by the owner
// of the source account.
type TransferMsg struct {
	Metadata    *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      tokenswap.Address   `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Destination tokenswap.Address   `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      int64               `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return "token/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := m.Source.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "source"))
	}
	if err := m.Destination.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "destination"))
	}
	if m.Amount <= 0 || m.Amount > coin.MaxAmount {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "transfer %d", m.Amount))
	}
	return errs
}

// SetOwnerMsg hands an account over to a new owner. It must be signed by
// the current owner.
type SetOwnerMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Account  tokenswap.Address   `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	NewOwner tokenswap.Address   `protobuf:"bytes,3,opt,name=new_owner,json=newOwner,proto3" json:"new_owner,omitempty"`
}

func (m *SetOwnerMsg) Reset()         { *m = SetOwnerMsg{} }
func (m *SetOwnerMsg) String() string { return proto.CompactTextString(m) }
func (*SetOwnerMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*SetOwnerMsg)(nil)

func (SetOwnerMsg) Path() string {
	return "token/set_owner"
}

func (m *SetOwnerMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := m.Account.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "account"))
	}
	if err := m.NewOwner.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "new owner"))
	}
	return errs
}

// CloseAccountMsg removes an empty account. It must be signed by the owner.
type CloseAccountMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Account  tokenswap.Address   `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	RefundTo tokenswap.Address   `protobuf:"bytes,3,opt,name=refund_to,json=refundTo,proto3" json:"refund_to,omitempty"`
}

func (m *CloseAccountMsg) Reset()         { *m = CloseAccountMsg{} }
func (m *CloseAccountMsg) String() string { return proto.CompactTextString(m) }
func (*CloseAccountMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*CloseAccountMsg)(nil)

func (CloseAccountMsg) Path() string {
	return "token/close_account"
}

func (m *CloseAccountMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := m.Account.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "account"))
	}
	if err := m.RefundTo.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "refund"))
	}
	return errs
}
