package token

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

// Mint declares a token.
type Mint struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Ticker   string              `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// Authority is the only address allowed to issue new tokens.
	Authority tokenswap.Address `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
	// Supply is the total amount of tokens issued.
	Supply int64 `protobuf:"varint,4,opt,name=supply,proto3" json:"supply,omitempty"`
}

func (m *Mint) Reset()         { *m = Mint{} }
func (m *Mint) String() string { return proto.CompactTextString(m) }
func (*Mint) ProtoMessage()    {}

var _ orm.Model = (*Mint)(nil)

// Validate ensures the mint is valid.
func (m *Mint) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	if err := m.Authority.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "authority"))
	}
	if m.Supply < 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "negative supply"))
	}
	return errs
}

// Copy produces a new copy to fulfill the Model interface
func (m *Mint) Copy() orm.Model {
	return &Mint{
		Metadata:  m.Metadata.Copy(),
		Ticker:    m.Ticker,
		Authority: m.Authority.Clone(),
		Supply:    m.Supply,
	}
}

// NewMintBucket returns a bucket for mints, keyed by the ticker.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket("mint", &Mint{})
}

// Account holds tokens of a single ticker.
type Account struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Ticker   string              `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// Owner authorizes transfers out of this account and its closing.
	Owner  tokenswap.Address `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Amount int64             `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

var _ orm.Model = (*Account)(nil)

// Validate ensures the account is valid.
func (a *Account) Validate() error {
	var errs error
	errs = errors.Append(errs, a.Metadata.Validate())
	if !coin.IsCC(a.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", a.Ticker))
	}
	if err := a.Owner.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "owner"))
	}
	if a.Amount < 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "negative balance"))
	}
	return errs
}

// Copy produces a new copy to fulfill the Model interface
func (a *Account) Copy() orm.Model {
	return &Account{
		Metadata: a.Metadata.Copy(),
		Ticker:   a.Ticker,
		Owner:    a.Owner.Clone(),
		Amount:   a.Amount,
	}
}

// Balance returns the account content as a coin.
func (a *Account) Balance() coin.Coin {
	return coin.NewCoin(a.Amount, a.Ticker)
}

// NewAccountBucket returns a bucket for accounts, keyed by the account
// address and indexed by the owner.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("tokacc", &Account{},
		orm.WithIndex("owner", accountOwner, false))
}

func accountOwner(obj orm.Object) ([]byte, error) {
	acc, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return acc.Owner, nil
}

// RegisterQuery exposes mints under "/tokens/mints" and accounts under
// "/tokens/accounts" and "/tokens/accounts/owner".
func RegisterQuery(qr tokenswap.QueryRouter) {
	NewMintBucket().Register("tokens/mints", qr)
	NewAccountBucket().Register("tokens/accounts", qr)
}
