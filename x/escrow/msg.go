package escrow

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
)

const (
	pathInitializeMsg = "escrow/initialize"
	pathExchangeMsg   = "escrow/exchange"
	pathCancelMsg     = "escrow/cancel"
)

// InitializeMsg opens an escrow. The initializer locks InitializerAmount
// tokens of Ticker from the deposit account and asks for TakerAmount
// tokens to be sent to the receive account.
type InitializeMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID []byte              `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	// Initializer must sign.
	Initializer tokenswap.Address `protobuf:"bytes,3,opt,name=initializer,proto3" json:"initializer,omitempty"`
	// Ticker of the locked tokens.
	Ticker string `protobuf:"bytes,4,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// Vault is the address returned by FindVault for this escrow id.
	Vault              tokenswap.Address `protobuf:"bytes,5,opt,name=vault,proto3" json:"vault,omitempty"`
	VaultBump          uint32            `protobuf:"varint,6,opt,name=vault_bump,json=vaultBump,proto3" json:"vault_bump,omitempty"`
	InitializerDeposit tokenswap.Address `protobuf:"bytes,7,opt,name=initializer_deposit,json=initializerDeposit,proto3" json:"initializer_deposit,omitempty"`
	InitializerReceive tokenswap.Address `protobuf:"bytes,8,opt,name=initializer_receive,json=initializerReceive,proto3" json:"initializer_receive,omitempty"`
	InitializerAmount  int64             `protobuf:"varint,9,opt,name=initializer_amount,json=initializerAmount,proto3" json:"initializer_amount,omitempty"`
	TakerAmount        int64             `protobuf:"varint,10,opt,name=taker_amount,json=takerAmount,proto3" json:"taker_amount,omitempty"`
}

func (m *InitializeMsg) Reset()         { *m = InitializeMsg{} }
func (m *InitializeMsg) String() string { return proto.CompactTextString(m) }
func (*InitializeMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*InitializeMsg)(nil)

// Path returns the routing path for this message
func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

// Validate makes sure that this is sensible
func (m *InitializeMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := validateEscrowID(m.EscrowID); err != nil {
		errs = errors.Append(errs, err)
	}
	if err := m.Initializer.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer"))
	}
	if !coin.IsCC(m.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	if err := m.Vault.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "vault"))
	}
	if m.VaultBump > 255 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "vault bump out of range"))
	}
	if err := m.InitializerDeposit.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer deposit"))
	}
	if err := m.InitializerReceive.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer receive"))
	}
	if m.InitializerAmount <= 0 || m.InitializerAmount > coin.MaxAmount {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "initializer amount %d", m.InitializerAmount))
	}
	if m.TakerAmount <= 0 || m.TakerAmount > coin.MaxAmount {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrAmount, "taker amount %d", m.TakerAmount))
	}
	return errs
}

// ExchangeMsg completes an escrow. The taker pays the requested amount
// and receives the locked tokens.
type ExchangeMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID []byte              `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	// Taker must sign and own the deposit account.
	Taker        tokenswap.Address `protobuf:"bytes,3,opt,name=taker,proto3" json:"taker,omitempty"`
	TakerDeposit tokenswap.Address `protobuf:"bytes,4,opt,name=taker_deposit,json=takerDeposit,proto3" json:"taker_deposit,omitempty"`
	TakerReceive tokenswap.Address `protobuf:"bytes,5,opt,name=taker_receive,json=takerReceive,proto3" json:"taker_receive,omitempty"`
	// ExpectedInitializerAmount and ExpectedTakerAmount, when not zero,
	// must match the recorded terms.
	ExpectedInitializerAmount int64 `protobuf:"varint,6,opt,name=expected_initializer_amount,json=expectedInitializerAmount,proto3" json:"expected_initializer_amount,omitempty"`
	ExpectedTakerAmount       int64 `protobuf:"varint,7,opt,name=expected_taker_amount,json=expectedTakerAmount,proto3" json:"expected_taker_amount,omitempty"`
}

func (m *ExchangeMsg) Reset()         { *m = ExchangeMsg{} }
func (m *ExchangeMsg) String() string { return proto.CompactTextString(m) }
func (*ExchangeMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*ExchangeMsg)(nil)

// Path returns the routing path for this message
func (ExchangeMsg) Path() string {
	return pathExchangeMsg
}

// Validate makes sure that this is sensible
func (m *ExchangeMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := validateEscrowID(m.EscrowID); err != nil {
		errs = errors.Append(errs, err)
	}
	if err := m.Taker.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "taker"))
	}
	if err := m.TakerDeposit.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "taker deposit"))
	}
	if err := m.TakerReceive.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "taker receive"))
	}
	if m.ExpectedInitializerAmount < 0 || m.ExpectedTakerAmount < 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "negative expected amount"))
	}
	return errs
}

// CancelMsg returns the locked tokens to the initializer.
type CancelMsg struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID []byte              `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	// Initializer must sign and be the one recorded.
	Initializer tokenswap.Address `protobuf:"bytes,3,opt,name=initializer,proto3" json:"initializer,omitempty"`
	// InitializerDeposit must be the recorded deposit account.
	InitializerDeposit tokenswap.Address `protobuf:"bytes,4,opt,name=initializer_deposit,json=initializerDeposit,proto3" json:"initializer_deposit,omitempty"`
}

func (m *CancelMsg) Reset()         { *m = CancelMsg{} }
func (m *CancelMsg) String() string { return proto.CompactTextString(m) }
func (*CancelMsg) ProtoMessage()    {}

var _ tokenswap.Msg = (*CancelMsg)(nil)

// Path returns the routing path for this message
func (CancelMsg) Path() string {
	return pathCancelMsg
}

// Validate makes sure that this is sensible
func (m *CancelMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if err := validateEscrowID(m.EscrowID); err != nil {
		errs = errors.Append(errs, err)
	}
	if err := m.Initializer.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer"))
	}
	if err := m.InitializerDeposit.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer deposit"))
	}
	return errs
}
