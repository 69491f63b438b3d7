package app

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
)

// Tx is the transaction envelope of the application. It carries the
// signatures and exactly one message.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`

	CashSendMsg *cash.SendMsg `protobuf:"bytes,10,opt,name=cash_send_msg,json=cashSendMsg,proto3" json:"cash_send_msg,omitempty"`

	TokenCreateMintMsg    *token.CreateMintMsg    `protobuf:"bytes,20,opt,name=token_create_mint_msg,json=tokenCreateMintMsg,proto3" json:"token_create_mint_msg,omitempty"`
	TokenCreateAccountMsg *token.CreateAccountMsg `protobuf:"bytes,21,opt,name=token_create_account_msg,json=tokenCreateAccountMsg,proto3" json:"token_create_account_msg,omitempty"`
	TokenMintMsg          *token.MintMsg          `protobuf:"bytes,22,opt,name=token_mint_msg,json=tokenMintMsg,proto3" json:"token_mint_msg,omitempty"`
	TokenTransferMsg      *token.TransferMsg      `protobuf:"bytes,23,opt,name=token_transfer_msg,json=tokenTransferMsg,proto3" json:"token_transfer_msg,omitempty"`
	TokenSetOwnerMsg      *token.SetOwnerMsg      `protobuf:"bytes,24,opt,name=token_set_owner_msg,json=tokenSetOwnerMsg,proto3" json:"token_set_owner_msg,omitempty"`
	TokenCloseAccountMsg  *token.CloseAccountMsg  `protobuf:"bytes,25,opt,name=token_close_account_msg,json=tokenCloseAccountMsg,proto3" json:"token_close_account_msg,omitempty"`

	EscrowInitializeMsg *escrow.InitializeMsg `protobuf:"bytes,30,opt,name=escrow_initialize_msg,json=escrowInitializeMsg,proto3" json:"escrow_initialize_msg,omitempty"`
	EscrowExchangeMsg   *escrow.ExchangeMsg   `protobuf:"bytes,31,opt,name=escrow_exchange_msg,json=escrowExchangeMsg,proto3" json:"escrow_exchange_msg,omitempty"`
	EscrowCancelMsg     *escrow.CancelMsg     `protobuf:"bytes,32,opt,name=escrow_cancel_msg,json=escrowCancelMsg,proto3" json:"escrow_cancel_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// make sure tx fulfills all interfaces
var _ tokenswap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (tokenswap.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (tokenswap.Msg, error) {
	var msgs []tokenswap.Msg
	if tx.CashSendMsg != nil {
		msgs = append(msgs, tx.CashSendMsg)
	}
	if tx.TokenCreateMintMsg != nil {
		msgs = append(msgs, tx.TokenCreateMintMsg)
	}
	if tx.TokenCreateAccountMsg != nil {
		msgs = append(msgs, tx.TokenCreateAccountMsg)
	}
	if tx.TokenMintMsg != nil {
		msgs = append(msgs, tx.TokenMintMsg)
	}
	if tx.TokenTransferMsg != nil {
		msgs = append(msgs, tx.TokenTransferMsg)
	}
	if tx.TokenSetOwnerMsg != nil {
		msgs = append(msgs, tx.TokenSetOwnerMsg)
	}
	if tx.TokenCloseAccountMsg != nil {
		msgs = append(msgs, tx.TokenCloseAccountMsg)
	}
	if tx.EscrowInitializeMsg != nil {
		msgs = append(msgs, tx.EscrowInitializeMsg)
	}
	if tx.EscrowExchangeMsg != nil {
		msgs = append(msgs, tx.EscrowExchangeMsg)
	}
	if tx.EscrowCancelMsg != nil {
		msgs = append(msgs, tx.EscrowCancelMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrInput, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "only one message allowed, got %d", len(msgs))
	}
}

// SetMsg sets the message carried by the transaction, replacing any
// previous one.
func (tx *Tx) SetMsg(msg tokenswap.Msg) error {
	signatures := tx.Signatures
	tx.Reset()
	tx.Signatures = signatures

	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.CashSendMsg = m
	case *token.CreateMintMsg:
		tx.TokenCreateMintMsg = m
	case *token.CreateAccountMsg:
		tx.TokenCreateAccountMsg = m
	case *token.MintMsg:
		tx.TokenMintMsg = m
	case *token.TransferMsg:
		tx.TokenTransferMsg = m
	case *token.SetOwnerMsg:
		tx.TokenSetOwnerMsg = m
	case *token.CloseAccountMsg:
		tx.TokenCloseAccountMsg = m
	case *escrow.InitializeMsg:
		tx.EscrowInitializeMsg = m
	case *escrow.ExchangeMsg:
		tx.EscrowExchangeMsg = m
	case *escrow.CancelMsg:
		tx.EscrowCancelMsg = m
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}

// GetSignBytes returns the bytes to sign. Signatures are not part of the
// signed data.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	cpy := *tx
	cpy.Signatures = nil
	return proto.Marshal(&cpy)
}

// GetSignatures returns the signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}
