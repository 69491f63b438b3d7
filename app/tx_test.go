package app

import (
	"bytes"
	"testing"

	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
)

func TestTxGetMsg(t *testing.T) {
	cancel := &escrow.CancelMsg{
		Metadata:           &tokenswap.Metadata{Schema: 1},
		EscrowID:           []byte("swap"),
		Initializer:        weavetest.NewCondition().Address(),
		InitializerDeposit: weavetest.NewCondition().Address(),
	}
	send := &cash.SendMsg{
		Metadata:    &tokenswap.Metadata{Schema: 1},
		Source:      weavetest.NewCondition().Address(),
		Destination: weavetest.NewCondition().Address(),
		Amount:      coin.NewCoinp(1, "SWP"),
	}

	var empty Tx
	_, err := empty.GetMsg()
	assert.IsErr(t, errors.ErrInput, err)

	var one Tx
	assert.Nil(t, one.SetMsg(cancel))
	msg, err := one.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, cancel, msg)

	// SetMsg replaces the previous message.
	assert.Nil(t, one.SetMsg(send))
	msg, err = one.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, send, msg)

	two := Tx{CashSendMsg: send, EscrowCancelMsg: cancel}
	_, err = two.GetMsg()
	assert.IsErr(t, errors.ErrMsg, err)

	var unsupported Tx
	err = unsupported.SetMsg(&weavetest.Msg{RoutePath: "test/msg"})
	assert.IsErr(t, errors.ErrType, err)
}

func TestTxDecoder(t *testing.T) {
	tx := &Tx{
		EscrowCancelMsg: &escrow.CancelMsg{
			Metadata:           &tokenswap.Metadata{Schema: 1},
			EscrowID:           []byte("swap"),
			Initializer:        weavetest.NewCondition().Address(),
			InitializerDeposit: weavetest.NewCondition().Address(),
		},
	}
	raw, err := proto.Marshal(tx)
	assert.Nil(t, err)

	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	msg, err := decoded.GetMsg()
	assert.Nil(t, err)
	cancel, ok := msg.(*escrow.CancelMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	assert.Equal(t, tx.EscrowCancelMsg.EscrowID, cancel.EscrowID)
	assert.Equal(t, tx.EscrowCancelMsg.Initializer, cancel.Initializer)

	_, err = TxDecoder([]byte{0xff, 0xff, 0xff})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestTxSignBytesIgnoreSignatures(t *testing.T) {
	key := weavetest.NewKey()
	tx := &Tx{
		EscrowCancelMsg: &escrow.CancelMsg{
			Metadata:           &tokenswap.Metadata{Schema: 1},
			EscrowID:           []byte("swap"),
			Initializer:        key.PublicKey().Address(),
			InitializerDeposit: weavetest.NewCondition().Address(),
		},
	}
	unsigned, err := tx.GetSignBytes()
	assert.Nil(t, err)

	sig, err := sigs.SignTx(key, tx, "test-chain", 0)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	signed, err := tx.GetSignBytes()
	assert.Nil(t, err)
	if !bytes.Equal(unsigned, signed) {
		t.Fatal("signatures must not change the sign bytes")
	}
	assert.Equal(t, 1, len(tx.GetSignatures()))
}
