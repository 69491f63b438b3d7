package sigs

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/weavetest"
)

// signedTx is a transaction carrying an opaque payload as sign bytes.
type signedTx struct {
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)
var _ tokenswap.Tx = (*signedTx)(nil)

func (tx *signedTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

func (tx *signedTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *signedTx) GetMsg() (tokenswap.Msg, error) {
	return &weavetest.Msg{RoutePath: "sigs/test"}, nil
}

func (*signedTx) Reset()         {}
func (*signedTx) String() string { return "signedTx" }
func (*signedTx) ProtoMessage()  {}
