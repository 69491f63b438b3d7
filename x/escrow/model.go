package escrow

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

const (
	// BucketName is where we store the escrows
	BucketName = "escrow"

	maxEscrowIDLength = 32
)

// Escrow holds the terms of one open swap. It is written once by
// Initialize and deleted by Exchange or Cancel.
type Escrow struct {
	Metadata *tokenswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Initializer is the only one allowed to cancel.
	Initializer tokenswap.Address `protobuf:"bytes,2,opt,name=initializer,proto3" json:"initializer,omitempty"`
	// InitializerDeposit is the token account the locked tokens came
	// from and return to on cancel.
	InitializerDeposit tokenswap.Address `protobuf:"bytes,3,opt,name=initializer_deposit,json=initializerDeposit,proto3" json:"initializer_deposit,omitempty"`
	// InitializerReceive is the token account credited by the taker.
	InitializerReceive tokenswap.Address `protobuf:"bytes,4,opt,name=initializer_receive,json=initializerReceive,proto3" json:"initializer_receive,omitempty"`
	InitializerAmount  int64             `protobuf:"varint,5,opt,name=initializer_amount,json=initializerAmount,proto3" json:"initializer_amount,omitempty"`
	TakerAmount        int64             `protobuf:"varint,6,opt,name=taker_amount,json=takerAmount,proto3" json:"taker_amount,omitempty"`
	Vault              tokenswap.Address `protobuf:"bytes,7,opt,name=vault,proto3" json:"vault,omitempty"`
	VaultBump          uint32            `protobuf:"varint,8,opt,name=vault_bump,json=vaultBump,proto3" json:"vault_bump,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is valid.
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.Append(errs, e.Metadata.Validate())
	if err := e.Initializer.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer"))
	}
	if err := e.InitializerDeposit.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer deposit"))
	}
	if err := e.InitializerReceive.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "initializer receive"))
	}
	if err := e.Vault.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "vault"))
	}
	if e.InitializerAmount <= 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "initializer amount must be positive"))
	}
	if e.TakerAmount <= 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "taker amount must be positive"))
	}
	if e.VaultBump > 255 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "vault bump out of range"))
	}
	return errs
}

// Copy makes a new Escrow with the same content
func (e *Escrow) Copy() orm.Model {
	return &Escrow{
		Metadata:           e.Metadata.Copy(),
		Initializer:        e.Initializer.Clone(),
		InitializerDeposit: e.InitializerDeposit.Clone(),
		InitializerReceive: e.InitializerReceive.Clone(),
		InitializerAmount:  e.InitializerAmount,
		TakerAmount:        e.TakerAmount,
		Vault:              e.Vault.Clone(),
		VaultBump:          e.VaultBump,
	}
}

// NewBucket returns a bucket for escrows, keyed by the escrow id and
// indexed by the initializer.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Escrow{},
		orm.WithIndex("initializer", idxInitializer, false))
}

func idxInitializer(obj orm.Object) ([]byte, error) {
	esc, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return esc.Initializer, nil
}

func validateEscrowID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if len(id) > maxEscrowIDLength {
		return errors.Wrapf(errors.ErrInput, "escrow id longer than %d bytes", maxEscrowIDLength)
	}
	return nil
}
