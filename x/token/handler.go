package token

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
)

const (
	createMintCost    int64 = 200
	createAccountCost int64 = 100
	mintCost          int64 = 50
	transferCost      int64 = 50
	setOwnerCost      int64 = 20
	closeAccountCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r tokenswap.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(CreateMintMsg{}.Path(), CreateMintHandler{auth: auth, ctrl: ctrl})
	r.Handle(CreateAccountMsg{}.Path(), CreateAccountHandler{ctrl: ctrl})
	r.Handle(MintMsg{}.Path(), MintHandler{ctrl: ctrl})
	r.Handle(TransferMsg{}.Path(), TransferHandler{ctrl: ctrl})
	r.Handle(SetOwnerMsg{}.Path(), SetOwnerHandler{ctrl: ctrl})
	r.Handle(CloseAccountMsg{}.Path(), CloseAccountHandler{ctrl: ctrl})
}

// CreateMintHandler declares new tokens.
type CreateMintHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ tokenswap.Handler = CreateMintHandler{}

func (h CreateMintHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: createMintCost}, nil
}

func (h CreateMintHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.CreateMint(db, msg.Ticker, msg.Authority); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{Data: []byte(msg.Ticker)}, nil
}

func (h CreateMintHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*CreateMintMsg, error) {
	var msg CreateMintMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "authority signature missing")
	}
	return &msg, nil
}

// CreateAccountHandler opens token accounts.
type CreateAccountHandler struct {
	ctrl *Controller
}

var _ tokenswap.Handler = CreateAccountHandler{}

func (h CreateAccountHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	var msg CreateAccountMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenswap.CheckResult{GasAllocated: createAccountCost}, nil
}

func (h CreateAccountHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	var msg CreateAccountMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.CreateAccount(ctx, db, msg.Payer, msg.Account, msg.Ticker, msg.Owner); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{Data: msg.Account}, nil
}

// MintHandler issues tokens.
type MintHandler struct {
	ctrl *Controller
}

var _ tokenswap.Handler = MintHandler{}

func (h MintHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	var msg MintMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenswap.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	var msg MintMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.MintTo(ctx, db, msg.Account, msg.Amount); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}

// TransferHandler moves tokens between accounts.
type TransferHandler struct {
	ctrl *Controller
}

var _ tokenswap.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	var msg TransferMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenswap.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	var msg TransferMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Transfer(ctx, db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}

// SetOwnerHandler changes account owners.
type SetOwnerHandler struct {
	ctrl *Controller
}

var _ tokenswap.Handler = SetOwnerHandler{}

func (h SetOwnerHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	var msg SetOwnerMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenswap.CheckResult{GasAllocated: setOwnerCost}, nil
}

func (h SetOwnerHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	var msg SetOwnerMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.SetOwner(ctx, db, msg.Account, msg.NewOwner); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}

// CloseAccountHandler removes empty accounts.
type CloseAccountHandler struct {
	ctrl *Controller
}

var _ tokenswap.Handler = CloseAccountHandler{}

func (h CloseAccountHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	var msg CloseAccountMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenswap.CheckResult{GasAllocated: closeAccountCost}, nil
}

func (h CloseAccountHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	var msg CloseAccountMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.CloseAccount(ctx, db, msg.Account, msg.RefundTo); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}
