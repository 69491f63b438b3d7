package escrow

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/iov-one/tokenswap/x/utils"
)

const (
	initializeEscrowCost int64 = 300
	exchangeEscrowCost   int64 = 100
	cancelEscrowCost     int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r tokenswap.Registry, auth x.Authenticator, authority *Authority, ledger token.Ledger, cashctrl cash.Controller) {
	bucket := NewBucket()
	r.Handle(pathInitializeMsg, InitializeHandler{auth: auth, authority: authority, ledger: ledger, cash: cashctrl, bucket: bucket})
	r.Handle(pathExchangeMsg, ExchangeHandler{auth: auth, authority: authority, ledger: ledger, cash: cashctrl, bucket: bucket})
	r.Handle(pathCancelMsg, CancelHandler{auth: auth, authority: authority, ledger: ledger, cash: cashctrl, bucket: bucket})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr tokenswap.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// InitializeHandler opens an escrow and locks the initializer tokens in a
// fresh vault.
type InitializeHandler struct {
	auth      x.Authenticator
	authority *Authority
	ledger    token.Ledger
	cash      cash.Controller
	bucket    orm.ModelBucket
}

var _ tokenswap.Handler = InitializeHandler{}

// Check verifies all preconditions without modifying the state.
func (h InitializeHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: initializeEscrowCost}, nil
}

// Deliver stores the escrow record and moves the tokens into the vault
// owned by the authority.
func (h InitializeHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}

	escrow := &Escrow{
		Metadata:           &tokenswap.Metadata{Schema: 1},
		Initializer:        msg.Initializer,
		InitializerDeposit: msg.InitializerDeposit,
		InitializerReceive: msg.InitializerReceive,
		InitializerAmount:  msg.InitializerAmount,
		TakerAmount:        msg.TakerAmount,
		Vault:              msg.Vault,
		VaultBump:          msg.VaultBump,
	}

	err = utils.Atomic(db, func(db tokenswap.KVStore) error {
		if rent := conf.recordRent(); rent != nil {
			if err := h.cash.MoveCoins(db, msg.Initializer, recordAddress(msg.EscrowID), *rent); err != nil {
				return errors.Wrap(err, "record rent")
			}
		}
		if _, err := h.bucket.Put(db, msg.EscrowID, escrow); err != nil {
			return errors.Wrap(err, "cannot store escrow")
		}
		// The vault is created by the initializer, funded and only then
		// handed over to the authority.
		vaultCtx := withAuthority(ctx, vault)
		if _, err := h.ledger.CreateAccount(vaultCtx, db, msg.Initializer, msg.Vault, msg.Ticker, msg.Initializer); err != nil {
			return errors.Wrap(err, "create vault")
		}
		if err := h.ledger.Transfer(ctx, db, msg.InitializerDeposit, msg.Vault, msg.InitializerAmount); err != nil {
			return errors.Wrap(err, "lock deposit")
		}
		if err := h.ledger.SetOwner(ctx, db, msg.Vault, h.authority.Address()); err != nil {
			return errors.Wrap(err, "hand over vault")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokenswap.GetLogger(ctx).Debug("escrow initialized",
		"id", tokenswap.Address(msg.EscrowID).String(),
		"ticker", msg.Ticker,
		"amount", msg.InitializerAmount)
	return &tokenswap.DeliverResult{Data: msg.EscrowID}, nil
}

// validate checks every precondition of an initialize and returns the
// vault condition re-derived from the message.
func (h InitializeHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*InitializeMsg, tokenswap.Condition, error) {
	var msg InitializeMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Initializer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "initializer signature missing")
	}

	switch err := h.bucket.Has(db, msg.EscrowID); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "escrow id already in use")
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}

	vault, err := deriveVault(h.authority.ProgramID(), msg.EscrowID, uint8(msg.VaultBump))
	if err != nil {
		return nil, nil, err
	}
	if !vault.Address().Equals(msg.Vault) {
		return nil, nil, errors.Wrap(errors.ErrInput, "vault address does not match escrow id and bump")
	}
	switch _, err := h.ledger.Account(db, msg.Vault); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "vault already in use")
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}

	deposit, err := h.ledger.Account(db, msg.InitializerDeposit)
	if err != nil {
		return nil, nil, errors.Wrap(err, "initializer deposit")
	}
	if !deposit.Owner.Equals(msg.Initializer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "initializer deposit not owned by the initializer")
	}
	if deposit.Ticker != msg.Ticker {
		return nil, nil, errors.Wrapf(errors.ErrCurrency, "initializer deposit holds %s", deposit.Ticker)
	}
	if deposit.Amount < msg.InitializerAmount {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "initializer deposit holds %d", deposit.Amount)
	}
	if _, err := h.ledger.Account(db, msg.InitializerReceive); err != nil {
		return nil, nil, errors.Wrap(err, "initializer receive")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	// The initializer pays both the record and the vault account rent.
	var rent coin.Coins
	if r := conf.recordRent(); r != nil {
		if rent, err = rent.Add(*r); err != nil {
			return nil, nil, err
		}
	}
	accountRent, err := h.ledger.AccountRent(db)
	if err != nil {
		return nil, nil, err
	}
	if accountRent != nil {
		if rent, err = rent.Add(*accountRent); err != nil {
			return nil, nil, err
		}
	}
	if !rent.IsEmpty() {
		wallet, err := h.cash.Balance(db, msg.Initializer)
		if err != nil && !errors.ErrNotFound.Is(err) {
			return nil, nil, err
		}
		for _, c := range rent {
			if !wallet.Contains(*c) {
				return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "rent %s", rent)
			}
		}
	}
	return &msg, vault, nil
}

// ExchangeHandler completes an escrow.
//
// Tokens sent to the vault on top of the locked amount are returned to the
// recorded initializer deposit account. While the vault holds such a
// surplus the exchange requires that account to exist, so an initializer
// who closed it must open it again before the escrow can be completed.
type ExchangeHandler struct {
	auth      x.Authenticator
	authority *Authority
	ledger    token.Ledger
	cash      cash.Controller
	bucket    orm.ModelBucket
}

var _ tokenswap.Handler = ExchangeHandler{}

// Check verifies all preconditions without modifying the state.
func (h ExchangeHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: exchangeEscrowCost}, nil
}

// Deliver swaps the tokens and tears down the escrow.
func (h ExchangeHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, escrow, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	err = utils.Atomic(db, func(db tokenswap.KVStore) error {
		if err := h.ledger.Transfer(ctx, db, msg.TakerDeposit, escrow.InitializerReceive, escrow.TakerAmount); err != nil {
			return errors.Wrap(err, "pay initializer")
		}
		authCtx := withAuthority(ctx, h.authority.condition())
		if err := h.ledger.Transfer(authCtx, db, escrow.Vault, msg.TakerReceive, escrow.InitializerAmount); err != nil {
			return errors.Wrap(err, "release vault")
		}
		// Anything sent to the vault on top of the locked amount belongs
		// to the initializer.
		if surplus := vault.Amount - escrow.InitializerAmount; surplus > 0 {
			if err := h.ledger.Transfer(authCtx, db, escrow.Vault, escrow.InitializerDeposit, surplus); err != nil {
				return errors.Wrap(err, "return vault surplus")
			}
		}
		return closeEscrow(authCtx, db, h.ledger, h.cash, h.bucket, msg.EscrowID, escrow)
	})
	if err != nil {
		return nil, err
	}

	tokenswap.GetLogger(ctx).Debug("escrow exchanged",
		"id", tokenswap.Address(msg.EscrowID).String(),
		"taker", msg.Taker.String())
	return &tokenswap.DeliverResult{}, nil
}

func (h ExchangeHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*ExchangeMsg, *Escrow, *token.Account, error) {
	var msg ExchangeMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, vault, err := loadEscrow(db, h.bucket, h.ledger, h.authority, msg.EscrowID)
	if err != nil {
		return nil, nil, nil, err
	}
	if msg.ExpectedInitializerAmount != 0 && msg.ExpectedInitializerAmount != escrow.InitializerAmount {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "escrow locks %d, expected %d", escrow.InitializerAmount, msg.ExpectedInitializerAmount)
	}
	if msg.ExpectedTakerAmount != 0 && msg.ExpectedTakerAmount != escrow.TakerAmount {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "escrow asks %d, expected %d", escrow.TakerAmount, msg.ExpectedTakerAmount)
	}
	if !h.auth.HasAddress(ctx, msg.Taker) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}

	receive, err := h.ledger.Account(db, escrow.InitializerReceive)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "initializer receive")
	}
	deposit, err := h.ledger.Account(db, msg.TakerDeposit)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "taker deposit")
	}
	if !deposit.Owner.Equals(msg.Taker) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "taker deposit not owned by the taker")
	}
	if deposit.Ticker != receive.Ticker {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "taker deposit holds %s, initializer expects %s", deposit.Ticker, receive.Ticker)
	}
	if deposit.Amount < escrow.TakerAmount {
		return nil, nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "taker deposit holds %d", deposit.Amount)
	}
	takerReceive, err := h.ledger.Account(db, msg.TakerReceive)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "taker receive")
	}
	if takerReceive.Ticker != vault.Ticker {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "taker receive holds %s, vault holds %s", takerReceive.Ticker, vault.Ticker)
	}
	if vault.Amount > escrow.InitializerAmount {
		if _, err := h.ledger.Account(db, escrow.InitializerDeposit); err != nil {
			return nil, nil, nil, errors.Wrap(err, "initializer deposit")
		}
	}
	return &msg, escrow, vault, nil
}

// CancelHandler returns the locked tokens to the initializer.
type CancelHandler struct {
	auth      x.Authenticator
	authority *Authority
	ledger    token.Ledger
	cash      cash.Controller
	bucket    orm.ModelBucket
}

var _ tokenswap.Handler = CancelHandler{}

// Check verifies all preconditions without modifying the state.
func (h CancelHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver empties the vault into the deposit account and tears down the
// escrow.
func (h CancelHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, escrow, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	err = utils.Atomic(db, func(db tokenswap.KVStore) error {
		authCtx := withAuthority(ctx, h.authority.condition())
		if vault.Amount > 0 {
			if err := h.ledger.Transfer(authCtx, db, escrow.Vault, escrow.InitializerDeposit, vault.Amount); err != nil {
				return errors.Wrap(err, "return deposit")
			}
		}
		return closeEscrow(authCtx, db, h.ledger, h.cash, h.bucket, msg.EscrowID, escrow)
	})
	if err != nil {
		return nil, err
	}

	tokenswap.GetLogger(ctx).Debug("escrow cancelled",
		"id", tokenswap.Address(msg.EscrowID).String())
	return &tokenswap.DeliverResult{}, nil
}

func (h CancelHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*CancelMsg, *Escrow, *token.Account, error) {
	var msg CancelMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, vault, err := loadEscrow(db, h.bucket, h.ledger, h.authority, msg.EscrowID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !msg.Initializer.Equals(escrow.Initializer) || !h.auth.HasAddress(ctx, escrow.Initializer) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the initializer can cancel")
	}
	if !msg.InitializerDeposit.Equals(escrow.InitializerDeposit) {
		return nil, nil, nil, errors.Wrap(errors.ErrInput, "not the recorded deposit account")
	}
	deposit, err := h.ledger.Account(db, escrow.InitializerDeposit)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "initializer deposit")
	}
	if deposit.Ticker != vault.Ticker {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "deposit holds %s, vault holds %s", deposit.Ticker, vault.Ticker)
	}
	return &msg, escrow, vault, nil
}

// loadEscrow returns an open escrow and its vault. The vault must still be
// the one derived for this escrow and owned by the authority.
func loadEscrow(db tokenswap.ReadOnlyKVStore, bucket orm.ModelBucket, ledger token.Ledger, authority *Authority, id []byte) (*Escrow, *token.Account, error) {
	var escrow Escrow
	if err := bucket.One(db, id, &escrow); err != nil {
		return nil, nil, errors.Wrap(err, "escrow")
	}
	derived, err := authority.DeriveVault(id, uint8(escrow.VaultBump))
	if err != nil {
		return nil, nil, err
	}
	if !derived.Equals(escrow.Vault) {
		return nil, nil, errors.Wrap(errors.ErrState, "recorded vault does not match the escrow")
	}
	vault, err := ledger.Account(db, escrow.Vault)
	if err != nil {
		return nil, nil, errors.Wrap(err, "vault")
	}
	if !vault.Owner.Equals(authority.Address()) {
		return nil, nil, errors.Wrap(errors.ErrState, "vault not owned by the authority")
	}
	return &escrow, vault, nil
}

// closeEscrow closes the empty vault and deletes the record. Rent of both
// goes back to the initializer.
func closeEscrow(authCtx tokenswap.Context, db tokenswap.KVStore, ledger token.Ledger, cashctrl cash.Controller, bucket orm.ModelBucket, id []byte, escrow *Escrow) error {
	if err := ledger.CloseAccount(authCtx, db, escrow.Vault, escrow.Initializer); err != nil {
		return errors.Wrap(err, "close vault")
	}
	if err := bucket.Delete(db, id); err != nil {
		return errors.Wrap(err, "delete escrow")
	}
	return refundRecordRent(db, cashctrl, id, escrow.Initializer)
}

func refundRecordRent(db tokenswap.KVStore, cashctrl cash.Controller, id []byte, refundTo tokenswap.Address) error {
	coins, err := cashctrl.Balance(db, recordAddress(id))
	switch {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return err
	}
	for _, c := range coins.Clone() {
		if err := cashctrl.MoveCoins(db, recordAddress(id), refundTo, *c); err != nil {
			return errors.Wrap(err, "record rent refund")
		}
	}
	return nil
}
