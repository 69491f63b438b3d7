package token

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
)

// Ledger is the token functionality other extensions depend on. Every
// mutating call is authorized against the conditions present in the
// context.
type Ledger interface {
	// Account returns the account stored under given address or
	// ErrNotFound.
	Account(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (*Account, error)

	// CreateAccount creates an empty account at given address, holding
	// tokens of given ticker and owned by owner. The payer is charged
	// the account rent. Both payer and the account address must have
	// signed.
	CreateAccount(ctx tokenswap.Context, db tokenswap.KVStore, payer, addr tokenswap.Address, ticker string, owner tokenswap.Address) (*Account, error)

	// AccountRent returns the rent charged by CreateAccount, or nil if
	// accounts are free.
	AccountRent(db tokenswap.ReadOnlyKVStore) (*coin.Coin, error)

	// Transfer moves tokens between two accounts of the same ticker.
	// The owner of the source account must have signed.
	Transfer(ctx tokenswap.Context, db tokenswap.KVStore, from, to tokenswap.Address, amount int64) error

	// SetOwner changes the owner of an account. The current owner must
	// have signed.
	SetOwner(ctx tokenswap.Context, db tokenswap.KVStore, addr, newOwner tokenswap.Address) error

	// CloseAccount removes an empty account and refunds its rent. The
	// owner must have signed.
	CloseAccount(ctx tokenswap.Context, db tokenswap.KVStore, addr, refundTo tokenswap.Address) error

	// MintTo issues new tokens into an account. The mint authority of
	// the account ticker must have signed.
	MintTo(ctx tokenswap.Context, db tokenswap.KVStore, addr tokenswap.Address, amount int64) error
}

// Controller is the Ledger implementation backed by the token buckets and
// the cash wallets.
type Controller struct {
	auth     x.Authenticator
	cash     cash.Controller
	mints    orm.ModelBucket
	accounts orm.ModelBucket
}

var _ Ledger = (*Controller)(nil)

// NewController returns a ledger authorizing with given authenticator and
// charging rent through given cash controller.
func NewController(auth x.Authenticator, cashctrl cash.Controller) *Controller {
	return &Controller{
		auth:     auth,
		cash:     cashctrl,
		mints:    NewMintBucket(),
		accounts: NewAccountBucket(),
	}
}

// Mint returns the mint of given ticker or ErrNotFound.
func (c *Controller) Mint(db tokenswap.ReadOnlyKVStore, ticker string) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, []byte(ticker), &m); err != nil {
		return nil, errors.Wrapf(err, "mint %s", ticker)
	}
	return &m, nil
}

// CreateMint declares a new token with zero supply.
func (c *Controller) CreateMint(db tokenswap.KVStore, ticker string, authority tokenswap.Address) (*Mint, error) {
	switch err := c.mints.Has(db, []byte(ticker)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "mint %s", ticker)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	m := &Mint{
		Metadata:  &tokenswap.Metadata{Schema: 1},
		Ticker:    ticker,
		Authority: authority,
	}
	if _, err := c.mints.Put(db, []byte(ticker), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *Controller) Account(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (*Account, error) {
	var acc Account
	if err := c.accounts.One(db, addr, &acc); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &acc, nil
}

// AccountsByOwner returns all accounts owned by given address.
func (c *Controller) AccountsByOwner(db tokenswap.ReadOnlyKVStore, owner tokenswap.Address) ([]Account, error) {
	var accs []Account
	if _, err := c.accounts.ByIndex(db, "owner", owner, &accs); err != nil {
		return nil, err
	}
	return accs, nil
}

func (c *Controller) CreateAccount(ctx tokenswap.Context, db tokenswap.KVStore, payer, addr tokenswap.Address, ticker string, owner tokenswap.Address) (*Account, error) {
	if !x.HasAllAddresses(ctx, c.auth, []tokenswap.Address{payer, addr}) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer and account signatures required")
	}
	if _, err := c.Mint(db, ticker); err != nil {
		return nil, err
	}
	switch err := c.accounts.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	rent, err := c.AccountRent(db)
	if err != nil {
		return nil, err
	}
	if rent != nil {
		if err := c.cash.MoveCoins(db, payer, addr, *rent); err != nil {
			return nil, errors.Wrap(err, "account rent")
		}
	}

	acc := &Account{
		Metadata: &tokenswap.Metadata{Schema: 1},
		Ticker:   ticker,
		Owner:    owner,
	}
	if _, err := c.accounts.Put(db, addr, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (c *Controller) AccountRent(db tokenswap.ReadOnlyKVStore) (*coin.Coin, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if coin.IsEmpty(conf.AccountRent) || !conf.AccountRent.IsPositive() {
		return nil, nil
	}
	return conf.AccountRent, nil
}

func (c *Controller) Transfer(ctx tokenswap.Context, db tokenswap.KVStore, from, to tokenswap.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer %d", amount)
	}
	src, err := c.Account(db, from)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !c.auth.HasAddress(ctx, src.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "source owner signature required")
	}
	dst, err := c.Account(db, to)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if src.Ticker != dst.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "cannot transfer %s to %s account", src.Ticker, dst.Ticker)
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "account %s holds %d", from, src.Amount)
	}
	if from.Equals(to) {
		return nil
	}

	total, err := dst.Balance().Add(coin.NewCoin(amount, dst.Ticker))
	if err != nil {
		return err
	}
	src.Amount -= amount
	dst.Amount = total.Amount

	if _, err := c.accounts.Put(db, from, src); err != nil {
		return err
	}
	_, err = c.accounts.Put(db, to, dst)
	return err
}

func (c *Controller) SetOwner(ctx tokenswap.Context, db tokenswap.KVStore, addr, newOwner tokenswap.Address) error {
	if err := newOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if !c.auth.HasAddress(ctx, acc.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	acc.Owner = newOwner
	_, err = c.accounts.Put(db, addr, acc)
	return err
}

func (c *Controller) CloseAccount(ctx tokenswap.Context, db tokenswap.KVStore, addr, refundTo tokenswap.Address) error {
	if err := refundTo.Validate(); err != nil {
		return errors.Wrap(err, "refund")
	}
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if !c.auth.HasAddress(ctx, acc.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account %s is not empty", addr)
	}
	if err := c.accounts.Delete(db, addr); err != nil {
		return err
	}
	return refundRent(db, c.cash, addr, refundTo)
}

func (c *Controller) MintTo(ctx tokenswap.Context, db tokenswap.KVStore, addr tokenswap.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive mint %d", amount)
	}
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	mint, err := c.Mint(db, acc.Ticker)
	if err != nil {
		return err
	}
	if !c.auth.HasAddress(ctx, mint.Authority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature required")
	}

	supply, err := coin.NewCoin(mint.Supply, mint.Ticker).Add(coin.NewCoin(amount, mint.Ticker))
	if err != nil {
		return errors.Wrap(err, "supply")
	}
	balance, err := acc.Balance().Add(coin.NewCoin(amount, acc.Ticker))
	if err != nil {
		return errors.Wrap(err, "balance")
	}
	mint.Supply = supply.Amount
	acc.Amount = balance.Amount

	if _, err := c.mints.Put(db, []byte(mint.Ticker), mint); err != nil {
		return err
	}
	_, err = c.accounts.Put(db, addr, acc)
	return err
}

// refundRent moves the whole native coin content of the rent holding
// address to refundTo. An address without a wallet holds no rent.
func refundRent(db tokenswap.KVStore, ctrl cash.Controller, holder, refundTo tokenswap.Address) error {
	coins, err := ctrl.Balance(db, holder)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return err
	}
	for _, c := range coins.Clone() {
		if err := ctrl.MoveCoins(db, holder, refundTo, *c); err != nil {
			return errors.Wrap(err, "rent refund")
		}
	}
	return nil
}
