package cash

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

// Controller is the functionality needed by cash.Handler and
// every extension that charges storage rent.
type Controller interface {
	// Balance returns all coins held by given address. A missing wallet
	// is ErrNotFound.
	Balance(tokenswap.ReadOnlyKVStore, tokenswap.Address) (coin.Coins, error)

	// MoveCoins moves the given amount from src to dest.
	// If src doesn't exist, or doesn't have sufficient
	// coins, it fails.
	MoveCoins(tokenswap.KVStore, tokenswap.Address, tokenswap.Address, coin.Coin) error

	// IssueCoins adds the given amount of coins to the destination
	// address. Fails if it overflows the wallet.
	IssueCoins(tokenswap.KVStore, tokenswap.Address, coin.Coin) error
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsSet
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) Balance(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (coin.Coins, error) {
	var set Set
	if err := c.bucket.One(db, addr, &set); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", addr)
	}
	return coin.Coins(set.Coins), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db tokenswap.KVStore, src tokenswap.Address, dest tokenswap.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", amount.String())
	}
	if src.Equals(dest) {
		return nil
	}

	sender, err := c.Balance(db, src)
	switch {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrInsufficientAmount, "empty wallet %s", src)
	case err != nil:
		return err
	}
	if !sender.Contains(amount) {
		held := sender.Get(amount.Ticker)
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet %s holds %s", src, held.String())
	}
	if err := c.add(db, src, amount.Negative()); err != nil {
		return err
	}
	return c.add(db, dest, amount)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db tokenswap.KVStore, dest tokenswap.Address, amount coin.Coin) error {
	return c.add(db, dest, amount)
}

// add updates the wallet content. Wallets that become empty are removed
// from the store.
func (c BaseController) add(db tokenswap.KVStore, addr tokenswap.Address, amount coin.Coin) error {
	var set Set
	switch err := c.bucket.One(db, addr, &set); {
	case errors.ErrNotFound.Is(err):
		set.Metadata = &tokenswap.Metadata{Schema: 1}
	case err != nil:
		return err
	}

	coins, err := coin.Coins(set.Coins).Add(amount)
	if err != nil {
		return err
	}
	if !coins.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet %s", addr)
	}
	if coins.IsEmpty() {
		if c.bucket.Has(db, addr) != nil {
			return nil
		}
		return c.bucket.Delete(db, addr)
	}
	set.Coins = coins
	_, err = c.bucket.Put(db, addr, &set)
	return err
}
