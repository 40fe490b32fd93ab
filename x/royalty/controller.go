package royalty

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller provides the accrual functionality needed by other
// extensions, bypassing message processing.
type Controller interface {
	// Accrue increments the royalty balance of a recipient within a
	// collection and bumps the global aggregate.
	Accrue(db weave.KVStore, collection weave.Address, recipient weave.Address, amount coin.Coin) error
}

// BaseController is the standard implementation of the Controller
// interface, operating on the accrual and totals buckets.
type BaseController struct {
	accruals orm.ModelBucket
	totals   orm.ModelBucket
}

var _ Controller = (*BaseController)(nil)

// NewController returns a base controller using the default buckets.
func NewController() *BaseController {
	return &BaseController{
		accruals: NewAccrualBucket(),
		totals:   NewTotalsBucket(),
	}
}

func (c *BaseController) Accrue(db weave.KVStore, collection weave.Address, recipient weave.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must not be negative")
	}

	key := accrualKey(collection, recipient, amount.Ticker)
	var accrual Accrual
	switch err := c.accruals.One(db, key, &accrual); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		accrual = Accrual{
			Metadata: &weave.Metadata{Schema: 1},
			Accrued:  coin.NewCoinp(0, 0, amount.Ticker),
			Claimed:  coin.NewCoinp(0, 0, amount.Ticker),
		}
	default:
		return errors.Wrap(err, "cannot get accrual")
	}
	accrued, err := accrual.Accrued.Add(amount)
	if err != nil {
		return errors.Wrap(err, "cannot add accrual")
	}
	accrual.Accrued = &accrued
	if _, err := c.accruals.Put(db, key, &accrual); err != nil {
		return errors.Wrap(err, "cannot store accrual")
	}

	var totals Totals
	switch err := c.totals.One(db, []byte(amount.Ticker), &totals); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		totals = Totals{
			Metadata: &weave.Metadata{Schema: 1},
			Accrued:  coin.NewCoinp(0, 0, amount.Ticker),
			Claimed:  coin.NewCoinp(0, 0, amount.Ticker),
		}
	default:
		return errors.Wrap(err, "cannot get totals")
	}
	total, err := totals.Accrued.Add(amount)
	if err != nil {
		return errors.Wrap(err, "cannot add totals")
	}
	totals.Accrued = &total
	if _, err := c.totals.Put(db, []byte(amount.Ticker), &totals); err != nil {
		return errors.Wrap(err, "cannot store totals")
	}
	return nil
}
