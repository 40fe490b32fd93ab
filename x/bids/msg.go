package bids

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &PlaceBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &AcceptBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawBidMsg{}, migration.NoModification)
}

var _ weave.Msg = (*PlaceBidMsg)(nil)
var _ weave.Msg = (*AcceptBidMsg)(nil)
var _ weave.Msg = (*WithdrawBidMsg)(nil)

func (msg *PlaceBidMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := msg.Bidder.Validate(); err != nil {
		return errors.Wrap(err, "bidder")
	}
	if msg.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "amount not set")
	}
	if err := msg.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !msg.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	return nil
}

func (PlaceBidMsg) Path() string {
	return "bids/place_bid"
}

func (msg *AcceptBidMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.ItemId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "item id")
	}
	return nil
}

func (AcceptBidMsg) Path() string {
	return "bids/accept_bid"
}

func (msg *WithdrawBidMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	return nil
}

func (WithdrawBidMsg) Path() string {
	return "bids/withdraw_bid"
}
