package bids

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Bid{}, migration.NoModification)
}

var _ orm.CloneableData = (*Bid)(nil)

func (b *Bid) Validate() error {
	if err := b.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := b.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := b.Bidder.Validate(); err != nil {
		return errors.Wrap(err, "bidder")
	}
	if b.Amount == nil {
		return errors.Wrap(errors.ErrModel, "amount not set")
	}
	if err := b.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !b.Amount.IsPositive() {
		return errors.Wrap(errors.ErrModel, "amount must be positive")
	}
	if b.Height < 0 {
		return errors.Wrap(errors.ErrModel, "negative height")
	}
	return nil
}

func (b *Bid) Copy() orm.CloneableData {
	return &Bid{
		Metadata:   b.Metadata.Copy(),
		Collection: b.Collection.Clone(),
		ItemId:     append([]byte(nil), b.ItemId...),
		Bidder:     b.Bidder.Clone(),
		Amount:     b.Amount.Clone(),
		Height:     b.Height,
	}
}

// NewBidBucket returns a bucket for keeping pending bids. Bids are stored
// under a sequence id and indexed by their scope and by the bidder.
func NewBidBucket() orm.ModelBucket {
	b := orm.NewModelBucket("bid", &Bid{},
		orm.WithIndex("scope", idxScope, false),
		orm.WithIndex("bidder", idxBidder, false),
	)
	return migration.NewModelBucket("bids", b)
}

var bidSeq = orm.NewSequence("bids", "id")

func toBid(obj orm.Object) (*Bid, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	b, ok := obj.Value().(*Bid)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Bid")
	}
	return b, nil
}

func idxScope(obj orm.Object) ([]byte, error) {
	b, err := toBid(obj)
	if err != nil {
		return nil, err
	}
	return scopeKey(b.Collection, b.ItemId), nil
}

func idxBidder(obj orm.Object) ([]byte, error) {
	b, err := toBid(obj)
	if err != nil {
		return nil, err
	}
	return b.Bidder, nil
}

// scopeKey addresses all bids on one item of a collection. An empty item
// id is the collection wide scope.
func scopeKey(collection weave.Address, itemID []byte) []byte {
	key := make([]byte, 0, len(collection)+len(itemID))
	key = append(key, collection...)
	return append(key, itemID...)
}

// EscrowAccount returns the address holding the funds of a single bid.
func EscrowAccount(bidID []byte) weave.Address {
	return weave.NewCondition("bids", "escrow", bidID).Address()
}
