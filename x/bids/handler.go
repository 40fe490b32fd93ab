package bids

import (
	"bytes"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"

	"github.com/iov-one/atelier/x/attribution"
	"github.com/iov-one/atelier/x/collection"
)

const (
	placeBidCost    = 0
	acceptBidCost   = 0
	withdrawBidCost = 0
)

// CashController is the cash functionality needed by the bid handlers. It
// is implemented by the x/cash controller.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterQuery registers the bids bucket for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewBidBucket().Register("bids", qr)
}

// RegisterRoutes registers handlers for bid message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, attrctrl attribution.Controller, cashctrl CashController) {
	r = migration.SchemaMigratingRegistry("bids", r)
	r.Handle(&PlaceBidMsg{}, &placeBidHandler{
		auth:        auth,
		collections: collection.NewBucket(),
		bids:        NewBidBucket(),
		cashctrl:    cashctrl,
	})
	r.Handle(&AcceptBidMsg{}, &acceptBidHandler{
		auth:     auth,
		bids:     NewBidBucket(),
		attrctrl: attrctrl,
		cashctrl: cashctrl,
	})
	r.Handle(&WithdrawBidMsg{}, &withdrawBidHandler{
		auth:     auth,
		bids:     NewBidBucket(),
		cashctrl: cashctrl,
	})
}

type placeBidHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	bids        orm.ModelBucket
	cashctrl    CashController
}

var _ weave.Handler = (*placeBidHandler)(nil)

func (h *placeBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: placeBidCost}, nil
}

func (h *placeBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	bidID, err := bidSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire bid id")
	}
	height, _ := weave.GetHeight(ctx)
	bid := Bid{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: msg.Collection,
		ItemId:     msg.ItemId,
		Bidder:     msg.Bidder,
		Amount:     msg.Amount,
		Height:     height,
	}
	if _, err := h.bids.Put(db, bidID, &bid); err != nil {
		return nil, errors.Wrap(err, "cannot store bid")
	}
	if err := h.cashctrl.MoveCoins(db, msg.Bidder, EscrowAccount(bidID), *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot escrow funds")
	}
	return &weave.DeliverResult{Data: bidID}, nil
}

func (h *placeBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*PlaceBidMsg, error) {
	var msg PlaceBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Bidder) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "bidder signature required")
	}
	switch err := h.collections.Has(db, msg.Collection); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrNotFound, "collection not registered")
	default:
		return nil, errors.Wrap(err, "cannot check collection")
	}
	return &msg, nil
}

type acceptBidHandler struct {
	auth     x.Authenticator
	bids     orm.ModelBucket
	attrctrl attribution.Controller
	cashctrl CashController
}

var _ weave.Handler = (*acceptBidHandler)(nil)

func (h *acceptBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: acceptBidCost}, nil
}

func (h *acceptBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, seller, bidID, bid, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.attrctrl.SetMinter(db, msg.Collection, msg.ItemId, bid.Bidder); err != nil {
		return nil, errors.Wrap(err, "cannot reassign minter")
	}
	// Losing bids stay escrowed and can be withdrawn by their bidders.
	if err := h.bids.Delete(db, bidID); err != nil {
		return nil, errors.Wrap(err, "cannot delete bid")
	}
	// The minter position is traded directly, the full amount goes to the
	// seller without a royalty cut.
	if err := h.cashctrl.MoveCoins(db, EscrowAccount(bidID), seller, *bid.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay out")
	}
	return &weave.DeliverResult{Data: bidID}, nil
}

func (h *acceptBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AcceptBidMsg, weave.Address, []byte, *Bid, error) {
	var msg AcceptBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "load msg")
	}
	seller, err := h.attrctrl.Minter(db, msg.Collection, msg.ItemId)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "cannot get minter")
	}
	if !h.auth.HasAddress(ctx, seller) {
		return nil, nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "minter signature required")
	}
	// Bids on the item compete with collection wide bids.
	bidID, bid, err := h.bestBid(db, msg.Collection, msg.ItemId)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return &msg, seller, bidID, bid, nil
}

// bestBid returns the highest pending bid on an item, considering both
// the item scope and the collection wide scope. On equal amounts the
// oldest bid wins.
func (h *acceptBidHandler) bestBid(db weave.KVStore, collection weave.Address, itemID []byte) ([]byte, *Bid, error) {
	scopes := [][]byte{scopeKey(collection, itemID)}
	if len(itemID) != 0 {
		scopes = append(scopes, scopeKey(collection, nil))
	}
	var (
		bestID  []byte
		bestBid *Bid
	)
	for _, scope := range scopes {
		var bids []*Bid
		keys, err := h.bids.ByIndex(db, "scope", scope, &bids)
		if err != nil {
			return nil, nil, errors.Wrap(err, "cannot list bids")
		}
		for i, b := range bids {
			switch {
			case bestBid == nil:
			case b.Amount.Compare(*bestBid.Amount) > 0:
			case b.Amount.Compare(*bestBid.Amount) == 0 && bytes.Compare(keys[i], bestID) < 0:
			default:
				continue
			}
			bestID = keys[i]
			bestBid = b
		}
	}
	if bestBid == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "no pending bid")
	}
	return bestID, bestBid, nil
}

type withdrawBidHandler struct {
	auth     x.Authenticator
	bids     orm.ModelBucket
	cashctrl CashController
}

var _ weave.Handler = (*withdrawBidHandler)(nil)

func (h *withdrawBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: withdrawBidCost}, nil
}

func (h *withdrawBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	bidID, bid, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.bids.Delete(db, bidID); err != nil {
		return nil, errors.Wrap(err, "cannot delete bid")
	}
	if err := h.cashctrl.MoveCoins(db, EscrowAccount(bidID), bid.Bidder, *bid.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot refund")
	}
	return &weave.DeliverResult{Data: bidID}, nil
}

// validate finds the oldest pending bid of the signer within the
// requested scope.
func (h *withdrawBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) ([]byte, *Bid, error) {
	var msg WithdrawBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var bids []*Bid
	keys, err := h.bids.ByIndex(db, "scope", scopeKey(msg.Collection, msg.ItemId), &bids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot list bids")
	}
	var (
		oldestID  []byte
		oldestBid *Bid
	)
	for i, b := range bids {
		if !h.auth.HasAddress(ctx, b.Bidder) {
			continue
		}
		if oldestBid == nil || bytes.Compare(keys[i], oldestID) < 0 {
			oldestID = keys[i]
			oldestBid = b
		}
	}
	if oldestBid == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "no pending bid")
	}
	return oldestID, oldestBid, nil
}
