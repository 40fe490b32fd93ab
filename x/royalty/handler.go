package royalty

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"

	"github.com/iov-one/atelier/x/collection"
)

const (
	submitBatchCost = 0
	claimCost       = 0
	submitRootCost  = 0
)

// CashController is the cash functionality needed by the royalty
// handlers. It is implemented by the x/cash controller.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
}

// RegisterQuery registers royalty buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewAccrualBucket().Register("accruals", qr)
	NewTotalsBucket().Register("royalty/totals", qr)
	NewRootBucket().Register("royalty/roots", qr)
}

// RegisterRoutes registers handlers for royalty message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl CashController) {
	r = migration.SchemaMigratingRegistry("royalty", r)
	r.Handle(&SubmitBatchMsg{}, &submitBatchHandler{
		auth:        auth,
		collections: collection.NewBucket(),
		processed:   NewProcessedTxBucket(),
		ctrl:        NewController(),
	})
	r.Handle(&ClaimMsg{}, &claimHandler{
		auth:     auth,
		accruals: NewAccrualBucket(),
		totals:   NewTotalsBucket(),
		cashctrl: cashctrl,
	})
	r.Handle(&ClaimWithProofMsg{}, &claimWithProofHandler{
		auth:       auth,
		roots:      NewRootBucket(),
		rootClaims: NewRootClaimBucket(),
		cashctrl:   cashctrl,
	})
	r.Handle(&SubmitRootMsg{}, &submitRootHandler{
		auth:     auth,
		roots:    NewRootBucket(),
		cashctrl: cashctrl,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"royalty", &Configuration{}, auth, migration.CurrentAdmin))
}

type submitBatchHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	processed   orm.ModelBucket
	ctrl        Controller
}

var _ weave.Handler = (*submitBatchHandler)(nil)

func (h *submitBatchHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: submitBatchCost}, nil
}

func (h *submitBatchHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, col, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	for i, sale := range msg.Sales {
		txKey := processedTxKey(msg.Collection, sale.TxId)
		switch err := h.processed.Has(db, txKey); {
		case err == nil:
			// This sale was ingested before. Resubmission of the
			// same transaction is a harmless no-op.
			continue
		case errors.ErrNotFound.Is(err):
			// Fresh sale.
		default:
			return nil, errors.Wrapf(err, "sale #%d: cannot check tx", i)
		}

		minterShare, creatorShare, err := splitRoyalty(*sale.SalePrice, col)
		if err != nil {
			return nil, errors.Wrapf(err, "sale #%d", i)
		}
		if err := h.ctrl.Accrue(db, msg.Collection, sale.Minter, minterShare); err != nil {
			return nil, errors.Wrapf(err, "sale #%d: minter accrual", i)
		}
		if err := h.ctrl.Accrue(db, msg.Collection, col.Creator, creatorShare); err != nil {
			return nil, errors.Wrapf(err, "sale #%d: creator accrual", i)
		}
		mark := ProcessedTx{Metadata: &weave.Metadata{Schema: 1}}
		if _, err := h.processed.Put(db, txKey, &mark); err != nil {
			return nil, errors.Wrapf(err, "sale #%d: cannot mark tx", i)
		}
	}
	return &weave.DeliverResult{}, nil
}

// splitRoyalty computes the minter and creator share of a sale. The
// creator receives the remainder of the royalty, so that integer division
// never loses value.
func splitRoyalty(salePrice coin.Coin, col *collection.Collection) (minter coin.Coin, creator coin.Coin, err error) {
	gross, err := salePrice.Multiply(int64(col.FeeNumerator))
	if err != nil {
		return minter, creator, errors.Wrap(err, "royalty")
	}
	royalty, _, err := gross.Divide(collection.Denominator)
	if err != nil {
		return minter, creator, errors.Wrap(err, "royalty")
	}
	mgross, err := royalty.Multiply(int64(col.MinterShareNumerator))
	if err != nil {
		return minter, creator, errors.Wrap(err, "minter share")
	}
	minter, _, err = mgross.Divide(collection.Denominator)
	if err != nil {
		return minter, creator, errors.Wrap(err, "minter share")
	}
	creator, err = royalty.Subtract(minter)
	if err != nil {
		return minter, creator, errors.Wrap(err, "creator share")
	}
	return minter, creator, nil
}

func (h *submitBatchHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SubmitBatchMsg, *collection.Collection, error) {
	var msg SubmitBatchMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case h.auth.HasAddress(ctx, conf.Admin):
	case h.auth.HasAddress(ctx, conf.Owner):
	case len(conf.Service) != 0 && h.auth.HasAddress(ctx, conf.Service):
	default:
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin or service signature required")
	}
	var col collection.Collection
	if err := h.collections.One(db, msg.Collection, &col); err != nil {
		return nil, nil, errors.Wrap(err, "cannot get collection")
	}
	return &msg, &col, nil
}

type claimHandler struct {
	auth     x.Authenticator
	accruals orm.ModelBucket
	totals   orm.ModelBucket
	cashctrl CashController
}

var _ weave.Handler = (*claimHandler)(nil)

func (h *claimHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: claimCost}, nil
}

func (h *claimHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, accrual, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Update the ledger before any funds move.
	claimed, err := accrual.Claimed.Add(*msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "cannot add claim")
	}
	accrual.Claimed = &claimed
	key := accrualKey(msg.Collection, msg.Recipient, msg.Amount.Ticker)
	if _, err := h.accruals.Put(db, key, accrual); err != nil {
		return nil, errors.Wrap(err, "cannot store accrual")
	}
	var totals Totals
	if err := h.totals.One(db, []byte(msg.Amount.Ticker), &totals); err != nil {
		return nil, errors.Wrap(err, "cannot get totals")
	}
	total, err := totals.Claimed.Add(*msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "cannot add totals")
	}
	totals.Claimed = &total
	if _, err := h.totals.Put(db, []byte(msg.Amount.Ticker), &totals); err != nil {
		return nil, errors.Wrap(err, "cannot store totals")
	}

	pool := PoolAccount(msg.Collection)
	if err := h.cashctrl.MoveCoins(db, pool, msg.Recipient, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay out")
	}
	return &weave.DeliverResult{}, nil
}

// validate loads the message and ensures the claim is covered both by the
// recipient accrual and by the pool funds. Claiming is permissionless as
// funds always go to the recipient.
func (h *claimHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ClaimMsg, *Accrual, error) {
	var msg ClaimMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var accrual Accrual
	key := accrualKey(msg.Collection, msg.Recipient, msg.Amount.Ticker)
	switch err := h.accruals.One(db, key, &accrual); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(ErrUnclaimedBalance, "no accrual")
	default:
		return nil, nil, errors.Wrap(err, "cannot get accrual")
	}
	unclaimed := Claimable(&accrual)
	if unclaimed.Compare(*msg.Amount) < 0 {
		return nil, nil, errors.Wrapf(ErrUnclaimedBalance, "unclaimed %s", unclaimed)
	}
	funds, err := h.cashctrl.Balance(db, PoolAccount(msg.Collection))
	if err != nil {
		return nil, nil, errors.Wrap(err, "pool balance")
	}
	if !funds.Contains(*msg.Amount) {
		return nil, nil, errors.Wrap(ErrPoolBalance, "pool does not cover claim")
	}
	return &msg, &accrual, nil
}

type claimWithProofHandler struct {
	auth       x.Authenticator
	roots      orm.ModelBucket
	rootClaims orm.ModelBucket
	cashctrl   CashController
}

var _ weave.Handler = (*claimWithProofHandler)(nil)

func (h *claimWithProofHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: claimCost}, nil
}

func (h *claimWithProofHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, root, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Consume the payout before any funds move.
	mark := RootClaim{Metadata: &weave.Metadata{Schema: 1}}
	if _, err := h.rootClaims.Put(db, rootClaimKey(root.Root, msg.Recipient), &mark); err != nil {
		return nil, errors.Wrap(err, "cannot mark claim")
	}
	pool := PoolAccount(msg.Collection)
	if err := h.cashctrl.MoveCoins(db, pool, msg.Recipient, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay out")
	}
	return &weave.DeliverResult{}, nil
}

func (h *claimWithProofHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ClaimWithProofMsg, *ClaimRoot, error) {
	var msg ClaimWithProofMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var root ClaimRoot
	switch err := h.roots.One(db, msg.Collection, &root); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(errors.ErrState, "no active distribution root")
	default:
		return nil, nil, errors.Wrap(err, "cannot get root")
	}
	switch err := h.rootClaims.Has(db, rootClaimKey(root.Root, msg.Recipient)); {
	case err == nil:
		return nil, nil, errors.Wrap(ErrAlreadyClaimed, "payout consumed")
	case errors.ErrNotFound.Is(err):
		// Not paid out yet.
	default:
		return nil, nil, errors.Wrap(err, "cannot check claim")
	}
	leaf := claimLeaf(msg.Collection, msg.Recipient, *msg.Amount)
	if !verifyProof(root.Root, leaf, msg.Proof) {
		return nil, nil, errors.Wrap(ErrInvalidProof, "proof does not resolve to root")
	}
	funds, err := h.cashctrl.Balance(db, PoolAccount(msg.Collection))
	if err != nil {
		return nil, nil, errors.Wrap(err, "pool balance")
	}
	if !funds.Contains(*msg.Amount) {
		return nil, nil, errors.Wrap(ErrPoolBalance, "pool does not cover claim")
	}
	return &msg, &root, nil
}

type submitRootHandler struct {
	auth     x.Authenticator
	roots    orm.ModelBucket
	cashctrl CashController
}

var _ weave.Handler = (*submitRootHandler)(nil)

func (h *submitRootHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: submitRootCost}, nil
}

func (h *submitRootHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// A new submission replaces any previously active root.
	root := ClaimRoot{
		Metadata: &weave.Metadata{Schema: 1},
		Root:     msg.Root,
		Total:    msg.Total,
	}
	if _, err := h.roots.Put(db, msg.Collection, &root); err != nil {
		return nil, errors.Wrap(err, "cannot store root")
	}
	return &weave.DeliverResult{}, nil
}

func (h *submitRootHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SubmitRootMsg, error) {
	var msg SubmitRootMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) && !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	funds, err := h.cashctrl.Balance(db, PoolAccount(msg.Collection))
	if err != nil {
		return nil, errors.Wrap(err, "pool balance")
	}
	if !funds.Contains(*msg.Total) {
		return nil, errors.Wrap(ErrPoolBalance, "pool does not cover distribution")
	}
	return &msg, nil
}
