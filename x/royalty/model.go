package royalty

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Accrual{}, migration.NoModification)
	migration.MustRegister(1, &Totals{}, migration.NoModification)
	migration.MustRegister(1, &ProcessedTx{}, migration.NoModification)
	migration.MustRegister(1, &ClaimRoot{}, migration.NoModification)
	migration.MustRegister(1, &RootClaim{}, migration.NoModification)
}

var _ orm.CloneableData = (*Accrual)(nil)

func (a *Accrual) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if a.Accrued == nil || a.Claimed == nil {
		return errors.Wrap(errors.ErrModel, "amounts not set")
	}
	if err := a.Accrued.Validate(); err != nil {
		return errors.Wrap(err, "accrued")
	}
	if err := a.Claimed.Validate(); err != nil {
		return errors.Wrap(err, "claimed")
	}
	if !a.Accrued.IsPositive() && !a.Accrued.IsZero() {
		return errors.Wrap(errors.ErrModel, "negative accrued")
	}
	if !a.Claimed.IsPositive() && !a.Claimed.IsZero() {
		return errors.Wrap(errors.ErrModel, "negative claimed")
	}
	if !a.Accrued.SameType(*a.Claimed) {
		return errors.Wrap(errors.ErrModel, "ticker mismatch")
	}
	if a.Accrued.Compare(*a.Claimed) < 0 {
		return errors.Wrap(errors.ErrModel, "claimed exceeds accrued")
	}
	return nil
}

func (a *Accrual) Copy() orm.CloneableData {
	return &Accrual{
		Metadata: a.Metadata.Copy(),
		Accrued:  a.Accrued.Clone(),
		Claimed:  a.Claimed.Clone(),
	}
}

// Claimable returns how much of the accrual was not paid out yet.
func Claimable(a *Accrual) coin.Coin {
	unclaimed, err := a.Accrued.Subtract(*a.Claimed)
	if err != nil {
		// Validate guards the ticker, a stored accrual cannot fail.
		return coin.Coin{Ticker: a.Accrued.Ticker}
	}
	return unclaimed
}

var _ orm.CloneableData = (*Totals)(nil)

func (t *Totals) Validate() error {
	if err := t.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if t.Accrued == nil || t.Claimed == nil {
		return errors.Wrap(errors.ErrModel, "amounts not set")
	}
	if err := t.Accrued.Validate(); err != nil {
		return errors.Wrap(err, "accrued")
	}
	if err := t.Claimed.Validate(); err != nil {
		return errors.Wrap(err, "claimed")
	}
	if t.Accrued.Compare(*t.Claimed) < 0 {
		return errors.Wrap(errors.ErrModel, "claimed exceeds accrued")
	}
	return nil
}

func (t *Totals) Copy() orm.CloneableData {
	return &Totals{
		Metadata: t.Metadata.Copy(),
		Accrued:  t.Accrued.Clone(),
		Claimed:  t.Claimed.Clone(),
	}
}

var _ orm.CloneableData = (*ProcessedTx)(nil)

func (p *ProcessedTx) Validate() error {
	return errors.Wrap(p.Metadata.Validate(), "metadata")
}

func (p *ProcessedTx) Copy() orm.CloneableData {
	return &ProcessedTx{Metadata: p.Metadata.Copy()}
}

var _ orm.CloneableData = (*ClaimRoot)(nil)

func (c *ClaimRoot) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(c.Root) != rootSize {
		return errors.Wrap(errors.ErrModel, "malformed root")
	}
	if c.Total == nil || !c.Total.IsPositive() {
		return errors.Wrap(errors.ErrModel, "total must be positive")
	}
	return nil
}

func (c *ClaimRoot) Copy() orm.CloneableData {
	return &ClaimRoot{
		Metadata: c.Metadata.Copy(),
		Root:     append([]byte(nil), c.Root...),
		Total:    c.Total.Clone(),
	}
}

var _ orm.CloneableData = (*RootClaim)(nil)

func (r *RootClaim) Validate() error {
	return errors.Wrap(r.Metadata.Validate(), "metadata")
}

func (r *RootClaim) Copy() orm.CloneableData {
	return &RootClaim{Metadata: r.Metadata.Copy()}
}

// accrualKey addresses the accrual of a single recipient within a
// collection, separately per ticker.
func accrualKey(collection weave.Address, recipient weave.Address, ticker string) []byte {
	key := make([]byte, 0, len(collection)+len(recipient)+len(ticker))
	key = append(key, collection...)
	key = append(key, recipient...)
	return append(key, ticker...)
}

// processedTxKey addresses the dedup marker of an external sale. Sale
// identities are scoped to their collection.
func processedTxKey(collection weave.Address, txID []byte) []byte {
	key := make([]byte, 0, len(collection)+len(txID))
	key = append(key, collection...)
	return append(key, txID...)
}

// rootClaimKey addresses the consumed marker of a merkle distribution
// payout.
func rootClaimKey(root []byte, recipient weave.Address) []byte {
	key := make([]byte, 0, len(root)+len(recipient))
	key = append(key, root...)
	return append(key, recipient...)
}

// PoolAccount returns the address of the account holding the royalty
// funds of a collection. It is funded by external deposits.
func PoolAccount(collection weave.Address) weave.Address {
	return weave.NewCondition("royalty", "pool", collection).Address()
}

// NewAccrualBucket returns a bucket for keeping per recipient accruals.
func NewAccrualBucket() orm.ModelBucket {
	b := orm.NewModelBucket("accr", &Accrual{})
	return migration.NewModelBucket("royalty", b)
}

// NewTotalsBucket returns a bucket for keeping per ticker global
// aggregates.
func NewTotalsBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rtot", &Totals{})
	return migration.NewModelBucket("royalty", b)
}

// NewProcessedTxBucket returns a bucket for keeping the sale dedup set.
func NewProcessedTxBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rtx", &ProcessedTx{})
	return migration.NewModelBucket("royalty", b)
}

// NewRootBucket returns a bucket for keeping active distribution roots.
func NewRootBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rroot", &ClaimRoot{})
	return migration.NewModelBucket("royalty", b)
}

// NewRootClaimBucket returns a bucket for keeping consumed distribution
// payout markers.
func NewRootClaimBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rclm", &RootClaim{})
	return migration.NewModelBucket("royalty", b)
}
