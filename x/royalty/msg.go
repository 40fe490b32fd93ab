package royalty

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &SubmitBatchMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimWithProofMsg{}, migration.NoModification)
	migration.MustRegister(1, &SubmitRootMsg{}, migration.NoModification)
}

var _ weave.Msg = (*SubmitBatchMsg)(nil)
var _ weave.Msg = (*ClaimMsg)(nil)
var _ weave.Msg = (*ClaimWithProofMsg)(nil)
var _ weave.Msg = (*SubmitRootMsg)(nil)

func (msg *SubmitBatchMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.Sales) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sales")
	}
	for i, sale := range msg.Sales {
		if err := sale.Validate(); err != nil {
			return errors.Wrapf(err, "sale #%d", i)
		}
	}
	return nil
}

func (SubmitBatchMsg) Path() string {
	return "royalty/submit_batch"
}

func (s *SaleRecord) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrEmpty, "record")
	}
	if len(s.ItemId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "item id")
	}
	if err := s.Minter.Validate(); err != nil {
		return errors.Wrap(err, "minter")
	}
	if s.SalePrice == nil {
		return errors.Wrap(errors.ErrEmpty, "sale price")
	}
	if err := s.SalePrice.Validate(); err != nil {
		return errors.Wrap(err, "sale price")
	}
	if !s.SalePrice.IsPositive() {
		return errors.Wrap(errors.ErrMsg, "sale price must be positive")
	}
	if len(s.TxId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "tx id")
	}
	return nil
}

func (msg *ClaimMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := msg.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if msg.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := msg.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !msg.Amount.IsPositive() {
		return errors.Wrap(errors.ErrMsg, "amount must be positive")
	}
	return nil
}

func (ClaimMsg) Path() string {
	return "royalty/claim"
}

func (msg *ClaimWithProofMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := msg.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if msg.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := msg.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !msg.Amount.IsPositive() {
		return errors.Wrap(errors.ErrMsg, "amount must be positive")
	}
	if len(msg.Proof) == 0 {
		return errors.Wrap(errors.ErrEmpty, "proof")
	}
	for i, sibling := range msg.Proof {
		if len(sibling) != rootSize {
			return errors.Wrapf(errors.ErrMsg, "malformed proof node #%d", i)
		}
	}
	return nil
}

func (ClaimWithProofMsg) Path() string {
	return "royalty/claim_with_proof"
}

func (msg *SubmitRootMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.Root) != rootSize {
		return errors.Wrap(errors.ErrMsg, "malformed root")
	}
	if msg.Total == nil {
		return errors.Wrap(errors.ErrEmpty, "total")
	}
	if err := msg.Total.Validate(); err != nil {
		return errors.Wrap(err, "total")
	}
	if !msg.Total.IsPositive() {
		return errors.Wrap(errors.ErrMsg, "total must be positive")
	}
	return nil
}

func (SubmitRootMsg) Path() string {
	return "royalty/submit_root"
}
