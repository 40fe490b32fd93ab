package collection

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Collection{}, migration.NoModification)
}

const (
	// Denominator is the fixed denominator for both the fee fraction and
	// the minter/creator share split. All numerators are basis points.
	Denominator = 10000
)

var _ orm.CloneableData = (*Collection)(nil)

func (c *Collection) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateFraction(c.FeeNumerator, c.MinterShareNumerator, c.CreatorShareNumerator, errors.ErrModel); err != nil {
		return err
	}
	if err := c.Creator.Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	return nil
}

// validateFraction ensures the fee and the share split are within the fixed
// denominator. It is shared between the model and message validation, which
// return different error classes.
func validateFraction(fee, minterShare, creatorShare uint32, baseErr *errors.Error) error {
	if fee == 0 || fee > Denominator {
		return errors.Wrapf(baseErr, "fee numerator must be within (0, %d]", Denominator)
	}
	if minterShare == 0 || creatorShare == 0 {
		return errors.Wrap(baseErr, "zero share")
	}
	if minterShare+creatorShare != Denominator {
		return errors.Wrapf(baseErr, "shares must sum up to %d", Denominator)
	}
	return nil
}

func (c *Collection) Copy() orm.CloneableData {
	return &Collection{
		Metadata:              c.Metadata.Copy(),
		FeeNumerator:          c.FeeNumerator,
		MinterShareNumerator:  c.MinterShareNumerator,
		CreatorShareNumerator: c.CreatorShareNumerator,
		Creator:               c.Creator.Clone(),
	}
}

// NewBucket returns a bucket for keeping collection configurations. They are
// stored under the collection address.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("colcfg", &Collection{})
	return migration.NewModelBucket("collection", b)
}
