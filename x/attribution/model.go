package attribution

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Attribution{}, migration.NoModification)
}

var _ orm.CloneableData = (*Attribution)(nil)

func (a *Attribution) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := a.Minter.Validate(); err != nil {
		return errors.Wrap(err, "minter")
	}
	if len(a.Holder) != 0 {
		if err := a.Holder.Validate(); err != nil {
			return errors.Wrap(err, "holder")
		}
	}
	return nil
}

func (a *Attribution) Copy() orm.CloneableData {
	return &Attribution{
		Metadata: a.Metadata.Copy(),
		Minter:   a.Minter.Clone(),
		Holder:   a.Holder.Clone(),
	}
}

// itemKey is the database key of an attribution. An item is unique within
// its collection only, so the key is prefixed with the collection address.
func itemKey(collection weave.Address, itemID []byte) []byte {
	key := make([]byte, 0, len(collection)+len(itemID))
	key = append(key, collection...)
	return append(key, itemID...)
}

// NewBucket returns a bucket for keeping item attributions. They are stored
// under the collection address combined with the item ID.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("attr", &Attribution{})
	return migration.NewModelBucket("attribution", b)
}
