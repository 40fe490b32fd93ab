package attribution

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &AssignMinterMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateHolderMsg{}, migration.NoModification)
}

var _ weave.Msg = (*AssignMinterMsg)(nil)
var _ weave.Msg = (*UpdateHolderMsg)(nil)

func (msg *AssignMinterMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.ItemId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "item id")
	}
	if len(msg.Minter) == 0 {
		return errors.Wrap(errors.ErrEmpty, "minter")
	}
	if err := msg.Minter.Validate(); err != nil {
		return errors.Wrap(err, "minter")
	}
	return nil
}

func (AssignMinterMsg) Path() string {
	return "attribution/assign_minter"
}

func (msg *UpdateHolderMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.ItemId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "item id")
	}
	if len(msg.Holder) == 0 {
		return errors.Wrap(errors.ErrEmpty, "holder")
	}
	if err := msg.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	return nil
}

func (UpdateHolderMsg) Path() string {
	return "attribution/update_holder"
}
