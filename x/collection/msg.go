package collection

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterCollectionMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateCreatorMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RegisterCollectionMsg)(nil)
var _ weave.Msg = (*UpdateCreatorMsg)(nil)

func (msg *RegisterCollectionMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := validateFraction(msg.FeeNumerator, msg.MinterShareNumerator, msg.CreatorShareNumerator, errors.ErrMsg); err != nil {
		return err
	}
	if len(msg.Creator) == 0 {
		return errors.Wrap(errors.ErrEmpty, "creator")
	}
	if err := msg.Creator.Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	return nil
}

func (RegisterCollectionMsg) Path() string {
	return "collection/register"
}

func (msg *UpdateCreatorMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.NewCreator) == 0 {
		return errors.Wrap(errors.ErrEmpty, "new creator")
	}
	if err := msg.NewCreator.Validate(); err != nil {
		return errors.Wrap(err, "new creator")
	}
	return nil
}

func (UpdateCreatorMsg) Path() string {
	return "collection/update_creator"
}
