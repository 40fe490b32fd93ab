package oracle

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RequestUpdateMsg{}, migration.NoModification)
	migration.MustRegister(1, &FulfillMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RequestUpdateMsg)(nil)
var _ weave.Msg = (*FulfillMsg)(nil)

func (msg *RequestUpdateMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	return nil
}

func (RequestUpdateMsg) Path() string {
	return "oracle/request_update"
}

func (msg *FulfillMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(msg.RequestId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "request id")
	}
	if err := msg.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(msg.Credits) == 0 {
		return errors.Wrap(errors.ErrEmpty, "credits")
	}
	for i, c := range msg.Credits {
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "credit #%d", i)
		}
	}
	return nil
}

func (FulfillMsg) Path() string {
	return "oracle/fulfill"
}

func (c *Credit) Validate() error {
	if c == nil {
		return errors.Wrap(errors.ErrMsg, "empty credit")
	}
	if err := c.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if c.Amount == nil {
		return errors.Wrap(errors.ErrMsg, "amount not set")
	}
	if err := c.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !c.Amount.IsPositive() {
		return errors.Wrap(errors.ErrMsg, "amount must be positive")
	}
	return nil
}
