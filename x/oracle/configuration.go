package oracle

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := c.TrustedOracle.Validate(); err != nil {
		return errors.Wrap(err, "trusted oracle")
	}
	if c.MinInterval < 0 {
		return errors.Wrap(errors.ErrMsg, "negative interval")
	}
	return nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "oracle", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (msg *UpdateConfigurationMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}

func (UpdateConfigurationMsg) Path() string {
	return "oracle/update_configuration"
}
