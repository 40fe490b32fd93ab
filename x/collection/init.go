package collection

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial collection info from genesis and save it to
// the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "collection", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var collections []struct {
		Collection            weave.Address `json:"collection"`
		FeeNumerator          uint32        `json:"fee_numerator"`
		MinterShareNumerator  uint32        `json:"minter_share_numerator"`
		CreatorShareNumerator uint32        `json:"creator_share_numerator"`
		Creator               weave.Address `json:"creator"`
	}
	if err := opts.ReadOptions("collections", &collections); err != nil {
		return errors.Wrap(err, "cannot load collections")
	}

	bucket := NewBucket()
	for i, c := range collections {
		col := Collection{
			Metadata:              &weave.Metadata{Schema: 1},
			FeeNumerator:          c.FeeNumerator,
			MinterShareNumerator:  c.MinterShareNumerator,
			CreatorShareNumerator: c.CreatorShareNumerator,
			Creator:               c.Creator,
		}
		if _, err := bucket.Put(kv, c.Collection, &col); err != nil {
			return errors.Wrapf(err, "cannot store #%d collection", i)
		}
	}
	return nil
}
