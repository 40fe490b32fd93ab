package oracle

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Gate{}, migration.NoModification)
}

var _ orm.CloneableData = (*Gate)(nil)

func (g *Gate) Validate() error {
	if err := g.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if g.LastRequestHeight < 0 {
		return errors.Wrap(errors.ErrModel, "negative request height")
	}
	if g.Open && len(g.RequestId) == 0 {
		return errors.Wrap(errors.ErrModel, "open gate without request id")
	}
	return nil
}

func (g *Gate) Copy() orm.CloneableData {
	return &Gate{
		Metadata:          g.Metadata.Copy(),
		LastRequestHeight: g.LastRequestHeight,
		RequestId:         append([]byte(nil), g.RequestId...),
		Open:              g.Open,
	}
}

// NewGateBucket returns a bucket for keeping per collection oracle gates.
// Gates are stored under the collection address.
func NewGateBucket() orm.ModelBucket {
	b := orm.NewModelBucket("gate", &Gate{})
	return migration.NewModelBucket("oracle", b)
}
