package attribution

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller provides the functionality needed by other extensions to
// manage item attributions without going through message processing.
type Controller interface {
	// Minter returns the minter of an existing attribution.
	Minter(db weave.KVStore, collection weave.Address, itemID []byte) (weave.Address, error)
	// SetMinter reassigns the minter of an existing attribution.
	SetMinter(db weave.KVStore, collection weave.Address, itemID []byte, minter weave.Address) error
}

// BaseController is the standard implementation of the Controller
// interface, operating on the attribution bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = (*BaseController)(nil)

// NewController returns a base controller using the given bucket.
func NewController(bucket orm.ModelBucket) *BaseController {
	return &BaseController{bucket: bucket}
}

func (c *BaseController) Minter(db weave.KVStore, collection weave.Address, itemID []byte) (weave.Address, error) {
	var attr Attribution
	if err := c.bucket.One(db, itemKey(collection, itemID), &attr); err != nil {
		return nil, errors.Wrap(err, "cannot get attribution")
	}
	return attr.Minter, nil
}

func (c *BaseController) SetMinter(db weave.KVStore, collection weave.Address, itemID []byte, minter weave.Address) error {
	key := itemKey(collection, itemID)
	var attr Attribution
	if err := c.bucket.One(db, key, &attr); err != nil {
		return errors.Wrap(err, "cannot get attribution")
	}
	attr.Minter = minter
	if _, err := c.bucket.Put(db, key, &attr); err != nil {
		return errors.Wrap(err, "cannot store attribution")
	}
	return nil
}
