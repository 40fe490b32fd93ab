package attribution

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"

	"github.com/iov-one/atelier/x/collection"
)

const (
	assignMinterCost = 0
	updateHolderCost = 0
)

// RegisterQuery registers attribution buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("attributions", qr)
}

// RegisterRoutes registers handlers for attribution message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("attribution", r)
	bucket := NewBucket()
	collections := collection.NewBucket()
	r.Handle(&AssignMinterMsg{}, &assignMinterHandler{
		auth:        auth,
		bucket:      bucket,
		collections: collections,
	})
	r.Handle(&UpdateHolderMsg{}, &updateHolderHandler{
		auth:   auth,
		bucket: bucket,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"attribution", &Configuration{}, auth, migration.CurrentAdmin))
}

type assignMinterHandler struct {
	auth        x.Authenticator
	bucket      orm.ModelBucket
	collections orm.ModelBucket
}

var _ weave.Handler = (*assignMinterHandler)(nil)

func (h *assignMinterHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: assignMinterCost}, nil
}

func (h *assignMinterHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	attr := Attribution{
		Metadata: &weave.Metadata{Schema: 1},
		Minter:   msg.Minter,
	}
	key := itemKey(msg.Collection, msg.ItemId)
	if _, err := h.bucket.Put(db, key, &attr); err != nil {
		return nil, errors.Wrap(err, "cannot store attribution")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *assignMinterHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AssignMinterMsg, error) {
	var msg AssignMinterMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Only the collection identity can attribute its items.
	if !h.auth.HasAddress(ctx, msg.Collection) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "collection signature required")
	}
	switch err := h.collections.Has(db, msg.Collection); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrNotFound, "collection not registered")
	default:
		return nil, errors.Wrap(err, "cannot check collection")
	}
	// An attribution is written once. Reassignment happens only through
	// the bid market controller.
	switch err := h.bucket.Has(db, itemKey(msg.Collection, msg.ItemId)); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrImmutable, "minter already assigned")
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return nil, errors.Wrap(err, "cannot check attribution")
	}
	return &msg, nil
}

type updateHolderHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*updateHolderHandler)(nil)

func (h *updateHolderHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateHolderCost}, nil
}

func (h *updateHolderHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, attr, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	attr.Holder = msg.Holder
	if _, err := h.bucket.Put(db, itemKey(msg.Collection, msg.ItemId), attr); err != nil {
		return nil, errors.Wrap(err, "cannot store attribution")
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateHolderHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateHolderMsg, *Attribution, error) {
	var msg UpdateHolderMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case h.auth.HasAddress(ctx, msg.Collection):
	case len(conf.Service) != 0 && h.auth.HasAddress(ctx, conf.Service):
	default:
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "collection or service signature required")
	}
	var attr Attribution
	if err := h.bucket.One(db, itemKey(msg.Collection, msg.ItemId), &attr); err != nil {
		return nil, nil, errors.Wrap(err, "cannot get attribution")
	}
	return &msg, &attr, nil
}
