package collection

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	registerCollectionCost = 0
	updateCreatorCost      = 0
)

// RegisterQuery registers collection buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("collections", qr)
}

// RegisterRoutes registers handlers for collection message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("collection", r)
	bucket := NewBucket()
	r.Handle(&RegisterCollectionMsg{}, &registerCollectionHandler{
		auth:   auth,
		bucket: bucket,
	})
	r.Handle(&UpdateCreatorMsg{}, &updateCreatorHandler{
		auth:   auth,
		bucket: bucket,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"collection", &Configuration{}, auth, migration.CurrentAdmin))
}

type registerCollectionHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*registerCollectionHandler)(nil)

func (h *registerCollectionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: registerCollectionCost}, nil
}

func (h *registerCollectionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	col := Collection{
		Metadata:              &weave.Metadata{Schema: 1},
		FeeNumerator:          msg.FeeNumerator,
		MinterShareNumerator:  msg.MinterShareNumerator,
		CreatorShareNumerator: msg.CreatorShareNumerator,
		Creator:               msg.Creator,
	}
	if _, err := h.bucket.Put(db, msg.Collection, &col); err != nil {
		return nil, errors.Wrap(err, "cannot store collection")
	}
	return &weave.DeliverResult{Data: msg.Collection}, nil
}

func (h *registerCollectionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterCollectionMsg, error) {
	var msg RegisterCollectionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) && !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	// Registration must never overwrite an existing configuration.
	switch err := h.bucket.Has(db, msg.Collection); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "collection already registered")
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return nil, errors.Wrap(err, "cannot check collection")
	}
	return &msg, nil
}

type updateCreatorHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = (*updateCreatorHandler)(nil)

func (h *updateCreatorHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateCreatorCost}, nil
}

func (h *updateCreatorHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, col, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	col.Creator = msg.NewCreator
	if _, err := h.bucket.Put(db, msg.Collection, col); err != nil {
		return nil, errors.Wrap(err, "cannot store collection")
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateCreatorHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateCreatorMsg, *Collection, error) {
	var msg UpdateCreatorMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var col Collection
	if err := h.bucket.One(db, msg.Collection, &col); err != nil {
		return nil, nil, errors.Wrap(err, "cannot get collection")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	// The current creator, the configuration admin/owner or the
	// collection identity itself can transfer the creator role.
	switch {
	case h.auth.HasAddress(ctx, col.Creator):
	case h.auth.HasAddress(ctx, conf.Admin):
	case h.auth.HasAddress(ctx, conf.Owner):
	case h.auth.HasAddress(ctx, msg.Collection):
	default:
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator, admin or collection signature required")
	}
	return &msg, &col, nil
}
