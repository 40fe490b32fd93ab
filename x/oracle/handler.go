package oracle

import (
	"bytes"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"

	"github.com/iov-one/atelier/x/collection"
	"github.com/iov-one/atelier/x/royalty"
)

const (
	requestUpdateCost = 0
	fulfillCost       = 0
)

// RegisterQuery registers oracle buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewGateBucket().Register("oracle/gates", qr)
}

// RegisterRoutes registers handlers for oracle message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl royalty.Controller) {
	r = migration.SchemaMigratingRegistry("oracle", r)
	r.Handle(&RequestUpdateMsg{}, &requestUpdateHandler{
		auth:        auth,
		collections: collection.NewBucket(),
		gates:       NewGateBucket(),
		requestSeq:  orm.NewSequence("oracle", "request"),
	})
	r.Handle(&FulfillMsg{}, &fulfillHandler{
		auth:        auth,
		collections: collection.NewBucket(),
		gates:       NewGateBucket(),
		ctrl:        ctrl,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"oracle", &Configuration{}, auth, migration.CurrentAdmin))
}

type requestUpdateHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	gates       orm.ModelBucket
	requestSeq  orm.Sequence
}

var _ weave.Handler = (*requestUpdateHandler)(nil)

func (h *requestUpdateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: requestUpdateCost}, nil
}

func (h *requestUpdateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, gate, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	requestID, err := h.requestSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire request id")
	}
	height, _ := weave.GetHeight(ctx)
	gate.LastRequestHeight = height
	gate.RequestId = requestID
	// A still pending request is superseded by this one.
	gate.Open = true
	if _, err := h.gates.Put(db, msg.Collection, gate); err != nil {
		return nil, errors.Wrap(err, "cannot store gate")
	}
	return &weave.DeliverResult{Data: requestID}, nil
}

// validate is permissionless. Requests are rate limited per collection by
// block height.
func (h *requestUpdateHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RequestUpdateMsg, *Gate, error) {
	var msg RequestUpdateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	switch err := h.collections.Has(db, msg.Collection); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(errors.ErrNotFound, "collection not registered")
	default:
		return nil, nil, errors.Wrap(err, "cannot check collection")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	var gate Gate
	switch err := h.gates.One(db, msg.Collection, &gate); {
	case err == nil:
		height, _ := weave.GetHeight(ctx)
		if height < gate.LastRequestHeight+conf.MinInterval {
			return nil, nil, errors.Wrapf(ErrTooFrequent,
				"next request allowed at height %d", gate.LastRequestHeight+conf.MinInterval)
		}
	case errors.ErrNotFound.Is(err):
		gate = Gate{Metadata: &weave.Metadata{Schema: 1}}
	default:
		return nil, nil, errors.Wrap(err, "cannot get gate")
	}
	return &msg, &gate, nil
}

type fulfillHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	gates       orm.ModelBucket
	ctrl        royalty.Controller
}

var _ weave.Handler = (*fulfillHandler)(nil)

func (h *fulfillHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: fulfillCost}, nil
}

func (h *fulfillHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, gate, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Close the gate before applying the response.
	gate.Open = false
	gate.RequestId = nil
	if _, err := h.gates.Put(db, msg.Collection, gate); err != nil {
		return nil, errors.Wrap(err, "cannot store gate")
	}
	for i, c := range msg.Credits {
		if err := h.ctrl.Accrue(db, msg.Collection, c.Recipient, *c.Amount); err != nil {
			return nil, errors.Wrapf(err, "credit #%d", i)
		}
	}
	return &weave.DeliverResult{}, nil
}

func (h *fulfillHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*FulfillMsg, *Gate, error) {
	var msg FulfillMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.TrustedOracle) && !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "oracle signature required")
	}
	switch err := h.collections.Has(db, msg.Collection); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(errors.ErrNotFound, "collection not registered")
	default:
		return nil, nil, errors.Wrap(err, "cannot check collection")
	}
	var gate Gate
	switch err := h.gates.One(db, msg.Collection, &gate); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(errors.ErrState, "no pending request")
	default:
		return nil, nil, errors.Wrap(err, "cannot get gate")
	}
	if !gate.Open {
		return nil, nil, errors.Wrap(errors.ErrState, "no pending request")
	}
	if !bytes.Equal(gate.RequestId, msg.RequestId) {
		return nil, nil, errors.Wrap(errors.ErrState, "request id mismatch")
	}
	return &msg, &gate, nil
}
