package collection

import (
	"context"
	"reflect"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	var (
		adminCond   = weavetest.NewCondition()
		aliceCond   = weavetest.NewCondition()
		bobCond     = weavetest.NewCondition()
		colCond     = weavetest.NewCondition()
		collection  = colCond.Address()
		collection2 = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can register a collection": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          750,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          750,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var col Collection
				if err := NewBucket().One(db, collection, &col); err != nil {
					t.Fatalf("cannot get collection: %s", err)
				}
				if !col.Creator.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected creator: %q", col.Creator)
				}
			},
		},
		"a collection cannot be registered twice": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          500,
							MinterShareNumerator:  5000,
							CreatorShareNumerator: 5000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          100,
							MinterShareNumerator:  1000,
							CreatorShareNumerator: 9000,
							Creator:               bobCond.Address(),
						},
					},
					WantErr: errors.ErrDuplicate,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				// The first registration must not be overwritten.
				var col Collection
				if err := NewBucket().One(db, collection, &col); err != nil {
					t.Fatalf("cannot get collection: %s", err)
				}
				if col.FeeNumerator != 500 {
					t.Fatalf("unexpected fee numerator: %d", col.FeeNumerator)
				}
			},
		},
		"shares must sum up to the denominator": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          750,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 7000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: errors.ErrMsg,
				},
			},
		},
		"fee numerator cannot be zero or above the denominator": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          0,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: errors.ErrMsg,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          10001,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: errors.ErrMsg,
				},
			},
		},
		"creator is required": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          750,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
						},
					},
					WantErr: errors.ErrEmpty,
				},
			},
		},
		"creator can transfer the creator role": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          750,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCreatorMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection,
							NewCreator: bobCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCreatorMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection,
							NewCreator: bobCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var col Collection
				if err := NewBucket().One(db, collection, &col); err != nil {
					t.Fatalf("cannot get collection: %s", err)
				}
				if !col.Creator.Equals(bobCond.Address()) {
					t.Fatalf("unexpected creator: %q", col.Creator)
				}
			},
		},
		"collection identity can transfer the creator role": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterCollectionMsg{
							Metadata:              &weave.Metadata{Schema: 1},
							Collection:            collection,
							FeeNumerator:          750,
							MinterShareNumerator:  2000,
							CreatorShareNumerator: 8000,
							Creator:               aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCreatorMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection,
							NewCreator: bobCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
		},
		"only the configuration owner can update the configuration": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateConfigurationMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Patch: &Configuration{
								Metadata: &weave.Metadata{Schema: 1},
								Owner:    adminCond.Address(),
								Admin:    bobCond.Address(),
							},
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateConfigurationMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Patch: &Configuration{
								Metadata: &weave.Metadata{Schema: 1},
								Owner:    adminCond.Address(),
								Admin:    bobCond.Address(),
							},
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var conf Configuration
				if err := gconf.Load(db, "collection", &conf); err != nil {
					t.Fatalf("cannot load configuration: %s", err)
				}
				if !conf.Admin.Equals(bobCond.Address()) {
					t.Fatalf("unexpected admin: %q", conf.Admin)
				}
			},
		},
		"creator cannot be updated for an unknown collection": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCreatorMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection2,
							NewCreator: bobCond.Address(),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
	}

	// Each processing leg must receive its own copy of the message, the
	// same way a real node decodes CheckTx and DeliverTx payloads
	// independently. Sharing one message instance between legs lets gconf
	// unmarshal the stored configuration into slices aliased by the
	// message payload, corrupting the patch before it is applied.
	cloneTx := func(t *testing.T, tx weave.Tx) weave.Tx {
		t.Helper()
		wtx, ok := tx.(*weavetest.Tx)
		if !ok {
			return tx
		}
		raw, err := wtx.Msg.Marshal()
		if err != nil {
			t.Fatalf("cannot marshal message: %s", err)
		}
		msg := reflect.New(reflect.TypeOf(wtx.Msg).Elem()).Interface().(weave.Msg)
		if err := msg.Unmarshal(raw); err != nil {
			t.Fatalf("cannot unmarshal message: %s", err)
		}
		return &weavetest.Tx{Msg: msg}
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "collection")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    adminCond.Address(),
				Admin:    adminCond.Address(),
			}
			if err := gconf.Save(db, "collection", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), int64(100+i))
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, cloneTx(t, req.Tx)); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, cloneTx(t, req.Tx)); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}
