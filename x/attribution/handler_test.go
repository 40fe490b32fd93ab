package attribution

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"

	"github.com/iov-one/atelier/x/collection"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	var (
		ownerCond   = weavetest.NewCondition()
		serviceCond = weavetest.NewCondition()
		aliceCond   = weavetest.NewCondition()
		bobCond     = weavetest.NewCondition()
		colCond        = weavetest.NewCondition()
		collection1    = colCond.Address()
		unknownColCond = weavetest.NewCondition()
		unknownCol     = unknownColCond.Address()

		itemA = []byte("item-a")
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"collection identity can assign a minter once": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Minter:     aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Minter:     bobCond.Address(),
						},
					},
					WantErr: errors.ErrImmutable,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var attr Attribution
				if err := NewBucket().One(db, itemKey(collection1, itemA), &attr); err != nil {
					t.Fatalf("cannot get attribution: %s", err)
				}
				if !attr.Minter.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected minter: %q", attr.Minter)
				}
			},
		},
		"only the collection identity can assign a minter": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Minter:     aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"collection must be registered": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: unknownCol,
							ItemId:     itemA,
							Minter:     aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
				{
					Conditions: []weave.Condition{unknownColCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: unknownCol,
							ItemId:     itemA,
							Minter:     aliceCond.Address(),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"minter is required": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: errors.ErrEmpty,
				},
			},
		},
		"service can update the holder": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &AssignMinterMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Minter:     aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{serviceCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHolderMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Holder:     bobCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHolderMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Holder:     bobCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var attr Attribution
				if err := NewBucket().One(db, itemKey(collection1, itemA), &attr); err != nil {
					t.Fatalf("cannot get attribution: %s", err)
				}
				if !attr.Holder.Equals(bobCond.Address()) {
					t.Fatalf("unexpected holder: %q", attr.Holder)
				}
				// The minter must stay untouched.
				if !attr.Minter.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected minter: %q", attr.Minter)
				}
			},
		},
		"holder cannot be updated for an unknown item": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{colCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateHolderMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Holder:     bobCond.Address(),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "attribution", "collection")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    ownerCond.Address(),
				Service:  serviceCond.Address(),
			}
			if err := gconf.Save(db, "attribution", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			col := collection.Collection{
				Metadata:              &weave.Metadata{Schema: 1},
				FeeNumerator:          750,
				MinterShareNumerator:  2000,
				CreatorShareNumerator: 8000,
				Creator:               ownerCond.Address(),
			}
			if _, err := collection.NewBucket().Put(db, collection1, &col); err != nil {
				t.Fatalf("cannot store collection: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), int64(100+i))
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestControllerSetMinter(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "attribution")

	var (
		collection1 = weavetest.NewCondition().Address()
		alice       = weavetest.NewCondition().Address()
		bob         = weavetest.NewCondition().Address()
		itemA       = []byte("item-a")
	)

	bucket := NewBucket()
	attr := Attribution{
		Metadata: &weave.Metadata{Schema: 1},
		Minter:   alice,
	}
	if _, err := bucket.Put(db, itemKey(collection1, itemA), &attr); err != nil {
		t.Fatalf("cannot store attribution: %s", err)
	}

	ctrl := NewController(bucket)

	if minter, err := ctrl.Minter(db, collection1, itemA); err != nil {
		t.Fatalf("cannot get minter: %s", err)
	} else if !minter.Equals(alice) {
		t.Fatalf("unexpected minter: %q", minter)
	}

	if err := ctrl.SetMinter(db, collection1, itemA, bob); err != nil {
		t.Fatalf("cannot set minter: %s", err)
	}
	if minter, err := ctrl.Minter(db, collection1, itemA); err != nil {
		t.Fatalf("cannot get minter: %s", err)
	} else if !minter.Equals(bob) {
		t.Fatalf("unexpected minter: %q", minter)
	}

	// The controller must not create attributions.
	if err := ctrl.SetMinter(db, collection1, []byte("other"), bob); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
