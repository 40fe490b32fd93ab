package oracle

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"

	"github.com/iov-one/atelier/x/collection"
	"github.com/iov-one/atelier/x/royalty"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		Height     int64
		WantErr    *errors.Error
	}

	var (
		ownerCond   = weavetest.NewCondition()
		oracleCond  = weavetest.NewCondition()
		someoneCond = weavetest.NewCondition()
		artistAddr  = weavetest.NewCondition().Address()
		collection1 = weavetest.NewCondition().Address()
		unknownCol  = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"requests are rate limited per collection": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
						},
					},
					Height:  100,
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
						},
					},
					Height:  105,
					WantErr: ErrTooFrequent,
				},
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
						},
					},
					Height:  110,
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var gate Gate
				if err := NewGateBucket().One(db, collection1, &gate); err != nil {
					t.Fatalf("cannot get gate: %s", err)
				}
				if gate.LastRequestHeight != 110 {
					t.Fatalf("unexpected request height: %d", gate.LastRequestHeight)
				}
				if !gate.Open {
					t.Fatal("gate must be open")
				}
				// The second accepted request supersedes the first one.
				if want := weavetest.SequenceID(2); string(gate.RequestId) != string(want) {
					t.Fatalf("unexpected request id: %x", gate.RequestId)
				}
			},
		},
		"a request requires a registered collection": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: unknownCol,
						},
					},
					Height:  100,
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"a fulfillment applies credits and closes the gate": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
						},
					},
					Height:  100,
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{oracleCond},
					Tx: &weavetest.Tx{
						Msg: &FulfillMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							RequestId:  weavetest.SequenceID(1),
							Collection: collection1,
							Credits: []*Credit{
								{Recipient: artistAddr, Amount: coin.NewCoinp(500, 0, "IOV")},
							},
						},
					},
					Height:  101,
					WantErr: nil,
				},
				// The gate is closed, the response cannot be replayed.
				{
					Conditions: []weave.Condition{oracleCond},
					Tx: &weavetest.Tx{
						Msg: &FulfillMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							RequestId:  weavetest.SequenceID(1),
							Collection: collection1,
							Credits: []*Credit{
								{Recipient: artistAddr, Amount: coin.NewCoinp(500, 0, "IOV")},
							},
						},
					},
					Height:  102,
					WantErr: errors.ErrState,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var gate Gate
				if err := NewGateBucket().One(db, collection1, &gate); err != nil {
					t.Fatalf("cannot get gate: %s", err)
				}
				if gate.Open {
					t.Fatal("gate must be closed")
				}
				key := make([]byte, 0, len(collection1)+len(artistAddr)+3)
				key = append(key, collection1...)
				key = append(key, artistAddr...)
				key = append(key, "IOV"...)
				var accrual royalty.Accrual
				if err := royalty.NewAccrualBucket().One(db, key, &accrual); err != nil {
					t.Fatalf("cannot get accrual: %s", err)
				}
				if !accrual.Accrued.Equals(coin.NewCoin(500, 0, "IOV")) {
					t.Fatalf("unexpected accrued: %q", accrual.Accrued)
				}
			},
		},
		"a fulfillment requires the trusted oracle": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
						},
					},
					Height:  100,
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &FulfillMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							RequestId:  weavetest.SequenceID(1),
							Collection: collection1,
							Credits: []*Credit{
								{Recipient: artistAddr, Amount: coin.NewCoinp(500, 0, "IOV")},
							},
						},
					},
					Height:  101,
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"a fulfillment must match the pending request id": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &RequestUpdateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
						},
					},
					Height:  100,
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{oracleCond},
					Tx: &weavetest.Tx{
						Msg: &FulfillMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							RequestId:  weavetest.SequenceID(9),
							Collection: collection1,
							Credits: []*Credit{
								{Recipient: artistAddr, Amount: coin.NewCoinp(500, 0, "IOV")},
							},
						},
					},
					Height:  101,
					WantErr: errors.ErrState,
				},
			},
		},
		"a fulfillment without a pending request fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{oracleCond},
					Tx: &weavetest.Tx{
						Msg: &FulfillMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							RequestId:  weavetest.SequenceID(1),
							Collection: collection1,
							Credits: []*Credit{
								{Recipient: artistAddr, Amount: coin.NewCoinp(500, 0, "IOV")},
							},
						},
					},
					Height:  100,
					WantErr: errors.ErrState,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "oracle", "collection", "royalty")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth, royalty.NewController())

			config := Configuration{
				Metadata:      &weave.Metadata{Schema: 1},
				Owner:         ownerCond.Address(),
				TrustedOracle: oracleCond.Address(),
				MinInterval:   10,
			}
			if err := gconf.Save(db, "oracle", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			col := collection.Collection{
				Metadata:              &weave.Metadata{Schema: 1},
				FeeNumerator:          750,
				MinterShareNumerator:  2000,
				CreatorShareNumerator: 8000,
				Creator:               weavetest.NewCondition().Address(),
			}
			if _, err := collection.NewBucket().Put(db, collection1, &col); err != nil {
				t.Fatalf("cannot store collection: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.Height)
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
