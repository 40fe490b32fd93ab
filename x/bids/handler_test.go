package bids

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/iov-one/atelier/x/attribution"
	"github.com/iov-one/atelier/x/collection"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		colCond     = weavetest.NewCondition()
		collection1 = colCond.Address()
		unknownCol  = weavetest.NewCondition().Address()
		minterCond  = weavetest.NewCondition()
		aliceCond   = weavetest.NewCondition()
		bobCond     = weavetest.NewCondition()
		carlCond    = weavetest.NewCondition()
		itemA       = []byte("item-a")
	)

	assignMinter := Request{
		Conditions: []weave.Condition{colCond},
		Tx: &weavetest.Tx{
			Msg: &attribution.AssignMinterMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collection1,
				ItemId:     itemA,
				Minter:     minterCond.Address(),
			},
		},
		WantErr: nil,
	}
	placeBid := func(cond weave.Condition, itemID []byte, amount int64) Request {
		return Request{
			Conditions: []weave.Condition{cond},
			Tx: &weavetest.Tx{
				Msg: &PlaceBidMsg{
					Metadata:   &weave.Metadata{Schema: 1},
					Collection: collection1,
					ItemId:     itemID,
					Bidder:     cond.Address(),
					Amount:     coin.NewCoinp(amount, 0, "IOV"),
				},
			},
			WantErr: nil,
		}
	}

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"placing a bid escrows the funds": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				placeBid(aliceCond, itemA, 500),
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(500, 0, "IOV"))
				assertFunds(t, db, EscrowAccount(weavetest.SequenceID(1)), coin.NewCoin(500, 0, "IOV"))
				var bid Bid
				if err := NewBidBucket().One(db, weavetest.SequenceID(1), &bid); err != nil {
					t.Fatalf("cannot get bid: %s", err)
				}
				if !bid.Bidder.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected bidder: %q", bid.Bidder)
				}
			},
		},
		"a bid requires the bidder signature": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
							Bidder:     aliceCond.Address(),
							Amount:     coin.NewCoinp(500, 0, "IOV"),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"a bid requires a registered collection": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: unknownCol,
							ItemId:     itemA,
							Bidder:     aliceCond.Address(),
							Amount:     coin.NewCoinp(500, 0, "IOV"),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"accepting pays the seller and reassigns the minter": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
				{Wallet: carlCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				assignMinter,
				placeBid(aliceCond, itemA, 500),
				// A collection wide bid competes with item bids.
				placeBid(carlCond, nil, 600),
				placeBid(bobCond, itemA, 700),
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: nil,
				},
				// Losing bids stay withdrawable.
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, minterCond.Address(), coin.NewCoin(700, 0, "IOV"))
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1000, 0, "IOV"))

				minter, err := attribution.NewController(attribution.NewBucket()).Minter(db, collection1, itemA)
				if err != nil {
					t.Fatalf("cannot get minter: %s", err)
				}
				if !minter.Equals(bobCond.Address()) {
					t.Fatalf("unexpected minter: %q", minter)
				}

				bids := NewBidBucket()
				var bid Bid
				if err := bids.One(db, weavetest.SequenceID(3), &bid); !errors.ErrNotFound.Is(err) {
					t.Fatalf("winning bid must be deleted, got %+v", err)
				}
				// The collection wide bid is still pending.
				if err := bids.One(db, weavetest.SequenceID(2), &bid); err != nil {
					t.Fatalf("cannot get bid: %s", err)
				}
			},
		},
		"accepting requires the current minter": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				assignMinter,
				placeBid(aliceCond, itemA, 500),
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"accepting without a pending bid fails": {
			Requests: []Request{
				assignMinter,
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"on equal amounts the oldest bid wins": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				assignMinter,
				placeBid(aliceCond, itemA, 500),
				placeBid(bobCond, itemA, 500),
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				minter, err := attribution.NewController(attribution.NewBucket()).Minter(db, collection1, itemA)
				if err != nil {
					t.Fatalf("cannot get minter: %s", err)
				}
				if !minter.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected minter: %q", minter)
				}
			},
		},
		"withdrawing refunds the oldest own bid first": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				placeBid(aliceCond, itemA, 300),
				placeBid(aliceCond, itemA, 400),
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawBidMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							ItemId:     itemA,
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1000, 0, "IOV"))
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "bids", "collection", "attribution", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			attrctrl := attribution.NewController(attribution.NewBucket())
			RegisterRoutes(rt, auth, attrctrl, ctrl)
			attribution.RegisterRoutes(rt, auth)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
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

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
	}
	if !coins[0].Equals(funds) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}
