package royalty

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
	"github.com/iov-one/weave/x/cash"

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
		adminCond   = weavetest.NewCondition()
		serviceCond = weavetest.NewCondition()
		minterCond  = weavetest.NewCondition()
		creatorCond = weavetest.NewCondition()
		someoneCond = weavetest.NewCondition()
		collection1 = weavetest.NewCondition().Address()
		unknownCol  = weavetest.NewCondition().Address()
	)

	// The test collection takes a 7.5% royalty cut, split 20/80 between
	// the minter and the creator. A 1000000 sale accrues 75000 royalty:
	// 15000 for the minter and 60000 for the creator.
	sale := func(txID string) *SaleRecord {
		return &SaleRecord{
			ItemId:    []byte("item-a"),
			Minter:    minterCond.Address(),
			SalePrice: coin.NewCoinp(1000000, 0, "IOV"),
			TxId:      []byte(txID),
		}
	}

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"a sale is split between the minter and the creator": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{serviceCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertAccrual(t, db, collection1, minterCond.Address(), coin.NewCoin(15000, 0, "IOV"), coin.NewCoin(0, 0, "IOV"))
				assertAccrual(t, db, collection1, creatorCond.Address(), coin.NewCoin(60000, 0, "IOV"), coin.NewCoin(0, 0, "IOV"))
				assertTotals(t, db, "IOV", coin.NewCoin(75000, 0, "IOV"), coin.NewCoin(0, 0, "IOV"))
			},
		},
		"resubmitting a processed sale is a no-op": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1"), sale("tx-2")},
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				// Only two distinct sales must be counted.
				assertAccrual(t, db, collection1, minterCond.Address(), coin.NewCoin(30000, 0, "IOV"), coin.NewCoin(0, 0, "IOV"))
				assertTotals(t, db, "IOV", coin.NewCoin(150000, 0, "IOV"), coin.NewCoin(0, 0, "IOV"))
			},
		},
		"batch submission requires a capability": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"batch submission requires a registered collection": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: unknownCol,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"anyone can claim for the recipient": {
			Funds: []AccountBalance{
				{Wallet: PoolAccount(collection1), Amount: coin.NewCoin(100000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{serviceCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Recipient:  minterCond.Address(),
							Amount:     coin.NewCoinp(15000, 0, "IOV"),
						},
					},
					WantErr: nil,
				},
				// The accrual is exhausted now.
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Recipient:  minterCond.Address(),
							Amount:     coin.NewCoinp(1, 0, "IOV"),
						},
					},
					WantErr: ErrUnclaimedBalance,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, minterCond.Address(), coin.NewCoin(15000, 0, "IOV"))
				assertAccrual(t, db, collection1, minterCond.Address(), coin.NewCoin(15000, 0, "IOV"), coin.NewCoin(15000, 0, "IOV"))
				assertTotals(t, db, "IOV", coin.NewCoin(75000, 0, "IOV"), coin.NewCoin(15000, 0, "IOV"))
			},
		},
		"a claim cannot exceed the accrual": {
			Funds: []AccountBalance{
				{Wallet: PoolAccount(collection1), Amount: coin.NewCoin(100000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{serviceCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Recipient:  minterCond.Address(),
							Amount:     coin.NewCoinp(15001, 0, "IOV"),
						},
					},
					WantErr: ErrUnclaimedBalance,
				},
			},
		},
		"a claim cannot exceed the pool funds": {
			Funds: []AccountBalance{
				{Wallet: PoolAccount(collection1), Amount: coin.NewCoin(1000, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{serviceCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitBatchMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Sales:      []*SaleRecord{sale("tx-1")},
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Recipient:  minterCond.Address(),
							Amount:     coin.NewCoinp(15000, 0, "IOV"),
						},
					},
					WantErr: ErrPoolBalance,
				},
			},
		},
		"a distribution root requires funded pool": {
			Funds: []AccountBalance{
				{Wallet: PoolAccount(collection1), Amount: coin.NewCoin(500, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitRootMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Root:       make([]byte, 32),
							Total:      coin.NewCoinp(600, 0, "IOV"),
						},
					},
					WantErr: ErrPoolBalance,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitRootMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Root:       make([]byte, 32),
							Total:      coin.NewCoinp(500, 0, "IOV"),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{someoneCond},
					Tx: &weavetest.Tx{
						Msg: &SubmitRootMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Root:       make([]byte, 32),
							Total:      coin.NewCoinp(500, 0, "IOV"),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"a proof claim without an active root fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{minterCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimWithProofMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							Collection: collection1,
							Recipient:  minterCond.Address(),
							Amount:     coin.NewCoinp(100, 0, "IOV"),
							Proof:      [][]byte{make([]byte, 32)},
						},
					},
					WantErr: errors.ErrState,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "royalty", "collection", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    adminCond.Address(),
				Admin:    adminCond.Address(),
				Service:  serviceCond.Address(),
			}
			if err := gconf.Save(db, "royalty", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			col := collection.Collection{
				Metadata:              &weave.Metadata{Schema: 1},
				FeeNumerator:          750,
				MinterShareNumerator:  2000,
				CreatorShareNumerator: 8000,
				Creator:               creatorCond.Address(),
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

func assertAccrual(t testing.TB, db weave.KVStore, collection weave.Address, recipient weave.Address, accrued coin.Coin, claimed coin.Coin) {
	t.Helper()

	var a Accrual
	if err := NewAccrualBucket().One(db, accrualKey(collection, recipient, accrued.Ticker), &a); err != nil {
		t.Fatalf("cannot get accrual: %s", err)
	}
	if !a.Accrued.Equals(accrued) {
		t.Fatalf("unexpected accrued: %q", a.Accrued)
	}
	if !a.Claimed.Equals(claimed) {
		t.Fatalf("unexpected claimed: %q", a.Claimed)
	}
}

func assertTotals(t testing.TB, db weave.KVStore, ticker string, accrued coin.Coin, claimed coin.Coin) {
	t.Helper()

	var totals Totals
	if err := NewTotalsBucket().One(db, []byte(ticker), &totals); err != nil {
		t.Fatalf("cannot get totals: %s", err)
	}
	if !totals.Accrued.Equals(accrued) {
		t.Fatalf("unexpected accrued totals: %q", totals.Accrued)
	}
	if !totals.Claimed.Equals(claimed) {
		t.Fatalf("unexpected claimed totals: %q", totals.Claimed)
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

func TestProofClaimPaysOutOnce(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "royalty", "collection", "cash")

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	var (
		adminCond   = weavetest.NewCondition()
		aliceCond   = weavetest.NewCondition()
		bobCond     = weavetest.NewCondition()
		collection1 = weavetest.NewCondition().Address()
	)

	config := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    adminCond.Address(),
		Admin:    adminCond.Address(),
	}
	if err := gconf.Save(db, "royalty", &config); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	if err := ctrl.CoinMint(db, PoolAccount(collection1), coin.NewCoin(1000, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint pool funds: %s", err)
	}

	// A two entry distribution: 300 for alice, 700 for bob. With sorted
	// pair hashing each leaf proves against the root with the other leaf
	// as the only sibling.
	aliceLeaf := claimLeaf(collection1, aliceCond.Address(), coin.NewCoin(300, 0, "IOV"))
	bobLeaf := claimLeaf(collection1, bobCond.Address(), coin.NewCoin(700, 0, "IOV"))
	root := hashPair(aliceLeaf, bobLeaf)

	deliver := func(conditions []weave.Condition, msg weave.Msg, wantErr *errors.Error) {
		t.Helper()
		ctx := weave.WithHeight(context.Background(), 100)
		ctx = weave.WithChainID(ctx, "testchain-123")
		ctx = auth.SetConditions(ctx, conditions...)
		if _, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: msg}); !wantErr.Is(err) {
			t.Fatalf("unexpected deliver error: want %q, got %+v", wantErr, err)
		}
	}

	deliver([]weave.Condition{adminCond}, &SubmitRootMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection1,
		Root:       root,
		Total:      coin.NewCoinp(1000, 0, "IOV"),
	}, nil)

	// A wrong amount must not verify.
	deliver([]weave.Condition{aliceCond}, &ClaimWithProofMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection1,
		Recipient:  aliceCond.Address(),
		Amount:     coin.NewCoinp(400, 0, "IOV"),
		Proof:      [][]byte{bobLeaf},
	}, ErrInvalidProof)

	deliver([]weave.Condition{aliceCond}, &ClaimWithProofMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection1,
		Recipient:  aliceCond.Address(),
		Amount:     coin.NewCoinp(300, 0, "IOV"),
		Proof:      [][]byte{bobLeaf},
	}, nil)
	assertFunds(t, db, aliceCond.Address(), coin.NewCoin(300, 0, "IOV"))

	// The same payout cannot be consumed twice.
	deliver([]weave.Condition{aliceCond}, &ClaimWithProofMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection1,
		Recipient:  aliceCond.Address(),
		Amount:     coin.NewCoinp(300, 0, "IOV"),
		Proof:      [][]byte{bobLeaf},
	}, ErrAlreadyClaimed)

	// The other entry is still payable.
	deliver([]weave.Condition{bobCond}, &ClaimWithProofMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection1,
		Recipient:  bobCond.Address(),
		Amount:     coin.NewCoinp(700, 0, "IOV"),
		Proof:      [][]byte{aliceLeaf},
	}, nil)
	assertFunds(t, db, bobCond.Address(), coin.NewCoin(700, 0, "IOV"))
}
