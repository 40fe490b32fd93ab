package atelier_test

import (
	"strings"
	"testing"
	"time"

	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/validators"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	atelier "github.com/iov-one/atelier/cmd/atelierd/app"
	"github.com/iov-one/atelier/x/attribution"
	"github.com/iov-one/atelier/x/collection"
	"github.com/iov-one/atelier/x/oracle"
	"github.com/iov-one/atelier/x/royalty"
)

// appState is the genesis state used by the tests. SIGNER is replaced
// with the hex address of the generated genesis key.
const appState = `
{
	"cash": [
		{"address": "SIGNER", "coins": [{"whole": 50000, "ticker": "IOV"}]}
	],
	"conf": {
		"cash": {
			"collector_address": "SIGNER",
			"minimal_fee": {}
		},
		"migration": {"admin": "SIGNER"},
		"collection": {
			"metadata": {"schema": 1},
			"owner": "SIGNER",
			"admin": "SIGNER"
		},
		"attribution": {
			"metadata": {"schema": 1},
			"owner": "SIGNER",
			"service": "SIGNER"
		},
		"royalty": {
			"metadata": {"schema": 1},
			"owner": "SIGNER",
			"admin": "SIGNER",
			"service": "SIGNER"
		},
		"oracle": {
			"metadata": {"schema": 1},
			"owner": "SIGNER",
			"trusted_oracle": "SIGNER",
			"min_interval": 10
		}
	},
	"initialize_schema": [
		{"pkg": "cash", "ver": 1},
		{"pkg": "sigs", "ver": 1},
		{"pkg": "validators", "ver": 1},
		{"pkg": "utils", "ver": 1},
		{"pkg": "collection", "ver": 1},
		{"pkg": "attribution", "ver": 1},
		{"pkg": "royalty", "ver": 1},
		{"pkg": "oracle", "ver": 1},
		{"pkg": "bids", "ver": 1}
	]
}
`

func TestApp(t *testing.T) {
	pk := crypto.GenPrivKeyEd25519()
	addr := pk.PublicKey().Address()
	chainID := "test-atelier-1"

	myApp := newTestApp(t, addr, chainID)

	// The genesis wallet must be funded.
	queryAndCheckWallet(t, myApp, addr, coin.Coin{Ticker: "IOV", Whole: 50000})

	var (
		colAddr = weavetest.NewCondition().Address()
		creator = weavetest.NewCondition().Address()
		minter  = weavetest.NewCondition().Address()
	)

	// The genesis key is the configuration admin and can register a
	// collection.
	regTx := &atelier.Tx{
		Sum: &atelier.Tx_CollectionRegisterCollectionMsg{
			CollectionRegisterCollectionMsg: &collection.RegisterCollectionMsg{
				Metadata:              &weave.Metadata{Schema: 1},
				Collection:            colAddr,
				FeeNumerator:          750,
				MinterShareNumerator:  2000,
				CreatorShareNumerator: 8000,
				Creator:               creator,
			},
		},
	}
	signAndCommit(t, myApp, regTx, []Signer{{pk, 0}}, chainID, 2)

	// The genesis key is the royalty service and can report sales.
	batchTx := &atelier.Tx{
		Sum: &atelier.Tx_RoyaltySubmitBatchMsg{
			RoyaltySubmitBatchMsg: &royalty.SubmitBatchMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: colAddr,
				Sales: []*royalty.SaleRecord{
					{
						ItemId:    []byte("item-1"),
						Minter:    minter,
						SalePrice: coin.NewCoinp(1000000, 0, "IOV"),
						TxId:      []byte("ext-tx-1"),
					},
				},
			},
		},
	}
	signAndCommit(t, myApp, batchTx, []Signer{{pk, 1}}, chainID, 3)

	// A 7.5% fee of a 1000000 sale is 75000, split 20/80 between the
	// minter and the creator.
	queryAndCheckAccrual(t, myApp, accrualKey(colAddr, minter), 15000)
	queryAndCheckAccrual(t, myApp, accrualKey(colAddr, creator), 60000)
}

type Signer struct {
	pk    *crypto.PrivateKey
	nonce int64
}

func newTestApp(t *testing.T, addr weave.Address, chainID string) weaveApp.BaseApp {
	t.Helper()

	stack := atelier.Stack()
	myApp, err := atelier.Application("atelier-test", stack, atelier.TxDecoder, "", true)
	assert.Nil(t, err)
	myApp.WithInit(weaveApp.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&validators.Initializer{},
		&collection.Initializer{},
		&attribution.Initializer{},
		&royalty.Initializer{},
		&oracle.Initializer{},
	))
	myApp.WithLogger(log.NewNopLogger())

	genesis := strings.Replace(appState, "SIGNER", addr.String(), -1)
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(genesis),
		ChainId:       chainID,
	})
	header := abci.Header{Height: 1, Time: time.Now()}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return myApp
}

func signAndCommit(t *testing.T, myApp weaveApp.BaseApp, tx *atelier.Tx, signers []Signer, chainID string, height int64) abci.ResponseDeliverTx {
	t.Helper()

	for _, signer := range signers {
		sig, err := sigs.SignTx(signer.pk, tx, chainID, signer.nonce)
		assert.Nil(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}

	txBytes, err := tx.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, true, len(txBytes) != 0)

	header := abci.Header{Height: height, Time: time.Now()}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	chres := myApp.CheckTx(txBytes)
	assert.Equal(t, uint32(0), chres.Code)
	dres := myApp.DeliverTx(txBytes)
	assert.Equal(t, uint32(0), dres.Code)
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return dres
}

func queryAndCheckWallet(t *testing.T, myApp weaveApp.BaseApp, addr weave.Address, funds coin.Coin) {
	t.Helper()

	res := myApp.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var set cash.Set
	if err := weaveApp.UnmarshalOneResult(res.Value, &set); err != nil {
		t.Fatalf("cannot unmarshal wallet: %s", err)
	}
	if len(set.Coins) != 1 {
		t.Fatalf("want a single coin wallet, got %q", set.Coins)
	}
	if !set.Coins[0].Equals(funds) {
		t.Fatalf("unexpected funds: %q", set.Coins[0])
	}
}

func queryAndCheckAccrual(t *testing.T, myApp weaveApp.BaseApp, key []byte, whole int64) {
	t.Helper()

	res := myApp.Query(abci.RequestQuery{Path: "/accruals", Data: key})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var a royalty.Accrual
	if err := weaveApp.UnmarshalOneResult(res.Value, &a); err != nil {
		t.Fatalf("cannot unmarshal accrual: %s", err)
	}
	if want := coin.NewCoin(whole, 0, "IOV"); !a.Accrued.Equals(want) {
		t.Fatalf("want %q accrued, got %q", want, a.Accrued)
	}
}

// accrualKey addresses an accrual entry the same way the royalty
// extension stores it, keyed by collection, recipient and ticker.
func accrualKey(collection weave.Address, recipient weave.Address) []byte {
	key := make([]byte, 0, len(collection)+len(recipient)+3)
	key = append(key, collection...)
	key = append(key, recipient...)
	return append(key, "IOV"...)
}
