/*
Package atelier links together all the various components
to construct the atelierd app.
*/
package atelier

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
	"github.com/iov-one/weave/x/validators"

	"github.com/iov-one/atelier/x/attribution"
	"github.com/iov-one/atelier/x/bids"
	"github.com/iov-one/atelier/x/collection"
	"github.com/iov-one/atelier/x/oracle"
	"github.com/iov-one/atelier/x/royalty"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(authFn, CashControl()),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
		// tag every delivered message with its path so clients can
		// search and subscribe per action
		utils.NewActionTagger(),
	)
}

// Router returns a router dispatching to all message handlers
// registered on this chain.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()

	cashctrl := CashControl()
	cash.RegisterRoutes(r, authFn, cashctrl)
	migration.RegisterRoutes(r, authFn)
	validators.RegisterRoutes(r, authFn)
	collection.RegisterRoutes(r, authFn)
	attribution.RegisterRoutes(r, authFn)
	royalty.RegisterRoutes(r, authFn, cashctrl)
	oracle.RegisterRoutes(r, authFn, royalty.NewController())
	bids.RegisterRoutes(r, authFn, attribution.NewController(attribution.NewBucket()), cashctrl)

	return r
}

// QueryRouter returns a query router, exposing all known buckets.
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		validators.RegisterQuery,
		collection.RegisterQuery,
		attribution.RegisterQuery,
		royalty.RegisterQuery,
		oracle.RegisterQuery,
		bids.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain(authFn).
		WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
