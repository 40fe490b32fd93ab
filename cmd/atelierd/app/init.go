package atelier

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/validators"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/iov-one/atelier/x/attribution"
	"github.com/iov-one/atelier/x/collection"
	"github.com/iov-one/atelier/x/oracle"
	"github.com/iov-one/atelier/x/royalty"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// It accepts an optional ticker as the first argument and an
// optional hex address of the account as the second one.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	collectorAddr, err := hex.DecodeString("3b11c732b8fc1f09beb34031302fe2ab347c5c14")
	if err != nil {
		return nil, errors.Wrap(err, "cannot hex decode collector address")
	}
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": ticker,
					},
				},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				CollectorAddress: collectorAddr,
				MinimalFee:       coin.Coin{Whole: 0}, // no fee
			},
			"migration": dict{
				"admin": addr,
			},
			"collection": dict{
				"owner": addr,
				"admin": addr,
			},
			"attribution": dict{
				"owner":   addr,
				"service": addr,
			},
			"royalty": dict{
				"owner":   addr,
				"admin":   addr,
				"service": addr,
			},
			"oracle": dict{
				"owner":          addr,
				"trusted_oracle": addr,
				"min_interval":   10,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "collection", "ver": 1},
			{"pkg": "attribution", "ver": 1},
			{"pkg": "royalty", "ver": 1},
			{"pkg": "oracle", "ver": 1},
			{"pkg": "bids", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack()
	application, err := Application("atelier", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&validators.Initializer{},
		&collection.Initializer{},
		&attribution.Initializer{},
		&royalty.Initializer{},
		&oracle.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a public key,
// along with the secret phrase to recover the private key.
// You can give coins to this address and return the recovery
// phrase to the user to access them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	return addr, hex.EncodeToString(privKey.GetEd25519()), nil
}
