package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store/iavl"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/iov-one/tokenswap/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is returned from abci.Info
const Name = "escrowd"

// Authenticator returns the authentication of transaction signers,
// using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Ledger returns the token ledger. Besides the transaction signers it
// accepts the conditions granted by the escrow extension, so the escrow
// can act on behalf of the vaults it controls.
func Ledger(authFn x.Authenticator, cashctrl cash.Controller) *token.Controller {
	return token.NewController(x.ChainAuth(authFn, escrow.Authenticate{}), cashctrl)
}

// Chain returns a chain of decorators, to handle recovery, logging,
// authentication and isolation of failed messages
func Chain() Decorators {
	return ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		sigs.NewDecorator(),
		// a failing message does not change the state, while the
		// signature sequence increment above is kept
		utils.NewSavepoint().OnCheck().OnDeliver(),
	)
}

// Routes returns the router dispatching to every message handler of
// the application
func Routes(authFn x.Authenticator, authority *escrow.Authority) *Router {
	r := NewRouter()
	cashctrl := CashControl()
	ledger := Ledger(authFn, cashctrl)
	cash.RegisterRoutes(r, authFn, cashctrl)
	token.RegisterRoutes(r, authFn, ledger)
	escrow.RegisterRoutes(r, authFn, authority, ledger, cashctrl)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/tokens/*" and "/escrows"
func QueryRouter() tokenswap.QueryRouter {
	r := tokenswap.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		token.RegisterQuery,
		escrow.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(authority *escrow.Authority) tokenswap.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Routes(authFn, authority))
}

// Initializers returns the genesis initializers of all extensions
func Initializers() tokenswap.Initializer {
	return tokenswap.ChainInitializers(
		cash.Initializer{},
		token.Initializer{},
		escrow.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments.
func Application(name string, h tokenswap.Handler,
	tx tokenswap.TxDecoder, dbPath string, debug bool) (BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return BaseApp{}, err
	}
	store := NewStoreApp(name, kv, QueryRouter(), context.Background())
	base := NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (tokenswap.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}

// GenerateApp creates the escrow application storing its state under
// home. An empty home keeps the state in memory.
func GenerateApp(home string, logger log.Logger, debug bool, programID solana.PublicKey) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "abci.db")
	}

	authority, err := escrow.NewAuthority(programID)
	if err != nil {
		return nil, errors.Wrap(err, "escrow authority")
	}
	logger.Info("Escrow authority",
		"program", programID.String(),
		"authority", authority.PublicKey().String(),
		"bump", authority.Bump())

	application, err := Application(Name, Stack(authority), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())
	application.WithLogger(logger)
	return application, nil
}
