package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/tokenswap/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultBind is the address the ABCI server listens on by default.
const DefaultBind = "tcp://localhost:26658"

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI socket
// protocol until the process receives an interrupt.
func StartCmd(gen AppGenerator, logger log.Logger, home, bind string, debug bool) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return serve(gen, logger, home, bind, debug, stop)
}

func serve(gen AppGenerator, logger log.Logger, home, bind string, debug bool, stop <-chan os.Signal) error {
	// Generate the app in the proper dir
	app, err := gen(home, logger, debug)
	if err != nil {
		return errors.Wrap(err, "cannot create application")
	}

	logger.Info("Starting ABCI app", "bind", bind)

	svr, err := server.NewServer(bind, "socket", app)
	if err != nil {
		return errors.Wrap(err, "cannot create listener")
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrap(err, "cannot start server")
	}

	<-stop
	logger.Info("Stopping ABCI app")
	return svr.Stop()
}
