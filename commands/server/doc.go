// Package server contains the commands shared by ABCI application
// binaries: preparing the genesis file, validating it and running the ABCI
// socket server.
package server
