/*
Package app contains the ABCI host of the escrow chain.

StoreApp keeps the merkle state, the check and deliver caches and the
query routing. BaseApp adds transaction processing on top of it. The
rest of the package wires the extensions into a single application: the
transaction envelope, the router, the decorator chain and the genesis
initializers.
*/
package app
