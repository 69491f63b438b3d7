/*
Package tokenswap defines the common interfaces that tie the application
together: addresses and conditions, storage, messages and transactions,
handlers and decorators, queries and genesis initialization.

Extensions live under x/. The central one is x/escrow, which implements a
trustless two party swap of fungible tokens held by x/token: an initializer
locks funds in a vault controlled by a key-less authority derived from the
program identity, and either a taker completes the exchange or the
initializer cancels it.

We pass context through context.Context between app, middleware and
handlers. There exist two functions for every value XYZ of type T that we
keep in the context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set, to avoid lower level modules
overwriting it (eg. height, chain id).
*/
package tokenswap
