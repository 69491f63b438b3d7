/*
Package token implements a ledger of fungible tokens.

Every token is described by a Mint that names the ticker, the authority
allowed to issue new tokens and the current supply. Balances are kept in
accounts. An account holds a single ticker, has an owner that authorizes
outgoing transfers and pays storage rent in native coins that is refunded
when the account is closed.
*/
package token
