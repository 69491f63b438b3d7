/*
Package cash defines native wallets of the application.

Wallets hold the native coins used to pay for storage. Every account or
record an extension creates must be backed by a storage deposit (rent) that
is moved from the payer's wallet into the wallet of the created entity, and
refunded when the entity is closed.

There is no logic in the coins, except that the balance of any coin may not
go below zero. Thus, this implementation is referred to as cash.
*/
package cash
