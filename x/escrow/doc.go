/*
Package escrow implements a trustless swap of two token balances.

The initializer locks tokens in a vault account and records the amount of
another token expected in return. A taker completes the swap by sending
that amount, receiving the locked tokens in the same transaction. Until
then the initializer may cancel and take the locked tokens back.

The vault is owned by an authority derived from the program identity.
Nobody holds a key for that authority. Only the handlers of this package
can present it to the token ledger, and only while exchanging or
cancelling an escrow. An escrow is open as long as its record exists.
Both terminal operations delete the record and close the vault.
*/
package escrow
