/*
Package royalty implements the royalty accrual ledger together with the
claim paths that pay accrued royalties out of per collection pool
accounts.

Sales that happen on external markets are ingested in batches. Every sale
record carries an opaque transaction identity and each identity is
processed at most once, so a batch can be resubmitted safely. The royalty
cut of a sale is split between the item minter and the collection creator
according to the collection configuration. The creator receives the
division remainder so that no value is lost to rounding.

Claims are permissionless. The direct path pays out of the recipient
accrual, the merkle path pays out of the active distribution root of a
collection. Both debit the ledger before moving a single coin and a claim
can never exceed the funds deposited into the pool account.
*/
package royalty
