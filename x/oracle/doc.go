/*
Package oracle implements the gate that lets anyone request a royalty
data refresh for a collection and lets the trusted oracle deliver the
response.

Requests are rate limited per collection by block height and carry a
unique request id. A fulfillment must match the pending id, it closes the
gate and applies the delivered credits through the royalty ledger. There
is no callback guarantee, a pending request is simply superseded by the
next accepted one.
*/
package oracle
