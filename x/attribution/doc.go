/*
Package attribution keeps track of which minter each minted item is
attributed to.

An attribution is written once by the collection identity and its minter
can afterwards change hands only through the bid market. The holder field
is informational only and carries no royalty rights.
*/
package attribution
