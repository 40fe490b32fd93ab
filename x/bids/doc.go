/*
Package bids implements an escrow based market for the minter position of
items.

A bid locks the offered funds on a dedicated escrow account until it is
accepted or withdrawn. Bids target a single item or, with an empty item
id, any item of a collection. The current minter of an item accepts the
highest pending bid, which reassigns the minter through the attribution
registry and pays the full amount to the seller. Losing bids stay
escrowed until their bidders withdraw them.
*/
package bids
