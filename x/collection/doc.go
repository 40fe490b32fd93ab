/*
Package collection implements a registry of royalty-bearing collections.

Each collection is identified by its address and declares a royalty fee
together with a minter/creator split. All fractions share a fixed basis
point denominator. Registration is restricted to the configuration admin
or owner, while the creator role can be transferred by the current
creator, the admin or the collection identity itself.
*/
package collection
