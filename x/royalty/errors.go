package royalty

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrUnclaimedBalance is returned when a claim asks for more than the
	// recipient has accrued and not yet claimed.
	ErrUnclaimedBalance = errors.Register(1100, "insufficient unclaimed balance")

	// ErrPoolBalance is returned when the collection pool account does
	// not hold enough funds to pay out.
	ErrPoolBalance = errors.Register(1101, "insufficient pool funds")

	// ErrInvalidProof is returned when a merkle proof does not resolve to
	// the active distribution root.
	ErrInvalidProof = errors.Register(1102, "invalid merkle proof")

	// ErrAlreadyClaimed is returned when a distribution was already paid
	// out for the given root and recipient.
	ErrAlreadyClaimed = errors.Register(1103, "distribution already claimed")
)
