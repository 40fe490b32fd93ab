package oracle

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrTooFrequent is returned when an update request is submitted
	// before the rate limit interval of the collection passed.
	ErrTooFrequent = errors.Register(1110, "too frequent")
)
