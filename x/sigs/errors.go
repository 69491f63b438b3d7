package sigs

import (
	"github.com/iov-one/tokenswap/errors"
)

// ErrInvalidSequence is returned when a signature carries a sequence
// number that does not match the signer's state.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
