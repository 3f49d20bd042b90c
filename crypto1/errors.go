package crypto1

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when a caller violates a buffer-size
// contract (spec §7: contract violations are caller bugs, rejected with a
// distinct error kind rather than silently tolerated or retried).
var ErrInvalidArgument = errors.New("crypto1: invalid argument")

func invalidArgument(context string) error {
	return errors.Wrap(ErrInvalidArgument, context)
}
