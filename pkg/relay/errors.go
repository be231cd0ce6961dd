package relay

import "errors"

// ErrTimeout is the distinguished failure a consumer observes when no
// message arrives within the retrieval timeout. It is distinct from
// any source or scope error.
var ErrTimeout = errors.New("relay: hand-off timed out")

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
