package probe

import (
	"context"
	"errors"
	"net"

	"webroulette/pkg/serrors"
)

// classify maps a transport error onto one of the probe failure kinds.
func classify(err error) error {
	var (
		netErr net.Error
		opErr  *net.OpError
		dnsErr *net.DNSError
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	case errors.As(err, &netErr) && netErr.Timeout():
		return serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	case errors.Is(err, context.Canceled):
		return serrors.Wrap(serrors.ErrConnection, err, "request canceled")
	case errors.As(err, &dnsErr), errors.As(err, &opErr):
		return serrors.Wrap(serrors.ErrConnection, err, "connection failed")
	default:
		return serrors.Wrap(serrors.ErrProtocol, err, "invalid response")
	}
}
