package probe

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns the client used for probing: no proxy, no keep-alive,
// no redirects. Redirects surface as a 3xx response and therefore as a
// non-success status. The client has no timeout of its own; every probe sets a
// deadline on its request context instead.
func NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		KeepAlive: -1,
	}

	return &http.Client{
		Transport: &http.Transport{
			DialContext:            dialer.DialContext,
			DisableKeepAlives:      true,
			DisableCompression:     false,
			MaxResponseHeaderBytes: 64 << 10,
			TLSHandshakeTimeout:    5 * time.Second,
		},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
