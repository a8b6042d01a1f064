// Package addrgen samples random public IPv4 addresses.
//
// Each call to Next draws four octets independently (first and last in
// [1,254], middle two in [0,255]) and resamples while the result falls in a
// range that is never worth probing: loopback 127.0.0.0/8, the RFC 1918 blocks
// 10.0.0.0/8, 172.16.0.0/12 and 192.168.0.0/16, and everything from
// 224.0.0.0 upwards (multicast and reserved). No state is shared between calls,
// so a Generator can be used from many goroutines at once and makes no
// uniqueness promise.
package addrgen

import (
	"math/rand/v2"

	"webroulette/pkg/domain"
	"webroulette/pkg/serrors"
)

// DefaultMaxResamples bounds how many draws a single Next call may reject before
// giving up. With the default bounds about 14% of draws are rejected, so hitting
// the cap means the random source is broken.
const DefaultMaxResamples = 1000

// Generator produces candidate addresses.
type Generator interface {
	// Next returns a fresh allowed address or an ErrGeneration error when the
	// resample budget is exhausted.
	Next() (domain.Address, error)
}

// Options configure a Generator.
type Options struct {
	// MaxResamples caps rejected draws per Next call. Zero means DefaultMaxResamples.
	MaxResamples int
	// IntN returns a uniform int in [0,n). It must be safe for concurrent use.
	// Nil means math/rand/v2.IntN.
	IntN func(n int) int
}

type generator struct {
	maxResamples int
	intN         func(n int) int
}

// New returns a Generator configured by opts.
func New(opts Options) Generator {
	g := &generator{
		maxResamples: opts.MaxResamples,
		intN:         opts.IntN,
	}
	if g.maxResamples <= 0 {
		g.maxResamples = DefaultMaxResamples
	}
	if g.intN == nil {
		g.intN = rand.IntN
	}

	return g
}

// Next implements Generator.
func (g *generator) Next() (domain.Address, error) {
	for range g.maxResamples {
		addr := domain.AddressFromOctets(
			byte(1+g.intN(254)),
			byte(g.intN(256)),
			byte(g.intN(256)),
			byte(1+g.intN(254)),
		)
		if Allowed(addr) {
			return addr, nil
		}
	}

	return 0, serrors.With(serrors.ErrGeneration, "no allowed address after %d draws", g.maxResamples)
}

// Allowed reports whether addr is outside every excluded range.
func Allowed(addr domain.Address) bool {
	o := addr.Octets()

	switch {
	case o[0] == 0, o[0] >= 224:
		return false
	case o[0] == 127, o[0] == 10:
		return false
	case o[0] == 172 && o[1] >= 16 && o[1] <= 31:
		return false
	case o[0] == 192 && o[1] == 168:
		return false
	}

	return true
}
