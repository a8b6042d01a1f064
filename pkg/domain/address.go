package domain

import (
	"fmt"
	"net/netip"
)

// Address is an IPv4 address packed into 32 bits, most significant octet first.
type Address uint32

// AddressFromOctets builds an Address from its four dotted-quad octets.
func AddressFromOctets(a, b, c, d byte) Address {
	return Address(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// ParseAddress parses a dotted-quad IPv4 string.
func ParseAddress(s string) (Address, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return 0, fmt.Errorf("could not parse address: %w", err)
	}
	if !ip.Is4() {
		return 0, fmt.Errorf("not an IPv4 address: %s", s)
	}
	o := ip.As4()

	return AddressFromOctets(o[0], o[1], o[2], o[3]), nil
}

// Octets returns the four octets of the address.
func (a Address) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// Addr converts the address to a netip.Addr.
func (a Address) Addr() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

// String returns the dotted-quad form, e.g. "93.184.216.34".
func (a Address) String() string {
	o := a.Octets()

	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// URL returns the plain-HTTP root URL for the address.
func (a Address) URL() string {
	return "http://" + a.String()
}
