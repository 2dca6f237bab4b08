package address

import (
	"errors"
	"strings"
)

// Supported scheme constants.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// ErrUnsupportedScheme is returned when an address uses an unknown or unsupported scheme.
var ErrUnsupportedScheme = errors.New("unsupported address scheme")

// ErrEmptyAddress is returned for blank input.
var ErrEmptyAddress = errors.New("empty address")

// Address holds the scheme and host part of an upstream base URL.
type Address struct {
	Scheme  string
	Address string
}

// New parses an upstream host. Bare hosts such as "games.roproxy.com"
// default to https. Trailing slashes are dropped.
func New(input string) (Address, error) {
	addr := strings.TrimSpace(input)
	if addr == "" {
		return Address{}, ErrEmptyAddress
	}

	scheme := SchemeHTTPS
	if i := strings.Index(addr, "://"); i >= 0 {
		scheme = strings.ToLower(addr[:i])
		addr = addr[i+len("://"):]
	}

	switch scheme {
	case SchemeHTTP, SchemeHTTPS:
	default:
		return Address{}, ErrUnsupportedScheme
	}

	addr = strings.TrimRight(addr, "/")
	if addr == "" {
		return Address{}, ErrEmptyAddress
	}

	return Address{Scheme: scheme, Address: addr}, nil
}

// String returns the base URL.
func (a Address) String() string {
	return a.Scheme + "://" + a.Address
}
