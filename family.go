package sockx

import (
	"fmt"
	"strings"
)

// Family selects the address family of a new socket. The values alias the
// platform constants, so a Family converts directly to the OS argument.
type Family int

// Type selects the socket type.
type Type int

// Families lists the address families this package names on the host.
func Families() []Family {
	return []Family{INET, INET6, Local}
}

// Types lists the socket types this package names.
func Types() []Type {
	return []Type{Stream, Datagram}
}

func (t Family) String() string {
	switch t {
	case INET:
		return "inet"
	case INET6:
		return "inet6"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("family(%d)", int(t))
	}
}

// UnmarshalText lets a Family act as a CLI argument.
func (t *Family) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "inet", "ipv4", "ip4":
		*t = INET
	case "inet6", "ipv6", "ip6":
		*t = INET6
	case "local", "unix":
		*t = Local
	default:
		return fmt.Errorf("unknown address family %q", b)
	}
	return nil
}

func (t Type) String() string {
	switch t {
	case Stream:
		return "stream"
	case Datagram:
		return "datagram"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// UnmarshalText lets a Type act as a CLI argument.
func (t *Type) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "stream", "tcp":
		*t = Stream
	case "datagram", "dgram", "udp":
		*t = Datagram
	default:
		return fmt.Errorf("unknown socket type %q", b)
	}
	return nil
}
