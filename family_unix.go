//go:build !windows && !wasm

package sockx

import "golang.org/x/sys/unix"

const (
	INET  Family = unix.AF_INET
	INET6 Family = unix.AF_INET6
	Local Family = unix.AF_UNIX
)

const (
	Stream   Type = unix.SOCK_STREAM
	Datagram Type = unix.SOCK_DGRAM
)
