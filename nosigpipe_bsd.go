//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sockx

import "golang.org/x/sys/unix"

// HasNoSigpipe reports whether the host has a socket-level SIGPIPE
// suppression option.
const HasNoSigpipe = true

func setNoSigpipe(fd uintptr) error {
	return unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1)
}
