//go:build !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package sockx

// HasNoSigpipe reports whether the host has a socket-level SIGPIPE
// suppression option. Linux only offers per-send MSG_NOSIGNAL and Windows
// has no SIGPIPE at all, so this step degrades to a no-op.
const HasNoSigpipe = false

func setNoSigpipe(fd uintptr) error {
	return nil
}
