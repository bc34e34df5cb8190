package sockx

import (
	"syscall"

	"github.com/netmoat/sockx/internal/errorsx"
)

// Control matches the net.ListenConfig.Control and net.Dialer.Control
// signatures and applies the same options New applies, to sockets the net
// package creates itself (those are already non-blocking internally).
// Unlike New's best-effort step, failures here are returned: the caller
// wired the options in explicitly.
//
//	lc := net.ListenConfig{Control: sockx.Control}
//	l, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
func Control(network, address string, c syscall.RawConn) (err error) {
	controlErr := c.Control(func(fd uintptr) {
		err = errorsx.Compact(setReuseAddr(fd), setNoSigpipe(fd))
	})
	return errorsx.Compact(controlErr, err)
}

// ConnFd extracts the descriptor behind a stdlib socket (net.Conn,
// net.Listener and net.PacketConn all qualify) for use with the flag
// helpers. The net package keeps ownership; the value is only good while
// the connection stays open.
func ConnFd(c syscall.Conn) (fd uintptr, err error) {
	rc, err := c.SyscallConn()
	if err != nil {
		return 0, err
	}
	err = rc.Control(func(raw uintptr) {
		fd = raw
	})
	return fd, err
}
