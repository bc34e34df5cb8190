//go:build !windows && !wasm

package sockx

import (
	"net"
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/sys/unix"

	"github.com/netmoat/sockx/internal/testx"
)

func TestControlAppliesReuseAddrToListener(t *testing.T) {
	ctx, cancel := testx.Context(t)
	defer cancel()
	lc := net.ListenConfig{Control: Control}
	l, err := lc.Listen(ctx, "tcp4", "127.0.0.1:0")
	qt.Assert(t, qt.IsNil(err))
	defer l.Close()

	fd := testx.Must(ConnFd(l.(*net.TCPListener)))(t)
	v, err := unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Not(qt.Equals(v, 0)))
}

func TestControlAppliesReuseAddrToDialer(t *testing.T) {
	remote, err := net.Listen("tcp4", "127.0.0.1:0")
	qt.Assert(t, qt.IsNil(err))
	defer remote.Close()
	go func() {
		if c, err := remote.Accept(); err == nil {
			c.Close()
		}
	}()

	dialer := net.Dialer{Control: Control}
	conn, err := dialer.Dial("tcp4", remote.Addr().String())
	qt.Assert(t, qt.IsNil(err))
	defer conn.Close()

	fd := testx.Must(ConnFd(conn.(*net.TCPConn)))(t)
	v, err := unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Not(qt.Equals(v, 0)))
}
