//go:build !windows && !wasm

package sockx

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Plain socket(2) followed by manual flag fixup, for platforms or kernels
// without socket-time SOCK_NONBLOCK/SOCK_CLOEXEC. ForkLock closes the window
// where a forked child could inherit the descriptor before CLOEXEC lands.
func sysSocketPosthoc(family, typ int, cloexec bool) (uintptr, bool, error) {
	syscall.ForkLock.RLock()
	fd, err := unix.Socket(family, typ, 0)
	if err == nil && cloexec {
		unix.CloseOnExec(fd)
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return 0, false, err
	}
	return uintptr(fd), false, nil
}

func closeFd(fd uintptr) error {
	return unix.Close(int(fd))
}
