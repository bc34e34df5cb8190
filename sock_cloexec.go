//go:build linux || dragonfly || freebsd || netbsd || openbsd

package sockx

import "golang.org/x/sys/unix"

// Both flags in the socket(2) call itself, so there is no window where the
// descriptor exists blocking or inheritable.
func sysSocket(family, typ int, cloexec bool) (uintptr, bool, error) {
	if !cloexec {
		return sysSocketPosthoc(family, typ, false)
	}
	fd, err := unix.Socket(family, typ|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err == nil {
		return uintptr(fd), true, nil
	}
	// Kernels predating socket-time flags reject them this way.
	if err == unix.EPROTONOSUPPORT || err == unix.EINVAL {
		return sysSocketPosthoc(family, typ, true)
	}
	return 0, false, err
}
