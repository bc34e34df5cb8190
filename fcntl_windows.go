package sockx

import (
	"golang.org/x/sys/windows"
)

// HasFlags reports whether descriptor flags can be read back on the host.
// Winsock's FIONBIO is write-only; there is no fcntl analogue.
const HasFlags = false

func Flags(fd uintptr) (int, error) {
	return 0, ErrFlagsUnsupported
}

func SetFlags(fd uintptr, flags int) error {
	return ErrFlagsUnsupported
}

// SetNonblock toggles the socket's blocking mode. Unlike the unix build
// there is no flag set to preserve; FIONBIO touches only blocking mode.
func SetNonblock(fd uintptr, on bool) error {
	return windows.SetNonblock(windows.Handle(fd), on)
}

func IsNonblock(fd uintptr) (bool, error) {
	return false, ErrFlagsUnsupported
}

func setNonblock(fd uintptr) error {
	return SetNonblock(fd, true)
}
