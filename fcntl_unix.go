//go:build !windows && !wasm

package sockx

import "golang.org/x/sys/unix"

// HasFlags reports whether descriptor flags can be read back on the host.
const HasFlags = true

// Flags returns the descriptor's file status flags (F_GETFL).
func Flags(fd uintptr) (int, error) {
	return unix.FcntlInt(fd, unix.F_GETFL, 0)
}

// SetFlags overwrites the descriptor's file status flags (F_SETFL). Most
// callers want SetNonblock instead, which preserves unrelated flags.
func SetFlags(fd uintptr, flags int) error {
	_, err := unix.FcntlInt(fd, unix.F_SETFL, flags)
	return err
}

// SetNonblock flips O_NONBLOCK via read-modify-write, leaving every other
// flag as it was.
func SetNonblock(fd uintptr, on bool) error {
	flags, err := Flags(fd)
	if err != nil {
		return err
	}
	if on {
		flags |= unix.O_NONBLOCK
	} else {
		flags &^= unix.O_NONBLOCK
	}
	return SetFlags(fd, flags)
}

// IsNonblock reports whether the descriptor has O_NONBLOCK set.
func IsNonblock(fd uintptr) (bool, error) {
	flags, err := Flags(fd)
	if err != nil {
		return false, err
	}
	return flags&unix.O_NONBLOCK != 0, nil
}

func setNonblock(fd uintptr) error {
	return SetNonblock(fd, true)
}
