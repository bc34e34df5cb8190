package sockx

import (
	"syscall"

	"github.com/pkg/errors"

	"github.com/netmoat/sockx/internal/errorsx"
)

const (
	// ErrClosed is returned by Socket.Close after the first successful close.
	ErrClosed = errorsx.String("socket already closed")

	// ErrFlagsUnsupported is returned by the flag helpers on platforms where
	// descriptor flags cannot be read back. Gate on HasFlags to avoid it.
	ErrFlagsUnsupported = errorsx.String("descriptor flags not readable on this platform")
)

// CreateError reports that the OS refused to allocate a socket resource.
// Nothing is held when it is returned.
type CreateError struct {
	Errno syscall.Errno
}

func (t *CreateError) Error() string {
	return "create socket: " + t.Errno.Error()
}

func (t *CreateError) Unwrap() error {
	return t.Errno
}

// ConfigError reports that a freshly created socket could not be made
// non-blocking. The descriptor is closed before this is returned; the caller
// never sees a partially configured socket.
type ConfigError struct {
	Errno syscall.Errno
}

func (t *ConfigError) Error() string {
	return "configure socket: " + t.Errno.Error()
}

func (t *ConfigError) Unwrap() error {
	return t.Errno
}

func errnoOf(err error) (errno syscall.Errno) {
	errors.As(err, &errno)
	return errno
}
