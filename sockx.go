package sockx

import (
	"slices"

	"github.com/anacrolix/log"
	"github.com/anacrolix/sync"
	"github.com/pkg/errors"

	"github.com/netmoat/sockx/internal/chansync"
)

// Socket owns a single descriptor produced by New. It holds no reference to
// any other socket and no global state; sockets from repeated calls are
// fully independent.
type Socket struct {
	fd     uintptr
	closed chansync.SetOnce

	mu     sync.Mutex
	issues []error

	logger log.Logger
}

// Swapped out by tests to fault the flag fixup path.
var setNonblockFn = setNonblock

// New creates a socket of the given family and type and returns it
// non-blocking, close-on-exec and (best effort) with SO_REUSEADDR and
// SO_NOSIGPIPE applied. On any fatal path the intermediate descriptor is
// closed before the error is returned.
//
// Invalid family/type combinations are rejected by the OS itself and come
// back as *CreateError.
func New(family Family, typ Type, opts ...Option) (*Socket, error) {
	conf := defaults()
	for _, opt := range opts {
		opt(&conf)
	}

	fd, flagged, err := sysSocket(int(family), int(typ), conf.closeOnExec)
	if err != nil {
		return nil, &CreateError{Errno: errnoOf(err)}
	}

	// flagged means the platform set O_NONBLOCK at socket(2) time. Otherwise
	// fix up the flag set, preserving whatever else is in it.
	if !flagged {
		if err := setNonblockFn(fd); err != nil {
			_ = closeFd(fd)
			return nil, &ConfigError{Errno: errnoOf(err)}
		}
	}

	s := &Socket{fd: fd, logger: conf.logger}
	if conf.reuseAddr {
		s.noteIssue("SO_REUSEADDR", setReuseAddr(fd))
	}
	if conf.noSigpipe {
		s.noteIssue("SO_NOSIGPIPE", setNoSigpipe(fd))
	}
	return s, nil
}

// RawFd exposes the descriptor for polling, binding, or handing to another
// owner. The Socket still expects to be the one closing it.
func (t *Socket) RawFd() uintptr {
	return t.fd
}

// Close releases the descriptor. Only the first call touches the fd;
// subsequent calls return ErrClosed.
func (t *Socket) Close() error {
	if !t.closed.Set() {
		return ErrClosed
	}
	return closeFd(t.fd)
}

func (t *Socket) IsClosed() bool {
	return t.closed.IsSet()
}

// Issues returns the non-fatal option failures recorded while the socket was
// built. Address reuse and SIGPIPE suppression are optimizations; their
// failure never aborts construction.
func (t *Socket) Issues() []error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.issues)
}

func (t *Socket) noteIssue(opt string, err error) {
	if err == nil {
		return
	}
	err = errors.Wrap(err, opt)
	t.mu.Lock()
	t.issues = append(t.issues, err)
	t.mu.Unlock()
	t.logger.Levelf(log.Debug, "best-effort option on fd %v: %v", t.fd, err)
}
