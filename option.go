package sockx

import (
	"github.com/anacrolix/log"
)

type config struct {
	reuseAddr   bool
	noSigpipe   bool
	closeOnExec bool
	logger      log.Logger
}

func defaults() config {
	return config{
		reuseAddr:   true,
		noSigpipe:   true,
		closeOnExec: true,
		logger:      log.Default,
	}
}

// Option adjusts how New configures a socket.
type Option func(*config)

// WithLogger routes diagnostics about non-fatal option failures. Fatal
// errors are never logged; they go back to the caller.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithReuseAddr toggles the best-effort SO_REUSEADDR step. Default on.
func WithReuseAddr(on bool) Option {
	return func(c *config) { c.reuseAddr = on }
}

// WithNoSigpipe toggles the best-effort SO_NOSIGPIPE step. Default on; a
// no-op either way on platforms without the option.
func WithNoSigpipe(on bool) Option {
	return func(c *config) { c.noSigpipe = on }
}

// WithCloseOnExec toggles close-on-exec. Default on. Turning it off forces
// the plain socket(2) path even where socket-time flags are available, since
// those cannot be unset afterwards.
func WithCloseOnExec(on bool) Option {
	return func(c *config) { c.closeOnExec = on }
}
