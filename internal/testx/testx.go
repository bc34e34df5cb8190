package testx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Context(t testing.TB) (context.Context, context.CancelFunc) {
	return context.WithCancel(t.Context())
}

func ContextWithTimeout(t testing.TB, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(t.Context(), d)
}

// Must is a small language extension for panicing on the common
// value, error return pattern. only used in tests.
func Must[T any](v T, err error) func(t testing.TB) T {
	return func(t testing.TB) T {
		require.NoError(t, err)
		return v
	}
}
