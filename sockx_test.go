package sockx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewStreamSocket(t *testing.T) {
	s, err := New(INET, Stream)
	require.NoError(t, err)
	require.False(t, s.IsClosed())
	require.NoError(t, s.Close())
	require.True(t, s.IsClosed())
	require.ErrorIs(t, s.Close(), ErrClosed)
}

func TestCreateErrorForBogusFamily(t *testing.T) {
	s, err := New(Family(-1), Stream)
	require.Nil(t, s)
	var ce *CreateError
	require.ErrorAs(t, err, &ce)
	require.NotZero(t, ce.Errno)
	require.ErrorIs(t, err, ce.Errno)
}

func TestHealthySocketHasNoIssues(t *testing.T) {
	s, err := New(INET, Datagram)
	require.NoError(t, err)
	defer s.Close()
	require.Empty(t, s.Issues())
}

func TestOptionalStepsCanBeSkipped(t *testing.T) {
	s, err := New(INET, Stream, WithReuseAddr(false), WithNoSigpipe(false))
	require.NoError(t, err)
	require.Empty(t, s.Issues())
	require.NoError(t, s.Close())
}

// Repeated creation shares no state; a storm of concurrent calls must all
// succeed independently.
func TestConcurrentCreates(t *testing.T) {
	var (
		eg  errgroup.Group
		fds = make(chan uintptr, 64)
	)
	for range 64 {
		eg.Go(func() error {
			s, err := New(INET, Stream)
			if err != nil {
				return err
			}
			fds <- s.RawFd()
			return s.Close()
		})
	}
	require.NoError(t, eg.Wait())
	require.Len(t, fds, 64)
}
