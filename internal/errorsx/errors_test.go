package errorsx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netmoat/sockx/internal/errorsx"
)

func TestStringConstant(t *testing.T) {
	const derp = errorsx.String("derp")
	require.EqualError(t, derp, "derp")
	require.True(t, errors.Is(fmt.Errorf("wrapped: %w", derp), derp))
}

func TestCompact(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	require.NoError(t, errorsx.Compact())
	require.NoError(t, errorsx.Compact(nil, nil))
	require.Equal(t, a, errorsx.Compact(nil, a, b))
	require.Equal(t, b, errorsx.Compact(b, a))
}
