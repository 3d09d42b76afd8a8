package bufpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromPoolSizesExactly(t *testing.T) {
	b := NewFromPool(100)
	require.Equal(t, 100, b.Len())
	b.Release()
}

func TestRetainReleaseDefersFinalizerUntilZero(t *testing.T) {
	b := NewFromPool(10)
	pooled := b.finalizer
	calls := 0
	b.finalizer = func(buf []byte) {
		calls++
		pooled(buf)
	}
	b.Retain()
	b.Release() // count now 1, finalizer must not run yet
	require.Equal(t, 0, calls)
	require.Equal(t, 10, b.Len())
	b.Release() // count now 0, finalizer runs
	require.Equal(t, 1, calls)
}

func TestAllocFallsBackForOversizedRequest(t *testing.T) {
	b := NewFromPool(Size1M + 1)
	require.Equal(t, Size1M+1, b.Len())
	b.Release()
}
