package amf3

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeErrorUnwrapsToSentinel(t *testing.T) {
	err := newDecodeError(KindBadReference, "lookupObject", 12, nil)
	require.ErrorIs(t, err, ErrBadReference)
	require.NotErrorIs(t, err, ErrTruncated)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "lookupObject", de.Op)
	require.Equal(t, int64(12), de.Offset)
}

func TestDecodeErrorWrapsUnderlying(t *testing.T) {
	inner := errors.New("EOF")
	err := newDecodeError(KindTruncated, "readExact", 4, inner)
	require.Contains(t, err.Error(), "EOF")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "oversize", KindOversize.String())
	require.Equal(t, "unknown", Kind(99).String())
}
