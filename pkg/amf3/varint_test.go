package amf3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeU29Boundaries(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"single byte max", []byte{0x7F}, 127},
		{"two byte min", []byte{0x81, 0x00}, 128},
		{"four byte max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 536870911},
		{"zero", []byte{0x00}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur := NewCursor(tc.in)
			got, err := decodeU29(cur, "test")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeI29SignExtension(t *testing.T) {
	cur := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	got, err := decodeI29(cur, "test")
	require.NoError(t, err)
	require.Equal(t, int32(-1), got)
}

func TestDecodeU29Truncated(t *testing.T) {
	cur := NewCursor([]byte{0x81})
	_, err := decodeU29(cur, "test")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReadLengthHeaderSplitsReferenceAndSize(t *testing.T) {
	ref := NewCursor([]byte{0x00})
	hdr, err := readLengthHeader(ref, "test")
	require.NoError(t, err)
	require.True(t, hdr.IsRef)
	require.Equal(t, uint32(0), hdr.Index)

	size := NewCursor([]byte{0x07})
	hdr, err = readLengthHeader(size, "test")
	require.NoError(t, err)
	require.False(t, hdr.IsRef)
	require.Equal(t, uint32(3), hdr.Size)
}
