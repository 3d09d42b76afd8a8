package amf3

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSingleElementScalars(t *testing.T) {
	d := NewDecoder()

	v, err := d.ParseSingleElement(NewCursor([]byte{markerUndefined}))
	require.NoError(t, err)
	require.Equal(t, Undefined{}, v)

	v, err = d.ParseSingleElement(NewCursor([]byte{markerNull}))
	require.NoError(t, err)
	require.Equal(t, Null{}, v)

	v, err = d.ParseSingleElement(NewCursor([]byte{markerTrue}))
	require.NoError(t, err)
	require.Equal(t, Bool(true), v)

	v, err = d.ParseSingleElement(NewCursor([]byte{markerFalse}))
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)
}

func TestDecodeDoubleRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(3.5))
	d := NewDecoder()
	v, err := d.decodeDouble(NewCursor(buf))
	require.NoError(t, err)
	require.Equal(t, Number(3.5), v)
}

func TestDecodeDateIgnoresDeclaredSize(t *testing.T) {
	millis := make([]byte, 8)
	binary.BigEndian.PutUint64(millis, math.Float64bits(1700000000000))
	body := concatBytes(encodeSize(999), millis)
	d := NewDecoder()
	v, err := d.decodeDate(NewCursor(body))
	require.NoError(t, err)
	date, ok := v.(*Date)
	require.True(t, ok)
	require.Equal(t, float64(1700000000000), date.Millis)
}

func TestInvalidMarkerFails(t *testing.T) {
	d := NewDecoder()
	_, err := d.ParseSingleElement(NewCursor([]byte{0x7F}))
	require.ErrorIs(t, err, ErrInvalidMarker)
}
