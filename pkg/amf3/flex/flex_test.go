package flex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssungk/amf3dec/pkg/amf3"
	"github.com/ssungk/amf3dec/pkg/amf3/flex"
)

func TestArrayCollectionDecoder(t *testing.T) {
	dec := amf3.NewDecoder()
	dec.RegisterExternalDecoder("flex.messaging.io.ArrayCollection", flex.ArrayCollectionDecoder)

	// A nested empty strict array: array marker, size header (0<<1|1=1),
	// then an immediate empty associative-key terminator (same encoding).
	const amf3MarkerArray = 0x09
	body := []byte{amf3MarkerArray, 0x01, 0x01}
	cur := amf3.NewCursor(body)

	fields, err := flex.ArrayCollectionDecoder(cur, dec)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.Equal(t, "items", fields[0].Name)
	_, ok := fields[0].Value.(*amf3.StrictArray)
	require.True(t, ok)
}

func TestObjectProxyDecoder(t *testing.T) {
	dec := amf3.NewDecoder()
	dec.RegisterExternalDecoder("flex.messaging.io.ObjectProxy", flex.ObjectProxyDecoder)

	cur := amf3.NewCursor([]byte{amf3MarkerNull})

	fields, err := flex.ObjectProxyDecoder(cur, dec)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.Equal(t, "object", fields[0].Name)
	require.Equal(t, amf3.Null{}, fields[0].Value)
}

const amf3MarkerNull = 0x01
