package amf3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBodySingleElementWithTrailingPadding(t *testing.T) {
	body := concatBytes(
		encodeStringInline("foo"),
		[]byte{markerString}, encodeStringInline("bar"),
		padding[:],
	)
	cur := NewCursor(body)
	d := NewDecoder()
	elements, err := d.ParseBody(cur)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	require.Equal(t, "foo", elements[0].Name)
	require.Equal(t, String("bar"), elements[0].Value)
}

func TestParseBodyAmbiguousReferenceUndefinedNotMistakenForPadding(t *testing.T) {
	body := concatBytes(
		encodeStringInline("a"),
		[]byte{markerInteger}, encodeU29(1),
		encodeRef(0), []byte{markerUndefined},
		padding[:],
	)
	cur := NewCursor(body)
	d := NewDecoder()
	elements, err := d.ParseBody(cur)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	require.Equal(t, "a", elements[0].Name)
	require.Equal(t, "a", elements[1].Name)
	require.Equal(t, Undefined{}, elements[1].Value)
}

func TestParseBodyMultipleElements(t *testing.T) {
	body := concatBytes(
		encodeStringInline("a"),
		[]byte{markerInteger}, encodeU29(1),
		padding[:],
		encodeStringInline("b"),
		[]byte{markerInteger}, encodeU29(2),
		padding[:],
	)
	cur := NewCursor(body)
	d := NewDecoder()
	elements, err := d.ParseBody(cur)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	require.Equal(t, "a", elements[0].Name)
	require.Equal(t, Integer(1), elements[0].Value)
	require.Equal(t, "b", elements[1].Name)
	require.Equal(t, Integer(2), elements[1].Value)
}
