package amf3

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLimitsAppliesToArray(t *testing.T) {
	d := NewDecoder(WithLimits(Limits{MaxArrayElements: 1}))
	body := concatBytes(
		encodeSize(5),
		encodeStringInline(""),
		// enough bytes for the remaining-bytes check to pass, so the
		// Limits ceiling is what rejects the array
		[]byte{markerUndefined, markerUndefined, markerUndefined, markerUndefined, markerUndefined},
	)
	_, err := d.decodeArray(NewCursor(body))
	require.ErrorIs(t, err, ErrOversize)
}

func TestWithLoggerAcceptsNilByDefault(t *testing.T) {
	d := NewDecoder()
	require.NotPanics(t, func() {
		d.logTrace("no logger configured")
	})
}

func TestWithLoggerReceivesTraceEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := NewDecoder(WithLogger(logger))
	require.NotPanics(t, func() {
		_, _ = d.ParseSingleElement(NewCursor([]byte{markerNull}))
	})
	require.Contains(t, buf.String(), "amf3: dispatch")
}

func TestTraitTableReferenceReuse(t *testing.T) {
	header1 := objectHeaderBytes(false, false, 1)
	body := concatBytes(
		header1,
		encodeStringInline("Point"),
		encodeStringInline("x"),
		[]byte{markerInteger}, encodeU29(1),

		encodeU29(1), // object inline (bit0=1), trait reference to index 0 (bit0=0, idx=0)
		[]byte{markerInteger}, encodeU29(2),
	)
	cur := NewCursor(body)
	d := NewDecoder()

	v1, err := d.decodeObject(cur)
	require.NoError(t, err)
	obj1 := v1.(*Object)
	require.Equal(t, "Point", obj1.ClassDef.Name)

	v2, err := d.decodeObject(cur)
	require.NoError(t, err)
	obj2 := v2.(*Object)
	require.Same(t, obj1.ClassDef, obj2.ClassDef)
	require.Equal(t, Integer(2), obj2.Fields[0].Value)
}
