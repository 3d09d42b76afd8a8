package amf3

// AMF3 type markers, one byte each, as they appear at the start of every
// encoded element.
const (
	markerUndefined   = 0x00
	markerNull        = 0x01
	markerFalse       = 0x02
	markerTrue        = 0x03
	markerInteger     = 0x04
	markerDouble      = 0x05
	markerString      = 0x06
	markerXMLDoc      = 0x07
	markerDate        = 0x08
	markerArray       = 0x09
	markerObject      = 0x0A
	markerXML         = 0x0B
	markerByteArray   = 0x0C
	markerVectorInt   = 0x0D
	markerVectorUInt  = 0x0E
	markerVectorDbl   = 0x0F
	markerVectorObj   = 0x10
	markerDictionary  = 0x11
)

// referenceFlag is the low bit of a U29 length header. When clear the
// remaining bits are a reference-table index; when set they are an
// inline size.
const referenceFlag = 0x01

// padding separates consecutive elements in a decoded body (see ParseBody).
var padding = [2]byte{0x00, 0x00}

// traitEncodingExternal and traitEncodingDynamic are the low two bits of
// a trait's packed header, after the reference flag has been stripped.
const (
	traitEncodingExternal = 0x01
	traitEncodingDynamic  = 0x02
)
