package amf3

// ParseSingleElement reads one marker byte and decodes the value it
// introduces. This is the single type-dispatch point every recursive
// call in the package goes through, generalizing the teacher's
// DecodeAMF3 switch to the full marker table (traits, vectors,
// dictionary, both XML markers).
func (d *Decoder) ParseSingleElement(cur *Cursor) (Value, error) {
	const op = "ParseSingleElement"
	marker, err := cur.readOneByte(op)
	if err != nil {
		return nil, err
	}

	d.logTrace("amf3: dispatch", "marker", marker)

	switch marker {
	case markerUndefined:
		return Undefined{}, nil
	case markerNull:
		return Null{}, nil
	case markerFalse:
		return Bool(false), nil
	case markerTrue:
		return Bool(true), nil
	case markerInteger:
		return d.decodeInteger(cur)
	case markerDouble:
		return d.decodeDouble(cur)
	case markerString:
		s, err := d.decodeString(cur, op)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case markerXMLDoc:
		return d.decodeXML(cur, false)
	case markerDate:
		return d.decodeDate(cur)
	case markerArray:
		return d.decodeArray(cur)
	case markerObject:
		return d.decodeObject(cur)
	case markerXML:
		return d.decodeXML(cur, true)
	case markerByteArray:
		return d.decodeByteArray(cur)
	case markerVectorInt:
		return d.decodeVectorInt(cur)
	case markerVectorUInt:
		return d.decodeVectorUInt(cur)
	case markerVectorDbl:
		return d.decodeVectorDouble(cur)
	case markerVectorObj:
		return d.decodeVectorObject(cur)
	case markerDictionary:
		return d.decodeDictionary(cur)
	default:
		return nil, newDecodeError(KindInvalidMarker, op, cur.Offset(), nil)
	}
}
