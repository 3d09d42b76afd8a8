package amf3

// lengthHeader is the result of splitting a U29 length field: it is
// either a reference into a table (IsRef true, Index meaningful) or an
// inline size (IsRef false, Size meaningful). The same encoding is
// reused for strings, traits, and every complex/aggregate type.
type lengthHeader struct {
	IsRef bool
	Index uint32
	Size  uint32
}

func readLengthHeader(cur *Cursor, op string) (lengthHeader, error) {
	v, err := decodeU29(cur, op)
	if err != nil {
		return lengthHeader{}, err
	}
	if v&referenceFlag == 0 {
		return lengthHeader{IsRef: true, Index: v >> 1}, nil
	}
	return lengthHeader{IsRef: false, Size: v >> 1}, nil
}
