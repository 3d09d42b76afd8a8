package amf3

import "unicode/utf8"

// decodeByteStream parses the AMF3 byte-stream encoding shared by
// strings, XML text, and class names: a length header followed by
// either a reference-table lookup or an inline payload. Empty inline
// payloads are never interned, matching the teacher's decodeStringValue.
func (d *Decoder) decodeByteStream(cur *Cursor, op string) ([]byte, error) {
	hdr, err := readLengthHeader(cur, op)
	if err != nil {
		return nil, err
	}
	if hdr.IsRef {
		if int(hdr.Index) >= len(d.stringTable) {
			return nil, newDecodeError(KindBadReference, op, cur.Offset(), nil)
		}
		return []byte(d.stringTable[hdr.Index]), nil
	}
	if hdr.Size == 0 {
		return nil, nil
	}
	if err := d.limits.checkCount(op, hdr.Size, d.limits.MaxStringLen, cur.Offset()); err != nil {
		return nil, err
	}
	if int(hdr.Size) > cur.Remaining() {
		return nil, newDecodeError(KindOversize, op, cur.Offset(), nil)
	}
	raw, err := cur.readExact(int(hdr.Size))
	if err != nil {
		return nil, err
	}
	if err := d.limits.checkCount(op, uint32(len(d.stringTable)+1), d.limits.MaxTableEntries, cur.Offset()); err != nil {
		return nil, err
	}
	d.stringTable = append(d.stringTable, string(raw))
	return raw, nil
}

// decodeString decodes a byte stream and validates it as UTF-8, the form
// used for both element names and String values.
func (d *Decoder) decodeString(cur *Cursor, op string) (string, error) {
	raw, err := d.decodeByteStream(cur, op)
	if err != nil {
		return "", err
	}
	if !utf8Valid(raw) {
		return "", newDecodeError(KindInvalidUTF8, op, cur.Offset(), nil)
	}
	return string(raw), nil
}

func utf8Valid(b []byte) bool { return utf8.Valid(b) }
