package amf3

// ParseBody decodes a padding-delimited sequence of named elements, the
// form used when the AMF0 layer hands a block off to this package via
// the AMF3-embedded marker. After each element, the padding sequence
// (the two bytes in markers.go) is skipped when it comes next; an
// element without padding after it is accepted. Padding is looked for
// only directly after an element, never where an element is expected:
// an element whose name is a string-table reference to index 0 (the
// single byte 0x00) followed by an Undefined value (marker 0x00) has
// the same two bytes as the padding, and is read as an element when it
// starts the body or follows a padding sequence. Grounded on the original source's
// parse_body/parse_element, since the teacher never implemented this
// hand-off (its own DecodeAMF0Sequence caller was never completed).
func (d *Decoder) ParseBody(cur *Cursor) ([]Element, error) {
	const op = "ParseBody"
	var elements []Element

	for cur.Remaining() > 0 {
		name, value, err := d.tryParseElement(cur)
		if err != nil {
			return nil, err
		}
		elements = append(elements, Element{Name: name, Value: value})

		if cur.peekMatches(padding[:]) {
			if err := cur.skip(len(padding)); err != nil {
				return nil, newDecodeError(KindTruncated, op, cur.Offset(), err)
			}
		}
	}
	return elements, nil
}

// tryParseElement attempts one name/value pair, rewinding the cursor and
// any reference-table growth it caused if the attempt fails, so a failed
// attempt leaves the cursor and the tables as they were before it.
func (d *Decoder) tryParseElement(cur *Cursor) (string, Value, error) {
	const op = "ParseBody"
	start := cur.Offset()
	stringLen, traitLen, objectLen := len(d.stringTable), len(d.traitTable), len(d.objectTable)

	name, err := d.decodeString(cur, op)
	if err == nil {
		var value Value
		value, err = d.ParseSingleElement(cur)
		if err == nil {
			return name, value, nil
		}
	}

	d.stringTable = d.stringTable[:stringLen]
	d.traitTable = d.traitTable[:traitLen]
	d.objectTable = d.objectTable[:objectLen]
	if seekErr := cur.seekTo(start); seekErr != nil {
		return "", nil, newDecodeError(KindTruncated, op, cur.Offset(), seekErr)
	}
	return "", nil, err
}
