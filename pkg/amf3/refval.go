package amf3

// refOrValue is the generic reference-or-value combinator, the single
// mechanism that makes cyclic graphs representable: read the length
// header; on a reference, return the cached handle; on a size, reserve
// a placeholder of the caller-supplied pointer type before parsing its
// body, run body to fill it in, and hand back the same pointer. Because
// placeholder is inserted into the object table before body runs, any
// back-reference encountered while parsing it resolves to this same
// pointer, and mutating *placeholder afterward is observed through
// every alias already taken.
//
// T must be a pointer type that implements Value (e.g.
// *ByteArray, *StrictArray); body receives the placeholder and the
// inline size and is responsible for populating every field.
func refOrValue[T Value](d *Decoder, cur *Cursor, op string, placeholder T, body func(T, uint32) error) (Value, error) {
	hdr, err := readLengthHeader(cur, op)
	if err != nil {
		return nil, err
	}
	if hdr.IsRef {
		return d.lookupObject(hdr.Index, op, cur.Offset())
	}

	if _, err := d.reserveObjectSlot(placeholder, op, cur.Offset()); err != nil {
		return nil, err
	}
	if err := body(placeholder, hdr.Size); err != nil {
		return nil, err
	}
	return placeholder, nil
}
