package amf3

// decodeU29 reads a 1-4 byte variable-length unsigned integer in the
// range [0, 2^29-1]. Each of the first three bytes uses its high bit as
// a continuation flag; a fourth byte, if reached, contributes all eight
// of its bits with no flag. Grounded on the teacher's decodeU29, which
// implements the same walk for its (unexposed) internal use.
func decodeU29(cur *Cursor, op string) (uint32, error) {
	var result uint32
	n := 0

	b, err := cur.readOneByte(op)
	if err != nil {
		return 0, err
	}
	for b&0x80 != 0 && n < 3 {
		result = (result << 7) | uint32(b&0x7F)
		n++
		b, err = cur.readOneByte(op)
		if err != nil {
			return 0, err
		}
	}
	if n < 3 {
		result = (result << 7) | uint32(b)
	} else {
		result = (result << 8) | uint32(b)
	}
	return result, nil
}

// decodeI29 reads the same byte layout as decodeU29 but sign-extends the
// four-byte form from 29 to 32 bits, yielding the range
// [-2^28, 2^28-1].
func decodeI29(cur *Cursor, op string) (int32, error) {
	u, err := decodeU29(cur, op)
	if err != nil {
		return 0, err
	}
	if u&0x10000000 != 0 {
		return int32(u - 0x20000000), nil
	}
	return int32(u), nil
}
