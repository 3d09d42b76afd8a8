package amf3

import (
	"encoding/binary"
	"math"
)

func (d *Decoder) decodeInteger(cur *Cursor) (Value, error) {
	i, err := decodeI29(cur, "decodeInteger")
	if err != nil {
		return nil, err
	}
	return Integer(i), nil
}

func (d *Decoder) decodeDouble(cur *Cursor) (Value, error) {
	raw, err := cur.readExact(8)
	if err != nil {
		return nil, err
	}
	bits := binary.BigEndian.Uint64(raw)
	return Number(math.Float64frombits(bits)), nil
}

// decodeDate implements the reference-or-value wrapper whose declared
// size is vestigial: whatever value the length header carries, exactly
// one big-endian double (milliseconds since epoch) is read when the
// header is not a reference. Grounded on the original source's
// parse_element_date, which discards its own `_len` binding the same
// way.
func (d *Decoder) decodeDate(cur *Cursor) (Value, error) {
	const op = "decodeDate"
	placeholder := &Date{}
	return refOrValue(d, cur, op, placeholder, func(ph *Date, _ uint32) error {
		raw, err := cur.readExact(8)
		if err != nil {
			return err
		}
		ph.Millis = math.Float64frombits(binary.BigEndian.Uint64(raw))
		return nil
	})
}
