package amf3

import (
	"encoding/binary"
	"math"

	"github.com/ssungk/amf3dec/internal/bufpool"
)

// The floor* constants are the minimum number of bytes a single element of an
// aggregate must occupy on the wire, used to reject an implausibly large
// declared length before any allocation happens.
const (
	floorByteArray = 1
	floorVector32  = 4
	floorVector64  = 8
	floorDictEntry = 2
)

func checkOversize(cur *Cursor, op string, count uint32, floor int) error {
	need := int64(count) * int64(floor)
	if need > int64(cur.Remaining()) {
		return newDecodeError(KindOversize, op, cur.Offset(), nil)
	}
	return nil
}

// decodeByteArray reads an opaque byte payload through a pooled scratch
// buffer, copying only the final owned slice into the returned value so
// the pool buffer can be released immediately.
func (d *Decoder) decodeByteArray(cur *Cursor) (Value, error) {
	const op = "decodeByteArray"
	placeholder := &ByteArray{}
	return refOrValue(d, cur, op, placeholder, func(ph *ByteArray, size uint32) error {
		if err := checkOversize(cur, op, size, floorByteArray); err != nil {
			return err
		}
		if err := d.limits.checkCount(op, size, d.limits.MaxByteArrayLen, cur.Offset()); err != nil {
			return err
		}
		if size == 0 {
			ph.Bytes = nil
			return nil
		}
		scratch := bufpool.NewFromPool(int(size))
		defer scratch.Release()
		if _, err := readFull(cur, scratch.Data()); err != nil {
			return newDecodeError(KindTruncated, op, cur.Offset(), err)
		}
		owned := make([]byte, size)
		copy(owned, scratch.Data())
		ph.Bytes = owned
		return nil
	})
}

// decodeXML reads len bytes of markup text. isStringVariant distinguishes
// the legacy XMLDocument marker from the later "XML" (e4x string) marker;
// both share the same wire encoding.
func (d *Decoder) decodeXML(cur *Cursor, isStringVariant bool) (Value, error) {
	const op = "decodeXML"
	placeholder := &XML{IsStringVariant: isStringVariant}
	return refOrValue(d, cur, op, placeholder, func(ph *XML, size uint32) error {
		if err := checkOversize(cur, op, size, floorByteArray); err != nil {
			return err
		}
		if size == 0 {
			ph.Text = ""
			return nil
		}
		scratch := bufpool.NewFromPool(int(size))
		defer scratch.Release()
		if _, err := readFull(cur, scratch.Data()); err != nil {
			return newDecodeError(KindTruncated, op, cur.Offset(), err)
		}
		if !utf8Valid(scratch.Data()) {
			return newDecodeError(KindInvalidUTF8, op, cur.Offset(), nil)
		}
		ph.Text = string(scratch.Data())
		return nil
	})
}

func (d *Decoder) decodeVectorInt(cur *Cursor) (Value, error) {
	const op = "decodeVectorInt"
	placeholder := &VectorInt{}
	return refOrValue(d, cur, op, placeholder, func(ph *VectorInt, size uint32) error {
		if err := checkOversize(cur, op, size, floorVector32); err != nil {
			return err
		}
		if err := d.limits.checkCount(op, size, d.limits.MaxVectorElements, cur.Offset()); err != nil {
			return err
		}
		fixed, err := cur.readOneByte(op)
		if err != nil {
			return err
		}
		ph.Fixed = fixed != 0
		if size == 0 {
			return nil
		}
		scratch := bufpool.NewFromPool(int(size) * floorVector32)
		defer scratch.Release()
		if _, err := readFull(cur, scratch.Data()); err != nil {
			return newDecodeError(KindTruncated, op, cur.Offset(), err)
		}
		items := make([]int32, size)
		for i := range items {
			items[i] = int32(binary.BigEndian.Uint32(scratch.Data()[i*4:]))
		}
		ph.Items = items
		return nil
	})
}

func (d *Decoder) decodeVectorUInt(cur *Cursor) (Value, error) {
	const op = "decodeVectorUInt"
	placeholder := &VectorUInt{}
	return refOrValue(d, cur, op, placeholder, func(ph *VectorUInt, size uint32) error {
		if err := checkOversize(cur, op, size, floorVector32); err != nil {
			return err
		}
		if err := d.limits.checkCount(op, size, d.limits.MaxVectorElements, cur.Offset()); err != nil {
			return err
		}
		fixed, err := cur.readOneByte(op)
		if err != nil {
			return err
		}
		ph.Fixed = fixed != 0
		if size == 0 {
			return nil
		}
		scratch := bufpool.NewFromPool(int(size) * floorVector32)
		defer scratch.Release()
		if _, err := readFull(cur, scratch.Data()); err != nil {
			return newDecodeError(KindTruncated, op, cur.Offset(), err)
		}
		items := make([]uint32, size)
		for i := range items {
			items[i] = binary.BigEndian.Uint32(scratch.Data()[i*4:])
		}
		ph.Items = items
		return nil
	})
}

func (d *Decoder) decodeVectorDouble(cur *Cursor) (Value, error) {
	const op = "decodeVectorDouble"
	placeholder := &VectorDouble{}
	return refOrValue(d, cur, op, placeholder, func(ph *VectorDouble, size uint32) error {
		if err := checkOversize(cur, op, size, floorVector64); err != nil {
			return err
		}
		if err := d.limits.checkCount(op, size, d.limits.MaxVectorElements, cur.Offset()); err != nil {
			return err
		}
		fixed, err := cur.readOneByte(op)
		if err != nil {
			return err
		}
		ph.Fixed = fixed != 0
		if size == 0 {
			return nil
		}
		scratch := bufpool.NewFromPool(int(size) * floorVector64)
		defer scratch.Release()
		if _, err := readFull(cur, scratch.Data()); err != nil {
			return newDecodeError(KindTruncated, op, cur.Offset(), err)
		}
		items := make([]float64, size)
		for i := range items {
			bits := binary.BigEndian.Uint64(scratch.Data()[i*8:])
			items[i] = math.Float64frombits(bits)
		}
		ph.Items = items
		return nil
	})
}

func (d *Decoder) decodeVectorObject(cur *Cursor) (Value, error) {
	const op = "decodeVectorObject"
	placeholder := &VectorObject{}
	return refOrValue(d, cur, op, placeholder, func(ph *VectorObject, size uint32) error {
		if err := checkOversize(cur, op, size, floorByteArray); err != nil {
			return err
		}
		if err := d.limits.checkCount(op, size, d.limits.MaxVectorElements, cur.Offset()); err != nil {
			return err
		}
		fixed, err := cur.readOneByte(op)
		if err != nil {
			return err
		}
		ph.Fixed = fixed != 0
		typeName, err := d.decodeString(cur, op)
		if err != nil {
			return err
		}
		ph.ElementTypeName = typeName
		items := make([]Value, 0, size)
		for i := uint32(0); i < size; i++ {
			v, err := d.ParseSingleElement(cur)
			if err != nil {
				return err
			}
			items = append(items, v)
		}
		ph.Items = items
		return nil
	})
}

// decodeArray implements the combined StrictArray/ECMAArray body:
// after entering with an inline size n, an associative key/value loop
// runs until an empty key terminates it, followed by n dense elements.
// When the associative loop is empty the result collapses to a plain
// StrictArray.
func (d *Decoder) decodeArray(cur *Cursor) (Value, error) {
	const op = "decodeArray"
	hdr, err := readLengthHeader(cur, op)
	if err != nil {
		return nil, err
	}
	if hdr.IsRef {
		return d.lookupObject(hdr.Index, op, cur.Offset())
	}
	size := hdr.Size
	if err := checkOversize(cur, op, size, floorByteArray); err != nil {
		return nil, err
	}
	if err := d.limits.checkCount(op, size, d.limits.MaxArrayElements, cur.Offset()); err != nil {
		return nil, err
	}

	// Reserved as *ECMAArray before any recursive parsing, regardless of
	// which concrete type is ultimately returned: the very first key read
	// below may already recurse into a value that references this array's
	// own slot, so the slot must exist first. Only once the associative
	// loop is known to have read zero entries, meaning no recursion has
	// happened yet, is it safe to swap the slot to a bare *StrictArray.
	placeholder := &ECMAArray{}
	slot, err := d.reserveObjectSlot(placeholder, op, cur.Offset())
	if err != nil {
		return nil, err
	}

	var assoc []Element
	for {
		key, err := d.decodeString(cur, op)
		if err != nil {
			return nil, err
		}
		if key == "" {
			break
		}
		v, err := d.ParseSingleElement(cur)
		if err != nil {
			return nil, err
		}
		assoc = append(assoc, Element{Name: key, Value: v})
	}

	var strict *StrictArray
	if len(assoc) == 0 {
		strict = &StrictArray{}
		d.objectTable[slot] = strict
	}

	items := make([]Value, 0, size)
	for i := uint32(0); i < size; i++ {
		v, err := d.ParseSingleElement(cur)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	if strict != nil {
		strict.Items = items
		return strict, nil
	}

	placeholder.Dense = items
	placeholder.Associative = assoc
	placeholder.DenseLen = uint32(len(assoc))
	return placeholder, nil
}

// decodeDictionary reads the weak-keys flag followed by 2n elements
// chunked into (key, value) pairs.
func (d *Decoder) decodeDictionary(cur *Cursor) (Value, error) {
	const op = "decodeDictionary"
	placeholder := &Dictionary{}
	return refOrValue(d, cur, op, placeholder, func(ph *Dictionary, size uint32) error {
		if err := d.limits.checkCount(op, size, d.limits.MaxDictPairs, cur.Offset()); err != nil {
			return err
		}
		weak, err := cur.readOneByte(op)
		if err != nil {
			return err
		}
		ph.WeakKeys = weak != 0
		if err := checkOversize(cur, op, size, floorDictEntry); err != nil {
			return err
		}
		pairs := make([]DictPair, 0, size)
		for i := uint32(0); i < size; i++ {
			k, err := d.ParseSingleElement(cur)
			if err != nil {
				return err
			}
			v, err := d.ParseSingleElement(cur)
			if err != nil {
				return err
			}
			pairs = append(pairs, DictPair{Key: k, Value: v})
		}
		ph.Pairs = pairs
		return nil
	})
}
