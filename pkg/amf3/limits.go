package amf3

// Limits is a defense-in-depth bounds-checking configuration, modeled on
// the teacher's Config/DefaultConfig pairing and on glint's DecodeLimits.
// Every field is a ceiling on an element count, not a byte count; the
// dynamic remaining-bytes check in aggregates.go always runs regardless
// of these values. A zero field means "rely on the dynamic check only."
type Limits struct {
	MaxStringLen      uint32
	MaxArrayElements  uint32
	MaxVectorElements uint32
	MaxDictPairs      uint32
	MaxObjectFields   uint32
	MaxByteArrayLen   uint32
	MaxTableEntries   uint32
}

// DefaultLimits returns sensible ceilings for untrusted input, generous
// enough not to reject legitimate payloads.
func DefaultLimits() Limits {
	return Limits{
		MaxStringLen:      16 << 20,
		MaxArrayElements:  1 << 20,
		MaxVectorElements: 1 << 20,
		MaxDictPairs:      1 << 18,
		MaxObjectFields:   1 << 16,
		MaxByteArrayLen:   64 << 20,
		MaxTableEntries:   1 << 20,
	}
}

func (l Limits) checkCount(op string, n, max uint32, offset int64) error {
	if max != 0 && n > max {
		return newDecodeError(KindOversize, op, offset, nil)
	}
	return nil
}
