package amf3

// decodeTrait parses a class definition from an already-read U29 value
// (the same header the object decoder reads to decide reference vs.
// inline). Grounded on the original source's parse_class_def, since the
// teacher's own trait table was an unused placeholder.
func (d *Decoder) decodeTrait(cur *Cursor, header uint32, op string) (*ClassDefinition, error) {
	if header&referenceFlag == 0 {
		idx := header >> 1
		return d.lookupTrait(idx, op, cur.Offset())
	}

	packed := header >> 1
	encoding := packed & 0x03
	propCount := packed >> 2

	if err := d.limits.checkCount(op, propCount, d.limits.MaxObjectFields, cur.Offset()); err != nil {
		return nil, err
	}
	if err := checkOversize(cur, op, propCount, floorByteArray); err != nil {
		return nil, err
	}

	name, err := d.decodeString(cur, op)
	if err != nil {
		return nil, err
	}

	props := make([]string, 0, propCount)
	for i := uint32(0); i < propCount; i++ {
		p, err := d.decodeString(cur, op)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}

	attrs := make(map[Attribute]bool)
	if encoding&traitEncodingExternal != 0 {
		attrs[AttrExternal] = true
	}
	if encoding&traitEncodingDynamic != 0 {
		attrs[AttrDynamic] = true
	}

	if err := d.limits.checkCount(op, uint32(len(d.traitTable)+1), d.limits.MaxTableEntries, cur.Offset()); err != nil {
		return nil, err
	}

	cd := &ClassDefinition{Name: name, Attributes: attrs, StaticProperties: props}
	d.traitTable = append(d.traitTable, cd)
	d.logTrace("amf3: trait table grew", "name", name, "index", len(d.traitTable)-1)
	return cd, nil
}
