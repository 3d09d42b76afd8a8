package amf3

// decodeObject implements the sealed/dynamic/external object body: the
// object header's low bit selects a cached object reference; otherwise
// the remaining bits are handed to the trait parser (which has its own
// embedded reference-or-inline bit), and the result branches on the
// trait's External/Dynamic attributes.
// Grounded on the original source's parse_element_object, generalizing
// the teacher's decodeObject (which only handled a flat map, no traits).
func (d *Decoder) decodeObject(cur *Cursor) (Value, error) {
	const op = "decodeObject"

	header, err := decodeU29(cur, op)
	if err != nil {
		return nil, err
	}
	if header&referenceFlag == 0 {
		return d.lookupObject(header>>1, op, cur.Offset())
	}

	placeholder := &Object{ClassDef: DefaultClassDefinition()}
	slot, err := d.reserveObjectSlot(placeholder, op, cur.Offset())
	if err != nil {
		return nil, err
	}

	trait, err := d.decodeTrait(cur, header>>1, op)
	if err != nil {
		return nil, err
	}
	placeholder.ClassDef = trait

	switch {
	case trait.IsExternal():
		fn, ok := d.externalDecoders[trait.Name]
		if !ok {
			return nil, newDecodeError(KindUnknownExternal, op, cur.Offset(), nil)
		}
		d.logTrace("amf3: dispatching external decoder", "class", trait.Name)
		fields, err := fn(cur, d)
		if err != nil {
			return nil, err
		}
		return d.finalizeExternal(slot, fields, trait), nil

	case trait.IsDynamic():
		fields, err := d.decodeSealedFields(cur, trait, op)
		if err != nil {
			return nil, err
		}
		dynFields, err := d.decodeDynamicTail(cur, op)
		if err != nil {
			return nil, err
		}
		placeholder.Fields = append(fields, dynFields...)
		return placeholder, nil

	default:
		fields, err := d.decodeSealedFields(cur, trait, op)
		if err != nil {
			return nil, err
		}
		placeholder.Fields = fields
		return placeholder, nil
	}
}

func (d *Decoder) decodeSealedFields(cur *Cursor, trait *ClassDefinition, op string) ([]Element, error) {
	fields := make([]Element, 0, len(trait.StaticProperties))
	for _, name := range trait.StaticProperties {
		v, err := d.ParseSingleElement(cur)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Element{Name: name, Value: v})
	}
	return fields, nil
}

func (d *Decoder) decodeDynamicTail(cur *Cursor, op string) ([]Element, error) {
	var fields []Element
	for {
		name, err := d.decodeString(cur, op)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return fields, nil
		}
		v, err := d.ParseSingleElement(cur)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Element{Name: name, Value: v})
	}
}

// finalizeExternal replaces the reserved placeholder's identity with a
// Custom value carrying the external decoder's output. Since Object and
// Custom are different concrete types, the object table slot, which
// still holds the placeholder *Object pointer, cannot be mutated in
// place the way same-type aggregates are; instead the table slot itself
// is overwritten by index. Callers must not have handed out references
// to this slot mid-parse: externalizable bodies are leaves, so nothing
// inside one can legally reference the enclosing object before it is
// known to be external.
func (d *Decoder) finalizeExternal(slot int, fields []Element, trait *ClassDefinition) Value {
	custom := &Custom{Decoded: fields, ClassDef: trait}
	d.objectTable[slot] = custom
	return custom
}
