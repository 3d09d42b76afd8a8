package amf3

// Value is the sealed tagged union produced by decoding one AMF3
// element. Go has no sum types, so it is realized as a marker interface
// implemented by one concrete type per kind, the same "switch on the
// dynamic type of a value" texture the teacher's own encoder/decoder use
// for their simplified map[string]any/[]any subset, generalized so every
// kind can carry the fields a bare builtin can't (a trait reference, a
// fixed-length flag, an associative-entry count).
type Value interface {
	sealedValue()
}

// Undefined is the AMF3 "undefined" value.
type Undefined struct{}

// Null is the AMF3 "null" value.
type Null struct{}

// Bool wraps an AMF3 true/false value.
type Bool bool

// Integer is a signed 29-bit integer widened to int32.
type Integer int32

// Number is an IEEE-754 double.
type Number float64

// String is UTF-8 text.
type String string

// Date is milliseconds since the Unix epoch. AMF3 never encodes a
// timezone offset; the decoder reads only the milliseconds and never
// sets TZOffset, which stays zero.
type Date struct {
	Millis   float64
	TZOffset float64
}

// ByteArray is an opaque byte payload.
type ByteArray struct {
	Bytes []byte
}

// XML carries decoded markup text. IsStringVariant records which of the
// two XML markers (legacy doc vs. "string" e4x) produced this value.
type XML struct {
	Text           string
	IsStringVariant bool
}

// StrictArray is a dense, zero-indexed sequence.
type StrictArray struct {
	Items []Value
}

// ECMAArray is an array with both a dense portion and named associative
// entries. DenseLen records the number of associative entries parsed
// (matching the reference third-field semantics), not the dense length.
type ECMAArray struct {
	Dense      []Value
	Associative []Element
	DenseLen   uint32
}

// Object is a sealed or dynamic object body. ClassDef is nil only when no
// trait information survived (never the case for a fully decoded value,
// but exposed as a pointer since it is shared across references to the
// same trait).
type Object struct {
	Fields   []Element
	ClassDef *ClassDefinition
}

// VectorInt is a fixed-or-growable vector of signed 32-bit integers.
type VectorInt struct {
	Items []int32
	Fixed bool
}

// VectorUInt is a fixed-or-growable vector of unsigned 32-bit integers.
type VectorUInt struct {
	Items []uint32
	Fixed bool
}

// VectorDouble is a fixed-or-growable vector of doubles.
type VectorDouble struct {
	Items []float64
	Fixed bool
}

// VectorObject is a fixed-or-growable vector of arbitrary values, tagged
// with the element type name declared on the wire.
type VectorObject struct {
	Items            []Value
	ElementTypeName  string
	Fixed            bool
}

// Dictionary is an insertion-ordered sequence of key/value pairs.
// WeakKeys is carried through but never interpreted (see DESIGN.md).
type Dictionary struct {
	Pairs    []DictPair
	WeakKeys bool
}

// DictPair is one key/value entry of a Dictionary.
type DictPair struct {
	Key   Value
	Value Value
}

// Custom is the output of an external decoder: decoded fields it
// returned, any regular (non-external) fields (always empty for this
// package's own decoding path, reserved for callers composing their own
// external decoders), and the trait that triggered dispatch.
type Custom struct {
	Decoded  []Element
	Regular  []Element
	ClassDef *ClassDefinition
}

func (Undefined) sealedValue()    {}
func (Null) sealedValue()         {}
func (Bool) sealedValue()         {}
func (Integer) sealedValue()      {}
func (Number) sealedValue()       {}
func (String) sealedValue()       {}
func (*Date) sealedValue()        {}
func (*ByteArray) sealedValue()   {}
func (*XML) sealedValue()         {}
func (*StrictArray) sealedValue() {}
func (*ECMAArray) sealedValue()   {}
func (*Object) sealedValue()      {}
func (*VectorInt) sealedValue()    {}
func (*VectorUInt) sealedValue()   {}
func (*VectorDouble) sealedValue() {}
func (*VectorObject) sealedValue() {}
func (*Dictionary) sealedValue()   {}
func (*Custom) sealedValue()       {}

// Element is a named value: an object field or an ECMA-array associative
// entry.
type Element struct {
	Name  string
	Value Value
}

// Attribute is one bit of a ClassDefinition's attribute set.
type Attribute int

const (
	AttrDynamic Attribute = iota
	AttrExternal
)

// ClassDefinition (trait) describes an object's name, encoding
// attributes, and declared static property names. The zero value is not
// meaningful; use DefaultClassDefinition for the implicit anonymous
// "Object" trait.
type ClassDefinition struct {
	Name             string
	Attributes       map[Attribute]bool
	StaticProperties []string
}

// DefaultClassDefinition returns the trait used when no explicit class
// definition is present: name "Object", no attributes, no properties.
func DefaultClassDefinition() *ClassDefinition {
	return &ClassDefinition{Name: "Object", Attributes: map[Attribute]bool{}}
}

// IsDynamic reports whether the Dynamic attribute is set.
func (c *ClassDefinition) IsDynamic() bool { return c.Attributes[AttrDynamic] }

// IsExternal reports whether the External attribute is set.
func (c *ClassDefinition) IsExternal() bool { return c.Attributes[AttrExternal] }
