// Package amf3 implements a stateful, single-pass decoder for Action
// Message Format version 3 (AMF3) byte streams.
//
// AMF3 interleaves three reference tables (strings, class definitions,
// and complex objects) with the values they describe. A Decoder owns
// those tables for the lifetime of one decode and is not safe for
// concurrent use; create one Decoder per input.
//
// Cyclic object graphs are supported: the object table reserves a slot
// for a complex value before its body is parsed, so a back-reference
// encountered while parsing that body resolves to the same handle the
// caller eventually receives. See Cursor and the reference-or-value
// helpers in refval.go for the mechanism.
package amf3
