// Package flex supplies ExternalDecoderFunc implementations for the two
// best-known Adobe Flex externalizable classes, demonstrating the
// external-decoder registry end to end. Neither is auto-registered;
// callers opt in explicitly:
//
//	dec := amf3.NewDecoder()
//	dec.RegisterExternalDecoder("flex.messaging.io.ArrayCollection", flex.ArrayCollectionDecoder)
//	dec.RegisterExternalDecoder("flex.messaging.io.ObjectProxy", flex.ObjectProxyDecoder)
package flex

import "github.com/ssungk/amf3dec/pkg/amf3"

// ArrayCollectionDecoder decodes flex.messaging.io.ArrayCollection,
// whose externalized body is exactly one nested AMF3 element,
// conventionally a StrictArray or ECMAArray, per the wire convention
// used by Adobe's BlazeDS/Flex remoting gateway.
func ArrayCollectionDecoder(cur *amf3.Cursor, dec *amf3.Decoder) ([]amf3.Element, error) {
	v, err := dec.ParseSingleElement(cur)
	if err != nil {
		return nil, err
	}
	return []amf3.Element{{Name: "items", Value: v}}, nil
}

// ObjectProxyDecoder decodes flex.messaging.io.ObjectProxy, whose
// externalized body is exactly one nested Object element carrying the
// proxied bean's dynamic properties.
func ObjectProxyDecoder(cur *amf3.Cursor, dec *amf3.Decoder) ([]amf3.Element, error) {
	v, err := dec.ParseSingleElement(cur)
	if err != nil {
		return nil, err
	}
	return []amf3.Element{{Name: "object", Value: v}}, nil
}
