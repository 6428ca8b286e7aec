// Package protomsg implements the protocol-buffers binary wire format:
// encoding and decoding of messages, scalar fields, and repeated
// fields, with unknown-field preservation and protobuf merge semantics.
//
// The package is the runtime half of a generated-code pair. A generated
// message type embeds Message by composition, stores its declared
// fields as plain typed Go fields, and implements Marshaler and
// Unmarshaler by calling the fixed codec primitives in field-number
// order; everything the generated type does not recognize stays in the
// embedded Message as raw bytes and round-trips losslessly.
//
// Subpackage wire holds the low-level codec layer (varints, tags,
// fixed-width values, length-delimited bytes, raw field records);
// subpackage codec holds one field codec per protobuf scalar type.
//
// There is no schema parsing, no descriptor/reflection support, and no
// text or JSON encoding here.
package protomsg
