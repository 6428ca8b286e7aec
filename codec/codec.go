// Package codec provides one field codec per protobuf scalar type. A
// codec converts between wire-format occurrences of a field and typed
// Go values, including packed-repeated handling for the varint and
// fixed-width families. Codecs are stateless process-wide singletons;
// generated code selects one statically per declared field.
package codec

import (
	"fmt"

	"github.com/anirudhraja/protomsg/wire"
)

// Codec converts field number + typed value to wire bytes and back for
// one protobuf scalar type.
type Codec[T any] struct {
	name     string
	wireType wire.WireType // natural unpacked wire type
	packable bool
	encode   func(*wire.Encoder, T)
	decode   func(*wire.Decoder) (T, error)
}

// Name returns the protobuf scalar type name, e.g. "uint32".
func (c *Codec[T]) Name() string {
	return c.name
}

// WireType returns the type's natural unpacked wire type.
func (c *Codec[T]) WireType() wire.WireType {
	return c.wireType
}

// Packable reports whether repeated values of this type may be packed
// into a single length-delimited payload.
func (c *Codec[T]) Packable() bool {
	return c.packable
}

// DefaultValue returns the protobuf zero value for the type.
func (c *Codec[T]) DefaultValue() T {
	var zero T
	return zero
}

// EncodeField writes the field's tag followed by the wire-type
// appropriate encoding of value.
func (c *Codec[T]) EncodeField(e *wire.Encoder, fieldNumber wire.FieldNumber, value T) error {
	if err := e.EncodeTag(fieldNumber, c.wireType); err != nil {
		return err
	}
	c.encode(e, value)
	return nil
}

// EncodeRepeatedField writes values as one packed length-delimited run:
// a single tag, a varint byte length, then the concatenated unprefixed
// encodings. Non-packable types (string, bytes) fall back to one
// tag+payload pair per element. Encoding an empty slice writes nothing.
func (c *Codec[T]) EncodeRepeatedField(e *wire.Encoder, fieldNumber wire.FieldNumber, values []T) error {
	if len(values) == 0 {
		return nil
	}

	if !c.packable {
		for _, v := range values {
			if err := c.EncodeField(e, fieldNumber, v); err != nil {
				return err
			}
		}
		return nil
	}

	// Temporary encoder scoped to this call to learn the packed length.
	packed := wire.NewEncoder()
	for _, v := range values {
		c.encode(packed, v)
	}

	if err := e.EncodeTag(fieldNumber, wire.WireBytes); err != nil {
		return err
	}
	e.EncodeBytes(packed.Bytes())
	return nil
}

// DecodeField decodes a singular field from its raw occurrences using
// the last-singular-value-wins rule: an empty list yields the default
// value, otherwise every occurrence is decoded and the last one's value
// returned.
func (c *Codec[T]) DecodeField(raw []wire.EncodedField) (T, error) {
	value := c.DefaultValue()
	for _, f := range raw {
		v, err := c.decodeOccurrence(f)
		if err != nil {
			return c.DefaultValue(), err
		}
		value = v
	}
	return value, nil
}

// DecodeRepeatedField decodes every occurrence of a repeated field into
// a slice, in wire order. Packed (length-delimited) and unpacked
// occurrences may be mixed in the same input; both decode identically,
// which the wire format requires for backward compatibility.
func (c *Codec[T]) DecodeRepeatedField(raw []wire.EncodedField) ([]T, error) {
	var values []T
	for _, f := range raw {
		wt := f.Tag.WireType()
		switch {
		case wt == c.wireType:
			v, err := c.decodeOccurrence(f)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		case c.packable && wt == wire.WireBytes:
			content, err := f.ValueBytes()
			if err != nil {
				return nil, err
			}
			d := wire.NewDecoder(content)
			for d.More() {
				v, err := c.decode(d)
				if err != nil {
					return nil, wire.WrapField(err, f.Tag.FieldNumber())
				}
				values = append(values, v)
			}
		default:
			return nil, c.mismatch(f)
		}
	}
	return values, nil
}

// decodeOccurrence decodes one unpacked occurrence, checking that its
// wire type is the codec's natural form.
func (c *Codec[T]) decodeOccurrence(f wire.EncodedField) (T, error) {
	if f.Tag.WireType() != c.wireType {
		return c.DefaultValue(), c.mismatch(f)
	}

	d := wire.NewDecoder(f.Payload)
	v, err := c.decode(d)
	if err != nil {
		return c.DefaultValue(), wire.WrapField(err, f.Tag.FieldNumber())
	}
	return v, nil
}

func (c *Codec[T]) mismatch(f wire.EncodedField) error {
	return wire.WrapField(
		fmt.Errorf("%s field encoded as %s: %w", c.name, f.Tag.WireType(), wire.ErrWireTypeMismatch),
		f.Tag.FieldNumber())
}
