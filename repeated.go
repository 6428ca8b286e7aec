package protomsg

import (
	"errors"
	"fmt"

	"github.com/anirudhraja/protomsg/codec"
	"github.com/anirudhraja/protomsg/wire"
)

// errNilList is returned by the repeated decode primitives when given a
// nil destination; the encode primitives treat a nil list as empty.
var errNilList = errors.New("nil destination list")

// List is an ordered, index-accessible sequence of repeated field
// values, scalar or message. Insertion order is wire/decode order. A
// list owns the message elements it holds.
type List[T any] struct {
	values []T
}

// NewList creates a list holding values
func NewList[T any](values ...T) *List[T] {
	return &List[T]{values: values}
}

// Len returns the number of elements
func (l *List[T]) Len() int {
	return len(l.values)
}

// Get returns the element at index i
func (l *List[T]) Get(i int) T {
	return l.values[i]
}

// Set replaces the element at index i
func (l *List[T]) Set(i int, v T) {
	l.values[i] = v
}

// Append adds elements at the end
func (l *List[T]) Append(values ...T) {
	l.values = append(l.values, values...)
}

// Values returns the backing slice; mutating it mutates the list
func (l *List[T]) Values() []T {
	return l.values
}

// Clear removes all elements
func (l *List[T]) Clear() {
	l.values = nil
}

// EncodeRepeatedScalar writes list under fieldNumber using c: packable
// types as one packed length-delimited run, string/bytes as one
// tag+payload pair per element. An empty list writes nothing.
func EncodeRepeatedScalar[T any](e *wire.Encoder, fieldNumber wire.FieldNumber, c *codec.Codec[T], list *List[T]) error {
	if list == nil {
		return nil
	}
	return c.EncodeRepeatedField(e, fieldNumber, list.values)
}

// DecodeRepeatedScalar claims fieldNumber from m's store and rebuilds
// dst from the occurrences: dst is cleared first, since repeated fields
// have no merge-with-previous-typed-state rule. Packed and unpacked
// occurrences may be mixed. dst must be non-nil.
func DecodeRepeatedScalar[T any](m *Message, fieldNumber wire.FieldNumber, c *codec.Codec[T], dst *List[T]) error {
	if dst == nil {
		return errNilList
	}
	dst.Clear()
	values, err := c.DecodeRepeatedField(m.take(fieldNumber))
	if err != nil {
		return err
	}
	dst.values = values
	return nil
}

// EncodeRepeatedMessage writes one length-delimited occurrence per
// element. Messages are never packed.
func EncodeRepeatedMessage[M Marshaler](e *wire.Encoder, fieldNumber wire.FieldNumber, list *List[M]) error {
	if list == nil {
		return nil
	}
	for _, el := range list.values {
		if err := EncodeMessageField(e, fieldNumber, el); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRepeatedMessage claims fieldNumber and rebuilds dst: for every
// occurrence a fresh element is constructed with newElement, the length
// prefix stripped, the content decoded into it, and the element
// appended. Ownership of constructed elements passes to dst, which
// must be non-nil. An occurrence with a non-length-delimited wire type
// is a decode error.
func DecodeRepeatedMessage[M Unmarshaler](m *Message, fieldNumber wire.FieldNumber, newElement func() M, dst *List[M]) error {
	if dst == nil {
		return errNilList
	}
	dst.Clear()
	for _, f := range m.take(fieldNumber) {
		if f.Tag.WireType() != wire.WireBytes {
			return wire.WrapField(
				fmt.Errorf("message field encoded as %s: %w", f.Tag.WireType(), wire.ErrWireTypeMismatch),
				fieldNumber)
		}
		content, err := f.ValueBytes()
		if err != nil {
			return err
		}
		el := newElement()
		if err := el.UnmarshalWire(content); err != nil {
			return wire.WrapField(err, fieldNumber)
		}
		dst.Append(el)
	}
	return nil
}
