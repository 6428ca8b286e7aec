package protomsg

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/protomsg/codec"
	"github.com/anirudhraja/protomsg/wire"
)

// Message is the unparsed-field store every generated message embeds by
// composition. It maps field numbers to the ordered list of raw
// occurrences decoded from the wire and not yet claimed by a typed
// accessor. Unknown, structurally valid field numbers survive a
// decode/encode round trip byte for byte.
//
// A field number is in the store iff at least one raw occurrence has
// been decoded and not yet consumed. Typed claim primitives
// (DecodeScalar, DecodeMessageField, DecodeRepeatedScalar,
// DecodeRepeatedMessage) remove what they decode: claiming is a
// one-shot consume-on-read operation, not an idempotent getter.
//
// The zero value is an empty message, ready to use. A Message and the
// values decoded out of it are not safe for concurrent mutation.
type Message struct {
	fields map[wire.FieldNumber][]wire.EncodedField
}

// NewMessage creates an empty message
func NewMessage() *Message {
	return &Message{}
}

// Decode clears the store and repopulates it from data, reading raw
// field occurrences until the input is exhausted. Multiplicity and
// order per field number are preserved.
func (m *Message) Decode(data []byte) error {
	m.Clear()
	return m.Merge(data)
}

// Merge decodes data like Decode but appends to the store instead of
// clearing it first, giving protobuf merge semantics for repeated
// decodes of the same message.
func (m *Message) Merge(data []byte) error {
	d := wire.NewDecoder(data)
	for d.More() {
		f, err := wire.DecodeEncodedField(d)
		if err != nil {
			return err
		}
		m.put(f)
	}
	return nil
}

// UnmarshalWire implements Unmarshaler; it is Merge.
func (m *Message) UnmarshalWire(data []byte) error {
	return m.Merge(data)
}

// Encode serializes the still-unclaimed store in ascending field-number
// order, occurrences in decode order within each field. Fields already
// claimed by typed accessors are not re-serialized here; generated code
// encodes its typed fields through the codec primitives and delegates
// to this method for whatever remains unknown.
func (m *Message) Encode() ([]byte, error) {
	e := wire.NewEncoder()
	if err := m.EncodeTo(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeTo appends the encoding produced by Encode to e.
func (m *Message) EncodeTo(e *wire.Encoder) error {
	numbers := make([]wire.FieldNumber, 0, len(m.fields))
	for n := range m.fields {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	for _, n := range numbers {
		for _, f := range m.fields[n] {
			f.EncodeTo(e)
		}
	}
	return nil
}

// MarshalWire implements Marshaler; it is EncodeTo.
func (m *Message) MarshalWire(e *wire.Encoder) error {
	return m.EncodeTo(e)
}

// MergeFrom deep-copies src's still-unclaimed occurrences into m,
// appending to any existing occurrences. Typed fields held by generated
// code are untouched; generated MergeFrom merges those separately and
// delegates here for the unknown remainder.
func (m *Message) MergeFrom(src *Message) {
	for _, occurrences := range src.fields {
		for _, f := range occurrences {
			m.put(f.Clone())
		}
	}
}

// Clear empties the store. Generated code additionally resets its own
// typed fields.
func (m *Message) Clear() {
	m.fields = nil
}

// Has reports whether any unclaimed occurrence of fieldNumber remains.
func (m *Message) Has(fieldNumber wire.FieldNumber) bool {
	_, ok := m.fields[fieldNumber]
	return ok
}

// Len returns the number of distinct field numbers with unclaimed
// occurrences.
func (m *Message) Len() int {
	return len(m.fields)
}

// FieldNumbers returns the field numbers with unclaimed occurrences in
// ascending order.
func (m *Message) FieldNumbers() []wire.FieldNumber {
	numbers := make([]wire.FieldNumber, 0, len(m.fields))
	for n := range m.fields {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}

// put appends one raw occurrence to its field's list.
func (m *Message) put(f wire.EncodedField) {
	if m.fields == nil {
		m.fields = make(map[wire.FieldNumber][]wire.EncodedField)
	}
	n := f.Tag.FieldNumber()
	m.fields[n] = append(m.fields[n], f)
}

// take claims every occurrence of fieldNumber, removing them from the
// store.
func (m *Message) take(fieldNumber wire.FieldNumber) []wire.EncodedField {
	occurrences, ok := m.fields[fieldNumber]
	if !ok {
		return nil
	}
	delete(m.fields, fieldNumber)
	return occurrences
}

// DecodeScalar claims fieldNumber from m's store and decodes it as a
// singular scalar with c, applying the last-singular-value-wins rule.
// If no occurrence is present the type's default value is returned.
// Occurrences are consumed; a second call returns the default.
func DecodeScalar[T any](m *Message, fieldNumber wire.FieldNumber, c *codec.Codec[T]) (T, error) {
	return c.DecodeField(m.take(fieldNumber))
}

// DecodeMessageField claims fieldNumber and merge-decodes every
// occurrence into dst. Multiple occurrences of a singular message field
// merge rather than replace, per protobuf semantics. The returned bool
// reports whether any occurrence was present; when it is false dst is
// untouched and the caller keeps its field unset. An occurrence with a
// wire type other than length-delimited is a decode error.
func DecodeMessageField(m *Message, fieldNumber wire.FieldNumber, dst Unmarshaler) (bool, error) {
	occurrences := m.take(fieldNumber)
	if len(occurrences) == 0 {
		return false, nil
	}

	for _, f := range occurrences {
		if f.Tag.WireType() != wire.WireBytes {
			return true, wire.WrapField(
				fmt.Errorf("message field encoded as %s: %w", f.Tag.WireType(), wire.ErrWireTypeMismatch),
				fieldNumber)
		}
		content, err := f.ValueBytes()
		if err != nil {
			return true, err
		}
		if err := dst.UnmarshalWire(content); err != nil {
			return true, wire.WrapField(err, fieldNumber)
		}
	}
	return true, nil
}

// EncodeMessageField writes one length-delimited occurrence of msg
// under fieldNumber: tag, varint byte length, then the bare encoding.
func EncodeMessageField(e *wire.Encoder, fieldNumber wire.FieldNumber, msg Marshaler) error {
	// The embedded encoding is buffered to learn its length prefix.
	body := wire.NewEncoder()
	if err := msg.MarshalWire(body); err != nil {
		return wire.WrapField(err, fieldNumber)
	}
	if err := e.EncodeTag(fieldNumber, wire.WireBytes); err != nil {
		return err
	}
	e.EncodeBytes(body.Bytes())
	return nil
}
