package wire

import "fmt"

// EncodedField is one wire-format occurrence of a field exactly as read,
// before any type interpretation: the tag plus the raw payload bytes.
// For length-delimited fields the payload keeps its length prefix, so
// the stored bytes can be re-parsed or re-emitted without recomputation.
// Encoding an EncodedField reproduces the original input bytes exactly.
type EncodedField struct {
	Tag     Tag
	Payload []byte
}

// DecodeEncodedField reads one field occurrence: the tag, then a payload
// sized according to the tag's wire type.
func DecodeEncodedField(d *Decoder) (EncodedField, error) {
	fieldNumber, wireType, err := d.DecodeTag()
	if err != nil {
		return EncodedField{}, err
	}

	start := d.pos
	if err := d.SkipField(wireType); err != nil {
		return EncodedField{}, WrapField(err, fieldNumber)
	}

	payload := make([]byte, d.pos-start)
	copy(payload, d.buf[start:d.pos])

	return EncodedField{
		Tag:     MakeTag(fieldNumber, wireType),
		Payload: payload,
	}, nil
}

// EncodeTo writes the stored tag then the stored payload verbatim.
func (f EncodedField) EncodeTo(e *Encoder) {
	e.EncodeVarint(uint64(f.Tag))
	e.buf = append(e.buf, f.Payload...)
}

// ValueBytes returns the payload with any framing removed: for
// length-delimited fields the length prefix is stripped and the content
// returned, for every other wire type the payload is returned as is.
func (f EncodedField) ValueBytes() ([]byte, error) {
	if f.Tag.WireType() != WireBytes {
		return f.Payload, nil
	}

	d := NewDecoder(f.Payload)
	content, err := NewBytesDecoder(d).DecodeRawBytes()
	if err != nil {
		return nil, fmt.Errorf("field %d: %w", f.Tag.FieldNumber(), err)
	}
	return content, nil
}

// Clone returns a deep copy that shares no bytes with f.
func (f EncodedField) Clone() EncodedField {
	payload := make([]byte, len(f.Payload))
	copy(payload, f.Payload)
	return EncodedField{Tag: f.Tag, Payload: payload}
}

// Size returns the number of bytes EncodeTo will write.
func (f EncodedField) Size() int {
	return VarintSize(uint64(f.Tag)) + len(f.Payload)
}
