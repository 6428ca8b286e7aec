package wire

import "fmt"

// EncodeTag writes the varint encoding of (fieldNumber << 3 | wireType).
func (e *Encoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) error {
	if !fieldNumber.IsValid() {
		return fmt.Errorf("field number %d: %w", fieldNumber, ErrInvalidFieldNumber)
	}
	if !wireType.IsValid() {
		return fmt.Errorf("wire type %d: %w", int32(wireType), ErrInvalidWireType)
	}
	e.EncodeVarint(uint64(MakeTag(fieldNumber, wireType)))
	return nil
}

// DecodeTag decodes one tag varint and unpacks it. Tags carrying an
// undefined wire type or a field number outside the protobuf range are
// decode errors, never tolerated.
func (d *Decoder) DecodeTag() (FieldNumber, WireType, error) {
	v, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode tag: %w", err)
	}

	fieldNumber, wireType := ParseTag(Tag(v))
	if !wireType.IsValid() {
		return 0, 0, fmt.Errorf("field %d carries wire type %d: %w",
			fieldNumber, int32(wireType), ErrInvalidWireType)
	}
	if !fieldNumber.IsValid() {
		return 0, 0, fmt.Errorf("field number %d: %w", fieldNumber, ErrInvalidFieldNumber)
	}

	return fieldNumber, wireType, nil
}

// TagSize returns the number of bytes the tag for fieldNumber occupies
func TagSize(fieldNumber FieldNumber) int {
	return VarintSize(uint64(fieldNumber) << 3)
}
