package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Wire format decoding errors
var (
	// ErrUnexpectedEOF is returned when the input ends in the middle of a
	// varint, a length-delimited payload, or a fixed-width value.
	ErrUnexpectedEOF = errors.New("unexpected EOF in wire data")

	// ErrVarintOverflow is returned when a varint carries bits beyond the
	// 64-bit range.
	ErrVarintOverflow = errors.New("varint overflow")

	// ErrVarintTooLong is returned when a varint runs past the 10-byte
	// maximum for a 64-bit value without terminating.
	ErrVarintTooLong = errors.New("varint too long")

	// ErrInvalidWireType is returned when a tag's 3-bit wire type code is
	// not one of the four defined values.
	ErrInvalidWireType = errors.New("invalid wire type")

	// ErrWireTypeMismatch is returned when a field occurrence carries a
	// wire type inconsistent with the type being decoded.
	ErrWireTypeMismatch = errors.New("wire type mismatch")

	// ErrInvalidFieldNumber is returned when a tag carries field number
	// zero or one outside the protobuf range.
	ErrInvalidFieldNumber = errors.New("invalid field number")

	// ErrSchemaMismatch is returned when a delimited frame does not hold a
	// decodable message, i.e. the bytes were not produced by a compatible
	// message type.
	ErrSchemaMismatch = errors.New("frame does not contain a compatible message")
)

// FieldError represents a decoding/encoding error with the field-number
// path from the outermost message down to the failing field.
type FieldError struct {
	FieldPath []FieldNumber // e.g., [4, 2, 1] for field 1 of the message in field 2 of the message in field 4
	Err       error         // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	parts := make([]string, len(e.FieldPath))
	for i, n := range e.FieldPath {
		parts[i] = strconv.Itoa(int(n))
	}
	return fmt.Sprintf("error at field %s: %v", strings.Join(parts, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// WrapField wraps an error with the field number it occurred at. Wrapping
// an existing FieldError prepends the number, so errors bubbling out of
// nested messages accumulate the full path.
func WrapField(err error, fieldNumber FieldNumber) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]FieldNumber{fieldNumber}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []FieldNumber{fieldNumber},
		Err:       err,
	}
}
