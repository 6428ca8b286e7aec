package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // fixed64, sfixed64, double
	WireBytes   WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // fixed32, sfixed32, float
)

// IsValid reports whether wt is one of the four wire types used by the
// binary format. Codes 3 and 4 (the deprecated group markers) and 6/7
// are rejected during decode.
func (wt WireType) IsValid() bool {
	switch wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	default:
		return false
	}
}

// String returns a short name for the wire type, for error messages.
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", int32(wt))
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

// MaxFieldNumber is the largest field number the format can carry
// (2^29 - 1; field numbers share a varint with the 3-bit wire type).
const MaxFieldNumber FieldNumber = 1<<29 - 1

// IsValid reports whether n is inside the protobuf field-number range.
func (n FieldNumber) IsValid() bool {
	return n >= 1 && n <= MaxFieldNumber
}

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// FieldNumber returns the field number packed into the tag.
func (t Tag) FieldNumber() FieldNumber {
	return FieldNumber(t >> 3)
}

// WireType returns the wire type packed into the tag.
func (t Tag) WireType() WireType {
	return WireType(t & 0x7)
}
