package wire

// Decoder handles low-level protobuf wire format decoding
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new wire format decoder over data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// More reports whether undecoded bytes remain
func (d *Decoder) More() bool {
	return d.pos < len(d.buf)
}

// Pos returns the current offset into the buffer
func (d *Decoder) Pos() int {
	return d.pos
}

// Remaining returns the number of undecoded bytes
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// ReadRaw consumes and returns the next n bytes verbatim. The returned
// slice shares the underlying buffer.
func (d *Decoder) ReadRaw(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, ErrUnexpectedEOF
	}
	data := d.buf[d.pos : d.pos+n]
	d.pos += n
	return data, nil
}

// SkipField skips one field payload based on wire type. The tag is
// assumed already consumed.
func (d *Decoder) SkipField(wireType WireType) error {
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		return vd.SkipVarint()
	case WireFixed64:
		_, err := d.ReadRaw(8)
		return err
	case WireBytes:
		bd := NewBytesDecoder(d)
		return bd.SkipBytes()
	case WireFixed32:
		_, err := d.ReadRaw(4)
		return err
	default:
		return ErrInvalidWireType
	}
}
