package wire

import "fmt"

// BytesDecoder handles length-delimited bytes decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder handles length-delimited bytes encoding operations
type BytesEncoder struct {
	encoder *Encoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// NewBytesEncoder creates a new bytes encoder
func NewBytesEncoder(e *Encoder) *BytesEncoder {
	return &BytesEncoder{encoder: e}
}

// DECODER METHODS

// DecodeBytes decodes a length-delimited byte array
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeVarint()
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytes length: %w", err)
	}

	d := bd.decoder
	if length > uint64(len(d.buf)-d.pos) {
		return nil, fmt.Errorf("bytes truncated: need %d bytes, have %d: %w",
			length, len(d.buf)-d.pos, ErrUnexpectedEOF)
	}

	// Copy the data to avoid sharing the underlying buffer
	data := make([]byte, length)
	copy(data, d.buf[d.pos:d.pos+int(length)])
	d.pos += int(length)

	return data, nil
}

// DecodeString decodes a length-delimited string
func (bd *BytesDecoder) DecodeString() (string, error) {
	data, err := bd.DecodeBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeRawBytes decodes bytes without copying (shares buffer)
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, error) {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeVarint()
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytes length: %w", err)
	}

	d := bd.decoder
	if length > uint64(len(d.buf)-d.pos) {
		return nil, fmt.Errorf("bytes truncated: need %d bytes, have %d: %w",
			length, len(d.buf)-d.pos, ErrUnexpectedEOF)
	}

	data := d.buf[d.pos : d.pos+int(length)]
	d.pos += int(length)

	return data, nil
}

// SkipBytes skips over a length-delimited byte array
func (bd *BytesDecoder) SkipBytes() error {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeVarint()
	if err != nil {
		return err
	}

	d := bd.decoder
	if length > uint64(len(d.buf)-d.pos) {
		return fmt.Errorf("cannot skip %d bytes: only %d available: %w",
			length, len(d.buf)-d.pos, ErrUnexpectedEOF)
	}

	d.pos += int(length)
	return nil
}

// ENCODER METHODS

// EncodeBytes encodes a byte array as length-delimited
func (be *BytesEncoder) EncodeBytes(data []byte) {
	ve := NewVarintEncoder(be.encoder)
	ve.EncodeVarint(uint64(len(data)))
	be.encoder.buf = append(be.encoder.buf, data...)
}

// EncodeString encodes a string as length-delimited bytes
func (be *BytesEncoder) EncodeString(s string) {
	ve := NewVarintEncoder(be.encoder)
	ve.EncodeVarint(uint64(len(s)))
	be.encoder.buf = append(be.encoder.buf, s...)
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the size needed to encode the given string
func StringSize(s string) int {
	return VarintSize(uint64(len(s))) + len(s)
}

// Convenience methods for direct access

// DecodeBytes - convenience method for main decoder
func (d *Decoder) DecodeBytes() ([]byte, error) {
	bd := NewBytesDecoder(d)
	return bd.DecodeBytes()
}

// DecodeString - convenience method for main decoder
func (d *Decoder) DecodeString() (string, error) {
	bd := NewBytesDecoder(d)
	return bd.DecodeString()
}

// EncodeBytes - convenience method for main encoder
func (e *Encoder) EncodeBytes(data []byte) {
	be := NewBytesEncoder(e)
	be.EncodeBytes(data)
}

// EncodeString - convenience method for main encoder
func (e *Encoder) EncodeString(s string) {
	be := NewBytesEncoder(e)
	be.EncodeString(s)
}
