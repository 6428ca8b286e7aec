package protomsg

import (
	"fmt"
	"io"
	"math"

	"github.com/anirudhraja/protomsg/wire"
)

// Delimited framing: a varint byte-length prefix followed by the bare
// message encoding. Bare Encode output has no terminator, so this is
// what lets cooperating endpoints put several messages on one
// continuous stream.

// EncodeDelimited appends the length-prefixed encoding of m to e.
func (m *Message) EncodeDelimited(e *wire.Encoder) error {
	body := wire.NewEncoder()
	if err := m.EncodeTo(body); err != nil {
		return err
	}
	e.EncodeBytes(body.Bytes())
	return nil
}

// DecodeDelimited reads one length-prefixed frame from d and decodes it
// into m, clearing m first. The decoder is left positioned at the first
// byte after the frame. A frame whose content does not decode as a
// message reports a schema mismatch.
func (m *Message) DecodeDelimited(d *wire.Decoder) error {
	content, err := d.DecodeBytes()
	if err != nil {
		return fmt.Errorf("failed to decode delimited frame: %w", err)
	}
	if err := m.Decode(content); err != nil {
		return fmt.Errorf("%w: %w", wire.ErrSchemaMismatch, err)
	}
	return nil
}

// WriteDelimited writes one length-prefixed frame holding m's encoding
// to w.
func WriteDelimited(w io.Writer, m Marshaler) error {
	e := wire.NewEncoder()
	if err := m.MarshalWire(e); err != nil {
		return err
	}

	frame := wire.NewEncoder()
	frame.EncodeBytes(e.Bytes())

	_, err := w.Write(frame.Bytes())
	return err
}

// ReadDelimited reads one length-prefixed frame from r and
// merge-decodes it into m. A clean end of stream before the first
// length byte returns io.EOF; a stream ending mid-frame reports
// truncation.
func ReadDelimited(r io.Reader, m Unmarshaler) error {
	length, err := readVarint(r)
	if err != nil {
		return err
	}

	// The prefix is untrusted: buffer growth is driven by bytes actually
	// read, never by the announced length, so a corrupt prefix cannot
	// force a huge allocation or an out-of-range make.
	if length > math.MaxInt64 {
		return fmt.Errorf("frame length %d too large: %w", length, wire.ErrUnexpectedEOF)
	}
	content, err := io.ReadAll(io.LimitReader(r, int64(length)))
	if err != nil {
		return err
	}
	if uint64(len(content)) < length {
		return fmt.Errorf("frame truncated: need %d bytes, have %d: %w",
			length, len(content), wire.ErrUnexpectedEOF)
	}

	if err := m.UnmarshalWire(content); err != nil {
		return fmt.Errorf("%w: %w", wire.ErrSchemaMismatch, err)
	}
	return nil
}

// readVarint reads a bounded varint from r one byte at a time, so no
// bytes past the frame length are consumed. io.EOF before the first
// byte means a clean end of stream; after it, truncation.
func readVarint(r io.Reader) (uint64, error) {
	var buf [1]byte
	var result uint64
	var shift uint

	for i := 0; i < 10; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF && i > 0 {
				return 0, wire.ErrUnexpectedEOF
			}
			return 0, err
		}

		b := buf[0]
		if i == 9 && b&0x7F > 1 {
			return 0, wire.ErrVarintOverflow
		}

		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}

	return 0, wire.ErrVarintTooLong
}
