package protomsg

import (
	"github.com/anirudhraja/protomsg/wire"
)

// ===== WIRE-LEVEL API =====

// Marshaler is implemented by generated messages and by Message itself.
// MarshalWire appends the message's bare wire encoding to e: each typed
// field in ascending field-number order through the codec primitives,
// then the embedded Message's still-unknown fields.
type Marshaler interface {
	MarshalWire(e *wire.Encoder) error
}

// Unmarshaler is implemented by generated messages and by Message
// itself. UnmarshalWire decodes data into the message with merge
// semantics: singular scalars take the last value, embedded messages
// merge recursively, repeated fields append.
type Unmarshaler interface {
	UnmarshalWire(data []byte) error
}

// Marshal returns the bare wire encoding of m.
func Marshal(m Marshaler) ([]byte, error) {
	e := wire.NewEncoder()
	if err := m.MarshalWire(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal merge-decodes data into m. Callers wanting a fresh decode
// clear m first; repeated Unmarshal calls merge, per protobuf parse
// semantics.
func Unmarshal(data []byte, m Unmarshaler) error {
	return m.UnmarshalWire(data)
}
