package codec

import "github.com/anirudhraja/protomsg/wire"

// One singleton codec per protobuf scalar type. These carry no state
// beyond their encode/decode strategy and are safe for concurrent use.

// Varint family

// Int32 is the codec for proto "int32" fields.
var Int32 = &Codec[int32]{
	name:     "int32",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v int32) {
		// Negative values sign-extend to 10 bytes, per the format.
		e.EncodeVarint(uint64(int64(v)))
	},
	decode: func(d *wire.Decoder) (int32, error) {
		v, err := d.DecodeVarint()
		return int32(v), err
	},
}

// Int64 is the codec for proto "int64" fields.
var Int64 = &Codec[int64]{
	name:     "int64",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v int64) {
		e.EncodeVarint(uint64(v))
	},
	decode: func(d *wire.Decoder) (int64, error) {
		v, err := d.DecodeVarint()
		return int64(v), err
	},
}

// Uint32 is the codec for proto "uint32" fields.
var Uint32 = &Codec[uint32]{
	name:     "uint32",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v uint32) {
		e.EncodeVarint(uint64(v))
	},
	decode: func(d *wire.Decoder) (uint32, error) {
		v, err := d.DecodeVarint()
		return uint32(v), err
	},
}

// Uint64 is the codec for proto "uint64" fields.
var Uint64 = &Codec[uint64]{
	name:     "uint64",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v uint64) {
		e.EncodeVarint(v)
	},
	decode: func(d *wire.Decoder) (uint64, error) {
		return d.DecodeVarint()
	},
}

// Sint32 is the codec for proto "sint32" fields (zigzag encoded).
var Sint32 = &Codec[int32]{
	name:     "sint32",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v int32) {
		e.EncodeVarint(wire.EncodeZigZag32(v))
	},
	decode: func(d *wire.Decoder) (int32, error) {
		v, err := d.DecodeVarint()
		return wire.DecodeZigZag32(v), err
	},
}

// Sint64 is the codec for proto "sint64" fields (zigzag encoded).
var Sint64 = &Codec[int64]{
	name:     "sint64",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v int64) {
		e.EncodeVarint(wire.EncodeZigZag64(v))
	},
	decode: func(d *wire.Decoder) (int64, error) {
		v, err := d.DecodeVarint()
		return wire.DecodeZigZag64(v), err
	},
}

// Bool is the codec for proto "bool" fields.
var Bool = &Codec[bool]{
	name:     "bool",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v bool) {
		ve := wire.NewVarintEncoder(e)
		ve.EncodeBool(v)
	},
	decode: func(d *wire.Decoder) (bool, error) {
		vd := wire.NewVarintDecoder(d)
		return vd.DecodeBool()
	},
}

// Enum is the codec for proto enum fields; values travel as int32
// varints. Unknown numeric values decode as their number, preserving
// open-enum semantics.
var Enum = &Codec[int32]{
	name:     "enum",
	wireType: wire.WireVarint,
	packable: true,
	encode: func(e *wire.Encoder, v int32) {
		e.EncodeVarint(uint64(int64(v)))
	},
	decode: func(d *wire.Decoder) (int32, error) {
		v, err := d.DecodeVarint()
		return int32(v), err
	},
}

// Fixed-width family

// Fixed32 is the codec for proto "fixed32" fields.
var Fixed32 = &Codec[uint32]{
	name:     "fixed32",
	wireType: wire.WireFixed32,
	packable: true,
	encode: func(e *wire.Encoder, v uint32) {
		e.EncodeFixed32(v)
	},
	decode: func(d *wire.Decoder) (uint32, error) {
		return d.DecodeFixed32()
	},
}

// Fixed64 is the codec for proto "fixed64" fields.
var Fixed64 = &Codec[uint64]{
	name:     "fixed64",
	wireType: wire.WireFixed64,
	packable: true,
	encode: func(e *wire.Encoder, v uint64) {
		e.EncodeFixed64(v)
	},
	decode: func(d *wire.Decoder) (uint64, error) {
		return d.DecodeFixed64()
	},
}

// Sfixed32 is the codec for proto "sfixed32" fields.
var Sfixed32 = &Codec[int32]{
	name:     "sfixed32",
	wireType: wire.WireFixed32,
	packable: true,
	encode: func(e *wire.Encoder, v int32) {
		fe := wire.NewFixedEncoder(e)
		fe.EncodeSfixed32(v)
	},
	decode: func(d *wire.Decoder) (int32, error) {
		fd := wire.NewFixedDecoder(d)
		return fd.DecodeSfixed32()
	},
}

// Sfixed64 is the codec for proto "sfixed64" fields.
var Sfixed64 = &Codec[int64]{
	name:     "sfixed64",
	wireType: wire.WireFixed64,
	packable: true,
	encode: func(e *wire.Encoder, v int64) {
		fe := wire.NewFixedEncoder(e)
		fe.EncodeSfixed64(v)
	},
	decode: func(d *wire.Decoder) (int64, error) {
		fd := wire.NewFixedDecoder(d)
		return fd.DecodeSfixed64()
	},
}

// Float is the codec for proto "float" fields.
var Float = &Codec[float32]{
	name:     "float",
	wireType: wire.WireFixed32,
	packable: true,
	encode: func(e *wire.Encoder, v float32) {
		fe := wire.NewFixedEncoder(e)
		fe.EncodeFloat32(v)
	},
	decode: func(d *wire.Decoder) (float32, error) {
		fd := wire.NewFixedDecoder(d)
		return fd.DecodeFloat32()
	},
}

// Double is the codec for proto "double" fields.
var Double = &Codec[float64]{
	name:     "double",
	wireType: wire.WireFixed64,
	packable: true,
	encode: func(e *wire.Encoder, v float64) {
		fe := wire.NewFixedEncoder(e)
		fe.EncodeFloat64(v)
	},
	decode: func(d *wire.Decoder) (float64, error) {
		fd := wire.NewFixedDecoder(d)
		return fd.DecodeFloat64()
	},
}

// Length-delimited family (never packed)

// String is the codec for proto "string" fields.
var String = &Codec[string]{
	name:     "string",
	wireType: wire.WireBytes,
	encode: func(e *wire.Encoder, v string) {
		e.EncodeString(v)
	},
	decode: func(d *wire.Decoder) (string, error) {
		return d.DecodeString()
	},
}

// Bytes is the codec for proto "bytes" fields.
var Bytes = &Codec[[]byte]{
	name:     "bytes",
	wireType: wire.WireBytes,
	encode: func(e *wire.Encoder, v []byte) {
		e.EncodeBytes(v)
	},
	decode: func(d *wire.Decoder) ([]byte, error) {
		return d.DecodeBytes()
	},
}
