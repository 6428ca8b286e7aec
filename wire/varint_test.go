package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestVarint_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
	}{
		{"zero", 0},
		{"one", 1},
		{"single byte max", 127},
		{"two bytes min", 128},
		{"300", 300},
		{"two bytes max", 16383},
		{"three bytes min", 16384},
		{"uint32 max", math.MaxUint32},
		{"high bit boundary", 1 << 63},
		{"uint64 max", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder()
			e.EncodeVarint(tt.value)

			d := NewDecoder(e.Bytes())
			got, err := d.DecodeVarint()
			if err != nil {
				t.Fatalf("DecodeVarint() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("round trip = %d, want %d", got, tt.value)
			}
			if d.More() {
				t.Errorf("decoder has %d leftover bytes", d.Remaining())
			}
		})
	}
}

func TestVarint_ByteCount(t *testing.T) {
	// Encoding of v must use ceil(max(1, bitlen(v))/7) bytes.
	for bits := 0; bits <= 64; bits++ {
		var v uint64
		if bits > 0 {
			v = 1 << (bits - 1)
		}

		want := (bits + 6) / 7
		if want == 0 {
			want = 1
		}

		e := NewEncoder()
		e.EncodeVarint(v)
		if e.Len() != want {
			t.Errorf("EncodeVarint(%#x) wrote %d bytes, want %d", v, e.Len(), want)
		}
		if got := VarintSize(v); got != want {
			t.Errorf("VarintSize(%#x) = %d, want %d", v, got, want)
		}
	}
}

func TestVarint_KnownBytes(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
	}

	for _, tt := range tests {
		e := NewEncoder()
		e.EncodeVarint(tt.value)
		if !bytes.Equal(e.Bytes(), tt.want) {
			t.Errorf("EncodeVarint(%d) = %x, want %x", tt.value, e.Bytes(), tt.want)
		}
	}
}

func TestVarint_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{
			name:    "empty input",
			input:   nil,
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "truncated mid varint",
			input:   []byte{0x80, 0x80},
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "eleven byte run",
			input:   []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
			wantErr: ErrVarintTooLong,
		},
		{
			name:    "tenth byte overflows bit 63",
			input:   []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02},
			wantErr: ErrVarintOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(tt.input)
			_, err := d.DecodeVarint()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeVarint() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestZigZag_RoundTrip(t *testing.T) {
	values32 := []int32{0, -1, 1, -2, 2, math.MinInt32, math.MaxInt32}
	for _, v := range values32 {
		if got := DecodeZigZag32(EncodeZigZag32(v)); got != v {
			t.Errorf("zigzag32 round trip of %d = %d", v, got)
		}
	}

	values64 := []int64{0, -1, 1, -64, 64, math.MinInt64, math.MaxInt64}
	for _, v := range values64 {
		if got := DecodeZigZag64(EncodeZigZag64(v)); got != v {
			t.Errorf("zigzag64 round trip of %d = %d", v, got)
		}
	}
}

func TestZigZag_KnownValues(t *testing.T) {
	// Small magnitudes map to small codes regardless of sign.
	tests := []struct {
		value int32
		want  uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, tt := range tests {
		if got := EncodeZigZag32(tt.value); got != tt.want {
			t.Errorf("EncodeZigZag32(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestVarint_Skip(t *testing.T) {
	e := NewEncoder()
	e.EncodeVarint(300)
	e.EncodeVarint(7)

	d := NewDecoder(e.Bytes())
	vd := NewVarintDecoder(d)
	if err := vd.SkipVarint(); err != nil {
		t.Fatalf("SkipVarint() error = %v", err)
	}

	got, err := d.DecodeVarint()
	if err != nil {
		t.Fatalf("DecodeVarint() error = %v", err)
	}
	if got != 7 {
		t.Errorf("value after skip = %d, want 7", got)
	}
}
