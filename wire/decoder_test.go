package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecoder_ReadRaw(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x04})

	got, err := d.ReadRaw(3)
	if err != nil {
		t.Fatalf("ReadRaw(3) error = %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadRaw(3) = %x, want 010203", got)
	}
	if d.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", d.Pos())
	}

	if _, err := d.ReadRaw(2); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadRaw past end error = %v, want ErrUnexpectedEOF", err)
	}
	if _, err := d.ReadRaw(-1); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadRaw(-1) error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecoder_SkipField(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wireType WireType
		wantPos  int
		wantErr  error
	}{
		{"varint", []byte{0xAC, 0x02, 0xFF}, WireVarint, 2, nil},
		{"fixed32", []byte{1, 2, 3, 4, 5}, WireFixed32, 4, nil},
		{"fixed64", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, WireFixed64, 8, nil},
		{"bytes", []byte{0x02, 0xAA, 0xBB, 0xCC}, WireBytes, 3, nil},
		{"fixed32 truncated", []byte{1, 2}, WireFixed32, 0, ErrUnexpectedEOF},
		{"fixed64 truncated", []byte{1, 2, 3}, WireFixed64, 0, ErrUnexpectedEOF},
		{"invalid wire type", []byte{1}, WireType(3), 0, ErrInvalidWireType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(tt.input)
			err := d.SkipField(tt.wireType)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SkipField(%v) error = %v, want %v", tt.wireType, err, tt.wantErr)
			}
			if err == nil && d.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", d.Pos(), tt.wantPos)
			}
		})
	}
}
