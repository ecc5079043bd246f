package conv

import (
	"math"
	"testing"
)

func TestByteHex(t *testing.T) {
	var buf [2]byte
	for _, c := range []struct {
		in   byte
		want string
	}{
		{0x00, "00"},
		{0x08, "08"},
		{0x1C, "1C"},
		{0xAB, "AB"},
		{0xFF, "FF"},
	} {
		if got := string(ByteHex(buf[:], c.in)); got != c.want {
			t.Fatalf("ByteHex(%#x) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := ByteHex(buf[:1], 0x12); len(got) != 0 {
		t.Fatalf("short buffer: got %q, want empty", got)
	}
}

func TestHexBytes(t *testing.T) {
	got := string(HexBytes(nil, []byte{0x1C, 0x80, 0x00}, ' '))
	if got != "1C 80 00" {
		t.Fatalf("HexBytes = %q", got)
	}
	if got := string(HexBytes([]byte("x"), []byte{0x0A, 0xB0}, 0)); got != "x0AB0" {
		t.Fatalf("HexBytes no sep = %q", got)
	}
}

func TestFixed2(t *testing.T) {
	var buf [Fixed2Len]byte
	for _, c := range []struct {
		in   float32
		want string
	}{
		{0, "00.00"},
		{8, "08.00"},
		{12.13, "12.13"},
		{50, "50.00"},
		{23.456, "23.46"},
		{99.994, "99.99"},
		{-5.25, "-05.25"},
		{-0.001, "00.00"},
		{122, "99.99"},
		{-150, "-99.99"},
		{float32(math.Inf(1)), "99.99"},
		{float32(math.NaN()), "00.00"},
	} {
		if got := string(Fixed2(buf[:], c.in)); got != c.want {
			t.Fatalf("Fixed2(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := Fixed2(buf[:5], 1); len(got) != 0 {
		t.Fatalf("short buffer: got %q, want empty", got)
	}
}
