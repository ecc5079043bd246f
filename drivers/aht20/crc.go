package aht20

import "github.com/sigurn/crc8"

// CRC-8 with polynomial 0x31, init 0xFF, no reflection, no final XOR.
var crcTable = crc8.MakeTable(crc8.Params{
	Poly:   0x31,
	Init:   0xFF,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x00,
	Check:  0xF7,
	Name:   "CRC-8/AHT20",
})

// CRC computes the checksum the sensor appends to a frame's first six bytes.
func CRC(payload [6]byte) uint8 {
	return crc8.Checksum(payload[:], crcTable)
}

// ValidFrame reports whether the frame's last byte matches the CRC of the rest.
func ValidFrame(frame [FrameLen]byte) bool {
	var p [6]byte
	copy(p[:], frame[:6])
	return CRC(p) == frame[6]
}
