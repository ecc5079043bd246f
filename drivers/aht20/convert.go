package aht20

// Reading is a decoded measurement in physical units.
type Reading struct {
	Humidity   float32 // %RH, 0..100
	Celsius    float32
	Fahrenheit float32
	// Valid is false until the first CRC-checked decode.
	Valid bool
}

const fullScale = 1048576.0 // 2^20

// RawFields extracts the 20-bit humidity and temperature fields.
func RawFields(frame [FrameLen]byte) (hum, temp uint32) {
	hum = uint32(frame[1])<<12 | uint32(frame[2])<<4 | uint32(frame[3])>>4
	temp = uint32(frame[3]&0x0F)<<16 | uint32(frame[4])<<8 | uint32(frame[5])
	return hum, temp
}

// Decode converts a frame to physical units. It does not check the CRC.
func Decode(frame [FrameLen]byte) Reading {
	hraw, traw := RawFields(frame)
	c := float32(traw)*200.0/fullScale - 50.0
	return Reading{
		Humidity:   float32(hraw) * 100.0 / fullScale,
		Celsius:    c,
		Fahrenheit: c*9.0/5.0 + 32.0,
		Valid:      true,
	}
}
