package conv

import (
	"math"

	"thermometer-go/x/mathx"
)

// Fixed2Len is the widest output of Fixed2: sign, two digits, '.', two digits.
const Fixed2Len = 6

// Fixed2 writes v as [-]DD.DD into buf and returns the used prefix.
// The value is rounded to hundredths; magnitudes above 99.99 saturate
// to 99.99 and NaN formats as 00.00. buf must hold Fixed2Len bytes.
func Fixed2(buf []byte, v float32) []byte {
	if len(buf) < Fixed2Len {
		return buf[:0]
	}
	a := math.Abs(float64(v))
	if math.IsNaN(a) {
		a = 0
	}
	scaled := uint32(mathx.Clamp(math.Round(a*100), 0, 9999))

	i := 0
	if v < 0 && scaled != 0 {
		buf[i] = '-'
		i++
	}
	buf[i] = byte('0' + scaled/1000%10)
	buf[i+1] = byte('0' + scaled/100%10)
	buf[i+2] = '.'
	buf[i+3] = byte('0' + scaled/10%10)
	buf[i+4] = byte('0' + scaled%10)
	return buf[:i+5]
}
