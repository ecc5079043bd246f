package conv

const hexd = "0123456789ABCDEF"

// ByteHex writes b as 2-digit uppercase hex without 0x, zero-padded.
// buf must hold at least 2 bytes; the used prefix is returned.
func ByteHex(buf []byte, b byte) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	buf[0] = hexd[b>>4]
	buf[1] = hexd[b&0x0F]
	return buf[:2]
}

// HexBytes appends each byte of src as uppercase hex, separated by sep
// when sep is non-zero. Allocation-free when dst has capacity.
func HexBytes(dst []byte, src []byte, sep byte) []byte {
	var tmp [2]byte
	for i, b := range src {
		if i > 0 && sep != 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, ByteHex(tmp[:], b)...)
	}
	return dst
}
