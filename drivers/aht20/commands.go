package aht20

// Command is one of the fixed byte sequences of the AHT20 protocol.
type Command uint8

const (
	CheckCalibration Command = iota
	Calibrate
	Measure
	SoftReset
)

var commandBytes = [...][]byte{
	CheckCalibration: {0x71},
	Calibrate:        {0xBE, 0x08, 0x00},
	Measure:          {0xAC, 0x33, 0x00},
	SoftReset:        {0xBA},
}

// Bytes returns a copy of the command's wire bytes, or nil for an unknown
// command. Callers may hand the slice to a bus that keeps it.
func (c Command) Bytes() []byte {
	if int(c) >= len(commandBytes) {
		return nil
	}
	return append([]byte(nil), commandBytes[c]...)
}

func (c Command) String() string {
	switch c {
	case CheckCalibration:
		return "check_calibration"
	case Calibrate:
		return "calibrate"
	case Measure:
		return "measure"
	case SoftReset:
		return "soft_reset"
	default:
		return "unknown"
	}
}
