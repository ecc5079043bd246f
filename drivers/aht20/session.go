package aht20

import (
	"io"

	"thermometer-go/errcode"
	"thermometer-go/platform"
	"thermometer-go/x/conv"
)

// State is the session's position in the calibrate/measure cycle.
type State uint8

const (
	Uninitialized State = iota
	Calibrating
	Ready
	Measuring
	Recovering
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Calibrating:
		return "calibrating"
	case Ready:
		return "ready"
	case Measuring:
		return "measuring"
	case Recovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Options controls non-hardware behaviour. All fields are optional.
type Options struct {
	// Address defaults to 0x38 if zero.
	Address uint16
	// Verbose adds the calibration status byte and each raw frame to the
	// serial output.
	Verbose bool
}

// Session owns one sensor and its last valid reading. It is not safe for
// concurrent use; each call runs to completion before returning.
type Session struct {
	bus    platform.Bus
	delay  platform.Delay
	serial io.Writer

	addr    uint16
	verbose bool

	state   State
	raw     [FrameLen]byte
	reading Reading

	line [64]byte // reuse buffer for serial output
}

// NewSession takes ownership of the platform capabilities. It does not touch
// the device; call Initialize first.
func NewSession(p platform.Platform, opts Options) *Session {
	if opts.Address == 0 {
		opts.Address = Address
	}
	if p.Serial == nil {
		p.Serial = io.Discard
	}
	return &Session{
		bus:     p.Bus,
		delay:   p.Delay,
		serial:  p.Serial,
		addr:    opts.Address,
		verbose: opts.Verbose,
	}
}

func (s *Session) Address() uint16 { return s.addr }
func (s *Session) State() State    { return s.state }

// Reading returns the last valid reading.
func (s *Session) Reading() Reading { return s.reading }

// Raw returns the last frame received from the sensor, valid or not.
func (s *Session) Raw() [FrameLen]byte { return s.raw }

// Initialize waits for power-on, checks the calibration bit and calibrates
// the sensor when needed. On a bus failure the session stays Uninitialized
// and Initialize may be retried.
func (s *Session) Initialize() error {
	s.delay.Sleep(PowerOnDelay)

	var st [1]byte
	if err := s.bus.WriteRead(s.addr, CheckCalibration.Bytes(), st[:]); err != nil {
		s.state = Uninitialized
		s.diag("calibration check failed")
		return &errcode.E{C: errcode.Transport, Op: "initialize", Msg: "calibration check failed", Err: err}
	}
	if s.verbose {
		var hx [2]byte
		b := append(s.line[:0], "Calibration Status: 0x"...)
		b = append(b, conv.ByteHex(hx[:], st[0])...)
		s.emit(append(b, "\r\n"...))
	}
	if st[0]&statusCalibrated == 0 {
		s.state = Calibrating
		s.calibrate()
	}
	s.state = Ready
	return nil
}

// calibrate is fire-and-forget: there is no readback, and the device
// self-calibrates on the next power cycle if the command was lost.
func (s *Session) calibrate() {
	if err := s.bus.Write(s.addr, Calibrate.Bytes()); err != nil {
		s.diag("calibration command failed")
	} else {
		s.diag("calibration command sent")
	}
	s.delay.Sleep(CalibrateDelay)
}

// Measure runs one trigger/wait/read cycle. The stored reading is replaced
// only when the frame is not busy and its CRC matches; otherwise the
// previous reading is kept and the returned error carries the outcome:
// errcode.Transport, errcode.Busy, errcode.Checksum or errcode.Recovered.
func (s *Session) Measure() error {
	if s.state == Uninitialized {
		return &errcode.E{C: errcode.NotInitialized, Op: "measure"}
	}
	s.state = Measuring
	defer func() { s.state = Ready }()

	if err := s.bus.Write(s.addr, Measure.Bytes()); err != nil {
		s.diag("measurement request failed")
		return &errcode.E{C: errcode.Transport, Op: "measure", Msg: "measurement request failed", Err: err}
	}
	s.delay.Sleep(ConversionDelay)

	var frame [FrameLen]byte
	if err := s.bus.Read(s.addr, frame[:]); err != nil {
		s.state = Recovering
		s.reset()
		s.diag("read failed, reset issued")
		return &errcode.E{C: errcode.Recovered, Op: "measure", Msg: "read failed, reset issued", Err: err}
	}
	s.raw = frame
	if s.verbose {
		b := append(s.line[:0], "Raw: "...)
		b = conv.HexBytes(b, frame[:], ' ')
		s.emit(append(b, "\r\n"...))
	}

	if frame[0]&statusBusy != 0 {
		s.diag("sensor busy")
		return &errcode.E{C: errcode.Busy, Op: "measure", Msg: "sensor busy"}
	}
	if !ValidFrame(frame) {
		s.diag("CRC check failed")
		return &errcode.E{C: errcode.Checksum, Op: "measure", Msg: "CRC check failed"}
	}
	s.reading = Decode(frame)
	return nil
}

// reset issues exactly one soft reset and waits for it to settle. A failed
// reset write is ignored; the next cycle will surface any lasting fault.
func (s *Session) reset() {
	_ = s.bus.Write(s.addr, SoftReset.Bytes())
	s.delay.Sleep(ResetDelay)
}

// Report writes the current reading as one line:
//
//	Humidity: 45.12, C: 23.40, F: 74.12\r\n
//
// It does not change state; serial errors are ignored.
func (s *Session) Report() {
	r := s.reading
	b := append(s.line[:0], "Humidity: "...)
	b = appendFixed(b, r.Humidity)
	b = append(b, ", C: "...)
	b = appendFixed(b, r.Celsius)
	b = append(b, ", F: "...)
	b = appendFixed(b, r.Fahrenheit)
	s.emit(append(b, "\r\n"...))
}

func appendFixed(b []byte, v float32) []byte {
	var tmp [conv.Fixed2Len]byte
	return append(b, conv.Fixed2(tmp[:], v)...)
}

func (s *Session) diag(msg string) {
	b := append(s.line[:0], "AHT20 "...)
	b = append(b, msg...)
	s.emit(append(b, "\r\n"...))
}

// emit ignores serial errors.
func (s *Session) emit(b []byte) {
	_, _ = s.serial.Write(b)
}
