package errcode

// Code is a stable error identifier for sensor cycle outcomes.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK             Code = "ok"
	Transport      Code = "transport"
	Busy           Code = "busy"
	Checksum       Code = "checksum"
	Recovered      Code = "recovered"
	NotInitialized Code = "not_initialized"
	InvalidConfig  Code = "invalid_config"
	UnknownBus     Code = "unknown_bus"

	Error Code = "error" // generic fallback
)

// Class groups codes by how the polling loop should treat them.
type Class uint8

const (
	ClassNone Class = iota
	// ClassTransport: a bus write/read/write-read failed.
	ClassTransport
	// ClassProtocol: the sensor answered but the frame is unusable (busy, CRC).
	ClassProtocol
	// ClassRecoverable: the read failed and a soft reset was issued.
	ClassRecoverable
	ClassOther
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassTransport:
		return "transport"
	case ClassProtocol:
		return "protocol"
	case ClassRecoverable:
		return "recoverable"
	default:
		return "other"
	}
}

// ClassOf maps a code to its class.
func ClassOf(c Code) Class {
	switch c {
	case OK:
		return ClassNone
	case Transport:
		return ClassTransport
	case Busy, Checksum:
		return ClassProtocol
	case Recovered:
		return ClassRecoverable
	default:
		return ClassOther
	}
}

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.Busy) match a wrapped code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
