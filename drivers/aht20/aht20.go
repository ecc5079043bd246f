// Package aht20 drives the AHT20 humidity/temperature sensor over I2C.
//
// A Session owns the sensor state and runs one synchronous cycle per call:
//
//	s := aht20.NewSession(p, aht20.Options{})
//	_ = s.Initialize()    // calibration handshake, once at startup
//	for {
//		_ = s.Measure()   // trigger, wait, read, CRC-check, decode
//		s.Report()        // "Humidity: 45.12, C: 23.40, F: 74.12\r\n"
//	}
//
// Every failure leaves the session Ready with the previous valid reading,
// so the caller's polling loop can simply retry on the next cycle.
package aht20

import "time"

// Address is the fixed I2C address of the AHT20.
const Address = 0x38

// FrameLen is the size of a measurement frame: status, five data bytes, CRC.
const FrameLen = 7

// Status bits in byte 0 of the status reply and of each frame.
const (
	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Datasheet timing. Shorter waits risk stale or mid-conversion data.
const (
	PowerOnDelay    = 40 * time.Millisecond
	CalibrateDelay  = 10 * time.Millisecond
	ConversionDelay = 80 * time.Millisecond
	ResetDelay      = 20 * time.Millisecond
)
