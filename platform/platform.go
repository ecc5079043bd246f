// Package platform bundles the capabilities the sensor core needs: an I2C
// bus, a blocking delay and a serial sink. A Platform is built once at
// startup by Open and handed to the sensor session; nothing here is global.
package platform

import (
	"io"
	"time"

	"tinygo.org/x/drivers"
)

// Bus is the two-wire transport used by the sensor core.
type Bus interface {
	Write(addr uint16, w []byte) error
	Read(addr uint16, r []byte) error
	// WriteRead writes w then reads into r without releasing the bus.
	WriteRead(addr uint16, w, r []byte) error
}

// Delay blocks the caller for d. It cannot fail.
type Delay interface {
	Sleep(d time.Duration)
}

// Platform is the capability bundle moved into a sensor session.
type Platform struct {
	Bus    Bus
	Delay  Delay
	Serial io.Writer
}

// TxBus adapts a tinygo drivers.I2C (TinyGo machine.I2C, periph.io i2c.Bus)
// to Bus. Tx MUST perform a repeated-start read when both w and r are set.
type TxBus struct {
	I2C drivers.I2C
}

var _ Bus = TxBus{}

func (b TxBus) Write(addr uint16, w []byte) error        { return b.I2C.Tx(addr, w, nil) }
func (b TxBus) Read(addr uint16, r []byte) error         { return b.I2C.Tx(addr, nil, r) }
func (b TxBus) WriteRead(addr uint16, w, r []byte) error { return b.I2C.Tx(addr, w, r) }

// SleepDelay waits with time.Sleep.
type SleepDelay struct{}

func (SleepDelay) Sleep(d time.Duration) { time.Sleep(d) }
