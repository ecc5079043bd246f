//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"thermometer-go/services/config"
)

// Open brings up the host I2C bus through periph.io and the report sink:
// stdout, or a serial port when cfg.Serial.Port is set. The returned close
// func releases both.
func Open(cfg config.Config) (Platform, func() error, error) {
	if _, err := host.Init(); err != nil {
		return Platform{}, nil, errors.Wrap(err, "periph host init")
	}
	b, err := i2creg.Open(cfg.I2C.ID)
	if err != nil {
		return Platform{}, nil, errors.Wrapf(err, "open i2c bus %q", cfg.I2C.ID)
	}
	// Not every adapter supports speed changes; keep the default then.
	_ = b.SetSpeed(physic.Frequency(cfg.I2C.Hz) * physic.Hertz)

	closers := []io.Closer{b}
	var sink io.Writer = os.Stdout
	if cfg.Serial.Port != "" {
		p, err := serial.OpenPort(&serial.Config{Name: cfg.Serial.Port, Baud: int(cfg.Serial.Baud)})
		if err != nil {
			_ = b.Close()
			return Platform{}, nil, errors.Wrapf(err, "open serial port %s", cfg.Serial.Port)
		}
		sink = p
		closers = append(closers, p)
	}

	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	return Platform{
		Bus:    TxBus{I2C: b},
		Delay:  SleepDelay{},
		Serial: sink,
	}, closeAll, nil
}
