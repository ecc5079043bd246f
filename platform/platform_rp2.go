//go:build rp2040 || rp2350

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"thermometer-go/errcode"
	"thermometer-go/services/config"
)

// Open configures the I2C controller and UART named in cfg. Peripherals
// live for the whole program; the returned close func is a no-op.
func Open(cfg config.Config) (Platform, func() error, error) {
	var i2c *machine.I2C
	switch cfg.I2C.ID {
	case "i2c0":
		i2c = machine.I2C0
	case "i2c1":
		i2c = machine.I2C1
	default:
		return Platform{}, nil, &errcode.E{C: errcode.UnknownBus, Op: "open", Msg: cfg.I2C.ID}
	}
	sda := machine.Pin(cfg.I2C.SDA)
	scl := machine.Pin(cfg.I2C.SCL)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	if err := i2c.Configure(machine.I2CConfig{
		SCL:       scl,
		SDA:       sda,
		Frequency: cfg.I2C.Hz,
	}); err != nil {
		return Platform{}, nil, err
	}

	var uart *uartx.UART
	switch cfg.Serial.ID {
	case "uart0":
		uart = uartx.UART0
	case "uart1":
		uart = uartx.UART1
	default:
		return Platform{}, nil, &errcode.E{C: errcode.UnknownBus, Op: "open", Msg: cfg.Serial.ID}
	}
	// Defaults inside uartx apply if zero.
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: cfg.Serial.Baud,
		TX:       machine.Pin(cfg.Serial.TX),
		RX:       machine.Pin(cfg.Serial.RX),
	})

	return Platform{
		Bus:    TxBus{I2C: i2c},
		Delay:  SleepDelay{},
		Serial: uart,
	}, func() error { return nil }, nil
}
