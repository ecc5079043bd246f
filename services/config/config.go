package config

import (
	"encoding/json"
	"time"

	"thermometer-go/errcode"
	"thermometer-go/x/mathx"
)

const (
	DefaultAddress  = 0x38
	DefaultInterval = 1000 * time.Millisecond

	minInterval = 100 * time.Millisecond
	maxInterval = 60 * time.Second
)

// I2C selects and configures the sensor bus. On the host ID is a periph.io
// bus name ("" picks the first bus); on the MCU it is "i2c0" or "i2c1".
type I2C struct {
	ID  string `json:"id"`
	SDA int    `json:"sda,omitempty"`
	SCL int    `json:"scl,omitempty"`
	Hz  uint32 `json:"hz,omitempty"`
}

// Serial selects the report sink. On the host an empty Port means stdout.
type Serial struct {
	ID   string `json:"id,omitempty"`
	Port string `json:"port,omitempty"`
	TX   int    `json:"tx,omitempty"`
	RX   int    `json:"rx,omitempty"`
	Baud uint32 `json:"baud,omitempty"`
}

// Config is the board-level configuration. Sensor timing is fixed by the
// datasheet and intentionally not configurable.
type Config struct {
	Address    uint16 `json:"address"`
	I2C        I2C    `json:"i2c"`
	Serial     Serial `json:"serial"`
	IntervalMS int    `json:"interval_ms"`
	Verbose    bool   `json:"verbose"`
}

// Interval is the polling cadence.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Load resolves the embedded config for a board.
func Load(board string) (Config, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return Config{}, &errcode.E{C: errcode.InvalidConfig, Op: "load", Msg: "no embedded config for board " + board}
	}
	return Parse(raw, Config{})
}

// Parse decodes raw JSON over base and validates the result. Fields missing
// from raw keep their value from base.
func Parse(raw []byte, base Config) (Config, error) {
	c := base
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, &errcode.E{C: errcode.InvalidConfig, Op: "parse", Err: err}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate fills defaults, rejects addresses outside the 7-bit range and
// clamps the polling interval.
func (c *Config) Validate() error {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	if !mathx.Between(c.Address, 0x08, 0x77) {
		return &errcode.E{C: errcode.InvalidConfig, Op: "validate", Msg: "address out of 7-bit range"}
	}
	if c.IntervalMS <= 0 {
		c.IntervalMS = int(DefaultInterval / time.Millisecond)
	}
	iv := mathx.Clamp(c.Interval(), minInterval, maxInterval)
	c.IntervalMS = int(iv / time.Millisecond)
	if c.I2C.Hz == 0 {
		c.I2C.Hz = 100_000
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = 115200
	}
	return nil
}
