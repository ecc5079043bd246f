package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board name (selected by the entry point)
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

const cfgPico = `{
  "address": 56,
  "i2c": { "id": "i2c0", "sda": 4, "scl": 5, "hz": 100000 },
  "serial": { "id": "uart0", "tx": 0, "rx": 1, "baud": 115200 },
  "interval_ms": 1000,
  "verbose": false
}`

const cfgHost = `{
  "address": 56,
  "i2c": { "id": "" },
  "serial": { "port": "", "baud": 115200 },
  "interval_ms": 1000,
  "verbose": false
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
	"host": []byte(cfgHost),
}
