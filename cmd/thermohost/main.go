//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"thermometer-go/drivers/aht20"
	"thermometer-go/errcode"
	"thermometer-go/platform"
	"thermometer-go/services/config"
	"thermometer-go/services/monitor"
)

// CLI args
var (
	board      = flag.String("board", "host", "embedded config to start from")
	configFile = flag.String("config", "", "optional JSON file overriding the embedded config")
	i2cBus     = flag.String("i2c", "", "periph.io I2C bus name (overrides config)")
	serialPort = flag.String("serial", "", "serial device for reports (overrides config; default stdout)")
	verbose    = flag.Bool("verbose", false, "print calibration status and raw frames")
	debug      = flag.Bool("debug", false, "log every cycle")
)

func init() {
	formatter := &log.TextFormatter{
		FullTimestamp: true,
	}
	log.SetFormatter(formatter)
	// Reports may go to stdout; keep logs apart.
	log.SetOutput(os.Stderr)
}

// logSink logs serial write failures and passes them on; the session
// ignores them.
type logSink struct{ w io.Writer }

func (s logSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		log.WithError(err).Debug("serial write failed")
	}
	return n, err
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*board)
	if err != nil {
		return cfg, err
	}
	if *configFile != "" {
		raw, err := os.ReadFile(*configFile)
		if err != nil {
			return cfg, err
		}
		if cfg, err = config.Parse(raw, cfg); err != nil {
			return cfg, err
		}
	}
	if *i2cBus != "" {
		cfg.I2C.ID = *i2cBus
	}
	if *serialPort != "" {
		cfg.Serial.Port = *serialPort
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	p, closePlatform, err := platform.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("platform")
	}
	defer func() {
		if err := closePlatform(); err != nil {
			log.WithError(err).Warn("platform close")
		}
	}()
	p.Serial = logSink{w: p.Serial}

	s := aht20.NewSession(p, aht20.Options{Address: cfg.Address, Verbose: cfg.Verbose})
	m := monitor.New(s, cfg.Interval())
	m.OnResult = func(r monitor.Result) {
		entry := log.WithFields(log.Fields{
			"op":    r.Op,
			"code":  r.Code,
			"class": errcode.ClassOf(r.Code).String(),
		})
		if r.Err != nil {
			entry.WithError(r.Err).Warn("sensor cycle failed")
			return
		}
		entry.WithFields(log.Fields{
			"humidity":   r.Reading.Humidity,
			"celsius":    r.Reading.Celsius,
			"fahrenheit": r.Reading.Fahrenheit,
		}).Debug("sensor cycle ok")
	}

	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
	}()

	log.WithFields(log.Fields{
		"address":  cfg.Address,
		"i2c":      cfg.I2C.ID,
		"serial":   cfg.Serial.Port,
		"interval": cfg.Interval(),
	}).Info("polling AHT20")
	m.Run(ctx)
	log.Info("stopped")
}
