//go:build rp2040 || rp2350

package main

import (
	"context"
	"time"

	"thermometer-go/drivers/aht20"
	"thermometer-go/platform"
	"thermometer-go/services/config"
	"thermometer-go/services/monitor"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot")

	cfg, err := config.Load("pico")
	if err != nil {
		println("[main] config:", err.Error())
		return
	}

	p, _, err := platform.Open(cfg)
	if err != nil {
		println("[main] platform:", err.Error())
		return
	}

	s := aht20.NewSession(p, aht20.Options{Address: cfg.Address, Verbose: cfg.Verbose})
	m := monitor.New(s, cfg.Interval())
	m.OnResult = func(r monitor.Result) {
		if r.Err != nil {
			println("[monitor]", r.Op, string(r.Code))
		}
	}

	println("[main] polling every", cfg.IntervalMS, "ms")
	m.Run(context.Background())
}
