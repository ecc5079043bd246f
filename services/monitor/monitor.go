// Package monitor runs the sensor polling loop: initialize once, then
// measure and report at a fixed cadence until the context is cancelled.
package monitor

import (
	"context"
	"time"

	"thermometer-go/drivers/aht20"
	"thermometer-go/errcode"
)

// Sensor is the part of an aht20.Session the loop drives.
type Sensor interface {
	Initialize() error
	Measure() error
	Report()
	State() aht20.State
	Reading() aht20.Reading
}

// Result describes one completed step of the loop.
type Result struct {
	Op      string // "initialize" | "measure"
	Code    errcode.Code
	Err     error
	Reading aht20.Reading
	At      time.Time
}

type Service struct {
	sensor   Sensor
	interval time.Duration

	// OnResult, if set, is called synchronously after every step.
	OnResult func(Result)
}

func New(s Sensor, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Second
	}
	return &Service{sensor: s, interval: interval}
}

// Run blocks until ctx is cancelled. Cancellation is observed between
// cycles; a cycle in progress always runs to completion.
func (m *Service) Run(ctx context.Context) {
	m.cycle()

	tick := time.NewTicker(m.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			m.cycle()
		}
	}
}

// Start runs the loop in its own goroutine.
func (m *Service) Start(ctx context.Context) {
	go m.Run(ctx)
}

func (m *Service) cycle() {
	// A failed calibration check leaves the sensor uninitialized; retry it
	// each cycle instead of measuring blind.
	if m.sensor.State() == aht20.Uninitialized {
		err := m.sensor.Initialize()
		m.notify("initialize", err)
		if err != nil {
			return
		}
	}
	err := m.sensor.Measure()
	m.sensor.Report()
	m.notify("measure", err)
}

func (m *Service) notify(op string, err error) {
	if m.OnResult == nil {
		return
	}
	m.OnResult(Result{
		Op:      op,
		Code:    errcode.Of(err),
		Err:     err,
		Reading: m.sensor.Reading(),
		At:      time.Now(),
	})
}
