package monitor

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"thermometer-go/drivers/aht20"
	"thermometer-go/errcode"
	"thermometer-go/platform"
)

type fakeSensor struct {
	mu          sync.Mutex
	initFails   int
	state       aht20.State
	inits       int
	measures    int
	reports     int
	measureErrs []error
}

func (f *fakeSensor) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	if f.initFails > 0 {
		f.initFails--
		return &errcode.E{C: errcode.Transport, Op: "initialize"}
	}
	f.state = aht20.Ready
	return nil
}

func (f *fakeSensor) Measure() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.measures++
	if len(f.measureErrs) > 0 {
		err := f.measureErrs[0]
		f.measureErrs = f.measureErrs[1:]
		return err
	}
	return nil
}

func (f *fakeSensor) Report() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports++
}

func (f *fakeSensor) State() aht20.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSensor) Reading() aht20.Reading { return aht20.Reading{} }

func TestRunRetriesInitializeThenPolls(t *testing.T) {
	fs := &fakeSensor{initFails: 2, measureErrs: []error{errcode.Busy}}
	var (
		mu      sync.Mutex
		results []Result
	)
	m := New(fs, 2*time.Millisecond)
	m.OnResult = func(r Result) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	m.Run(ctx)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.inits != 3 {
		t.Fatalf("initialize calls = %d, want 3", fs.inits)
	}
	if fs.measures < 2 {
		t.Fatalf("measure calls = %d, want >= 2", fs.measures)
	}
	if fs.reports != fs.measures {
		t.Fatalf("reports = %d, measures = %d; want one report per measure", fs.reports, fs.measures)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []struct {
		op   string
		code errcode.Code
	}{
		{"initialize", errcode.Transport},
		{"initialize", errcode.Transport},
		{"initialize", errcode.OK},
		{"measure", errcode.Busy},
		{"measure", errcode.OK},
	}
	if len(results) < len(want) {
		t.Fatalf("results = %d, want >= %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Op != w.op || results[i].Code != w.code {
			t.Fatalf("result %d = %s/%s, want %s/%s", i, results[i].Op, results[i].Code, w.op, w.code)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	fs := &fakeSensor{}
	m := New(fs, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.measures != 1 {
		t.Fatalf("measure calls = %d, want 1 (initial cycle)", fs.measures)
	}
}

// End to end over a real session with an instant delay and a scripted bus.
type zeroDelay struct{}

func (zeroDelay) Sleep(time.Duration) {}

type frameI2C struct{}

func (frameI2C) Tx(addr uint16, w, r []byte) error {
	switch {
	case len(r) == 1:
		r[0] = 0x1C
	case len(r) == aht20.FrameLen:
		copy(r, []byte{0x1C, 0x8C, 0xCC, 0xD6, 0x00, 0x00, 0xEF})
	}
	return nil
}

func TestRunWithSession(t *testing.T) {
	var out bytes.Buffer
	s := aht20.NewSession(platform.Platform{
		Bus:    platform.TxBus{I2C: frameI2C{}},
		Delay:  zeroDelay{},
		Serial: &out,
	}, aht20.Options{})

	m := New(s, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Millisecond)
	defer cancel()
	m.Run(ctx)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	if len(lines) == 0 {
		t.Fatal("no output")
	}
	for _, l := range lines {
		if l != "Humidity: 55.00, C: 25.00, F: 77.00" {
			t.Fatalf("line = %q", l)
		}
	}
}
