// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ledclock shows the time kept by a DS1307 RTC on a 4-digit 7-segment LED
// display wired straight to GPIO, or on a terminal emulation of one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/ledclock/clockface"
	"github.com/GermanBionicSystems/ledclock/ds1307"
	"github.com/GermanBionicSystems/ledclock/seg7"
	"github.com/GermanBionicSystems/ledclock/segsim"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Defaults match the Raspberry Pi header wiring from the seg7 package
// example, in A,B,C,D,E,F,G,DP,D1,D2,D3,D4 order.
const defaultPins = "GPIO26,GPIO19,GPIO13,GPIO6,GPIO5,GPIO11,GPIO9,GPIO10,GPIO21,GPIO20,GPIO16,GPIO12"

var (
	sim     = flag.Bool("sim", false, "emulate the display on the terminal instead of driving GPIO")
	i2cName = flag.String("i2c", "", "I2C bus the DS1307 is on (default: first available)")
	pinSpec = flag.String("pins", defaultPins, "comma-separated GPIO names for A,B,C,D,E,F,G,DP,D1,D2,D3,D4")
	dwell   = flag.Duration("dwell", 0, "per-digit dwell time (default: driver default)")
	seed    = flag.String("set-time", "", `seed the RTC before starting: "now" or an RFC3339 timestamp`)
)

func parsePins(spec string) (*seg7.Pins, error) {
	names := strings.Split(spec, ",")
	if len(names) != 12 {
		return nil, fmt.Errorf("-pins needs 12 GPIO names, got %d", len(names))
	}
	pins := make([]gpio.PinOut, len(names))
	for ix, name := range names {
		p := gpioreg.ByName(strings.TrimSpace(name))
		if p == nil {
			return nil, fmt.Errorf("no GPIO pin named %q", name)
		}
		pins[ix] = p
	}
	return &seg7.Pins{
		A: pins[0], B: pins[1], C: pins[2], D: pins[3],
		E: pins[4], F: pins[5], G: pins[6], DP: pins[7],
		D1: pins[8], D2: pins[9], D3: pins[10], D4: pins[11],
	}, nil
}

// systemTime serves wall time for simulator runs, where no RTC is wired.
type systemTime struct{}

func (systemTime) Now() (time.Time, error) {
	return time.Now(), nil
}

func mainImpl() error {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if *sim {
		disp := segsim.New(nil)
		defer func() { _ = disp.Halt() }()
		return clockface.New(systemTime{}, disp, nil).Run(ctx)
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init host: %w", err)
	}
	bus, err := i2creg.Open(*i2cName)
	if err != nil {
		return fmt.Errorf("open i2c bus %q: %w", *i2cName, err)
	}
	defer func() { _ = bus.Close() }()

	rtc, err := ds1307.New(bus, 0)
	if err != nil {
		return err
	}
	if *seed != "" {
		t := time.Now()
		if *seed != "now" {
			if t, err = time.Parse(time.RFC3339, *seed); err != nil {
				return fmt.Errorf("parse -set-time: %w", err)
			}
		}
		if err := rtc.SetTime(t); err != nil {
			return err
		}
		log.Printf("seeded %s with %s", rtc, t.Format(time.RFC3339))
	}

	pins, err := parsePins(*pinSpec)
	if err != nil {
		return err
	}
	disp, err := seg7.New(pins, &seg7.Opts{Dwell: *dwell})
	if err != nil {
		return err
	}
	defer func() { _ = disp.Halt() }()

	return clockface.New(rtc, disp, nil).Run(ctx)
}

func main() {
	// Cancellation via SIGINT/SIGTERM is the normal way to stop the clock.
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
