// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// DefaultReadPeriod is how often the time source is polled. The display
	// only shows minutes, but a 1s cadence keeps the minute rollover from
	// lagging visibly.
	DefaultReadPeriod = time.Second
	// DefaultBlinkPeriod is the full on+off cycle of the dot between the
	// hour and minute digits.
	DefaultBlinkPeriod = time.Second

	numPositions = 4
	// The dot blinks on the hour-units digit, standing in for a colon.
	dotPosition = 1
)

// TimeSource is the clock peripheral the face polls. *ds1307.Dev implements
// it.
type TimeSource interface {
	Now() (time.Time, error)
}

// Display renders one digit position per call. *seg7.Dev and *segsim.Dev
// implement it.
type Display interface {
	RenderDigit(position, value int, dotOn bool) error
}

// Opts holds the configurable options for a Face.
type Opts struct {
	// ReadPeriod overrides DefaultReadPeriod when > 0.
	ReadPeriod time.Duration
	// BlinkPeriod overrides DefaultBlinkPeriod when > 0.
	BlinkPeriod time.Duration
	// Clock supplies wall time. Defaults to the real clock; tests inject a
	// clockwork fake.
	Clock clockwork.Clock
}

// Face owns the cached time value and drives the display from it.
type Face struct {
	src         TimeSource
	disp        Display
	clock       clockwork.Clock
	readPeriod  time.Duration
	blinkPeriod time.Duration

	start    time.Time
	lastRead time.Time
	haveRead bool
	hour     int
	minute   int
}

// New returns a Face ready to sweep. Nothing is rendered until the first
// Sweep call.
func New(src TimeSource, disp Display, opts *Opts) *Face {
	f := &Face{
		src:         src,
		disp:        disp,
		clock:       clockwork.NewRealClock(),
		readPeriod:  DefaultReadPeriod,
		blinkPeriod: DefaultBlinkPeriod,
	}
	if opts != nil {
		if opts.ReadPeriod > 0 {
			f.readPeriod = opts.ReadPeriod
		}
		if opts.BlinkPeriod > 0 {
			f.blinkPeriod = opts.BlinkPeriod
		}
		if opts.Clock != nil {
			f.clock = opts.Clock
		}
	}
	f.start = f.clock.Now()
	return f
}

// blinkPhase reports whether the dot is lit: off for the first half of each
// period-length window, on for the second. Pure in elapsed, so repeated
// calls at the same instant agree.
func blinkPhase(elapsed, period time.Duration) bool {
	return elapsed%period >= period/2
}

// Sweep performs one full refresh: it re-reads the time source if ReadPeriod
// has elapsed since the last read, then renders all four positions from the
// cached value, hour tens first. The dot argument is the blink phase on the
// dot position and false elsewhere.
func (f *Face) Sweep() error {
	now := f.clock.Now()
	if !f.haveRead || now.Sub(f.lastRead) >= f.readPeriod {
		t, err := f.src.Now()
		if err != nil {
			return fmt.Errorf("clockface: %w", err)
		}
		f.hour, f.minute = t.Hour(), t.Minute()
		f.lastRead = now
		f.haveRead = true
	}
	dot := blinkPhase(now.Sub(f.start), f.blinkPeriod)
	digits := [numPositions]int{f.hour / 10, f.hour % 10, f.minute / 10, f.minute % 10}
	for position, value := range digits {
		if err := f.disp.RenderDigit(position, value, dot && position == dotPosition); err != nil {
			return err
		}
	}
	return nil
}

// Run sweeps until the context is cancelled and returns the context's error,
// or the first render or time-read error. The display's per-digit dwell is
// the only pacing; the loop itself is not time-gated.
func (f *Face) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := f.Sweep(); err != nil {
			return err
		}
	}
}
