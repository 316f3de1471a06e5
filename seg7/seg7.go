// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package seg7

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// NumDigits is the number of digit positions on the display.
const NumDigits = 4

// DefaultDwell is the time RenderDigit holds a position lit before returning.
// At 4 positions per sweep this refreshes the whole display at 125Hz, well
// above the flicker-fusion threshold. Longer dwells flicker, much shorter
// ones may not register on dimmer displays.
const DefaultDwell = 2 * time.Millisecond

const (
	// Segment and dot lines source current into the LEDs.
	segmentOn  = gpio.High
	segmentOff = gpio.Low
	// Select lines sink the current of a common-cathode digit.
	selectOn  = gpio.Low
	selectOff = gpio.High
)

var (
	ErrBadPosition = errors.New("seg7: digit position out of range")
	ErrBadDigit    = errors.New("seg7: digit value out of range")
)

// Glyphs maps a decimal digit to its segment pattern in gfedcba order: bit 0
// is segment A (top bar) through bit 6, segment G (middle bar).
var Glyphs = [10]byte{
	0x3f, // 0: ABCDEF
	0x06, // 1: BC
	0x5b, // 2: ABDEG
	0x4f, // 3: ABCDG
	0x66, // 4: BCFG
	0x6d, // 5: ACDFG
	0x7d, // 6: ACDEFG
	0x07, // 7: ABC
	0x7f, // 8: ABCDEFG
	0x6f, // 9: ABCDFG
}

// Pins assigns the 12 logical display lines to physical outputs. The
// assignment is fixed once the device is created; the Dev is the only writer
// to these pins from then on.
type Pins struct {
	// A through G drive the seven segment bars, DP the decimal dot.
	A, B, C, D, E, F, G, DP gpio.PinOut
	// D1 through D4 select a digit position, leftmost digit first.
	D1, D2, D3, D4 gpio.PinOut
}

// Opts holds the configurable options for the display.
type Opts struct {
	// Dwell overrides DefaultDwell when > 0.
	Dwell time.Duration
}

// Dev is an open handle to a directly wired 4-digit 7-segment display.
type Dev struct {
	segments [8]gpio.PinOut
	selects  [NumDigits]gpio.PinOut
	dwell    time.Duration
}

// New validates the pin assignment, drives every line to its inactive level
// so the display starts blank, and returns the device ready for RenderDigit
// calls.
func New(p *Pins, opts *Opts) (*Dev, error) {
	if p == nil {
		return nil, errors.New("seg7: nil pin assignment")
	}
	d := &Dev{
		segments: [8]gpio.PinOut{p.A, p.B, p.C, p.D, p.E, p.F, p.G, p.DP},
		selects:  [NumDigits]gpio.PinOut{p.D1, p.D2, p.D3, p.D4},
		dwell:    DefaultDwell,
	}
	if opts != nil && opts.Dwell > 0 {
		d.dwell = opts.Dwell
	}
	for _, pin := range d.segments {
		if pin == nil {
			return nil, errors.New("seg7: incomplete pin assignment")
		}
	}
	for _, pin := range d.selects {
		if pin == nil {
			return nil, errors.New("seg7: incomplete pin assignment")
		}
	}
	return d, d.Blank()
}

// RenderDigit performs one multiplex refresh for a single position: it blanks
// the display, drives the segment lines for value and the dot line for dotOn,
// activates exactly the select line for position, and holds that state for
// the dwell duration before returning.
//
// position must be in 0..3 and value in 0..9; out of range arguments return
// ErrBadPosition or ErrBadDigit without touching the pins.
func (d *Dev) RenderDigit(position, value int, dotOn bool) error {
	if position < 0 || position >= NumDigits {
		return fmt.Errorf("%w: %d", ErrBadPosition, position)
	}
	if value < 0 || value >= len(Glyphs) {
		return fmt.Errorf("%w: %d", ErrBadDigit, value)
	}
	// Deselect everything before the segment lines change. Residual charge on
	// a still-selected digit shows up as ghosting on the neighbors.
	for _, pin := range d.selects {
		if err := pin.Out(selectOff); err != nil {
			return err
		}
	}
	pattern := Glyphs[value]
	for ix := 0; ix < 7; ix++ {
		level := segmentOff
		if pattern&(1<<ix) != 0 {
			level = segmentOn
		}
		if err := d.segments[ix].Out(level); err != nil {
			return err
		}
	}
	level := segmentOff
	if dotOn {
		level = segmentOn
	}
	if err := d.segments[7].Out(level); err != nil {
		return err
	}
	if err := d.selects[position].Out(selectOn); err != nil {
		return err
	}
	time.Sleep(d.dwell)
	return nil
}

// Blank deselects every digit and turns all segment lines off.
func (d *Dev) Blank() error {
	for _, pin := range d.selects {
		if err := pin.Out(selectOff); err != nil {
			return err
		}
	}
	for _, pin := range d.segments {
		if err := pin.Out(segmentOff); err != nil {
			return err
		}
	}
	return nil
}

// Dwell returns the configured per-position hold time.
func (d *Dev) Dwell() time.Duration {
	return d.dwell
}

// Halt blanks the display. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Blank()
}

func (d *Dev) String() string {
	return fmt.Sprintf("seg7.Dev{%s..%s, dwell: %s}", d.segments[0], d.selects[NumDigits-1], d.dwell)
}

var _ conn.Resource = &Dev{}
