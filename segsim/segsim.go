// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segsim

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/ledclock/seg7"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

var (
	ErrBadPosition = errors.New("segsim: digit position out of range")
	ErrBadDigit    = errors.New("segsim: digit value out of range")
)

var (
	litColor = color.NRGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}
	offColor = color.NRGBA{R: 0x30, G: 0x10, B: 0x10, A: 0xff}
)

// Opts represents the options available for this display.
type Opts struct {
	// W receives the terminal output. nil means a colorable stdout.
	W io.Writer
	// Palette is the ANSI palette to render with. nil means ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a 4-digit 7-segment display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette

	values   [seg7.NumDigits]int
	patterns [seg7.NumDigits]byte
	dots     [seg7.NumDigits]bool
	painted  bool
	buf      bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of the clock loop without wiring up hardware.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{w: w, palette: *p}
}

// RenderDigit latches position's glyph and dot. Completing a sweep (a call
// for the last position) repaints the whole face. Argument bounds mirror the
// hardware driver's.
func (d *Dev) RenderDigit(position, value int, dotOn bool) error {
	if position < 0 || position >= seg7.NumDigits {
		return fmt.Errorf("%w: %d", ErrBadPosition, position)
	}
	if value < 0 || value >= len(seg7.Glyphs) {
		return fmt.Errorf("%w: %d", ErrBadDigit, value)
	}
	d.values[position] = value
	d.patterns[position] = seg7.Glyphs[value]
	d.dots[position] = dotOn
	if position == seg7.NumDigits-1 {
		return d.refresh()
	}
	return nil
}

// Segment bit positions in the glyph table, gfedcba order.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// cell returns the colored block for one character cell of the face: a lit
// or dimmed LED block, or a plain space where the digit has no element.
func (d *Dev) cell(lit, present bool) string {
	if !present {
		return " "
	}
	if lit {
		return d.palette.Block(litColor)
	}
	return d.palette.Block(offColor)
}

// refresh repaints the 3-row face in place.
func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	if d.painted {
		// Move back up over the previous frame.
		_, _ = d.buf.WriteString("\033[3A")
	}
	for row := 0; row < 3; row++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for ix := 0; ix < seg7.NumDigits; ix++ {
			pattern := d.patterns[ix]
			switch row {
			case 0:
				_, _ = io.WriteString(&d.buf, " "+d.cell(pattern&segA != 0, true)+"  ")
			case 1:
				_, _ = io.WriteString(&d.buf, d.cell(pattern&segF != 0, true)+
					d.cell(pattern&segG != 0, true)+
					d.cell(pattern&segB != 0, true)+" ")
			case 2:
				_, _ = io.WriteString(&d.buf, d.cell(pattern&segE != 0, true)+
					d.cell(pattern&segD != 0, true)+
					d.cell(pattern&segC != 0, true)+
					d.cell(d.dots[ix], d.dots[ix]))
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.painted = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not left corrupted.
func (d *Dev) Halt() error {
	d.painted = false
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

func (d *Dev) String() string {
	return "segsim.Dev"
}

var _ conn.Resource = &Dev{}
