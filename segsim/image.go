// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segsim

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Face geometry, in pixels. One digit cell is cellW x cellH with the dot
// hanging off its lower right corner; cells are laid out left to right on a
// cellStride pitch.
const (
	cellW      = 40
	cellH      = 70
	cellStride = 56
	margin     = 12
	barThick   = 6
	dotRadius  = 4

	imageW = margin*2 + cellStride*4
	imageH = margin*2 + cellH + 20
)

// segmentBox is the rectangle of one segment bar relative to its cell origin.
var segmentBoxes = [7]struct{ x, y, w, h float64 }{
	{5, 0, cellW - 10, barThick},                      // A
	{cellW - barThick, 5, barThick, cellH/2 - 8},      // B
	{cellW - barThick, cellH/2 + 3, barThick, cellH/2 - 8}, // C
	{5, cellH - barThick, cellW - 10, barThick},       // D
	{0, cellH/2 + 3, barThick, cellH/2 - 8},           // E
	{0, 5, barThick, cellH/2 - 8},                     // F
	{5, cellH/2 - barThick/2, cellW - 10, barThick},   // G
}

func setColor(dc *gg.Context, lit bool) {
	if lit {
		dc.SetRGB(1, 0.12, 0.12)
	} else {
		dc.SetRGB(0.19, 0.06, 0.06)
	}
}

// Image draws the currently latched face and returns it. The drawing mirrors
// the terminal rendering: unlit segments are drawn dimmed, absent dots are
// not drawn at all. A caption with the face value is printed underneath.
func (d *Dev) Image() image.Image {
	dc := gg.NewContext(imageW, imageH)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for ix := 0; ix < len(d.patterns); ix++ {
		x0 := float64(margin + ix*cellStride)
		y0 := float64(margin)
		pattern := d.patterns[ix]
		for bit, box := range segmentBoxes {
			setColor(dc, pattern&(1<<bit) != 0)
			dc.DrawRectangle(x0+box.x, y0+box.y, box.w, box.h)
			dc.Fill()
		}
		if d.dots[ix] {
			setColor(dc, true)
			dc.DrawCircle(x0+cellW+barThick, y0+cellH-dotRadius, dotRadius)
			dc.Fill()
		}
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.7, 0.7, 0.7)
	caption := fmt.Sprintf("%d%d:%d%d", d.values[0], d.values[1], d.values[2], d.values[3])
	dc.DrawString(caption, margin, imageH-6)
	return dc.Image()
}
