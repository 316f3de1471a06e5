// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// seg7 drives a bare 4-digit 7-segment LED display wired directly to 12 GPIO
// lines, with no driver chip in between. The four positions share the seven
// segment lines (plus the decimal dot), so only one digit can be lit at a
// time; sweeping RenderDigit over the positions fast enough makes all four
// appear lit at once.
//
// Segment lines are active-high. Digit select lines sink the current for a
// common-cathode display and are active-low.
//
// A typical wiring guide for this kind of display:
//
// https://lastminuteengineers.com/seven-segment-arduino-tutorial/
package seg7
