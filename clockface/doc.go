// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// clockface sweeps the current hour and minute onto a 4-digit display.
//
// The package owns the glue between a time source (typically a ds1307 RTC)
// and a digit renderer (typically a seg7 display): it polls the source on a
// slow cadence, caches the reading, derives the blinking dot phase from
// elapsed wall time, and renders the four digit positions on every sweep.
// Everything runs on the caller's goroutine; there is exactly one writer to
// the cached time and to the display.
package clockface
