// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// Package segsim emulates a 4-digit 7-segment LED display on a terminal.
//
// It accepts the same RenderDigit calls as the seg7 driver and latches the
// glyph state per position instead of driving pins, repainting an ANSI color
// rendering of the whole face at the end of each sweep. Image returns the
// current face drawn into an in-memory image for tests and tooling.
//
// Useful while you are waiting for your LED display to come by mail.
package segsim
