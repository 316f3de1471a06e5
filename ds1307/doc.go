// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// ds1307 provides a driver for the Maxim DS1307 I2C real-time clock, the
// battery-backed timekeeper found on many hobbyist RTC breakout boards.
//
// The driver reads and writes the seven timekeeping registers only. The
// chip's square-wave output and 56 bytes of battery-backed RAM are not
// exposed.
//
// Timekeeping is done in 24-hour mode; a chip that was previously set to
// 12-hour mode is still decoded correctly on read.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://datasheets.maximintegrated.com/en/ds/DS1307.pdf
package ds1307
