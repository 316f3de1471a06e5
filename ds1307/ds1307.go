// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the fixed I2C address of the DS1307.
const DefaultAddr uint16 = 0x68

const (
	// Addresses of the timekeeping registers.
	_REGISTER_SECONDS byte = 0x00
	_REGISTER_MINUTES byte = 0x01
	_REGISTER_HOURS   byte = 0x02
	_REGISTER_WEEKDAY byte = 0x03
	_REGISTER_DATE    byte = 0x04
	_REGISTER_MONTH   byte = 0x05
	_REGISTER_YEAR    byte = 0x06

	// Clock-halt bit in the seconds register. Set from the factory; while
	// set the oscillator is stopped and the chip does not keep time.
	_CLOCK_HALT_BIT byte = 0x80
	// 12-hour mode select bit in the hours register.
	_MODE_12HR_BIT byte = 0x40
	// PM bit in the hours register, only meaningful in 12-hour mode.
	_PM_BIT byte = 0x20
)

// Dev represents a DS1307 real-time clock.
type Dev struct {
	d *i2c.Dev
}

// New returns a handle to the clock on the given bus. If addr is 0,
// DefaultAddr is used. The seconds register is probed and, if the oscillator
// is halted (fresh chip or a dead backup battery), it is restarted without
// disturbing the stored time.
func New(b i2c.Bus, addr uint16) (*Dev, error) {
	if addr == 0 {
		addr = DefaultAddr
	}
	dev := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}
	return dev, dev.start()
}

// start probes the device and clears the clock-halt bit if it is set.
func (dev *Dev) start() error {
	r := make([]byte, 1)
	if err := dev.d.Tx([]byte{_REGISTER_SECONDS}, r); err != nil {
		return fmt.Errorf("ds1307: probing device: %w", err)
	}
	if r[0]&_CLOCK_HALT_BIT == 0 {
		return nil
	}
	w := []byte{_REGISTER_SECONDS, r[0] &^ _CLOCK_HALT_BIT}
	if err := dev.d.Tx(w, nil); err != nil {
		return fmt.Errorf("ds1307: restarting oscillator: %w", err)
	}
	return nil
}

// SetTime writes t to the timekeeping registers. The oscillator is left
// running and the chip is switched to 24-hour mode. Sub-second precision is
// lost; the chip restarts its seconds countdown on the write.
func (dev *Dev) SetTime(t time.Time) error {
	w := []byte{
		_REGISTER_SECONDS,
		decToBcd(t.Second()),
		decToBcd(t.Minute()),
		decToBcd(t.Hour()),
		byte(t.Weekday()) + 1,
		decToBcd(t.Day()),
		decToBcd(int(t.Month())),
		decToBcd(t.Year() % 100),
	}
	if err := dev.d.Tx(w, nil); err != nil {
		return fmt.Errorf("ds1307: setting time: %w", err)
	}
	return nil
}

// Now reads the current time from the device. The chip only stores a
// two-digit year; it is reported in 2000..2099. The returned time is in the
// local zone, the chip has no notion of one.
func (dev *Dev) Now() (time.Time, error) {
	r := make([]byte, 7)
	if err := dev.d.Tx([]byte{_REGISTER_SECONDS}, r); err != nil {
		return time.Time{}, fmt.Errorf("ds1307: reading time: %w", err)
	}
	second := bcdToDec(r[0] &^ _CLOCK_HALT_BIT)
	minute := bcdToDec(r[1] & 0x7f)
	var hour int
	if r[2]&_MODE_12HR_BIT != 0 {
		hour = bcdToDec(r[2] & 0x1f)
		if hour == 12 {
			hour = 0
		}
		if r[2]&_PM_BIT != 0 {
			hour += 12
		}
	} else {
		hour = bcdToDec(r[2] & 0x3f)
	}
	day := bcdToDec(r[4] & 0x3f)
	month := time.Month(bcdToDec(r[5] & 0x1f))
	year := 2000 + bcdToDec(r[6])
	return time.Date(year, month, day, hour, minute, second, 0, time.Local), nil
}

// Halt implements conn.Resource. The clock keeps running on its backup
// battery; there is nothing to shut down.
func (dev *Dev) Halt() error {
	return nil
}

func (dev *Dev) String() string {
	return fmt.Sprintf("ds1307: %s", dev.d.String())
}

// decToBcd converts int to the chip's BCD register format.
func decToBcd(dec int) byte {
	return byte(dec + 6*(dec/10))
}

// bcdToDec converts a BCD register value to int.
func bcdToDec(bcd byte) int {
	return int(bcd - 6*(bcd>>4))
}

var _ conn.Resource = &Dev{}
