// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

const addr uint16 = 0x68

// probeOp is the register read New performs, answered with a running
// oscillator.
func probeOp() i2ctest.IO {
	return i2ctest.IO{Addr: addr, W: []byte{_REGISTER_SECONDS}, R: []byte{0x30}}
}

func TestNow(t *testing.T) {
	tests := []struct {
		name     string
		regs     []byte
		expected time.Time
	}{
		{
			name:     "24h evening",
			regs:     []byte{0x59, 0x59, 0x23, 0x07, 0x31, 0x12, 0x25},
			expected: time.Date(2025, time.December, 31, 23, 59, 59, 0, time.Local),
		},
		{
			name:     "24h morning",
			regs:     []byte{0x09, 0x05, 0x07, 0x01, 0x23, 0x08, 0x26},
			expected: time.Date(2026, time.August, 23, 7, 5, 9, 0, time.Local),
		},
		{
			// 11PM in 12-hour mode: mode bit 0x40, PM bit 0x20, BCD 11.
			name:     "12h PM",
			regs:     []byte{0x00, 0x30, 0x40 | 0x20 | 0x11, 0x02, 0x24, 0x08, 0x26},
			expected: time.Date(2026, time.August, 24, 23, 30, 0, 0, time.Local),
		},
		{
			// Midnight in 12-hour mode reads as 12AM.
			name:     "12h midnight",
			regs:     []byte{0x00, 0x00, 0x40 | 0x12, 0x02, 0x24, 0x08, 0x26},
			expected: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.Local),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pb := &i2ctest.Playback{
				Ops: []i2ctest.IO{
					probeOp(),
					{Addr: addr, W: []byte{_REGISTER_SECONDS}, R: tc.regs},
				},
				DontPanic: true,
			}
			defer pb.Close()

			rtc, err := New(pb, 0)
			if err != nil {
				t.Fatal(err)
			}
			got, err := rtc.Now()
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Now() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestNewRestartsHaltedOscillator(t *testing.T) {
	// The probe reads the clock-halt bit set; New must write the register
	// back with the bit cleared and the stored seconds untouched.
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: addr, W: []byte{_REGISTER_SECONDS}, R: []byte{_CLOCK_HALT_BIT | 0x42}},
			{Addr: addr, W: []byte{_REGISTER_SECONDS, 0x42}},
		},
		DontPanic: true,
	}
	defer pb.Close()

	if _, err := New(pb, 0); err != nil {
		t.Fatal(err)
	}
}

func TestSetTime(t *testing.T) {
	// Sunday 2026-08-23 07:05:09, weekday register is 1-based from Sunday.
	seed := time.Date(2026, time.August, 23, 7, 5, 9, 0, time.Local)
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			probeOp(),
			{Addr: addr, W: []byte{_REGISTER_SECONDS, 0x09, 0x05, 0x07, 0x01, 0x23, 0x08, 0x26}},
		},
		DontPanic: true,
	}
	defer pb.Close()
	record := &i2ctest.Record{Bus: pb}

	rtc, err := New(record, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := rtc.SetTime(seed); err != nil {
		t.Error(err)
	}
	t.Logf("record.Ops=%#v", record.Ops)
}

func TestReadFailure(t *testing.T) {
	// An exhausted playback bus fails the transaction.
	pb := &i2ctest.Playback{Ops: []i2ctest.IO{probeOp()}, DontPanic: true}
	defer pb.Close()

	rtc, err := New(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rtc.Now(); err == nil {
		t.Error("Now() on a dead bus expected an error")
	}
}

func TestBcdRoundTrip(t *testing.T) {
	for dec := 0; dec < 100; dec++ {
		if got := bcdToDec(decToBcd(dec)); got != dec {
			t.Fatalf("bcdToDec(decToBcd(%d)) = %d", dec, got)
		}
	}
}

func TestString(t *testing.T) {
	pb := &i2ctest.Playback{Ops: []i2ctest.IO{probeOp()}, DontPanic: true}
	defer pb.Close()
	rtc, err := New(pb, 0)
	if err != nil {
		t.Fatal(err)
	}
	s := rtc.String()
	t.Log(s)
	if len(s) == 0 {
		t.Error("invalid String() result")
	}
}
