// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package seg7_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/ledclock/seg7"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Sweep "1234" across a display wired to a Raspberry Pi header for a few
// seconds.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	pins := &seg7.Pins{
		A: gpioreg.ByName("GPIO26"), B: gpioreg.ByName("GPIO19"),
		C: gpioreg.ByName("GPIO13"), D: gpioreg.ByName("GPIO6"),
		E: gpioreg.ByName("GPIO5"), F: gpioreg.ByName("GPIO11"),
		G: gpioreg.ByName("GPIO9"), DP: gpioreg.ByName("GPIO10"),
		D1: gpioreg.ByName("GPIO21"), D2: gpioreg.ByName("GPIO20"),
		D3: gpioreg.ByName("GPIO16"), D4: gpioreg.ByName("GPIO12"),
	}
	dev, err := seg7.New(pins, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = dev.Halt() }()

	for end := time.Now().Add(5 * time.Second); time.Now().Before(end); {
		for position := 0; position < seg7.NumDigits; position++ {
			if err := dev.RenderDigit(position, position+1, false); err != nil {
				log.Fatal(err)
			}
		}
	}
}
