// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twidisplay_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/twidisplay"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d := twidisplay.NewI2C(b, twidisplay.DefaultAddress)
	if err := d.Clear(); err != nil {
		log.Fatal(err)
	}
	if err := d.SetBrightness(200); err != nil {
		log.Fatal(err)
	}

	// Blink the colon dot while showing the time.
	dot := false
	for i := 0; i < 10; i++ {
		now := time.Now()
		if err := d.DisplayTime(uint8(now.Hour()), uint8(now.Minute()), dot); err != nil {
			log.Fatal(err)
		}
		dot = !dot
		time.Sleep(time.Second)
	}
}

func ExampleDev_DisplayTemperature() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d := twidisplay.NewI2C(b, twidisplay.DefaultAddress)

	// Show 23°C, with -LL-/-HH- once the reading leaves the -20..50 band.
	lo, hi := int16(-20), int16(50)
	if err := d.DisplayTemperature(23, twidisplay.Celsius, &lo, &hi); err != nil {
		log.Fatal(err)
	}
}
