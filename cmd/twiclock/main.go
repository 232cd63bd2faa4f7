// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// twiclock exercises a TWIDisplay, on real hardware or against the
// simulator, with a handful of demos: a clock fed by a fake time source, a
// date readout, a wandering temperature with threshold fallbacks, and
// scrolling text.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/twidisplay"
	"github.com/GermanBionicSystems/twidisplay/twisim"
)

type options struct {
	Bus        string
	Sim        bool
	HTTP       string
	Address    uint16
	Brightness uint8
	Demo       string
}

// timeDigits is what the fake time source produces.
type timeDigits struct {
	hours, minutes, seconds uint8
}

// timeSignal is a capacity-1 latest-value-wins slot: a slow consumer only
// ever sees the newest time, never a backlog.
type timeSignal struct {
	c chan timeDigits
}

func newTimeSignal() *timeSignal {
	return &timeSignal{c: make(chan timeDigits, 1)}
}

func (s *timeSignal) publish(t timeDigits) {
	for {
		select {
		case s.c <- t:
			return
		default:
			// Full: drop the stale value and retry.
			select {
			case <-s.c:
			default:
			}
		}
	}
}

func (s *timeSignal) updates() <-chan timeDigits {
	return s.c
}

// fakeTime ticks a synthetic clock once a second from 00:00:00, publishing
// every tick.
func fakeTime(sig *timeSignal, stop <-chan struct{}) {
	var t timeDigits
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.seconds++
			if t.seconds > 59 {
				t.seconds = 0
				t.minutes++
			}
			if t.minutes > 59 {
				t.minutes = 0
				t.hours++
			}
			if t.hours > 23 {
				t.hours = 0
			}
			sig.publish(t)
		}
	}
}

func runClock(d *twidisplay.Dev, stop <-chan struct{}) error {
	sig := newTimeSignal()
	go fakeTime(sig, stop)

	// Show minutes and seconds, blinking the middle dot on every update.
	dot := false
	for {
		select {
		case <-stop:
			return nil
		case t := <-sig.updates():
			if err := d.DisplayTime(t.minutes, t.seconds, dot); err != nil {
				return err
			}
			dot = !dot
		}
	}
}

func runDate(d *twidisplay.Dev, stop <-chan struct{}) error {
	now := time.Now()
	if err := d.DisplayDate(uint8(now.Month()), uint8(now.Day()), twidisplay.MMDD, true); err != nil {
		return err
	}
	<-stop
	return nil
}

func runTemperature(d *twidisplay.Dev, stop <-chan struct{}) error {
	lo, hi := int16(-10), int16(35)
	temp, step := int16(20), int16(3)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
		}
		if err := d.DisplayTemperature(temp, twidisplay.Celsius, &lo, &hi); err != nil {
			return err
		}
		// Wander across both thresholds and back.
		temp += step
		if temp > hi+15 || temp < lo-15 {
			step = -step
		}
	}
}

func runText(d *twidisplay.Dev, stop <-chan struct{}) error {
	if err := d.SetMode(twidisplay.Scroll); err != nil {
		return err
	}
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()
	msg := "    HELLO tUi diSPLAy    "
	for i := 0; ; i = (i + 1) % len(msg) {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
		}
		if err := d.SendChar(msg[i]); err != nil {
			return err
		}
	}
}

func openBus(opts *options) (i2c.Bus, error) {
	if opts.Sim {
		sim := twisim.New(opts.Address)
		sim.Attach(twisim.NewTermView(nil))
		if opts.HTTP != "" {
			web := twisim.NewWebView()
			sim.Attach(web)
			go func() {
				log.Printf("display face on http://%s/", opts.HTTP)
				if err := http.ListenAndServe(opts.HTTP, web); err != nil {
					log.Print(err)
				}
			}()
		}
		return sim, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(opts.Bus)
}

func mainImpl() error {
	opts := options{}

	pflag.StringVar(&opts.Bus, "bus", "", "I²C bus name, empty for the first available")
	pflag.BoolVar(&opts.Sim, "sim", false, "use the simulated display instead of hardware")
	pflag.StringVar(&opts.HTTP, "http", "", "with --sim, also serve the display face on this address")
	pflag.Uint16Var(&opts.Address, "address", twidisplay.DefaultAddress, "device I²C address")
	pflag.Uint8Var(&opts.Brightness, "brightness", 200, "display brightness, 0-255")
	pflag.StringVar(&opts.Demo, "demo", "clock", "demo to run: clock, date, temp or text")
	pflag.Parse()

	bus, err := openBus(&opts)
	if err != nil {
		return err
	}
	if closer, ok := bus.(i2c.BusCloser); ok {
		defer closer.Close()
	}

	d := twidisplay.NewI2C(bus, opts.Address)
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.SetBrightness(opts.Brightness); err != nil {
		return err
	}

	stop := make(chan struct{})
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		close(stop)
	}()

	switch opts.Demo {
	case "clock":
		err = runClock(d, stop)
	case "date":
		err = runDate(d, stop)
	case "temp":
		err = runTemperature(d, stop)
	case "text":
		err = runText(d, stop)
	default:
		err = fmt.Errorf("unknown demo %q", opts.Demo)
	}
	if err != nil {
		return err
	}
	return d.Halt()
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("twiclock: %v", err)
	}
}
