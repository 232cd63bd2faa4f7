// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twidisplay

import (
	"fmt"
	"math"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Dev is a handle to a TWIDisplay controller on an I²C bus.
//
// The Dev owns the bus handle until Release is called. It keeps no lock;
// callers must not run two operations on the same Dev concurrently.
type Dev struct {
	bus  i2c.Bus
	addr uint16
}

// NewI2C returns a driver for the controller at addr on bus b. No I/O is
// performed; the first write happens on the first operation.
func NewI2C(b i2c.Bus, addr uint16) *Dev {
	return &Dev{bus: b, addr: addr}
}

// Release gives the bus handle back to the caller. The Dev must not be used
// afterwards.
func (d *Dev) Release() i2c.Bus {
	b := d.bus
	d.bus = nil
	return b
}

func (d *Dev) String() string {
	return fmt.Sprintf("TWIDisplay{%s, 0x%02x}", d.bus, d.addr)
}

func (d *Dev) write(p []byte) error {
	if err := d.bus.Tx(d.addr, p, nil); err != nil {
		return wrap(err)
	}
	return nil
}

// Clear blanks the display.
func (d *Dev) Clear() error {
	return d.write([]byte{regClearDisplay})
}

// Halt clears the display. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Clear()
}

// SetAddress moves the controller to a new I²C address and retargets the
// driver to it. The firmware only takes addresses below 0x40; anything
// higher is silently ignored rather than rejected. Address 0x00 resets a
// controller whose address was lost.
func (d *Dev) SetAddress(addr uint8) error {
	if addr >= 0x40 {
		return nil
	}
	if err := d.write([]byte{regI2CAddress, addr}); err != nil {
		return err
	}
	d.addr = uint16(addr)
	return nil
}

// DisplayAddress makes the controller show its own I²C address.
func (d *Dev) DisplayAddress() error {
	return d.write([]byte{regDisplayAddress})
}

// SetBrightness sets the display brightness, 0 to 255. 127 is 50%.
func (d *Dev) SetBrightness(brightness uint8) error {
	return d.write([]byte{regBrightness, brightness})
}

// SetDots switches the four per-cell dots on or off, position 0 leftmost.
func (d *Dev) SetDots(dots [4]bool) error {
	return d.write([]byte{regDots, dotMask(dots)})
}

// SetMode selects how the controller places bytes sent without a position.
func (d *Dev) SetMode(mode Mode) error {
	switch mode {
	case Rotate, Scroll:
		return d.write([]byte{regMode, byte(mode)})
	}
	return &InvalidInputError{}
}

// SendDigit sends a single digit without a position; the controller places
// it at its write cursor according to the active Mode.
func (d *Dev) SendDigit(digit uint8) error {
	if digit > 9 {
		return &InvalidInputError{}
	}
	return d.write([]byte{digit})
}

// DisplayDigit shows digit at cell position (0-3, left to right).
func (d *Dev) DisplayDigit(position, digit uint8) error {
	if position > 3 || digit > 9 {
		return &InvalidInputError{}
	}
	return d.write([]byte{regPosition, position, digit})
}

// DisplayNumber shows n across all four cells, keeping leading zeros.
func (d *Dev) DisplayNumber(n uint16) error {
	if n > 9999 {
		return &InvalidInputError{}
	}
	for i, digit := range digits(n) {
		if err := d.DisplayDigit(uint8(i), digit); err != nil {
			return err
		}
	}
	return nil
}

// SendChar sends a single character code without a position.
func (d *Dev) SendChar(ch byte) error {
	return d.write([]byte{ch})
}

// DisplayChar shows ch at cell position (0-3, left to right).
func (d *Dev) DisplayChar(position uint8, ch byte) error {
	if position > 3 {
		return &InvalidInputError{}
	}
	return d.write([]byte{regPosition, position, ch})
}

// SendText sends text one character at a time; the active Mode decides how
// it flows across the display. The first failed write aborts the rest.
func (d *Dev) SendText(text string) error {
	for i := 0; i < len(text); i++ {
		if err := d.SendChar(text[i]); err != nil {
			return err
		}
	}
	return nil
}

// DisplayTime shows hours and minutes as HHMM. With dot set, the dot after
// the second cell doubles as the colon.
func (d *Dev) DisplayTime(hours, minutes uint8, dot bool) error {
	if hours > 23 || minutes > 59 {
		return &InvalidInputError{}
	}
	if err := d.DisplayNumber(uint16(hours)*100 + uint16(minutes)); err != nil {
		return err
	}
	if dot {
		return d.SetDots([4]bool{false, true, false, false})
	}
	return d.SetDots([4]bool{})
}

// daysInMonth[m] is the highest day DisplayDate accepts for month m.
// February is always allowed 29; there is no leap year handling.
var daysInMonth = [13]uint8{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DisplayDate shows a month and day pair in the given format, with the same
// optional middle dot as DisplayTime.
func (d *Dev) DisplayDate(month, day uint8, format DateFormat, dot bool) error {
	if month < 1 || month > 12 {
		return &InvalidInputError{}
	}
	if day < 1 || day > daysInMonth[month] {
		return &InvalidInputError{}
	}
	var n uint16
	switch format {
	case DDMM:
		n = uint16(day)*100 + uint16(month)
	default:
		n = uint16(month)*100 + uint16(day)
	}
	if err := d.DisplayNumber(n); err != nil {
		return err
	}
	if dot {
		return d.SetDots([4]bool{false, true, false, false})
	}
	return d.SetDots([4]bool{})
}

// DisplayTemperature shows a temperature reading between -99 and 999 with
// the unit glyph in the last cell. A non-nil loThresh or hiThresh replaces
// out-of-band readings with "-LL-" or "-HH-"; readings the display cannot
// show at all come out as "----".
func (d *Dev) DisplayTemperature(temperature int16, unit TempUnits, loThresh, hiThresh *int16) error {
	u := byte('C')
	if unit == Fahrenheit {
		u = 'F'
	}
	return d.displayReading(temperature, u, loThresh, hiThresh, -99, 999)
}

// DisplayHumidity shows a relative humidity reading between 0 and 100 with
// an 'H' in the last cell. Thresholds behave as in DisplayTemperature.
func (d *Dev) DisplayHumidity(humidity int16, loThresh, hiThresh *int16) error {
	return d.displayReading(humidity, 'H', loThresh, hiThresh, 0, 100)
}

// DisplayEnvTemperature shows the temperature of a physic.Env measurement,
// as produced by the periph sensor drivers, rounded to whole degrees.
func (d *Dev) DisplayEnvTemperature(e physic.Env, unit TempUnits) error {
	t := e.Temperature.Celsius()
	if unit == Fahrenheit {
		t = e.Temperature.Fahrenheit()
	}
	return d.DisplayTemperature(int16(math.Round(t)), unit, nil, nil)
}

// DisplayEnvHumidity shows the relative humidity of a physic.Env
// measurement, rounded to whole percent.
func (d *Dev) DisplayEnvHumidity(e physic.Env) error {
	h := float64(e.Humidity) / float64(physic.PercentRH)
	return d.DisplayHumidity(int16(math.Round(h)), nil, nil)
}

func (d *Dev) displayReading(value int16, unit byte, loThresh, hiThresh *int16, minVal, maxVal int16) error {
	cells := formatReading(value, unit, loThresh, hiThresh, minVal, maxVal)
	for i, code := range cells {
		if err := d.DisplayChar(uint8(i), code); err != nil {
			return err
		}
	}
	return nil
}

var _ conn.Resource = &Dev{}
