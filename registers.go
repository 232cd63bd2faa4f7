// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twidisplay

// Opcodes understood by the controller. A write is one opcode byte followed
// by zero, one or two payload bytes; a bare byte below 0x80 is taken as a
// digit or character for the current cursor cell instead.
//
// The underscore-prefixed opcodes are functions the firmware documents but
// this driver does not use: 0x84 defines custom glyphs, 0x8a and 0x8b answer
// on a read and the driver is strictly write-only.
const (
	regBrightness     byte = 0x80
	regI2CAddress     byte = 0x81
	regClearDisplay   byte = 0x82
	regMode           byte = 0x83
	_regCustomChar    byte = 0x84
	regDots           byte = 0x85
	regPosition       byte = 0x89
	_regFirmwareRev   byte = 0x8a
	_regNumberDigits  byte = 0x8b
	regDisplayAddress byte = 0x90
)

// DefaultAddress is the controller's factory I²C address.
const DefaultAddress uint16 = 0x12

// TempUnits selects the unit glyph shown by DisplayTemperature.
type TempUnits int

const (
	Celsius TempUnits = iota
	Fahrenheit
)

// DateFormat selects the digit order used by DisplayDate.
type DateFormat int

const (
	// MMDD shows the month in the left two cells.
	MMDD DateFormat = iota
	// DDMM shows the day in the left two cells.
	DDMM
)

// Mode selects what the controller does with bytes sent without an explicit
// position: Rotate overwrites the cells in a ring, Scroll shifts the display
// content left once it is full. The values are the wire encoding.
type Mode byte

const (
	Rotate Mode = 0
	Scroll Mode = 1
)
