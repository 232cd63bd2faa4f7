// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twidisplay

// blank is the cell code the controller renders as an empty cell.
const blank byte = ' '

// digits splits n (0-9999) into its four decimal digits, most significant
// first. Leading zeros are kept; the display always fills all four cells.
func digits(n uint16) [4]byte {
	var d [4]byte
	d[0] = byte(n / 1000)
	n %= 1000
	d[1] = byte(n / 100)
	n %= 100
	d[2] = byte(n / 10)
	d[3] = byte(n % 10)
	return d
}

// dotMask collapses the four per-cell dot switches into the controller's
// bitmask. Dot i occupies bit i+1; bit 0 is unused.
func dotMask(dots [4]bool) byte {
	var mask byte
	for i, on := range dots {
		if on {
			mask |= 1 << (uint(i) + 1)
		}
	}
	return mask
}

// formatReading renders a bounded sensor reading as four cell codes. Values
// outside [minVal, maxVal] show "----", values crossing the low or high
// threshold show "-LL-" or "-HH-", anything else is sign plus digits with
// the unit glyph in the last cell. Digit cells use the raw 0-9 codes,
// everything else is ASCII.
//
// A nil threshold falls back to the displayable limit, which is minVal or
// maxVal clamped to what three digits plus a sign can show (-99 to 999).
func formatReading(value int16, unit byte, loThresh, hiThresh *int16, minVal, maxVal int16) [4]byte {
	minLimit, maxLimit := int16(-99), int16(999)
	if minVal > -100 {
		minLimit = minVal
	}
	if maxVal < 1000 {
		maxLimit = maxVal
	}
	loTh, hiTh := minLimit, maxLimit
	if loThresh != nil {
		loTh = *loThresh
	}
	if hiThresh != nil {
		hiTh = *hiThresh
	}

	switch {
	case value < minVal || value > maxVal:
		return [4]byte{'-', '-', '-', '-'}
	case value < loTh:
		return [4]byte{'-', 'L', 'L', '-'}
	case value > hiTh:
		return [4]byte{'-', 'H', 'H', '-'}
	}

	abs := value
	if abs < 0 {
		abs = -abs
	}
	hundreds := byte(abs / 100)
	tens := byte(abs % 100 / 10)

	var cells [4]byte
	switch {
	case value < 0:
		cells[0] = '-'
	case hundreds == 0:
		cells[0] = blank
	default:
		cells[0] = hundreds
	}
	// The tens cell goes blank too when there is nothing to its left.
	if (hundreds == 0 || value < 0) && tens == 0 {
		cells[1] = blank
	} else {
		cells[1] = tens
	}
	cells[2] = byte(abs % 10)
	cells[3] = unit
	return cells
}
