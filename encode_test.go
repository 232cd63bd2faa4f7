// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twidisplay

import "testing"

func TestDigits(t *testing.T) {
	cases := []struct {
		n    uint16
		want [4]byte
	}{
		{0, [4]byte{0, 0, 0, 0}},
		{23, [4]byte{0, 0, 2, 3}},
		{1234, [4]byte{1, 2, 3, 4}},
		{9999, [4]byte{9, 9, 9, 9}},
		{1000, [4]byte{1, 0, 0, 0}},
	}
	for _, c := range cases {
		if got := digits(c.n); got != c.want {
			t.Errorf("digits(%d) = %v, want %v", c.n, got, c.want)
		}
	}
	// Every decomposition must reassemble into its input.
	for n := uint16(0); n <= 9999; n++ {
		d := digits(n)
		sum := uint16(d[0])*1000 + uint16(d[1])*100 + uint16(d[2])*10 + uint16(d[3])
		if sum != n {
			t.Fatalf("digits(%d) = %v does not reassemble (%d)", n, d, sum)
		}
		for _, digit := range d {
			if digit > 9 {
				t.Fatalf("digits(%d) = %v contains a non-digit", n, d)
			}
		}
	}
}

func TestDotMask(t *testing.T) {
	cases := []struct {
		dots [4]bool
		want byte
	}{
		{[4]bool{false, false, false, false}, 0},
		{[4]bool{true, false, false, false}, 2},
		{[4]bool{false, true, false, false}, 4},
		{[4]bool{false, false, true, false}, 8},
		{[4]bool{false, false, false, true}, 16},
		{[4]bool{true, true, true, true}, 30},
	}
	for _, c := range cases {
		if got := dotMask(c.dots); got != c.want {
			t.Errorf("dotMask(%v) = %d, want %d", c.dots, got, c.want)
		}
	}
}

func TestFormatReading(t *testing.T) {
	th := func(v int16) *int16 { return &v }

	cases := []struct {
		name           string
		value          int16
		unit           byte
		loThresh       *int16
		hiThresh       *int16
		minVal, maxVal int16
		want           [4]byte
	}{
		{"below absolute min", -150, 'C', nil, nil, -99, 999, [4]byte{'-', '-', '-', '-'}},
		{"above absolute max", 1200, 'C', nil, nil, -99, 999, [4]byte{'-', '-', '-', '-'}},
		{"below threshold", -60, 'C', th(-50), nil, -99, 999, [4]byte{'-', 'L', 'L', '-'}},
		{"above threshold", 35, 'C', nil, th(30), -99, 999, [4]byte{'-', 'H', 'H', '-'}},
		{"default max limit", 950, 'C', nil, nil, -99, 999, [4]byte{9, 5, 0, 'C'}},
		{"two digits", 23, 'C', nil, nil, -99, 999, [4]byte{blank, 2, 3, 'C'}},
		{"single digit", 5, 'H', nil, nil, 0, 100, [4]byte{blank, blank, 5, 'H'}},
		{"negative single digit", -7, 'C', nil, nil, -99, 999, [4]byte{'-', blank, 7, 'C'}},
		{"negative two digits", -42, 'C', nil, nil, -99, 999, [4]byte{'-', 4, 2, 'C'}},
		{"hundreds with zero tens", 105, 'F', nil, nil, -99, 999, [4]byte{1, 0, 5, 'F'}},
		{"humidity below range", -1, 'H', nil, nil, 0, 100, [4]byte{'-', '-', '-', '-'}},
		{"humidity above range", 101, 'H', nil, nil, 0, 100, [4]byte{'-', '-', '-', '-'}},
		{"humidity max in range", 100, 'H', nil, nil, 0, 100, [4]byte{1, 0, 0, 'H'}},
		{"zero", 0, 'C', nil, nil, -99, 999, [4]byte{blank, blank, 0, 'C'}},
	}
	for _, c := range cases {
		got := formatReading(c.value, c.unit, c.loThresh, c.hiThresh, c.minVal, c.maxVal)
		if got != c.want {
			t.Errorf("%s: formatReading(%d) = %v, want %v", c.name, c.value, got, c.want)
		}
	}
}
