// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twisim

import (
	"bytes"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// TermOpts represents the options for the terminal view.
type TermOpts struct {
	// W is where frames are written. Defaults to a colorable stdout.
	W io.Writer
	// Palette maps colors to ANSI codes. Defaults to ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// TermView renders the simulated display as a small grid of colored blocks
// in the terminal, three rows per frame, redrawn in place on every update.
//
// Useful while you wait for the actual display to come by mail.
type TermView struct {
	w       io.Writer
	palette ansi256.Palette
	drawn   bool

	buf bytes.Buffer
}

// NewTermView returns a terminal view of the display.
func NewTermView(opts *TermOpts) *TermView {
	if opts == nil {
		opts = &TermOpts{}
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &TermView{w: w, palette: *p}
}

// Each cell is drawn on a 3x3 block grid plus a dot column:
//
//	.A.
//	FGB
//	EDC  (dot)
var termGrid = [3][3]byte{
	{0, segA, 0},
	{segF, segG, segB},
	{segE, segD, segC},
}

// Update implements Viewer.
func (v *TermView) Update(s State) {
	lit := color.NRGBA{scale(255, s.Brightness), scale(64, s.Brightness), 0, 255}
	unlit := color.NRGBA{24, 24, 24, 255}

	v.buf.Reset()
	if v.drawn {
		// Redraw over the previous frame.
		v.buf.WriteString("\033[3A\r")
	}
	for row := 0; row < 3; row++ {
		v.buf.WriteString("\033[0m")
		for cell := 0; cell < 4; cell++ {
			segs := segments(s.Cells[cell])
			for col := 0; col < 3; col++ {
				mask := termGrid[row][col]
				c := unlit
				if mask != 0 && segs&mask != 0 {
					c = lit
				}
				v.buf.WriteString(v.palette.Block(c))
			}
			c := unlit
			if row == 2 && s.Dots[cell] {
				c = lit
			}
			if row == 2 {
				v.buf.WriteString(v.palette.Block(c))
			} else {
				v.buf.WriteString(v.palette.Block(unlit))
			}
			v.buf.WriteString("\033[0m ")
		}
		v.buf.WriteString("\n")
	}
	v.drawn = true
	_, _ = v.buf.WriteTo(v.w)
}

// Halt restores the terminal attributes.
func (v *TermView) Halt() error {
	_, err := v.w.Write([]byte("\033[0m\n"))
	return err
}

func scale(c, brightness uint8) uint8 {
	return uint8(uint16(c) * uint16(brightness) / 255)
}
