// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twisim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/twidisplay"
)

func TestTermViewFrames(t *testing.T) {
	var buf bytes.Buffer
	v := NewTermView(&TermOpts{W: &buf})

	sim := New(twidisplay.DefaultAddress)
	sim.Attach(v)

	first := buf.String()
	if strings.Count(first, "\n") != 3 {
		t.Fatalf("first frame has %d lines, want 3", strings.Count(first, "\n"))
	}
	if strings.Contains(first, "\033[3A") {
		t.Fatal("first frame must not move the cursor up")
	}

	buf.Reset()
	d := twidisplay.NewI2C(sim, twidisplay.DefaultAddress)
	if err := d.DisplayNumber(8888); err != nil {
		t.Fatal(err)
	}
	frame := buf.String()
	if !strings.Contains(frame, "\033[3A") {
		t.Fatal("later frames must redraw in place")
	}
}

func TestTermViewHalt(t *testing.T) {
	var buf bytes.Buffer
	v := NewTermView(&TermOpts{W: &buf})
	if err := v.Halt(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[0m") {
		t.Fatal("Halt must reset terminal attributes")
	}
}
