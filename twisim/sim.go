// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package twisim emulates an Akafugu TWIDisplay controller behind an
// i2c.Bus, so code driving the display can run without hardware.
//
// The simulator decodes the controller's register protocol into a small
// display state (four cells, four dots, brightness, mode, bus address) and
// pushes every state change to attached viewers: a terminal view rendering
// 7-segment cells with ANSI colors, and an http.Handler serving a PNG
// picture of the display face.
package twisim

import (
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/twidisplay"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Opcodes of the device firmware, as seen from the device side.
const (
	opBrightness     byte = 0x80
	opI2CAddress     byte = 0x81
	opClearDisplay   byte = 0x82
	opMode           byte = 0x83
	opDots           byte = 0x85
	opPosition       byte = 0x89
	opDisplayAddress byte = 0x90
)

// State is a snapshot of the simulated display.
type State struct {
	// Addr is the bus address the device currently answers on.
	Addr uint16
	// Cells holds the four cell codes, leftmost first. Codes 0-9 are bare
	// digits, everything else is ASCII.
	Cells [4]byte
	// Dots holds the four per-cell dot switches.
	Dots [4]bool
	// Brightness is the raw 0-255 brightness setting.
	Brightness uint8
	// Mode is the positioning mode for bytes written without a position.
	Mode twidisplay.Mode
}

// Viewer receives a state snapshot after every change.
type Viewer interface {
	Update(s State)
}

// Sim is a simulated TWIDisplay. It implements i2c.Bus and can be handed
// directly to twidisplay.NewI2C.
type Sim struct {
	mu      sync.Mutex
	state   State
	cursor  int
	viewers []Viewer
}

// New returns a simulated display answering on addr.
func New(addr uint16) *Sim {
	s := &Sim{}
	s.state.Addr = addr
	s.state.Brightness = 255
	s.clearLocked()
	return s
}

// Attach registers a viewer and immediately sends it the current state.
func (s *Sim) Attach(v Viewer) {
	s.mu.Lock()
	s.viewers = append(s.viewers, v)
	st := s.state
	s.mu.Unlock()
	v.Update(st)
}

// Snapshot returns a copy of the current display state.
func (s *Sim) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Sim) String() string {
	return fmt.Sprintf("twisim(0x%02x)", s.Snapshot().Addr)
}

// SetSpeed implements i2c.Bus. The simulated device has no timing.
func (s *Sim) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx implements i2c.Bus. Reads are rejected, matching the write-only use of
// the real controller.
func (s *Sim) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return fmt.Errorf("twisim: read not supported")
	}
	if len(w) == 0 {
		return fmt.Errorf("twisim: empty write")
	}
	s.mu.Lock()
	if addr != s.state.Addr {
		s.mu.Unlock()
		return fmt.Errorf("twisim: no device at 0x%02x", addr)
	}
	if err := s.applyLocked(w); err != nil {
		s.mu.Unlock()
		return err
	}
	st := s.state
	viewers := s.viewers
	s.mu.Unlock()

	for _, v := range viewers {
		v.Update(st)
	}
	return nil
}

func (s *Sim) applyLocked(w []byte) error {
	switch w[0] {
	case opBrightness:
		if len(w) != 2 {
			return fmt.Errorf("twisim: brightness wants 1 payload byte, got %d", len(w)-1)
		}
		s.state.Brightness = w[1]
	case opI2CAddress:
		if len(w) != 2 {
			return fmt.Errorf("twisim: address wants 1 payload byte, got %d", len(w)-1)
		}
		// The <0x40 guard is driver policy; the device takes any byte.
		s.state.Addr = uint16(w[1])
	case opClearDisplay:
		s.clearLocked()
	case opMode:
		if len(w) != 2 {
			return fmt.Errorf("twisim: mode wants 1 payload byte, got %d", len(w)-1)
		}
		s.state.Mode = twidisplay.Mode(w[1])
	case opDots:
		if len(w) != 2 {
			return fmt.Errorf("twisim: dots wants 1 payload byte, got %d", len(w)-1)
		}
		for i := range s.state.Dots {
			s.state.Dots[i] = w[1]&(1<<(uint(i)+1)) != 0
		}
	case opPosition:
		if len(w) != 3 {
			return fmt.Errorf("twisim: position wants 2 payload bytes, got %d", len(w)-1)
		}
		if w[1] > 3 {
			return fmt.Errorf("twisim: cell %d out of range", w[1])
		}
		s.state.Cells[w[1]] = w[2]
	case opDisplayAddress:
		// The device renders 'A' followed by its decimal address.
		a := s.state.Addr
		s.state.Cells = [4]byte{'A', byte(a / 100), byte(a / 10 % 10), byte(a % 10)}
		s.cursor = 0
	default:
		if len(w) != 1 {
			return fmt.Errorf("twisim: unknown opcode 0x%02x", w[0])
		}
		s.pushLocked(w[0])
	}
	return nil
}

// pushLocked places a bare digit or character according to the active mode.
func (s *Sim) pushLocked(code byte) {
	if s.state.Mode == twidisplay.Scroll && s.cursor > 3 {
		// Display full: shift everything left, new byte enters at the right.
		copy(s.state.Cells[0:], s.state.Cells[1:])
		s.state.Cells[3] = code
		return
	}
	if s.cursor > 3 {
		s.cursor = 0 // Rotate wraps
	}
	s.state.Cells[s.cursor] = code
	s.cursor++
}

func (s *Sim) clearLocked() {
	s.state.Cells = [4]byte{' ', ' ', ' ', ' '}
	s.state.Dots = [4]bool{}
	s.cursor = 0
}

var _ i2c.Bus = &Sim{}
