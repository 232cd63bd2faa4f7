// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twisim

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Display face geometry, in pixels.
const (
	cellW  = 60
	cellH  = 100
	segLen = 40
	segTh  = 8
	margin = 20
	capH   = 24
	faceW  = margin*2 + 4*cellW + 3*10
	faceH  = margin*2 + cellH + capH
)

// WebView serves a PNG picture of the simulated display face. Attach it to
// a Sim and register it on an http.ServeMux; every GET returns the current
// frame.
type WebView struct {
	mu    sync.Mutex
	state State
}

// NewWebView returns an http.Handler view of the display.
func NewWebView() *WebView {
	return &WebView{}
}

// Update implements Viewer.
func (v *WebView) Update(s State) {
	v.mu.Lock()
	v.state = s
	v.mu.Unlock()
}

// ServeHTTP implements http.Handler.
func (v *WebView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	v.mu.Lock()
	s := v.state
	v.mu.Unlock()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := v.render(s).EncodePNG(w); err != nil {
		// Headers are out already; nothing sensible left to do.
		return
	}
}

func (v *WebView) render(s State) *gg.Context {
	dc := gg.NewContext(faceW, faceH)
	dc.SetRGB(0.05, 0.05, 0.05)
	dc.Clear()

	br := float64(s.Brightness) / 255
	for i := 0; i < 4; i++ {
		x := float64(margin + i*(cellW+10))
		v.drawCell(dc, x, margin, segments(s.Cells[i]), s.Dots[i], br)
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.6, 0.6, 0.6)
	caption := fmt.Sprintf("TWIDisplay @0x%02x  mode=%d  brightness=%d", s.Addr, s.Mode, s.Brightness)
	dc.DrawString(caption, margin, faceH-8)
	return dc
}

// drawCell paints one 7-segment cell at (x, y), with its dot.
func (v *WebView) drawCell(dc *gg.Context, x, y float64, segs byte, dot bool, brightness float64) {
	// Horizontal segments: a (top), g (middle), d (bottom).
	hseg := []struct {
		mask byte
		dy   float64
	}{
		{segA, 0},
		{segG, float64(cellH)/2 - segTh/2},
		{segD, cellH - segTh},
	}
	// Vertical segments: f/b (top half), e/c (bottom half).
	vseg := []struct {
		mask   byte
		dx, dy float64
	}{
		{segF, 0, segTh},
		{segB, segLen + segTh, segTh},
		{segE, 0, float64(cellH)/2 + segTh/2},
		{segC, segLen + segTh, float64(cellH)/2 + segTh/2},
	}

	for _, h := range hseg {
		v.setSegColor(dc, segs&h.mask != 0, brightness)
		dc.DrawRoundedRectangle(x+segTh, y+h.dy, segLen-segTh, segTh, segTh/2)
		dc.Fill()
	}
	vlen := float64(cellH)/2 - segTh*1.5
	for _, vs := range vseg {
		v.setSegColor(dc, segs&vs.mask != 0, brightness)
		dc.DrawRoundedRectangle(x+vs.dx, y+vs.dy, segTh, vlen, segTh/2)
		dc.Fill()
	}

	v.setSegColor(dc, dot, brightness)
	dc.DrawCircle(x+cellW-2, y+cellH-segTh/2, segTh/2)
	dc.Fill()
}

func (v *WebView) setSegColor(dc *gg.Context, lit bool, brightness float64) {
	if lit {
		dc.SetRGB(brightness, 0.25*brightness, 0)
	} else {
		dc.SetRGB(0.12, 0.12, 0.12)
	}
}
