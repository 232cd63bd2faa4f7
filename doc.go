// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package twidisplay controls an Akafugu TWIDisplay 4-digit 7-segment
// display controller over I²C.
//
// The controller accepts single-byte opcodes, most followed by one or two
// payload bytes, and is driven write-only: the firmware exposes a few read
// functions but this driver never reads back. Every operation is a complete
// transmission; the driver buffers nothing and keeps no display state besides
// the bus handle and the device address.
//
// A Dev is not safe for concurrent use. Operations that issue several writes
// (DisplayNumber, DisplayTime, DisplayDate, SendText, the temperature and
// humidity readouts) are not atomic: the first failed write aborts the rest
// and the cells already written stay on the display.
//
// Product page: https://www.akafugu.jp/posts/products/twidisplay/
package twidisplay
