// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twidisplay

import "fmt"

// InvalidInputError is returned when an argument falls outside the range the
// display can show. It is raised before any byte is written to the bus.
type InvalidInputError struct{}

func (e *InvalidInputError) Error() string {
	return "twidisplay: invalid input data"
}

// wrap tags a bus error with the package name. The transport error stays
// available through errors.Unwrap.
func wrap(err error) error {
	return fmt.Errorf("twidisplay: %w", err)
}
