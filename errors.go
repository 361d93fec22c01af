// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

import "github.com/pkg/errors"

// Error kinds returned by this package. Returned errors wrap one of these
// with context; use errors.Cause (or errors.Is) to test for them.
//
var (
	// ErrInvalidInput is returned for an empty minterm list or a negative
	// minterm.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacityExceeded is returned when a function has more variables than
	// a fixed capacity consumer (like the circuit simulator) can handle.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvariantViolation signals a bug in the minimizer, never a user
	// error.
	ErrInvariantViolation = errors.New("invariant violation")
)

func invalidInput(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

func invariant(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
