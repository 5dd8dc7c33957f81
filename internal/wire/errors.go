// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package wire

import "fmt"

// LengthError reports that a tagged payload had the wrong byte count
// for the message its tag claims to be.
type LengthError struct {
	Expected int
	Found    int
}

func newLengthError(expected, found int) *LengthError {
	return &LengthError{Expected: expected, Found: found}
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("expected %d bytes, found %d", e.Expected, e.Found)
}

// DeserializationError reports that a field within an otherwise
// correctly-sized payload failed to decode (an off-curve point, a
// non-canonical scalar).
type DeserializationError struct {
	Field string
	Cause error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Cause)
}

func (e *DeserializationError) Unwrap() error { return e.Cause }
