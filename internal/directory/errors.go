// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import (
	"errors"
	"fmt"
)

// ErrInvalidPage is returned for page numbers below 1 or past the last page.
var ErrInvalidPage = errors.New("invalid page number")

// ErrDiscarded is returned when the view that issued a call closed before the
// call finished; its result was not applied.
var ErrDiscarded = errors.New("result discarded: view closed")

// NetworkError wraps a failed remote call. Message is the text shown to the
// user.
type NetworkError struct {
	Op      string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
