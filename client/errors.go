// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyToken is returned when the service accepts a login without issuing
// a token.
var ErrEmptyToken = errors.New("login succeeded without a token")

// StatusError is returned for every non-2xx response. Message carries the
// service's "error" field when it sent one.
type StatusError struct {
	Code      int
	Message   string
	RequestID string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote returned %d %s: %s", e.Code, http.StatusText(e.Code), e.Message)
	}
	return fmt.Sprintf("remote returned %d %s", e.Code, http.StatusText(e.Code))
}

// ErrorMessage returns the service-supplied message carried by err, or "".
func ErrorMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
