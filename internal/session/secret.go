// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[REDACTED]"

// Secret holds a session token in memory. Every formatting path prints a
// placeholder, so a token that ends up in a log line stays hidden.
type Secret []byte

func (s Secret) String() string { return redacted }

// Format covers %v, %#v, %q and friends.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the token text.
func (s Secret) Reveal() string { return string(s) }

// Zero overwrites the bytes in place.
func (s *Secret) Zero() {
	if s == nil {
		return
	}
	clear(*s)
	*s = nil
}
