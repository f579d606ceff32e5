// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import "time"

// DefaultBaseURL is the public reqres service.
const DefaultBaseURL = "https://reqres.in/api"

type Config struct {
	BaseURL string
	// APIKey is sent as x-api-key when set.
	APIKey  string
	Timeout time.Duration
	// SendToken attaches the session token as a bearer credential.
	SendToken bool
	UserAgent string
	// RateLimit caps outgoing requests per second. Zero disables the limit.
	RateLimit float64
	Burst     int
}

func NewDefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   15 * time.Second,
		UserAgent: "roster",
	}
}
