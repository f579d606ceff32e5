// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := map[string]Route{
		"":                RouteEntry,
		"/":               RouteEntry,
		"/users":          RouteUsers,
		"/users/":         RouteUsers,
		"/users?page=2":   RouteUsers,
		"/users/?page=2":  RouteUsers,
		"/users/#top":     RouteUsers,
		"/?next=/users":   RouteEntry,
		" /users ":        RouteUsers,
		"/login":          RouteEntry,
		"/users/12":       RouteEntry,
		"/does/not/exist": RouteEntry,
	}
	for in, want := range cases {
		assert.Equalf(t, want, Resolve(in), "Resolve(%q)", in)
	}
}
