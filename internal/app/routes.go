// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package app

import "strings"

type Route string

const (
	// RouteEntry is the login screen.
	RouteEntry Route = "/"
	// RouteUsers is the directory, reachable only with a session.
	RouteUsers Route = "/users"
)

// Resolve maps a path to a known route. Anything unknown lands on the entry
// route.
func Resolve(path string) Route {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	switch p {
	case "":
		return RouteEntry
	case string(RouteUsers):
		return RouteUsers
	default:
		return RouteEntry
	}
}
