// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"fmt"
	"strings"

	"github.com/toeirei/roster/internal/model"
)

// Demo credentials accepted by the public reqres service.
const (
	DemoEmail    = "eve.holt@reqres.in"
	DemoPassword = "cityslicka"
)

var sampleNames = [][2]string{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// SampleUsers returns the twelve users served by the public reqres service.
func SampleUsers() []model.User {
	users := make([]model.User, 0, len(sampleNames))
	for i, n := range sampleNames {
		id := i + 1
		users = append(users, model.User{
			ID:        id,
			FirstName: n[0],
			LastName:  n[1],
			Email:     strings.ToLower(n[0] + "." + n[1] + "@reqres.in"),
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		})
	}
	return users
}
