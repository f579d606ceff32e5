// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared by the directory core, the
// remote client and the user interfaces.
package model

import (
	"fmt"
	"strings"
)

// DefaultAvatar is the avatar offered for new users when none is given.
const DefaultAvatar = "https://reqres.in/img/faces/1-image.jpg"

// User is one directory record. ID is assigned by the remote service and
// never changes afterwards.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// FullName returns "first last" with surplus whitespace trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// String returns a short single-line representation.
func (u User) String() string {
	return fmt.Sprintf("#%d %s <%s>", u.ID, u.FullName(), u.Email)
}

// Fields returns the mutable fields of u.
func (u User) Fields() UserFields {
	return UserFields{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Avatar:    u.Avatar,
	}
}

// UserFields is the payload sent when creating a user.
type UserFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// NewUserFields returns an empty payload with the default avatar.
func NewUserFields() UserFields {
	return UserFields{Avatar: DefaultAvatar}
}

// Credentials are submitted to the authentication endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
