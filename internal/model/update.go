// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// UserUpdate enumerates the fields submitted by an edit. A nil field was not
// submitted and is left untouched by Apply.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// UpdateOption sets one field of a UserUpdate.
type UpdateOption func(*UserUpdate)

func WithFirstName(v string) UpdateOption { return func(u *UserUpdate) { u.FirstName = &v } }
func WithLastName(v string) UpdateOption  { return func(u *UserUpdate) { u.LastName = &v } }
func WithEmail(v string) UpdateOption     { return func(u *UserUpdate) { u.Email = &v } }
func WithAvatar(v string) UpdateOption    { return func(u *UserUpdate) { u.Avatar = &v } }

// NewUserUpdate builds an update from the given options.
func NewUserUpdate(opts ...UpdateOption) UserUpdate {
	var u UserUpdate
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// DiffUpdate returns an update holding only the fields of next that differ
// from prev.
func DiffUpdate(prev User, next UserFields) UserUpdate {
	var u UserUpdate
	if next.FirstName != prev.FirstName {
		u.FirstName = &next.FirstName
	}
	if next.LastName != prev.LastName {
		u.LastName = &next.LastName
	}
	if next.Email != prev.Email {
		u.Email = &next.Email
	}
	if next.Avatar != prev.Avatar {
		u.Avatar = &next.Avatar
	}
	return u
}

// IsEmpty reports whether no field is present.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Avatar == nil
}

// Apply returns target with the present fields overwritten. The ID is never
// touched.
func (u UserUpdate) Apply(target User) User {
	if u.FirstName != nil {
		target.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		target.LastName = *u.LastName
	}
	if u.Email != nil {
		target.Email = *u.Email
	}
	if u.Avatar != nil {
		target.Avatar = *u.Avatar
	}
	return target
}

// String lists the present fields as key=value pairs, e.g.
// `last_name="Weber"`. It does not reveal anything about absent fields.
func (u UserUpdate) String() string {
	var parts []string
	add := func(key string, v *string) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s=%q", key, *v))
		}
	}
	add("first_name", u.FirstName)
	add("last_name", u.LastName)
	add("email", u.Email)
	add("avatar", u.Avatar)
	return strings.Join(parts, " ")
}
