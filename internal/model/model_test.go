// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserUpdate_ApplyOnlyPresentFields(t *testing.T) {
	u := User{ID: 7, FirstName: "Emma", LastName: "Wong", Email: "emma@x.io", Avatar: "a.png"}

	got := NewUserUpdate(WithEmail("new@x.io")).Apply(u)

	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "new@x.io", got.Email)
	assert.Equal(t, "Emma", got.FirstName)
	assert.Equal(t, "Wong", got.LastName)
	assert.Equal(t, "a.png", got.Avatar)
}

func TestUserUpdate_EmptyStringIsPresent(t *testing.T) {
	u := User{ID: 1, LastName: "Holt"}
	got := NewUserUpdate(WithLastName("")).Apply(u)
	assert.Equal(t, "", got.LastName)
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())
	assert.False(t, NewUserUpdate(WithAvatar("x")).IsEmpty())
}

func TestUserUpdate_String(t *testing.T) {
	assert.Equal(t, "", UserUpdate{}.String())
	assert.Equal(t, `last_name="Weber"`, NewUserUpdate(WithLastName("Weber")).String())
	assert.Equal(t, `first_name="" email="x@y.io"`, NewUserUpdate(WithEmail("x@y.io"), WithFirstName("")).String())
}

func TestDiffUpdate(t *testing.T) {
	prev := User{ID: 2, FirstName: "Janet", LastName: "Weaver", Email: "janet@x.io", Avatar: "j.png"}
	next := prev.Fields()
	next.FirstName = "Jan"

	upd := DiffUpdate(prev, next)
	if assert.NotNil(t, upd.FirstName) {
		assert.Equal(t, "Jan", *upd.FirstName)
	}
	assert.Nil(t, upd.LastName)
	assert.Nil(t, upd.Email)
	assert.Nil(t, upd.Avatar)

	assert.True(t, DiffUpdate(prev, prev.Fields()).IsEmpty())
}

func TestPage_CloneAndIndex(t *testing.T) {
	p := Page{Number: 2, TotalPages: 2, Items: []User{{ID: 1}, {ID: 5}}}
	c := p.Clone()
	c.Items[0].ID = 99

	assert.Equal(t, 1, p.Items[0].ID)
	assert.Equal(t, 1, p.IndexOf(5))
	assert.Equal(t, -1, p.IndexOf(42))
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "George", User{FirstName: "George"}.FullName())
	assert.Equal(t, "#3 Emma Wong <e@x.io>", User{ID: 3, FirstName: "Emma", LastName: "Wong", Email: "e@x.io"}.String())
}

func TestMutationKind_String(t *testing.T) {
	assert.Equal(t, "create", MutationCreate.String())
	assert.Equal(t, "update", MutationUpdate.String())
	assert.Equal(t, "delete", MutationDelete.String())
	assert.Equal(t, "unknown", MutationKind(0).String())
}
