// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/roster/internal/model"
)

func TestMemoryClient_Pagination(t *testing.T) {
	c := NewMemoryClient(WithSampleData(), WithPerPage(5))
	ctx := context.Background()

	p, err := c.ListUsers(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.TotalPages)
	assert.Len(t, p.Items, 2)
	assert.Equal(t, 11, p.Items[0].ID)

	empty := NewMemoryClient()
	p, err = empty.ListUsers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestMemoryClient_CreateAssignsSerialIDs(t *testing.T) {
	c := NewMemoryClient(WithUsers(model.User{ID: 4}))
	ctx := context.Background()

	a, err := c.CreateUser(ctx, model.UserFields{FirstName: "a"})
	require.NoError(t, err)
	b, err := c.CreateUser(ctx, model.UserFields{FirstName: "b"})
	require.NoError(t, err)

	assert.Equal(t, 5, a.ID)
	assert.Equal(t, 6, b.ID)
}

func TestMemoryClient_UpdateDeleteMissing(t *testing.T) {
	c := NewMemoryClient()
	ctx := context.Background()

	_, err := c.UpdateUser(ctx, 9, model.NewUserUpdate(model.WithEmail("x")))
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 404, se.Code)

	assert.Error(t, c.DeleteUser(ctx, 9))
}

func TestMockClient_OverwriteAndDelegate(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockClient(NewMemoryClient(WithSampleData()), MockClientOverwrites{
		DeleteUser: func(ctx context.Context, id int) error { return boom },
	})
	ctx := context.Background()

	assert.ErrorIs(t, m.DeleteUser(ctx, 1), boom)
	p, err := m.ListUsers(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, p.Items, 6)

	bare := NewMockClient(nil, MockClientOverwrites{})
	assert.Panics(t, func() { _ = bare.Close(ctx) })
}

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{Code: 400, Message: "Missing password"}
	assert.Equal(t, "remote returned 400 Bad Request: Missing password", err.Error())
	assert.Equal(t, "remote returned 404 Not Found", (&StatusError{Code: 404}).Error())
	assert.Equal(t, "", ErrorMessage(errors.New("plain")))
}

func TestMemoryClient_AccountsKeepOnlyHashes(t *testing.T) {
	c := NewMemoryClient(WithAccount("Eve.Holt@reqres.in", "cityslicka"))
	ctx := context.Background()

	assert.NotEqual(t, []byte("cityslicka"), c.accounts["eve.holt@reqres.in"])

	token, err := c.Login(ctx, model.Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"})
	require.NoError(t, err)
	assert.True(t, c.ValidToken(token))

	_, err = c.Login(ctx, model.Credentials{Email: "eve.holt@reqres.in", Password: "wrong"})
	assert.Equal(t, "user not found", ErrorMessage(err))
}
