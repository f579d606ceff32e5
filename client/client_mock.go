// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"

	"github.com/toeirei/roster/internal/model"
)

type MockClient struct {
	BaseClient Client
	Overwrites MockClientOverwrites
}

type MockClientOverwrites struct {
	Close      func(ctx context.Context) error
	Login      func(ctx context.Context, creds model.Credentials) (string, error)
	ListUsers  func(ctx context.Context, page int) (model.Page, error)
	CreateUser func(ctx context.Context, fields model.UserFields) (model.User, error)
	UpdateUser func(ctx context.Context, id int, update model.UserUpdate) (model.User, error)
	DeleteUser func(ctx context.Context, id int) error
}

var _ Client = (*MockClient)(nil)

// client := NewMockClient(NewMemoryClient(), MockClientOverwrites{ /* overwrite Client methods here... */ })
func NewMockClient(base Client, overwrites MockClientOverwrites) *MockClient {
	return &MockClient{
		BaseClient: base,
		Overwrites: overwrites,
	}
}

// --- Client implementation ---

func (m *MockClient) Close(ctx context.Context) error {
	if m.Overwrites.Close != nil {
		return m.Overwrites.Close(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.Close(ctx)
	}
	panic("MockClient.Close not implemented")
}
func (m *MockClient) Login(ctx context.Context, creds model.Credentials) (string, error) {
	if m.Overwrites.Login != nil {
		return m.Overwrites.Login(ctx, creds)
	} else if m.BaseClient != nil {
		return m.BaseClient.Login(ctx, creds)
	}
	panic("MockClient.Login not implemented")
}
func (m *MockClient) ListUsers(ctx context.Context, page int) (model.Page, error) {
	if m.Overwrites.ListUsers != nil {
		return m.Overwrites.ListUsers(ctx, page)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListUsers(ctx, page)
	}
	panic("MockClient.ListUsers not implemented")
}
func (m *MockClient) CreateUser(ctx context.Context, fields model.UserFields) (model.User, error) {
	if m.Overwrites.CreateUser != nil {
		return m.Overwrites.CreateUser(ctx, fields)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateUser(ctx, fields)
	}
	panic("MockClient.CreateUser not implemented")
}
func (m *MockClient) UpdateUser(ctx context.Context, id int, update model.UserUpdate) (model.User, error) {
	if m.Overwrites.UpdateUser != nil {
		return m.Overwrites.UpdateUser(ctx, id, update)
	} else if m.BaseClient != nil {
		return m.BaseClient.UpdateUser(ctx, id, update)
	}
	panic("MockClient.UpdateUser not implemented")
}
func (m *MockClient) DeleteUser(ctx context.Context, id int) error {
	if m.Overwrites.DeleteUser != nil {
		return m.Overwrites.DeleteUser(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.DeleteUser(ctx, id)
	}
	panic("MockClient.DeleteUser not implemented")
}
