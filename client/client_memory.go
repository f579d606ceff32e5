// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPerPage matches the page size of the public reqres service.
const DefaultPerPage = 6

// MemoryClient is an in-process directory. It answers like the remote
// service, including its error messages, and is safe for concurrent use.
type MemoryClient struct {
	mu sync.Mutex
	// local temporary repository, kept ordered by id
	users []model.User
	// lower-cased email -> bcrypt hash
	accounts map[string][]byte
	tokens   map[string]string
	perPage  int
	// id counter to simulate a serial column
	nextID int
}

// *MemoryClient implements Client
var _ Client = (*MemoryClient)(nil)

type MemoryOption func(*MemoryClient)

// WithPerPage sets the page size.
func WithPerPage(n int) MemoryOption {
	return func(c *MemoryClient) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithUsers seeds the directory. Ids are kept as given.
func WithUsers(users ...model.User) MemoryOption {
	return func(c *MemoryClient) {
		for _, u := range users {
			c.insert(u)
		}
	}
}

// WithAccount registers login credentials. Only the bcrypt hash of password
// is kept.
func WithAccount(email, password string) MemoryOption {
	return func(c *MemoryClient) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logging.Warnf("memory client: account %s not added: %v", email, err)
			return
		}
		c.accounts[strings.ToLower(email)] = hash
	}
}

// WithSampleData seeds the twelve sample users and the demo account of the
// public reqres service.
func WithSampleData() MemoryOption {
	return func(c *MemoryClient) {
		WithUsers(SampleUsers()...)(c)
		WithAccount(DemoEmail, DemoPassword)(c)
	}
}

// --- Lifecycle & Initialization ---

func NewMemoryClient(opts ...MemoryOption) *MemoryClient {
	c := &MemoryClient{
		accounts: map[string][]byte{},
		tokens:   map[string]string{},
		perPage:  DefaultPerPage,
		nextID:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryClient) Close(ctx context.Context) error {
	return nil
}

// --- Authentication ---

func (c *MemoryClient) Login(ctx context.Context, creds model.Credentials) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if creds.Email == "" {
		return "", &StatusError{Code: http.StatusBadRequest, Message: "Missing email or username"}
	}
	if creds.Password == "" {
		return "", &StatusError{Code: http.StatusBadRequest, Message: "Missing password"}
	}
	hash, ok := c.accounts[strings.ToLower(creds.Email)]
	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		return "", &StatusError{Code: http.StatusBadRequest, Message: "user not found"}
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	c.tokens[token] = creds.Email
	return token, nil
}

// ValidToken reports whether token was issued by Login.
func (c *MemoryClient) ValidToken(token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tokens[token]
	return ok
}

// --- Users ---

func (c *MemoryClient) ListUsers(ctx context.Context, page int) (model.Page, error) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	total := len(c.users)
	totalPages := (total + c.perPage - 1) / c.perPage
	items := []model.User{}
	if start := (page - 1) * c.perPage; start < total {
		end := min(start+c.perPage, total)
		items = append(items, c.users[start:end]...)
	}
	return model.Page{
		Number:     page,
		Items:      items,
		TotalPages: max(totalPages, 1),
		PerPage:    c.perPage,
		Total:      total,
	}, nil
}

// GetUser returns the stored user with id.
func (c *MemoryClient) GetUser(ctx context.Context, id int) (model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.find(id); ok {
		return c.users[i], nil
	}
	return model.User{}, notFound(id)
}

func (c *MemoryClient) CreateUser(ctx context.Context, fields model.UserFields) (model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u := model.User{
		ID:        c.nextID,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Avatar:    fields.Avatar,
	}
	c.insert(u)
	return u, nil
}

func (c *MemoryClient) UpdateUser(ctx context.Context, id int, update model.UserUpdate) (model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.find(id)
	if !ok {
		return model.User{}, notFound(id)
	}
	c.users[i] = update.Apply(c.users[i])
	return c.users[i], nil
}

func (c *MemoryClient) DeleteUser(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.find(id)
	if !ok {
		return notFound(id)
	}
	c.users = slices.Delete(c.users, i, i+1)
	return nil
}

// Len returns the number of stored users.
func (c *MemoryClient) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.users)
}

func (c *MemoryClient) find(id int) (int, bool) {
	return slices.BinarySearchFunc(c.users, id, func(u model.User, id int) int {
		return u.ID - id
	})
}

// insert places u by id, replacing an existing entry with the same id.
func (c *MemoryClient) insert(u model.User) {
	i, ok := c.find(u.ID)
	if ok {
		c.users[i] = u
	} else {
		c.users = slices.Insert(c.users, i, u)
	}
	if u.ID >= c.nextID {
		c.nextID = u.ID + 1
	}
}

func notFound(id int) error {
	return &StatusError{Code: http.StatusNotFound, Message: fmt.Sprintf("user %d not found", id)}
}
