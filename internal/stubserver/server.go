// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stubserver serves a reqres-compatible directory API from any
// client.Client, normally a client.MemoryClient. It backs offline
// development (`roster stub-server`) and the HTTP client tests.
package stubserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
)

// Prefix is the path prefix of every route, matching the public service.
const Prefix = "/api"

type Server struct {
	store  client.Client
	apiKey string
	engine *gin.Engine
}

type Option func(*Server)

// WithAPIKey makes every route require the x-api-key header.
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// New builds the gin engine around store.
func New(store client.Client, opts ...Option) *Server {
	s := &Server{store: store}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	api := r.Group(Prefix)
	api.Use(s.requireAPIKey())
	api.POST("/login", s.login)
	api.GET("/users", s.listUsers)
	api.POST("/users", s.createUser)
	api.PUT("/users/:id", s.updateUser)
	api.DELETE("/users/:id", s.deleteUser)

	s.engine = r
	return s
}

// Handler exposes the engine for httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetHeader("X-Request-ID"),
		).Debug("stub request", "took", time.Since(start))
	}
}

func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.apiKey != "" && c.GetHeader("x-api-key") != s.apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing API key"})
			return
		}
		c.Next()
	}
}

func (s *Server) login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or username"})
		return
	}
	token, err := s.store.Login(c.Request.Context(), creds)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) listUsers(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = n
	}
	p, err := s.store.ListUsers(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":        p.Number,
		"per_page":    p.PerPage,
		"total":       p.Total,
		"total_pages": p.TotalPages,
		"data":        p.Items,
	})
}

func (s *Server) createUser(c *gin.Context) {
	var fields model.UserFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	u, err := s.store.CreateUser(c.Request.Context(), fields)
	if err != nil {
		writeError(c, err)
		return
	}
	// the public service answers creates with a string id
	c.JSON(http.StatusCreated, gin.H{
		"id":         strconv.Itoa(u.ID),
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"avatar":     u.Avatar,
		"createdAt":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var update model.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	u, err := s.store.UpdateUser(c.Request.Context(), id, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"avatar":     u.Avatar,
		"updatedAt":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	var se *client.StatusError
	if errors.As(err, &se) {
		c.JSON(se.Code, gin.H{"error": se.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
