// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	config Config
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	// nil when Config.RateLimit is zero
	limiter *rate.Limiter
}

// *HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)

type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests use the one of
// an httptest.Server).
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTokenSource sets where the bearer token is read from when
// Config.SendToken is enabled.
func WithTokenSource(ts TokenSource) HTTPOption {
	return func(c *HTTPClient) { c.tokens = ts }
}

// NewHTTPClient validates config and returns a ready client.
func NewHTTPClient(config Config, opts ...HTTPOption) (*HTTPClient, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", config.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", config.BaseURL)
	}
	if config.Timeout <= 0 {
		config.Timeout = NewDefaultConfig().Timeout
	}
	if config.UserAgent == "" {
		config.UserAgent = NewDefaultConfig().UserAgent
	}

	c := &HTTPClient{
		config: config,
		base:   base,
		http:   &http.Client{Timeout: config.Timeout},
	}
	if config.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), max(config.Burst, 1))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// --- Lifecycle ---

func (c *HTTPClient) Close(ctx context.Context) error {
	c.http.CloseIdleConnections()
	return nil
}

// --- Authentication ---

type loginResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, creds model.Credentials) (string, error) {
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", ErrEmptyToken
	}
	return out.Token, nil
}

// --- Users ---

type listResponse struct {
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
	Data       []model.User `json:"data"`
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (model.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var out listResponse
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &out); err != nil {
		return model.Page{}, err
	}
	return listToPage(page, out), nil
}

func listToPage(requested int, out listResponse) model.Page {
	totalPages := out.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	items := out.Data
	if items == nil {
		items = []model.User{}
	}
	return model.Page{
		Number:     requested,
		Items:      items,
		TotalPages: totalPages,
		PerPage:    out.PerPage,
		Total:      out.Total,
	}
}

// userResponse accepts ids sent either as numbers or as numeric strings; the
// reqres create endpoint answers with a string id.
type userResponse struct {
	ID        flexID `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

func (r userResponse) user(fallback model.UserFields) model.User {
	u := model.User{
		ID:        int(r.ID),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Avatar:    r.Avatar,
	}
	if u.FirstName == "" {
		u.FirstName = fallback.FirstName
	}
	if u.LastName == "" {
		u.LastName = fallback.LastName
	}
	if u.Email == "" {
		u.Email = fallback.Email
	}
	if u.Avatar == "" {
		u.Avatar = fallback.Avatar
	}
	return u
}

func (c *HTTPClient) CreateUser(ctx context.Context, fields model.UserFields) (model.User, error) {
	var out userResponse
	if err := c.do(ctx, http.MethodPost, "/users", nil, fields, &out); err != nil {
		return model.User{}, err
	}
	if out.ID == 0 {
		return model.User{}, errors.New("create response carries no id")
	}
	return out.user(fields), nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int, update model.UserUpdate) (model.User, error) {
	var out userResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), nil, update, &out); err != nil {
		return model.User{}, err
	}
	u := out.user(model.UserFields{})
	u.ID = id
	return u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil, nil)
}

// --- transport ---

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: rate limit: %w", method, path, err)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.APIKey != "" {
		req.Header.Set("x-api-key", c.config.APIKey)
	}
	if c.config.SendToken && c.tokens != nil {
		if token, err := c.tokens.Get(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := logging.With("request_id", requestID, "method", method, "path", path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("request failed", "err", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	log.Debug("request done", "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeStatusError(resp, requestID)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeStatusError(resp *http.Response, requestID string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	se := &StatusError{Code: resp.StatusCode, RequestID: requestID}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		se.Message = payload.Error
	}
	return se
}

type flexID int

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("id %s is not numeric: %w", s, err)
	}
	*f = flexID(n)
	return nil
}
