// Package api is an HTTP client for the KOACH server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/koach/internal/common"
)

var (
	// ErrUnavailable means the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")
	// ErrNotLoggedIn is returned by profile calls made without a token.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Error is a non-2xx answer from the server.
type Error struct {
	Status  int
	Message string
	kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Unwrap exposes the common sentinel matching the answer, if any.
func (e *Error) Unwrap() error { return e.kind }

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the session token kept from the last register or login.
func (c *Client) Token() string { return c.token }

// Logout forgets the session token. The token itself stays valid on the
// server until it expires.
func (c *Client) Logout() { c.token = "" }

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var resp struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/register", false, body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", false, body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/profile", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name string) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/update-profile", true, map[string]string{"name": name}, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// DeleteProfile deletes the account and forgets the token.
func (c *Client) DeleteProfile(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/delete-profile", true, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, authed bool, in, out any) error {
	if authed && c.token == "" {
		return ErrNotLoggedIn
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &Error{Status: resp.StatusCode, Message: msg.Message, kind: classify(resp.StatusCode, msg.Message)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classify maps a server answer back to the shared sentinel errors.
func classify(status int, message string) error {
	switch status {
	case http.StatusUnauthorized:
		if message == "Invalid Token" {
			return common.ErrInvalidToken
		}
		return common.ErrMissingToken
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest:
		switch message {
		case "User already exists":
			return common.ErrorAlreadyExists
		case "Invalid credentials":
			return common.ErrorInvalidCredentials
		}
	case http.StatusInternalServerError:
		return common.ErrorInternal
	}
	return nil
}
