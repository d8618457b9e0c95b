// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrNoToken is returned when login succeeds without a token in the body
var ErrNoToken = errors.New("login response has no token")

// APIError is a non-2xx answer from the backend. Message is the body text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the account and chat backend over HTTP+JSON.
type Client struct {
	baseURL string
	http    *http.Client
	retries int
	backoff time.Duration
}

type Options struct {
	Timeout time.Duration
	Retries int           // extra attempts for idempotent calls
	Backoff time.Duration // wait before retry n is n*Backoff
}

func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 250 * time.Millisecond
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		retries: opts.Retries,
		backoff: opts.Backoff,
	}
}

// User is the account record returned by signup and current-user
type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult holds the session token and, when the backend sends one, a
// display name
type LoginResult struct {
	Token string
	Name  string
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	User  *struct {
		Name string `json:"name"`
	} `json:"user"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", req, false)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := json.Unmarshal(resp.body, &u); err != nil {
		return User{}, fmt.Errorf("parsing signup response: %w", err)
	}
	return u, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, false)
	if err != nil {
		return LoginResult{}, err
	}

	var lr loginResponse
	if err := json.Unmarshal(resp.body, &lr); err != nil {
		return LoginResult{}, fmt.Errorf("parsing login response: %w", err)
	}
	if lr.Token == "" {
		return LoginResult{}, ErrNoToken
	}

	name := lr.Name
	if name == "" && lr.User != nil {
		name = lr.User.Name
	}
	return LoginResult{Token: lr.Token, Name: name}, nil
}

// CurrentUser resolves a session token to its account
func (c *Client) CurrentUser(ctx context.Context, token string) (User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/auth/current-user", token, nil, true)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := json.Unmarshal(resp.body, &u); err != nil {
		return User{}, fmt.Errorf("parsing current-user response: %w", err)
	}
	return u, nil
}

// Logout invalidates the token on the backend
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, false)
	return err
}

// ForgotPassword asks the backend to email a one-time code
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": email}, false)
	return err
}

func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	body := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	_, err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", "", body, false)
	return err
}

// Chat sends one message and returns the assistant's reply text
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/chat", "", map[string]string{"message": message}, true)
	if err != nil {
		return "", err
	}
	return ExtractReply(resp.contentType, resp.body), nil
}

// ExtractReply pulls the reply text out of a chat response. JSON bodies are
// searched for reply, message and response in that order, falling back to
// the raw JSON; anything else is returned as text.
func ExtractReply(contentType string, body []byte) string {
	if !strings.Contains(contentType, "application/json") {
		return string(body)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return string(body)
	}
	for _, key := range []string{"reply", "message", "response"} {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(body))
}

type response struct {
	contentType string
	body        []byte
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any, idempotent bool) (*response, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
	}

	attempts := 1
	if idempotent {
		attempts += c.retries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying backend call", "path", path, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.backoff):
			}
		}

		resp, err := c.once(ctx, method, path, token, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, method, path, token string, body []byte) (*response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}
	return &response{contentType: resp.Header.Get("Content-Type"), body: respBody}, nil
}

// retryable reports whether a failed call may succeed on another attempt.
// Transport failures and gateway errors qualify; other API errors do not.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	return true
}
