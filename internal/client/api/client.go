// Package api implements the HTTP client for the FitLens authentication
// endpoints. It speaks JSON to POST /users/login and POST /users/signup and
// normalizes every failure mode into typed errors: ErrUnavailable for
// transport problems, *ServerError for non-200 responses.
//
// The client does not retry and does not cache. Requests are bounded by the
// timeout given at construction time.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fittlens/fittlens-cli/internal/client/models"
)

// DefaultDeviceID is substituted when a signup request carries no device id.
// Callers should not rely on it and should always supply their own.
const DefaultDeviceID = "default-device"

// Client defines the remote operations the session layer needs.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*Authorization, error)
	Signup(ctx context.Context, req models.SignupRequest) (*Authorization, error)
}

// Authorization is a successful response from either auth endpoint:
// a bearer token plus the profile of the account it belongs to.
type Authorization struct {
	Token   string
	Profile models.UserProfile
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	DeviceID string `json:"deviceId"`
}

// authResponse is the body shape shared by both endpoints: a flat object on
// success, {"error": "..."} on failure.
type authResponse struct {
	Token    string `json:"token"`
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	DeviceID string `json:"deviceId"`
	Email    string `json:"email"`
	Error    string `json:"error"`
}

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient constructs a client for the given base URL. A non-positive
// timeout disables the request bound.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// Login authenticates with email and password.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*Authorization, error) {
	body := loginPayload{Email: req.Email, Password: req.Password}
	return c.post(ctx, "/users/login", body, "login failed")
}

// Signup registers a new account. An empty DeviceID is replaced with
// DefaultDeviceID; PasswordConfirmation is a local concern and never sent.
func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*Authorization, error) {
	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = DefaultDeviceID
	}
	body := signupPayload{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.DisplayName,
		DeviceID: deviceID,
	}
	return c.post(ctx, "/users/signup", body, "signup failed")
}

// post issues the request and maps the response. fallback is the message used
// for failures where the server supplied no usable error text.
func (c *HTTPClient) post(ctx context.Context, path string, payload any, fallback string) (*Authorization, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var ar authResponse
	if resp.StatusCode != http.StatusOK {
		msg := fallback
		if json.Unmarshal(data, &ar) == nil && ar.Error != "" {
			msg = ar.Error
		}
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(data, &ar); err != nil {
		// 200 with an unreadable body; nothing to promote a session from.
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: fallback}
	}

	return &Authorization{
		Token: ar.Token,
		Profile: models.UserProfile{
			ID:          ar.UUID,
			DisplayName: ar.Name,
			Email:       ar.Email,
			DeviceID:    ar.DeviceID,
		},
	}, nil
}
