// Package models defines the core data structures shared by the FitLens client:
// the user profile returned by the backend and the credential payloads the
// auth screens collect.
package models

// UserProfile describes the account of a signed-in user as issued by the
// backend. ID is an opaque identifier (the server calls it "uuid").
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	DeviceID    string `json:"deviceId"`
}

// LoginRequest carries the credentials for the login endpoint.
// It is transient and never persisted.
type LoginRequest struct {
	Email    string
	Password string
}

// SignupRequest carries the fields collected by the signup screen.
// PasswordConfirmation is validated locally and never sent over the wire.
// DeviceID is optional; the API client substitutes a placeholder when it is
// empty, but callers should always supply one.
type SignupRequest struct {
	DisplayName          string
	Email                string
	Password             string
	PasswordConfirmation string
	DeviceID             string
}
