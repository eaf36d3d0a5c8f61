package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fittlens/fittlens-cli/internal/client/models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":    "t1",
			"uuid":     "u1",
			"name":     "A",
			"deviceId": "d1",
			"email":    "a@x.com",
		})
	})

	c := NewHTTPClient(srv.URL, time.Second)
	auth, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	require.Equal(t, "/users/login", gotPath)
	require.Equal(t, map[string]any{"email": "a@x.com", "password": "pw"}, gotBody)

	require.Equal(t, "t1", auth.Token)
	require.Equal(t, models.UserProfile{
		ID:          "u1",
		DisplayName: "A",
		Email:       "a@x.com",
		DeviceID:    "d1",
	}, auth.Profile)
}

func TestLogin_ServerErrorWithMessage(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "bad"})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.StatusCode)
	require.Equal(t, "invalid credentials", se.Message)
}

func TestLogin_ServerErrorWithoutMessage(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "login failed", se.Message)
}

func TestLogin_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.ErrorIs(t, err, ErrUnavailable)

	var se *ServerError
	require.False(t, errors.As(err, &se))
}

func TestLogin_MalformedSuccessBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "login failed", se.Message)
}

func TestSignup_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":    "t2",
			"uuid":     "u2",
			"name":     "B",
			"deviceId": "dev-7",
			"email":    "b@x.com",
		})
	})

	c := NewHTTPClient(srv.URL, time.Second)
	auth, err := c.Signup(context.Background(), models.SignupRequest{
		DisplayName:          "B",
		Email:                "b@x.com",
		Password:             "pw",
		PasswordConfirmation: "pw",
		DeviceID:             "dev-7",
	})
	require.NoError(t, err)

	require.Equal(t, "/users/signup", gotPath)
	require.Equal(t, map[string]any{
		"email":    "b@x.com",
		"password": "pw",
		"name":     "B",
		"deviceId": "dev-7",
	}, gotBody)
	require.Equal(t, "t2", auth.Token)
	require.Equal(t, "u2", auth.Profile.ID)
}

func TestSignup_DefaultsDeviceID(t *testing.T) {
	var gotBody map[string]any

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "t", "uuid": "u"})
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Signup(context.Background(), models.SignupRequest{
		DisplayName: "B",
		Email:       "b@x.com",
		Password:    "pw",
	})
	require.NoError(t, err)
	require.Equal(t, DefaultDeviceID, gotBody["deviceId"])
}

func TestSignup_ServerErrorFallbackMessage(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{})
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Signup(context.Background(), models.SignupRequest{
		DisplayName: "B", Email: "b@x.com", Password: "pw", DeviceID: "d",
	})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "signup failed", se.Message)
}
