package appwrite

import (
	"context"
	"net/http"
	"time"
)

// Account exposes the unprivileged auth operations: identity lookup,
// account creation, and session lifecycle. All calls ride on the session
// secret (or no credential at all), never the server API key.
type Account struct {
	c *Client
}

// NewAccount wraps a client for account operations.
func NewAccount(c *Client) *Account {
	return &Account{c: c}
}

// User is the identity the auth service reports for the current session.
// Name and email are optional on the service side.
type User struct {
	ID    string `json:"$id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Session is the result of a successful email/password login. Secret
// authenticates follow-up requests and must stay server-side.
type Session struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
	Expire string `json:"expire"`
}

// ExpiresAt parses the service's expiry timestamp. An unparseable value
// falls back to a day from now so a malformed upstream field cannot mint a
// cookie that never expires.
func (s *Session) ExpiresAt() time.Time {
	t, err := time.Parse(time.RFC3339, s.Expire)
	if err != nil {
		return time.Now().Add(24 * time.Hour)
	}
	return t
}

// Get returns the identity behind the bound session. A 401 means there is
// no active session.
func (a *Account) Get(ctx context.Context) (*User, error) {
	var u User
	if err := a.c.call(ctx, http.MethodGet, "/account", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create registers a new account. userID must be unique; the caller
// generates it.
func (a *Account) Create(ctx context.Context, userID, email, password, name string) (*User, error) {
	body := map[string]string{
		"userId":   userID,
		"email":    email,
		"password": password,
		"name":     name,
	}
	var u User
	if err := a.c.call(ctx, http.MethodPost, "/account", nil, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateEmailSession signs in with email and password.
func (a *Account) CreateEmailSession(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var s Session
	if err := a.c.call(ctx, http.MethodPost, "/account/sessions/email", nil, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteCurrentSession logs the bound session out. Deleting a session that
// does not exist returns an error the caller is expected to ignore; the
// operation is idempotent from the user's point of view.
func (a *Account) DeleteCurrentSession(ctx context.Context) error {
	return a.c.call(ctx, http.MethodDelete, "/account/sessions/current", nil, nil, nil)
}
