// Package session reconciles the hosted auth service with per-request view
// state: an injected unprivileged client, a watcher implementing the
// loading/authenticated/anonymous flow, and the signed cookie that carries
// the upstream session secret between requests.
package session

import (
	"context"

	"github.com/aimanzahar/mealshare-web/appwrite"
)

// AccountAPI is the slice of the auth service the session flow depends on.
type AccountAPI interface {
	Get(ctx context.Context) (*appwrite.User, error)
	DeleteCurrentSession(ctx context.Context) error
}

// Client is the unprivileged (public-key-only) auth client. It is
// constructed once at startup and injected into consumers; it holds no
// mutable state, so sharing across requests needs no locking.
type Client struct {
	base *appwrite.Client
}

// NewClient returns nil when the public configuration is missing. Every
// consumer must treat a nil client as "auth disabled" and degrade.
func NewClient(endpoint, projectID string) *Client {
	if endpoint == "" || projectID == "" {
		return nil
	}
	return &Client{base: appwrite.New(endpoint, projectID)}
}

// ForSession binds the client to one browser session secret. An empty
// secret yields an unauthenticated account client, which the service
// answers with "no session" on identity lookup.
func (c *Client) ForSession(secret string) *appwrite.Account {
	return appwrite.NewAccount(c.base.WithSession(secret))
}
