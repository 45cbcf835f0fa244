// Package appwrite is a minimal typed client for the slice of the Appwrite
// REST API this site uses: listing documents from one collection and the
// account/session operations backing login. The endpoint is expected to
// include the API version path (e.g. https://cloud.appwrite.io/v1).
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client carries the connection values shared by all service calls. The
// zero credential fields are simply omitted from requests, so the same type
// serves both the server (API key) and the browser-equivalent session path.
type Client struct {
	endpoint string
	project  string
	key      string
	session  string
	http     *http.Client
}

// New builds an unprivileged client bound to an endpoint and project.
func New(endpoint, project string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		project:  project,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// WithKey returns a copy of the client that authenticates with the
// server-only API key.
func (c *Client) WithKey(key string) *Client {
	cp := *c
	cp.key = key
	return &cp
}

// WithSession returns a copy of the client acting on behalf of one browser
// session. An empty secret leaves the client unauthenticated, which the
// service answers with 401 on account operations.
func (c *Client) WithSession(secret string) *Client {
	cp := *c
	cp.session = secret
	return &cp
}

// Error is the JSON error payload the service returns. Message is surfaced
// verbatim to users on credential rejection.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *Error) Error() string { return e.Message }

// IsUnauthorized reports whether err is a 401 from the service, which on
// the account path means "no active session" as much as "bad credentials".
func IsUnauthorized(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == http.StatusUnauthorized
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Appwrite-Project", c.project)
	if c.key != "" {
		req.Header.Set("X-Appwrite-Key", c.key)
	}
	if c.session != "" {
		req.Header.Set("X-Appwrite-Session", c.session)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}
