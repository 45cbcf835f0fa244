package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Databases reads documents with server credentials.
type Databases struct {
	c *Client
}

// NewDatabases wraps an already-credentialed client.
func NewDatabases(c *Client) *Databases {
	return &Databases{c: c}
}

// NewServerDatabases builds the server-side database gateway from the three
// required credentials. Any missing value returns nil: callers must treat
// the unconfigured backend as a normal state and degrade, not fail.
func NewServerDatabases(endpoint, project, key string) *Databases {
	if endpoint == "" || project == "" || key == "" {
		return nil
	}
	return NewDatabases(New(endpoint, project).WithKey(key))
}

// DocumentList is one page of query results. Documents stay raw so callers
// decode into their own types.
type DocumentList struct {
	Total     int64             `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// ListDocuments runs a filtered, ordered, capped read against one
// collection. Constraints are built with Equal, OrderDesc, and Limit.
func (d *Databases) ListDocuments(ctx context.Context, databaseID, collectionID string, queries ...string) (*DocumentList, error) {
	params := url.Values{}
	for _, q := range queries {
		params.Add("queries[]", q)
	}

	path := fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(databaseID), url.PathEscape(collectionID))

	var out DocumentList
	if err := d.c.call(ctx, http.MethodGet, path, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
