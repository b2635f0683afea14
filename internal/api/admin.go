package api

import (
	"context"
	"net/http"
	"net/url"
)

// adminTokenHeader is the header the backend checks on destructive
// operations. The client attaches whatever token it was given; rejection
// is entirely the backend's call.
const adminTokenHeader = "x-admin-token"

// WipeClient deletes all documents and state for one client scope.
func (c *Client) WipeClient(ctx context.Context, clientID, token string) error {
	q := url.Values{"client_id": {clientID}}
	h := http.Header{adminTokenHeader: {token}}
	return c.delete(ctx, "/documents", q, h, nil)
}

// WipeAll deletes all documents and state for every scope.
func (c *Client) WipeAll(ctx context.Context, token string) error {
	h := http.Header{adminTokenHeader: {token}}
	return c.delete(ctx, "/documents/all", nil, h, nil)
}
