package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// docsList is the wire shape of the document listing.
type docsList struct {
	Docs []string `json:"docs"`
}

// DeleteDocResult carries the backend's confirmation of a single-document
// delete.
type DeleteDocResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ListDocs returns the active documents for a session scope.
func (c *Client) ListDocs(ctx context.Context, sessionID string) ([]string, error) {
	q := url.Values{"session_id": {sessionID}}
	var out docsList
	if err := c.getJSON(ctx, "/context/docs", q, &out); err != nil {
		return nil, err
	}
	return out.Docs, nil
}

// UploadPDF sends a document to the session-scoped upload endpoint.
func (c *Client) UploadPDF(ctx context.Context, sessionID, filename string, file io.Reader) (models.UploadResult, error) {
	var out models.UploadResult
	fields := map[string]string{"session_id": sessionID}
	if err := c.postMultipart(ctx, "/upload_pdf", fields, "file", filename, file, &out); err != nil {
		return models.UploadResult{}, err
	}
	return out, nil
}

// UploadDocument sends a document to the client-scoped upload endpoint.
func (c *Client) UploadDocument(ctx context.Context, clientID, filename string, file io.Reader) (models.UploadResult, error) {
	var out models.UploadResult
	fields := map[string]string{"client_id": clientID}
	if err := c.postMultipart(ctx, "/documents", fields, "file", filename, file, &out); err != nil {
		return models.UploadResult{}, err
	}
	return out, nil
}

// DeleteDoc removes a single document from the session scope.
func (c *Client) DeleteDoc(ctx context.Context, sessionID, doc string) (DeleteDocResult, error) {
	q := url.Values{"session_id": {sessionID}}
	var out DeleteDocResult
	if err := c.delete(ctx, "/context/docs/"+url.PathEscape(doc), q, nil, &out); err != nil {
		return DeleteDocResult{}, err
	}
	return out, nil
}

// DeleteAllDocs removes every document from the session scope.
func (c *Client) DeleteAllDocs(ctx context.Context, sessionID string) error {
	q := url.Values{"session_id": {sessionID}}
	return c.delete(ctx, "/context/docs", q, nil, nil)
}

// FetchDocument downloads a stored document for preview. The caller owns
// the returned reader and must close it.
func (c *Client) FetchDocument(ctx context.Context, doc string) (io.ReadCloser, error) {
	u := c.baseURL + "/storage/uploads/" + url.PathEscape(doc)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, newAPIError(resp.StatusCode, body)
	}

	return resp.Body, nil
}
