// Package api provides the HTTP client for the IA-Rag backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single backend call. Chat against a cold local
// model can take minutes, so the default is generous.
const DefaultTimeout = 10 * time.Minute

// Client talks to the IA-Rag backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is the single failure surface for backend calls. Message is a
// human-readable string extracted from the response body; the raw response
// is never exposed to callers.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody mirrors the conventional error fields the backend generations
// use. Extraction precedence: detail, error, message.
type errorBody struct {
	Detail  string `json:"detail"`
	Err     string `json:"error"`
	Message string `json:"message"`
}

// newAPIError derives the error message from a non-2xx response body.
func newAPIError(status int, body []byte) *APIError {
	msg := fmt.Sprintf("HTTP %d", status)

	text := strings.TrimSpace(string(body))
	if text == "" {
		return &APIError{Status: status, Message: msg}
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Detail != "":
			msg = eb.Detail
		case eb.Err != "":
			msg = eb.Err
		case eb.Message != "":
			msg = eb.Message
		default:
			// Valid JSON without a known field: show it verbatim.
			msg = text
		}
		return &APIError{Status: status, Message: msg}
	}

	return &APIError{Status: status, Message: text}
}

// response is the raw outcome of a request before shape-specific decoding.
type response struct {
	body []byte
	json bool
}

// do issues a request and normalizes failures per the client contract:
// any non-2xx status becomes an *APIError carrying a single message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, header http.Header) (*response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return &response{
		body: respBody,
		json: strings.Contains(resp.Header.Get("Content-Type"), "application/json"),
	}, nil
}

// getJSON issues a GET and decodes the JSON response into result.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, result any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "", nil)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

// postJSON issues a POST with a JSON payload and decodes the response.
func (c *Client) postJSON(ctx context.Context, path string, payload, result any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, result)
}

// sendJSON issues a request with a JSON payload and decodes the response.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	resp, err := c.do(ctx, method, path, nil, bytes.NewReader(body), "application/json", nil)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

// delete issues a DELETE and decodes any JSON response into result.
func (c *Client) delete(ctx context.Context, path string, query url.Values, header http.Header, result any) error {
	resp, err := c.do(ctx, http.MethodDelete, path, query, nil, "", header)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

// postMultipart uploads a file under the given form field names.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, result any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field: %w", err)
		}
	}

	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType(), nil)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

// decode unmarshals a JSON response into result. Passing nil discards the
// body; non-JSON bodies into a *string capture the raw text.
func decode(resp *response, result any) error {
	if result == nil {
		return nil
	}
	if s, ok := result.(*string); ok && !resp.json {
		*s = string(resp.body)
		return nil
	}
	if len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
