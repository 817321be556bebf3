package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// DefaultTable is the table that holds app rows.
	DefaultTable = "apps"
)

// Client is the hosted catalog REST client.
type Client struct {
	baseURL    string
	apiKey     string
	table      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTable overrides the table name.
func WithTable(table string) Option {
	return func(c *Client) {
		if table != "" {
			c.table = table
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new catalog API client.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		table:   DefaultTable,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the table the client reads and writes.
func (c *Client) Table() string {
	return c.table
}

func (c *Client) tablePath(query url.Values) string {
	path := "/rest/v1/" + url.PathEscape(c.table)
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path
}

// do executes an HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any, header http.Header) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Message == "" {
			return nil, &ErrorResponse{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody))),
			}
		}
		errResp.StatusCode = resp.StatusCode
		return nil, &errResp
	}

	return respBody, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// Post performs a POST request that returns the written rows.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body, returnRepresentation())
}

// Patch performs a PATCH request that returns the written rows.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, body, returnRepresentation())
}

// Delete performs a DELETE request that returns the removed rows.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, returnRepresentation())
}

func returnRepresentation() http.Header {
	return http.Header{"Prefer": []string{"return=representation"}}
}

// IsTransportError reports whether err came from failing to reach the
// server. Any error response, whatever its status, means the server
// answered and is not a transport error. Neither is cancellation by the caller.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *ErrorResponse
	if errors.As(err, &apiErr) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
