package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBodySize caps how much of a backend response is read.
const maxBodySize = 1 << 20

// Client issues requests to the SARA backend REST API. Every method sends
// exactly one HTTP request; nothing is retried or cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL (e.g. http://localhost:8080)
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do sends the request and returns the body of a 2xx response.
// Non-2xx responses are returned as *Error.
func (c *Client) do(ctx context.Context, method, path, token string, in interface{}, accept string) ([]byte, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", accept)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response of %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, data)
	}
	return data, nil
}

// doJSON sends a request and decodes the JSON response into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out interface{}) error {
	data, err := c.do(ctx, method, path, token, in, "application/json")
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// doText sends a request whose response body is plain text.
func (c *Client) doText(ctx context.Context, method, path, token string, in interface{}) (string, error) {
	data, err := c.do(ctx, method, path, token, in, "text/plain")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
