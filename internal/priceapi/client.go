package priceapi

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

// ErrShapeMismatch is returned when a list endpoint answers with something other than a JSON array
var ErrShapeMismatch = errors.New("unexpected response shape")

// RequestError represents a transport, status or decoding failure talking to the price API
type RequestError struct {
	Op         string // Operation that caused the error
	StatusCode int    // HTTP status, 0 when no response was received
	Err        error  // Original error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Err == nil {
		return "price api error: " + e.Op
	}
	return "price api error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Client talks to the price extraction backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Config holds configuration for the price API client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// DefaultConfig returns a default configuration for the price API client
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://localhost:8080",
		Timeout:   60 * time.Second,
		UserAgent: "shelf-price-monitor",
	}
}

// NewClient creates a new price API client
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		userAgent:  config.UserAgent,
	}
}

// BaseURL returns the backend root the client is configured for
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// newRequest builds a request against the backend with the shared headers
func (c *Client) newRequest(ctx context.Context, op, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, &RequestError{
			Op:  op,
			Err: fmt.Errorf("failed to create request: %w", err),
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// send executes req and returns the status and full body
func (c *Client) send(op string, req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &RequestError{
			Op:  op,
			Err: fmt.Errorf("failed to send request: %w", err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &RequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}
	return resp.StatusCode, respBody, nil
}

// doJSON sends an optional JSON body and decodes a JSON answer into out.
// Any non-2xx status is a RequestError.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestError{
				Op:  op,
				Err: fmt.Errorf("failed to marshal request payload: %w", err),
			}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, op, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	status, respBody, err := c.send(op, req)
	if err != nil {
		return err
	}
	if err := checkStatus(op, status, respBody); err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &RequestError{
			Op:         op,
			StatusCode: status,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}

// checkStatus turns non-2xx answers into a RequestError carrying a trimmed body
func checkStatus(op string, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	return &RequestError{
		Op:         op,
		StatusCode: status,
		Err:        fmt.Errorf("API error: %d %s - %s", status, http.StatusText(status), truncate(string(body), 300)),
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
