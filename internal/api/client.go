package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

const (
	// DefaultBaseURL is the task management API endpoint used when no
	// base URL is configured
	DefaultBaseURL = "http://localhost:5000/api"
)

// Client is a task management REST API client. It attaches the bearer
// credential to every request once one is set.
type Client struct {
	mu         sync.RWMutex
	token      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client against the given base URL.
// No client-level timeout is set; the transport default applies.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// SetToken sets the bearer credential attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer credential
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently attached bearer credential
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the shape of the message payload servers attach to
// non-2xx responses
type errorBody struct {
	Message string `json:"message"`
}

// do executes one HTTP request and unmarshals the response into result.
// Every facade operation funnels through here: a single attempt, no
// retries, failures surfaced as typed errors.
func (c *Client) do(method, path string, payload, result interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		if resp.StatusCode == http.StatusUnauthorized {
			return &AuthError{Message: eb.Message}
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
