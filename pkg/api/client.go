package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"expirywatch/pkg/utils"
)

// TokenSource supplies the bearer token for outgoing requests. A session
// object satisfies this; requests proceed unauthenticated when the token
// is empty.
type TokenSource interface {
	AccessToken() string
}

// Client is a thin wrapper over the tracker's REST API.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends a JSON request and decodes the JSON response into out (when
// out is non-nil). The bearer token and a request id are attached to
// every request.
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send finishes and executes a prepared request. Shared by do and the
// multipart upload path.
func (c *Client) send(req *http.Request, out interface{}) error {
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		utils.Log("No access token available, sending %s %s unauthenticated", req.Method, req.URL.Path)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		utils.Log("Request failed: %s %s: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			if payload.Message != "" {
				apiErr.Message = payload.Message
			} else {
				apiErr.Message = payload.Detail
			}
		}
		utils.Log("API error: %s %s: %v", req.Method, req.URL.Path, apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
