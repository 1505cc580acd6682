// Package engine provides the client for the remote translation engine.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hanacaraka/aksara/internal/aksara"
)

// DefaultEndpoint is where the engine's development server listens.
const DefaultEndpoint = "http://localhost:5000/translate"

// Client talks to the translation engine over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. An empty endpoint
// selects the default development server.
func NewClient(endpoint string) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Endpoint returns the configured engine URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Translate submits text to the engine as a single blocking call and returns
// the normalized result. A non-2xx status is a failure regardless of body
// content; when the body carries an engine error message it is folded into
// the returned error.
func (c *Client) Translate(req aksara.Request) (*aksara.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling engine: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The engine reports failures as JSON with an "error" field; fall
		// back to the bare status when the body is not parseable.
		var failure aksara.Result
		if jsonErr := json.Unmarshal(respBody, &failure); jsonErr == nil && failure.Error != "" {
			return nil, &StatusError{Status: resp.StatusCode, Message: failure.Error, Traceback: failure.Traceback}
		}
		return nil, &StatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var result aksara.Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	result.Normalize()

	return &result, nil
}

// StatusError is a failed engine call: a transport-level non-2xx response.
type StatusError struct {
	Status    int
	Message   string
	Traceback string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("engine returned HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("engine returned HTTP %d", e.Status)
}
