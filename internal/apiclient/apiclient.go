package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mekvam/logdeck/internal/apitypes"
)

// ErrNoLogFile signals a 404 from the tail or archive endpoints: the log file
// has not been created yet. An expected condition, not a failure.
var ErrNoLogFile = errors.New("log file not created yet")

// StatusError is returned for non-2xx responses other than the recognized
// 404 on the tail endpoint.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned status %d", e.Code)
}

// Client handles communication with the log service API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(serverURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: serverURL,
	}
}

// BaseURL returns the normalized server address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// getJSON issues a GET request and decodes a JSON body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.do(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}

// statusError builds a StatusError from a failed response, picking up the
// service's JSON error body when it sends one.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp apitypes.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return &StatusError{Code: resp.StatusCode, Message: errResp.Error}
	}
	return &StatusError{Code: resp.StatusCode}
}
