package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultHTTPTimeout = 10 * time.Second

// Client talks to the HausPet API as a signed-in owner.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// RecordResult is the API's answer to a posted reading.
type RecordResult struct {
	AlertCreated bool `json:"alert_created"`
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// Login exchanges credentials for a bearer token kept on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &resp); err != nil {
		return errors.Wrap(err, "login")
	}
	if resp.Token == "" {
		return errors.New("login: empty token")
	}
	c.token = resp.Token

	return nil
}

// PostReading records one reading for petID.
func (c *Client) PostReading(ctx context.Context, petID uint, reading Reading) (*RecordResult, error) {
	var result RecordResult
	path := fmt.Sprintf("/api/v1/pets/%d/health", petID)
	if err := c.do(ctx, http.MethodPost, path, reading, &result); err != nil {
		return nil, errors.Wrap(err, "post reading")
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	return errors.WithStack(json.Unmarshal(raw, out))
}
