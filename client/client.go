// Package client is the HTTP client for the proxy server: it logs in to
// obtain a bearer token and runs authenticated searches. The token is an
// explicit argument on every call rather than ambient state, so there is no
// process-wide default header to leak between users.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tunes-proxy-go/services/itunes"
)

var (
	ErrLoginFailed  = errors.New("login failed")
	ErrUnauthorized = errors.New("not authorized")
	ErrSearchFailed = errors.New("search failed")
)

// Client talks to the proxy server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a proxy client. baseURL defaults to the local dev server and
// a nil http.Client falls back to the default transport.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Login requests a bearer token for username.
func (c *Client) Login(ctx context.Context, username string) (string, error) {
	payload, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrLoginFailed, err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrLoginFailed)
	}

	return body.Token, nil
}

// Search runs an authenticated search. The bearer token is injected into
// this request only.
func (c *Client) Search(ctx context.Context, tok string, q itunes.Query) (itunes.SearchResponse, error) {
	var out itunes.SearchResponse

	params, err := q.Encode()
	if err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params, nil)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return out, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return out, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("%w: reading response: %v", ErrSearchFailed, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: decoding response: %v", ErrSearchFailed, err)
	}

	return out, nil
}
