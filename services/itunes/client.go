// Package itunes forwards search queries to the iTunes Search API and
// relays the response body untouched. The proxy exists to put an
// authorization boundary in front of the upstream endpoint, not to reshape
// its results.
package itunes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"tunes-proxy-go/logcolors"
)

var (
	// ErrMissingTerm is returned before any outbound call when the search
	// term is empty.
	ErrMissingTerm = errors.New("missing search term")
	// ErrUpstream covers transport failures and non-2xx upstream responses.
	ErrUpstream = errors.New("upstream search failed")
)

// Query is an inbound search request: a required term, an optional media
// filter and an optional result limit.
type Query struct {
	Term  string
	Media string
	Limit int
}

// Encode renders the query string sent upstream. Parameter order is fixed:
// term, limit, then media only when set. url.Values is avoided because it
// sorts keys alphabetically.
func (q Query) Encode() (string, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return "", ErrMissingTerm
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	encoded := "term=" + url.QueryEscape(term) + "&limit=" + strconv.Itoa(limit)
	if q.Media != "" {
		if !ValidMedia(q.Media) {
			log.Warnf("%s Unrecognized media type %q, forwarding as-is", logcolors.LogSearch, q.Media)
		}
		encoded += "&media=" + url.QueryEscape(q.Media)
	}

	return encoded, nil
}

// Client issues search requests against a single upstream endpoint.
type Client struct {
	baseURL    string
	searchPath string
	httpClient *http.Client
}

// NewClient creates a search client. An empty baseURL falls back to the
// public iTunes endpoint and a nil http.Client falls back to the default
// transport.
func NewClient(baseURL, searchPath string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = "https://itunes.apple.com"
	}
	if searchPath == "" {
		searchPath = "/search"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		searchPath: searchPath,
		httpClient: client,
	}
}

// Search performs one outbound request and returns the upstream body
// verbatim. No retry, no caching, no timeout beyond the transport default.
// The term is validated before anything goes on the wire.
func (c *Client) Search(ctx context.Context, q Query) ([]byte, error) {
	params, err := q.Encode()
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + c.searchPath + "?" + params
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("%s Search returned status %d", logcolors.LogUpstream, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	return body, nil
}
