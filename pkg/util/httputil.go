package util

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient is a thin wrapper around http.Client with a bounded per-request
// timeout, used by the explorer adapters.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns an HTTPClient whose requests are bounded by the given
// timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET request against the given URL with optional query
// parameters and headers, returning the response status code and body.
func (c *HTTPClient) Get(
	ctx context.Context, rawurl string, query url.Values, header map[string]string,
) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return 0, "", err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := c.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return 0, "", err
	}

	return rs.StatusCode, string(bodyBytes), nil
}
