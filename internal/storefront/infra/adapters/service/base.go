// Package service implements the core's ports against the HTTP/JSON API
// exposed by the gateway. All adapters share one base Client that owns the
// outbound http.Client and a circuit breaker, so a dead backend trips fast
// instead of piling up hanging requests.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// Client is the shared outbound HTTP client for one logical backend.
type Client struct {
	name    string
	baseURL *url.URL
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

// NewClient builds a client for the backend reached under baseURL.
// failureThreshold consecutive transport failures open the breaker;
// HTTP error statuses are application-level outcomes and do not count.
func NewClient(name, baseURL string, httpClient *http.Client, failureThreshold int) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid base url %q: %w", name, baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if failureThreshold <= 0 {
		failureThreshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failureThreshold)
		},
	})

	return &Client{
		name:    name,
		baseURL: u,
		http:    httpClient,
		breaker: breaker,
	}, nil
}

// doJSON performs one request and decodes a 2xx JSON response into out.
// Non-2xx statuses are classified into the ports error taxonomy.
// out may be nil when the body is irrelevant.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.name, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.http.Do(req)
	})
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", c.name, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classify(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	return nil
}

// classify maps an error status onto the ports sentinels: 404 is a missing
// resource, any other 4xx is bad input, the rest is transient/unknown.
func (c *Client) classify(resp *http.Response) error {
	detail := readDetail(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %s: %w", c.name, detail, ports.ErrNotFound)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%s: %s: %w", c.name, detail, ports.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: unexpected status %d: %s", c.name, resp.StatusCode, detail)
	}
}

// readDetail extracts the FastAPI-style {"detail": "..."} error body.
func readDetail(body io.Reader) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&e); err != nil || e.Detail == "" {
		return "no detail"
	}
	return e.Detail
}
