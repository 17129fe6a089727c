// Package weatherapi provides a minimal client for the WeatherAPI.com HTTP API.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public WeatherAPI.com API root.
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// Client is a minimal HTTP client for WeatherAPI.com endpoints.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// New returns a new client. If httpClient is nil, a default with a 15s
// timeout is used.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, HTTP: httpClient}
}

// Fetch performs a GET against <BaseURL>/<endpoint> with the given parameters
// plus the API key, and returns the decoded JSON body on HTTP 200.
//
// The key is injected here and nowhere else; it is never logged. A missing key
// fails immediately with ErrAPIKeyMissing. Network failures surface as
// *TransportError, non-200 responses as *ProviderError.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) (any, error) {
	if c.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", c.APIKey)

	reqURL := c.BaseURL + "/" + endpoint + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var body any
	decodeErr := json.Unmarshal(raw, &body)

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(body, raw),
		}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return body, nil
}

// providerMessage digs the provider's own error text out of an error body of
// the shape {"error": {"code": ..., "message": ...}}, falling back to the raw
// response text.
func providerMessage(body any, raw []byte) string {
	if m, ok := body.(map[string]any); ok {
		if e, ok := m["error"].(map[string]any); ok {
			if msg, ok := e["message"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
