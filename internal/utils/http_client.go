package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultClientTimeout bounds every request made through [HTTPClient].
const defaultClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8000")
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose relative request URLs resolve against
// baseURL. An empty baseURL leaves request URLs untouched.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().SetTimeout(defaultClientTimeout)
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	return &HTTPClient{Client: client}
}
