package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls made by adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. A zero
// timeout leaves resty's default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://localhost:7700", 5*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/health")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBearer sets the Authorization header sent with every request. An
// empty token leaves the client unchanged.
func (c *HTTPClient) WithBearer(token string) *HTTPClient {
	if token != "" {
		c.SetAuthToken(token)
	}
	return c
}
