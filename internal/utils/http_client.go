package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty request API
// directly.
//
//	client := utils.NewServerClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().SetResult(&state).Get("/api/session")
type HTTPClient struct {
	*resty.Client
}

// NewServerClient returns a fresh client bound to a garden-server base URL
// that exchanges JSON and gives up on a request after timeout. A zero
// timeout means no limit.
func NewServerClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
