package utils

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/user")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. Every client owns a
// fresh cookie jar, so a session cookie set by one login is replayed on the
// following requests of the same client only.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	// cookiejar.New only fails when given non-nil options with a bad PSL.
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
