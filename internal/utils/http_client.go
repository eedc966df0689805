package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client for baseURL. Requests time out after
// timeout; zero disables the timeout. Idempotent reads are retried once on
// transport errors.
//
//	client := utils.NewHTTPClient("http://localhost:3000", 5*time.Second)
//	resp, err := client.R().Get("/todos")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(1).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil && resp != nil && resp.Request != nil && resp.Request.Method == http.MethodGet
		})

	return &HTTPClient{Client: client}
}
