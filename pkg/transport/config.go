package transport

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Config configures an HTTP transport for one resource URL.
type Config struct {
	// BaseURL is the resource URL, e.g. "https://api.example.com/api/products".
	BaseURL string

	// HTTPClient performs the requests. When nil a client is built from
	// Timeout and TLSVerify.
	HTTPClient *http.Client

	// Timeout for a single request when HTTPClient is nil.
	// Default: 30 seconds
	Timeout time.Duration

	// TLSVerify controls TLS certificate verification when HTTPClient is nil.
	// Set to false only for development against self-signed certs.
	TLSVerify *bool

	// MaxRetries for network failures and 5xx responses. Zero disables
	// retries.
	MaxRetries int

	// RetryDelay is the initial backoff between retries.
	// Default: 500 milliseconds
	RetryDelay time.Duration

	// RequestIDHeader, when set, names a header that receives a fresh UUID on
	// every request that does not carry one already.
	RequestIDHeader string

	Hooks  Hooks
	Logger hclog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	tlsVerify := true
	return Config{
		Timeout:    30 * time.Second,
		TLSVerify:  &tlsVerify,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got: %q", parsedURL.Scheme)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got: %v", c.Timeout)
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must be non-negative, got: %d", c.MaxRetries)
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %v", c.RetryDelay)
	}

	return nil
}

// NewHTTPClient creates an HTTP client from the configuration.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
