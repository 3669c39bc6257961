package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// HTTP is a Caller that performs requests against one resource URL with
// net/http.
type HTTP struct {
	config Config
	client *http.Client
	logger hclog.Logger
}

var _ Caller = (*HTTP)(nil)

// NewHTTP creates an HTTP transport.
func NewHTTP(cfg Config) (*HTTP, error) {
	defaults := DefaultConfig()
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaults.RetryDelay
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transport config: %w", err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = cfg.NewHTTPClient()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &HTTP{
		config: cfg,
		client: client,
		logger: logger.Named("transport"),
	}, nil
}

// BaseURL returns the resource URL requests are relative to.
func (t *HTTP) BaseURL() string {
	return t.config.BaseURL
}

// Call performs the request and returns the raw JSON response body.
//
// Network failures are returned as reported by the HTTP client. Non-success
// responses are returned as *StatusError. Both are retried up to MaxRetries
// times when retryable (network failures and 5xx).
func (t *HTTP) Call(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	endpoint := JoinURL(t.config.BaseURL, path)

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = t.config.RetryDelay
	expBackoff.MaxElapsedTime = 0

	policy := backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(t.config.MaxRetries)), ctx)

	attempt := 0
	return backoff.RetryWithData(func() (json.RawMessage, error) {
		attempt++
		if attempt > 1 {
			t.logger.Debug("retrying request",
				"method", opts.Method,
				"url", endpoint,
				"attempt", attempt)
		}
		return t.do(ctx, endpoint, opts)
	}, policy)
}

// do performs a single attempt. Errors that must not be retried are wrapped
// with backoff.Permanent.
func (t *HTTP) do(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	var bodyReader io.Reader
	if opts.Body != nil {
		bodyReader = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, endpoint, bodyReader)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("error creating request: %w", err))
	}

	if opts.Headers != nil {
		req.Header = opts.Headers.Clone()
	}
	if h := t.config.RequestIDHeader; h != "" && req.Header.Get(h) == "" {
		req.Header.Set(h, uuid.NewString())
	}

	hooks := t.config.Hooks
	if hooks.OnRequest != nil {
		if err := hooks.OnRequest(ctx, req); err != nil {
			return nil, backoff.Permanent(err)
		}
	}

	t.logger.Debug("sending request", "method", req.Method, "url", endpoint)

	resp, err := t.client.Do(req)
	if err != nil {
		if hooks.OnRequestError != nil {
			hooks.OnRequestError(ctx, req, err)
		}
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(respBody))

	t.logger.Trace("received response",
		"method", req.Method,
		"url", endpoint,
		"status", resp.StatusCode,
		"bytes", len(respBody))

	if hooks.OnResponse != nil {
		if err := hooks.OnResponse(ctx, resp); err != nil {
			return nil, backoff.Permanent(err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if hooks.OnResponseError != nil {
			resp.Body = io.NopCloser(bytes.NewReader(respBody))
			hooks.OnResponseError(ctx, resp)
		}

		statusErr, err := NewStatusError(resp.StatusCode, respBody)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if resp.StatusCode >= 500 {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(respBody) {
		return nil, backoff.Permanent(errors.New("error decoding response: body is not valid JSON"))
	}

	return json.RawMessage(respBody), nil
}
