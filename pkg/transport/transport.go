// Package transport executes resource requests.
//
// Caller is the only boundary between the request builders in package rest
// and the network: it receives a path relative to a resource URL and the
// request options, and returns the raw JSON body of a successful response.
// HTTP is the net/http implementation used by default.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// RequestOptions describes one request relative to a resource URL.
type RequestOptions struct {
	Method  string
	Headers http.Header
	// Body is the encoded JSON body, nil when the request has none.
	Body []byte
}

// Caller performs one request and returns the response body as raw JSON.
//
// A non-success response must be reported as an error; implementations that
// talk HTTP return a *StatusError.
type Caller interface {
	Call(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error)
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error)

// Call calls f(ctx, path, opts).
func (f CallerFunc) Call(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	return f(ctx, path, opts)
}

// JoinURL joins a base URL and path segments with exactly one slash between
// each part. Empty segments are skipped, so JoinURL(base, "/") is base itself.
func JoinURL(base string, segments ...string) string {
	joined := strings.TrimRight(base, "/")
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s == "" {
			continue
		}
		joined += "/" + s
	}
	return joined
}
