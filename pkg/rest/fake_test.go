package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/hashicorp-forge/restkit/pkg/transport"
)

type product struct {
	ID    int     `json:"id,omitempty"`
	Name  string  `json:"name,omitempty"`
	Price float64 `json:"price,omitempty"`
}

type recordedCall struct {
	Path    string
	Method  string
	Headers http.Header
	Body    string
}

// recordingCaller records every request and answers with the next queued
// response, or with respond when the queue is empty.
type recordingCaller struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses []string
	respond   string
	err       error
}

func (c *recordingCaller) Call(ctx context.Context, path string, opts transport.RequestOptions) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, recordedCall{
		Path:    path,
		Method:  opts.Method,
		Headers: opts.Headers,
		Body:    string(opts.Body),
	})

	if c.err != nil {
		return nil, c.err
	}
	if len(c.responses) > 0 {
		resp := c.responses[0]
		c.responses = c.responses[1:]
		return json.RawMessage(resp), nil
	}
	if c.respond == "" {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(c.respond), nil
}

func (c *recordingCaller) last() recordedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[len(c.calls)-1]
}
