// Package rest builds the requests of the resource protocol and decodes the
// responses. There is one function per server verb; each one encodes its
// envelope, delegates to a transport.Caller and returns the parsed result.
//
//	Details      GET    /
//	Search       POST   /search          {"search": query}
//	Mutate       POST   /mutate          {"mutate": [mutation, ...]}
//	Actions      POST   /actions/{name}  action request
//	Remove       DELETE /                {"resources": ids}
//	ForceDelete  DELETE /force           {"resources": ids}
//	Restore      POST   /restore         {"resources": ids}
//
// Errors returned by the Caller are passed through unchanged, so a
// *transport.StatusError reads "Error <status>: <message>".
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/restkit/pkg/query"
	"github.com/hashicorp-forge/restkit/pkg/transport"
)

const contentTypeJSON = "application/json"

type searchEnvelope struct {
	Search query.SearchQuery `json:"search"`
}

type mutateEnvelope[T any] struct {
	Mutate []query.MutateRequest[T] `json:"mutate"`
}

type resourcesEnvelope struct {
	Resources []any `json:"resources"`
}

// jsonHeaders returns a copy of headers with the JSON content negotiation
// headers set. The two fixed headers always win over caller values.
func jsonHeaders(headers http.Header) http.Header {
	h := headers.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set("Content-Type", contentTypeJSON)
	h.Set("Accept", contentTypeJSON)
	return h
}

// encode marshals v without HTML escaping, so operators such as ">" are sent
// as written.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// call sends one request. body is encoded when non-nil.
func call(ctx context.Context, c transport.Caller, method, path string, headers http.Header, body any) (json.RawMessage, error) {
	opts := transport.RequestOptions{
		Method:  method,
		Headers: jsonHeaders(headers),
	}

	if body != nil {
		b, err := encode(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %w", err)
		}
		opts.Body = b
	}

	return c.Call(ctx, path, opts)
}

func decode[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &v, nil
}

func resources(ids []any) resourcesEnvelope {
	if ids == nil {
		ids = []any{}
	}
	return resourcesEnvelope{Resources: ids}
}
