package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/hashicorp-forge/restkit/pkg/query"
	"github.com/hashicorp-forge/restkit/pkg/transport"
)

// Details fetches the resource description.
func Details(ctx context.Context, c transport.Caller, headers http.Header) (json.RawMessage, error) {
	return call(ctx, c, http.MethodGet, "/", headers, nil)
}

// Mutate applies mutations to the resource.
func Mutate[T any](ctx context.Context, c transport.Caller, mutations []query.MutateRequest[T], headers http.Header) (*query.MutateResponse, error) {
	if mutations == nil {
		mutations = []query.MutateRequest[T]{}
	}

	raw, err := call(ctx, c, http.MethodPost, "/mutate", headers, mutateEnvelope[T]{Mutate: mutations})
	if err != nil {
		return nil, err
	}

	return decode[query.MutateResponse](raw)
}

// Actions runs the named action. The request is sent as is, without an
// envelope.
func Actions(ctx context.Context, c transport.Caller, name string, req query.ActionRequest, headers http.Header) (*query.ActionResponse, error) {
	raw, err := call(ctx, c, http.MethodPost, "/actions/"+url.PathEscape(name), headers, req)
	if err != nil {
		return nil, err
	}

	return decode[query.ActionResponse](raw)
}

// Remove deletes resources by key. Soft-deletable resources can be restored
// afterwards.
func Remove(ctx context.Context, c transport.Caller, ids []any, headers http.Header) (json.RawMessage, error) {
	return call(ctx, c, http.MethodDelete, "/", headers, resources(ids))
}

// ForceDelete permanently deletes soft-deleted resources.
func ForceDelete(ctx context.Context, c transport.Caller, ids []any, headers http.Header) (json.RawMessage, error) {
	return call(ctx, c, http.MethodDelete, "/force", headers, resources(ids))
}

// Restore restores soft-deleted resources.
func Restore(ctx context.Context, c transport.Caller, ids []any, headers http.Header) (json.RawMessage, error) {
	return call(ctx, c, http.MethodPost, "/restore", headers, resources(ids))
}
