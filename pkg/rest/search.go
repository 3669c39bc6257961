package rest

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/restkit/pkg/query"
	"github.com/hashicorp-forge/restkit/pkg/transport"
)

// Search runs q and returns the first page of results. The returned Page can
// fetch other pages of the same query.
func Search[T any](ctx context.Context, c transport.Caller, q query.SearchQuery, headers http.Header) (*Page[T], error) {
	raw, err := call(ctx, c, http.MethodPost, "/search", headers, searchEnvelope{Search: q})
	if err != nil {
		return nil, err
	}

	resp, err := decode[query.SearchResponse[T]](raw)
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		SearchResponse: *resp,
		request:        q,
		caller:         c,
		headers:        headers,
	}, nil
}

// FindOne runs q and returns the first result, or nil when nothing matched.
func FindOne[T any](ctx context.Context, c transport.Caller, q query.SearchQuery, headers http.Header) (*T, error) {
	page, err := Search[T](ctx, c, q, headers)
	if err != nil {
		return nil, err
	}

	if len(page.Data) == 0 {
		return nil, nil
	}
	return &page.Data[0], nil
}
