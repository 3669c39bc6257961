package rest

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/restkit/pkg/query"
	"github.com/hashicorp-forge/restkit/pkg/transport"
)

// Page is one page of search results together with the query that produced
// it.
//
// NextPage, PreviousPage and GoToPage each re-run the original query with only
// page and limit replaced; limit is the PerPage of this page. They do not
// build on each other, and concurrent calls are independent requests with no
// ordering between their responses.
type Page[T any] struct {
	query.SearchResponse[T]

	request query.SearchQuery
	caller  transport.Caller
	headers http.Header
}

// Query returns the search query that produced the page.
func (p *Page[T]) Query() query.SearchQuery {
	return p.request
}

// NextPage fetches the page after this one.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	return p.GoToPage(ctx, p.CurrentPage+1)
}

// PreviousPage fetches the page before this one. There is no lower bound: on
// the first page it requests page 0 and leaves the outcome to the server.
func (p *Page[T]) PreviousPage(ctx context.Context) (*Page[T], error) {
	return p.GoToPage(ctx, p.CurrentPage-1)
}

// GoToPage fetches page n.
func (p *Page[T]) GoToPage(ctx context.Context, n int) (*Page[T], error) {
	return Search[T](ctx, p.caller, p.request.WithPage(n, p.PerPage), p.headers)
}
