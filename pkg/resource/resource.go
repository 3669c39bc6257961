// Package resource binds a resource name and its preset query to the full set
// of protocol operations.
//
//	products, err := resource.New[Product](reg, "products", resource.Preset{
//	    Search: &query.SearchQuery{
//	        Includes: []query.Include{{Relation: "category"}},
//	        Limit:    query.Int(10),
//	    },
//	})
//
//	page, err := products.Search(ctx, query.SearchQuery{
//	    Filters: []query.Filter{{Field: "category.name", Value: "electronics"}},
//	})
//
// A Resource is immutable once built and may be shared between goroutines.
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/restkit/pkg/query"
	"github.com/hashicorp-forge/restkit/pkg/registry"
	"github.com/hashicorp-forge/restkit/pkg/rest"
	"github.com/hashicorp-forge/restkit/pkg/transport"
)

var (
	// ErrResourceNameRequired is returned when a resource is built without a
	// name.
	ErrResourceNameRequired = errors.New("resource name is required")

	// ErrRegistryRequired is returned when a resource is built without a
	// registry to resolve its client from.
	ErrRegistryRequired = errors.New("registry is required")
)

// Error is a resource construction failure.
type Error struct {
	Op       string
	Resource string
	Err      error
}

func (e *Error) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Resource, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Preset holds the defaults of a resource.
type Preset struct {
	// Search is merged under every search-family request.
	Search *query.SearchQuery

	// Client is the slug of the API client; empty selects the default one.
	Client string

	// Hooks run after the client's own hooks.
	Hooks transport.Hooks
}

// Option customizes resource construction.
type Option func(*options)

type options struct {
	caller transport.Caller
	logger hclog.Logger
}

// WithCaller sends requests through c instead of an HTTP transport built
// from the client configuration.
func WithCaller(c transport.Caller) Option {
	return func(o *options) {
		o.caller = c
	}
}

// WithLogger sets the logger handed to the HTTP transport.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Resource exposes the protocol operations of one resource.
type Resource[T any] struct {
	name    string
	url     string
	search  query.SearchQuery
	caller  transport.Caller
	headers http.Header
}

// New binds the named resource to its API client.
//
// The client is resolved from reg once, using preset.Client or the default
// client, and its request defaults are evaluated once; both are kept for the
// lifetime of the resource. New fails before any request is made when the
// name is empty or the client cannot be resolved.
func New[T any](reg *registry.Registry, name string, preset Preset, opts ...Option) (*Resource[T], error) {
	if name == "" {
		return nil, &Error{Op: "New", Err: ErrResourceNameRequired}
	}
	if reg == nil {
		return nil, &Error{Op: "New", Resource: name, Err: ErrRegistryRequired}
	}

	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := reg.Resolve(preset.Client)
	if err != nil {
		return nil, &Error{Op: "New", Resource: name, Err: err}
	}
	if client.URL == "" {
		return nil, &Error{Op: "New", Resource: name, Err: registry.ErrBaseURLRequired}
	}

	defaults := client.Defaults()
	resourceURL := transport.JoinURL(client.URL, client.APIPath, name)

	caller := o.caller
	if caller == nil {
		httpTransport, err := transport.NewHTTP(transport.Config{
			BaseURL:         resourceURL,
			HTTPClient:      client.HTTPClient,
			MaxRetries:      client.MaxRetries,
			RetryDelay:      client.RetryDelay,
			RequestIDHeader: client.RequestIDHeader,
			Hooks:           transport.CombineHooks(client.Hooks, preset.Hooks),
			Logger:          o.logger.Named(name),
		})
		if err != nil {
			return nil, &Error{Op: "New", Resource: name, Err: err}
		}
		caller = httpTransport
	}

	r := &Resource[T]{
		name:    name,
		url:     resourceURL,
		caller:  caller,
		headers: defaults.Headers,
	}
	if preset.Search != nil {
		r.search = *preset.Search
	}

	return r, nil
}

// Name returns the resource name.
func (r *Resource[T]) Name() string {
	return r.name
}

// URL returns the resource URL.
func (r *Resource[T]) URL() string {
	return r.url
}

// With returns a copy of the resource whose search preset is replaced by
// search. The copy shares the client and transport of r.
func (r *Resource[T]) With(search query.SearchQuery) *Resource[T] {
	derived := *r
	derived.search = search
	return &derived
}

// Details fetches the resource description.
func (r *Resource[T]) Details(ctx context.Context) (json.RawMessage, error) {
	return rest.Details(ctx, r.caller, r.headers)
}

// Search runs the preset search overlaid with request.
//
//	page, err := products.Search(ctx, query.SearchQuery{
//	    Filters: []query.Filter{{Field: "category.name", Value: "electronics"}},
//	})
//	next, err := page.NextPage(ctx)
func (r *Resource[T]) Search(ctx context.Context, request query.SearchQuery) (*rest.Page[T], error) {
	return rest.Search[T](ctx, r.caller, query.Merge(r.search, request), r.headers)
}

// FindOne returns the first resource matching the preset search overlaid
// with request, or nil if none matched.
func (r *Resource[T]) FindOne(ctx context.Context, request query.SearchQuery) (*T, error) {
	return rest.FindOne[T](ctx, r.caller, query.Merge(r.search, request), r.headers)
}

// FindOneByID returns the resource with the given id, or nil.
//
// The id filter is the base of the query: the preset search and then request
// are overlaid on it, so a Filters value in either replaces the id filter.
func (r *Resource[T]) FindOneByID(ctx context.Context, id any, request query.SearchQuery) (*T, error) {
	byID := query.SearchQuery{
		Filters: []query.Filter{{Field: "id", Value: id}},
	}
	q := query.Merge(query.Merge(byID, r.search), request)
	return rest.FindOne[T](ctx, r.caller, q, r.headers)
}

// Mutate applies mutations.
//
//	resp, err := products.Mutate(ctx, []query.MutateRequest[Product]{{
//	    Operation:  query.OperationUpdate,
//	    Key:        2,
//	    Attributes: &Product{Price: 19.99},
//	}})
func (r *Resource[T]) Mutate(ctx context.Context, mutations []query.MutateRequest[T]) (*query.MutateResponse, error) {
	return rest.Mutate[T](ctx, r.caller, mutations, r.headers)
}

// Actions runs the named action.
func (r *Resource[T]) Actions(ctx context.Context, name string, req query.ActionRequest) (*query.ActionResponse, error) {
	return rest.Actions(ctx, r.caller, name, req, r.headers)
}

// Remove deletes resources by key.
func (r *Resource[T]) Remove(ctx context.Context, ids []any) (json.RawMessage, error) {
	return rest.Remove(ctx, r.caller, ids, r.headers)
}

// ForceDelete permanently deletes soft-deleted resources.
func (r *Resource[T]) ForceDelete(ctx context.Context, ids []any) (json.RawMessage, error) {
	return rest.ForceDelete(ctx, r.caller, ids, r.headers)
}

// Restore restores soft-deleted resources.
func (r *Resource[T]) Restore(ctx context.Context, ids []any) (json.RawMessage, error) {
	return rest.Restore(ctx, r.caller, ids, r.headers)
}
