package transport

import (
	"context"
	"net/http"
)

// Hooks observe the request lifecycle of an HTTP transport. All hooks are
// optional.
type Hooks struct {
	// OnRequest runs before the request is sent. Returning an error aborts the
	// request with that error.
	OnRequest func(ctx context.Context, req *http.Request) error

	// OnRequestError runs when the request could not be performed.
	OnRequestError func(ctx context.Context, req *http.Request, err error)

	// OnResponse runs for every response. The body has already been read and
	// is replaced with an in-memory copy. Returning an error fails the call.
	OnResponse func(ctx context.Context, resp *http.Response) error

	// OnResponseError runs for non-success responses, after OnResponse.
	OnResponseError func(ctx context.Context, resp *http.Response)
}

// CombineHooks returns hooks that run the global hook first and then the
// specific one.
func CombineHooks(global, specific Hooks) Hooks {
	return Hooks{
		OnRequest: func(ctx context.Context, req *http.Request) error {
			if global.OnRequest != nil {
				if err := global.OnRequest(ctx, req); err != nil {
					return err
				}
			}
			if specific.OnRequest != nil {
				return specific.OnRequest(ctx, req)
			}
			return nil
		},
		OnRequestError: func(ctx context.Context, req *http.Request, err error) {
			if global.OnRequestError != nil {
				global.OnRequestError(ctx, req, err)
			}
			if specific.OnRequestError != nil {
				specific.OnRequestError(ctx, req, err)
			}
		},
		OnResponse: func(ctx context.Context, resp *http.Response) error {
			if global.OnResponse != nil {
				if err := global.OnResponse(ctx, resp); err != nil {
					return err
				}
			}
			if specific.OnResponse != nil {
				return specific.OnResponse(ctx, resp)
			}
			return nil
		},
		OnResponseError: func(ctx context.Context, resp *http.Response) {
			if global.OnResponseError != nil {
				global.OnResponseError(ctx, resp)
			}
			if specific.OnResponseError != nil {
				specific.OnResponseError(ctx, resp)
			}
		},
	}
}
