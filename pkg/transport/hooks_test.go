package transport

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineHooks_GlobalFirst(t *testing.T) {
	var order []string
	global := Hooks{
		OnRequest: func(ctx context.Context, req *http.Request) error {
			order = append(order, "global")
			return nil
		},
	}
	specific := Hooks{
		OnRequest: func(ctx context.Context, req *http.Request) error {
			order = append(order, "specific")
			return nil
		},
	}

	err := CombineHooks(global, specific).OnRequest(context.Background(), &http.Request{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"global", "specific"}, order)
}

func TestCombineHooks_GlobalErrorStops(t *testing.T) {
	denied := errors.New("denied")
	specificCalled := false

	hooks := CombineHooks(
		Hooks{OnResponse: func(ctx context.Context, resp *http.Response) error { return denied }},
		Hooks{OnResponse: func(ctx context.Context, resp *http.Response) error {
			specificCalled = true
			return nil
		}},
	)

	err := hooks.OnResponse(context.Background(), &http.Response{})
	assert.ErrorIs(t, err, denied)
	assert.False(t, specificCalled)
}

func TestCombineHooks_Empty(t *testing.T) {
	hooks := CombineHooks(Hooks{}, Hooks{})
	ctx := context.Background()

	assert.NoError(t, hooks.OnRequest(ctx, &http.Request{}))
	assert.NoError(t, hooks.OnResponse(ctx, &http.Response{}))
	assert.NotPanics(t, func() {
		hooks.OnRequestError(ctx, &http.Request{}, errors.New("x"))
		hooks.OnResponseError(ctx, &http.Response{})
	})
}
