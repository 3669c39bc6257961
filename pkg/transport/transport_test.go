package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://api.example.com", []string{"api", "products"}, "https://api.example.com/api/products"},
		{"https://api.example.com/", []string{"/api/", "/products"}, "https://api.example.com/api/products"},
		{"https://api.example.com/api/products", []string{"/"}, "https://api.example.com/api/products"},
		{"https://api.example.com/api/products", []string{"/search"}, "https://api.example.com/api/products/search"},
		{"https://api.example.com", []string{"", "products"}, "https://api.example.com/products"},
		{"https://api.example.com/api/products", []string{"/actions/expire"}, "https://api.example.com/api/products/actions/expire"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinURL(tt.base, tt.segments...))
	}
}

func TestCallerFunc(t *testing.T) {
	var gotPath string
	var c Caller = CallerFunc(func(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
		gotPath = path
		assert.Equal(t, http.MethodGet, opts.Method)
		return json.RawMessage(`{}`), nil
	})

	raw, err := c.Call(context.Background(), "/", RequestOptions{Method: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, "/", gotPath)
	assert.JSONEq(t, `{}`, string(raw))
}
