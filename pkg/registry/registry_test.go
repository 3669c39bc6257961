package registry

import (
	"bytes"
	"net/http"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FirstClientIsDefault(t *testing.T) {
	reg := New(nil)

	require.NoError(t, reg.Register(Client{Slug: "main", URL: "https://main.example.com"}))
	require.NoError(t, reg.Register(Client{Slug: "other", URL: "https://other.example.com"}))

	c, err := reg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "main", c.Slug)
	assert.True(t, c.IsDefault)

	other, err := reg.Resolve("other")
	require.NoError(t, err)
	assert.False(t, other.IsDefault)
}

func TestRegistry_DefaultReplacementWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Warn,
	})
	reg := New(logger)

	require.NoError(t, reg.Register(Client{Slug: "main", URL: "https://main.example.com"}))
	assert.Empty(t, buf.String())

	require.NoError(t, reg.Register(Client{Slug: "next", URL: "https://next.example.com", IsDefault: true}))

	c, err := reg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "next", c.Slug)

	previous, err := reg.Resolve("main")
	require.NoError(t, err)
	assert.False(t, previous.IsDefault)

	out := buf.String()
	assert.Contains(t, out, "default API client replaced")
	assert.Contains(t, out, "previous=main")
	assert.Contains(t, out, "current=next")
}

func TestRegistry_Register_Errors(t *testing.T) {
	reg := New(hclog.NewNullLogger())
	require.NoError(t, reg.Register(Client{Slug: "main", URL: "https://main.example.com"}))

	tests := []struct {
		name    string
		client  Client
		wantErr error
	}{
		{
			name:    "duplicate slug",
			client:  Client{Slug: "main", URL: "https://other.example.com"},
			wantErr: ErrDuplicateClient,
		},
		{
			name:    "missing slug",
			client:  Client{URL: "https://other.example.com"},
			wantErr: ErrSlugRequired,
		},
		{
			name:    "missing URL",
			client:  Client{Slug: "other"},
			wantErr: ErrBaseURLRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.client)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var regErr *Error
			require.ErrorAs(t, err, &regErr)
			assert.Equal(t, "Register", regErr.Op)
		})
	}

	assert.Len(t, reg.Clients(), 1)
}

func TestRegistry_Resolve_NotFound(t *testing.T) {
	reg := New(nil)

	_, err := reg.Resolve("")
	assert.ErrorIs(t, err, ErrClientNotFound)

	require.NoError(t, reg.Register(Client{Slug: "main", URL: "https://main.example.com"}))

	_, err = reg.Resolve("missing")
	require.ErrorIs(t, err, ErrClientNotFound)
	assert.Equal(t, `Resolve "missing": API client not found`, err.Error())
}

func TestRegistry_Clients_Order(t *testing.T) {
	reg := New(nil)
	for _, slug := range []string{"b", "a", "c"} {
		require.NoError(t, reg.Register(Client{Slug: slug, URL: "https://" + slug + ".example.com"}))
	}

	var slugs []string
	for _, c := range reg.Clients() {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"b", "a", "c"}, slugs)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := New(nil)
	require.NoError(t, reg.Register(Client{Slug: "main", URL: "https://main.example.com"}))

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := reg.Resolve("")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			slug := string(rune('a' + i))
			assert.NoError(t, reg.Register(Client{Slug: slug, URL: "https://example.com"}))
		}()
	}
	wg.Wait()

	assert.Len(t, reg.Clients(), 11)
}

func TestClient_Defaults(t *testing.T) {
	assert.Equal(t, http.Header{}, Client{}.Defaults().Headers)

	static := Static(Defaults{Headers: http.Header{"Authorization": []string{"Bearer a"}}})
	c := Client{RequestInit: static}

	first := c.Defaults()
	first.Headers.Set("Authorization", "changed")
	assert.Equal(t, "Bearer a", c.Defaults().Headers.Get("Authorization"), "static defaults must be copied")

	calls := 0
	dynamic := Client{RequestInit: func() Defaults {
		calls++
		return Defaults{}
	}}
	assert.NotNil(t, dynamic.Defaults().Headers)
	dynamic.Defaults()
	assert.Equal(t, 2, calls)
}
