// Package registry keeps the named API clients resources are bound to.
package registry

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/restkit/pkg/transport"
)

var (
	// ErrClientNotFound is returned when no client matches a slug, or when
	// no default client is registered.
	ErrClientNotFound = errors.New("API client not found")

	// ErrDuplicateClient is returned when a slug is registered twice.
	ErrDuplicateClient = errors.New("API client already exists")

	// ErrBaseURLRequired is returned for clients without a URL.
	ErrBaseURLRequired = errors.New("API client URL is required")

	// ErrSlugRequired is returned for clients without a slug.
	ErrSlugRequired = errors.New("API client slug is required")
)

// Error is a registry failure.
type Error struct {
	Op   string // Operation, e.g. "Register"
	Slug string // Client slug, if known
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Slug, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Defaults are the request defaults of a client.
type Defaults struct {
	Headers http.Header
}

// RequestInit produces the request defaults of a client. It is evaluated
// once each time a resource is bound to the client.
type RequestInit func() Defaults

// Static returns a RequestInit that always yields d.
func Static(d Defaults) RequestInit {
	return func() Defaults {
		return Defaults{Headers: d.Headers.Clone()}
	}
}

// Client is a named API the resources are served from.
type Client struct {
	// Slug identifies the client.
	Slug string

	// URL is the base URL of the API, e.g. "https://api.example.com".
	URL string

	// APIPath is inserted between URL and the resource name, e.g. "/api".
	APIPath string

	// IsDefault marks the client used when a resource names none.
	IsDefault bool

	// RequestInit yields the default headers. Nil means no defaults.
	RequestInit RequestInit

	// HTTPClient performs the requests. Nil means a client built by the
	// transport from its defaults.
	HTTPClient *http.Client

	Hooks           transport.Hooks
	MaxRetries      int
	RetryDelay      time.Duration
	RequestIDHeader string
}

// Defaults evaluates the client's RequestInit.
func (c Client) Defaults() Defaults {
	if c.RequestInit == nil {
		return Defaults{Headers: make(http.Header)}
	}
	d := c.RequestInit()
	if d.Headers == nil {
		d.Headers = make(http.Header)
	}
	return d
}

// Registry holds API clients by slug. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	clients     map[string]Client
	order       []string
	defaultSlug string
	logger      hclog.Logger
}

// New creates an empty registry.
func New(logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Registry{
		clients: make(map[string]Client),
		logger:  logger.Named("registry"),
	}
}

// Register adds a client. The first client registered becomes the default.
// A later client with IsDefault set replaces the current default, which is
// logged as a warning.
func (r *Registry) Register(c Client) error {
	if c.Slug == "" {
		return &Error{Op: "Register", Err: ErrSlugRequired}
	}
	if c.URL == "" {
		return &Error{Op: "Register", Slug: c.Slug, Err: ErrBaseURLRequired}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[c.Slug]; exists {
		return &Error{Op: "Register", Slug: c.Slug, Err: ErrDuplicateClient}
	}

	switch {
	case r.defaultSlug == "":
		c.IsDefault = true
		r.defaultSlug = c.Slug
	case c.IsDefault:
		previous := r.clients[r.defaultSlug]
		previous.IsDefault = false
		r.clients[previous.Slug] = previous

		r.logger.Warn("default API client replaced",
			"previous", previous.Slug,
			"current", c.Slug)
		r.defaultSlug = c.Slug
	}

	r.clients[c.Slug] = c
	r.order = append(r.order, c.Slug)

	r.logger.Debug("API client registered",
		"slug", c.Slug,
		"url", c.URL,
		"default", c.IsDefault)

	return nil
}

// Resolve returns the client with the given slug, or the default client when
// slug is empty.
func (r *Registry) Resolve(slug string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if slug == "" {
		slug = r.defaultSlug
		if slug == "" {
			return Client{}, &Error{Op: "Resolve", Err: ErrClientNotFound}
		}
	}

	c, ok := r.clients[slug]
	if !ok {
		return Client{}, &Error{Op: "Resolve", Slug: slug, Err: ErrClientNotFound}
	}
	return c, nil
}

// Clients returns the registered clients in registration order.
func (r *Registry) Clients() []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]Client, 0, len(r.order))
	for _, slug := range r.order {
		clients = append(clients, r.clients[slug])
	}
	return clients
}
