package config

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"

	"github.com/hashicorp-forge/restkit/pkg/registry"
	"github.com/hashicorp-forge/restkit/pkg/transport"
)

const traceServiceName = "restkit"

// Registry builds a registry holding every configured client, in file order.
//
// OIDC issuers are contacted here to discover token endpoints, so ctx bounds
// that discovery.
func (c *Config) Registry(ctx context.Context, logger hclog.Logger) (*registry.Registry, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	reg := registry.New(logger)
	for _, cc := range c.Clients {
		client, err := cc.build(ctx, logger)
		if err != nil {
			return nil, fmt.Errorf("client %q: %w", cc.Slug, err)
		}
		if err := reg.Register(client); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// TokenEnvName returns the environment variable read for the bearer token.
func (c *Client) TokenEnvName() string {
	if c.TokenEnv != "" {
		return c.TokenEnv
	}
	return strcase.ToScreamingSnake("restkit_" + c.Slug + "_token")
}

func (c *Client) build(ctx context.Context, logger hclog.Logger) (registry.Client, error) {
	httpClient, err := c.httpClient(ctx)
	if err != nil {
		return registry.Client{}, err
	}

	if c.DatadogTrace {
		httpClient = httptrace.WrapClient(httpClient,
			httptrace.RTWithServiceName(traceServiceName),
			httptrace.RTWithResourceNamer(func(req *http.Request) string {
				return req.Method + " " + req.URL.Path
			}),
		)
	}

	logger.Debug("API client configured",
		"slug", c.Slug,
		"oauth2", c.OAuth2 != nil,
		"datadog_trace", c.DatadogTrace)

	return registry.Client{
		Slug:            c.Slug,
		URL:             c.URL,
		APIPath:         c.APIPathOrDefault(),
		IsDefault:       c.Default,
		RequestInit:     c.requestInit(),
		HTTPClient:      httpClient,
		MaxRetries:      c.MaxRetries,
		RetryDelay:      c.RetryDelayDuration(),
		RequestIDHeader: c.RequestIDHeader,
	}, nil
}

// requestInit returns the static headers plus the bearer token. The token is
// read from the environment each time a resource is bound, so a rotated
// token is picked up by resources built afterwards.
func (c *Client) requestInit() registry.RequestInit {
	headers := make(http.Header, len(c.Headers))
	for k, v := range c.Headers {
		headers.Set(k, v)
	}
	tokenEnv := c.TokenEnvName()
	useToken := c.OAuth2 == nil

	return func() registry.Defaults {
		h := headers.Clone()
		if useToken {
			if token := os.Getenv(tokenEnv); token != "" {
				h.Set("Authorization", "Bearer "+token)
			}
		}
		return registry.Defaults{Headers: h}
	}
}

func (c *Client) httpClient(ctx context.Context) (*http.Client, error) {
	base := (&transport.Config{
		Timeout:   c.TimeoutOrDefault(),
		TLSVerify: c.TLSVerify,
	}).NewHTTPClient()

	if c.OAuth2 == nil {
		return base, nil
	}

	tokenURL := c.OAuth2.TokenURL
	if tokenURL == "" {
		provider, err := oidc.NewProvider(oidc.ClientContext(ctx, base), c.OAuth2.IssuerURL)
		if err != nil {
			return nil, fmt.Errorf("error discovering OIDC issuer %q: %w", c.OAuth2.IssuerURL, err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	cc := clientcredentials.Config{
		ClientID:     c.OAuth2.ClientID,
		ClientSecret: c.OAuth2.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       c.OAuth2.Scopes,
	}

	// The token source outlives ctx, so it gets a context of its own that
	// only carries the base client.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := cc.Client(tokenCtx)
	client.Timeout = base.Timeout

	return client, nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
