// Package config loads the restkit configuration file.
//
// The file is HCL and declares API clients and the resources bound to them:
//
//	log_level = "info"
//
//	client "main" {
//	  url               = "https://api.example.com"
//	  api_path          = "/api"
//	  default           = true
//	  headers           = { "X-Tenant" = "acme" }
//	  token_env         = "MAIN_TOKEN"
//	  timeout           = "30s"
//	  max_retries       = 2
//	  retry_delay       = "500ms"
//	  request_id_header = "X-Request-Id"
//	  datadog_trace     = false
//
//	  oauth2 {
//	    token_url     = "https://auth.example.com/token"
//	    client_id     = "restkit"
//	    client_secret = "secret"
//	    scopes        = ["read"]
//	  }
//	}
//
//	resource "products" {
//	  client      = "main"
//	  preset_file = "presets/products.yaml"
//	}
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/restkit/pkg/resource"
)

const (
	// DefaultAPIPath is inserted between a client URL and resource names when
	// api_path is not set.
	DefaultAPIPath = "/api"

	// DefaultTimeout is the request timeout when timeout is not set.
	DefaultTimeout = 30 * time.Second
)

// Config is the root of the configuration file.
type Config struct {
	// LogLevel is the default log level of the CLI.
	LogLevel string `hcl:"log_level,optional" json:"log_level"`

	Clients   []*Client   `hcl:"client,block" json:"client"`
	Resources []*Resource `hcl:"resource,block" json:"resource"`

	presets map[string]resource.Preset
}

// Client configures one API client.
type Client struct {
	Slug string `hcl:"slug,label" json:"slug"`

	URL string `hcl:"url" json:"url"`

	// APIPath defaults to "/api". Set it to "" for APIs served from the root.
	APIPath *string `hcl:"api_path,optional" json:"api_path"`

	Default bool `hcl:"default,optional" json:"default"`

	// Headers are sent with every request of the client.
	Headers map[string]string `hcl:"headers,optional" json:"headers"`

	// TokenEnv names the environment variable holding a bearer token.
	// Defaults to RESTKIT_<SLUG>_TOKEN.
	TokenEnv string `hcl:"token_env,optional" json:"token_env"`

	Timeout         string `hcl:"timeout,optional" json:"timeout"`
	TLSVerify       *bool  `hcl:"tls_verify,optional" json:"tls_verify"`
	MaxRetries      int    `hcl:"max_retries,optional" json:"max_retries"`
	RetryDelay      string `hcl:"retry_delay,optional" json:"retry_delay"`
	RequestIDHeader string `hcl:"request_id_header,optional" json:"request_id_header"`

	// DatadogTrace traces outgoing requests with the Datadog tracer.
	DatadogTrace bool `hcl:"datadog_trace,optional" json:"datadog_trace"`

	OAuth2 *OAuth2 `hcl:"oauth2,block" json:"oauth2"`
}

// OAuth2 configures the client credentials flow. The token endpoint is
// either given directly or discovered from an OpenID Connect issuer.
type OAuth2 struct {
	TokenURL     string   `hcl:"token_url,optional" json:"token_url"`
	IssuerURL    string   `hcl:"issuer_url,optional" json:"issuer_url"`
	ClientID     string   `hcl:"client_id" json:"client_id"`
	ClientSecret string   `hcl:"client_secret,optional" json:"client_secret"`
	Scopes       []string `hcl:"scopes,optional" json:"scopes"`
}

// Resource binds a resource name to a client and a preset.
type Resource struct {
	Name string `hcl:"name,label" json:"name"`

	// Client is the client slug; empty selects the default client.
	Client string `hcl:"client,optional" json:"client"`

	// PresetFile is a YAML file with the preset search query. Relative paths
	// are resolved against the directory of the configuration file.
	PresetFile string `hcl:"preset_file,optional" json:"preset_file"`
}

// Load reads and validates the configuration file at path, along with the
// preset files it references.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	cfg, err := Parse(path, src)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadPresets(fs, filepath.Dir(path)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes and validates configuration source. filename is used in
// diagnostics and selects the syntax, so it should end in ".hcl".
func Parse(filename string, src []byte) (*Config, error) {
	var cfg Config
	if err := hclsimple.Decode(filename, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every block and returns all problems found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "off")),
	); err != nil {
		result = multierror.Append(result, err)
	}

	slugs := make(map[string]bool, len(c.Clients))
	for _, client := range c.Clients {
		if err := client.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("client %q: %w", client.Slug, err))
		}
		if slugs[client.Slug] {
			result = multierror.Append(result, fmt.Errorf("client %q: defined more than once", client.Slug))
		}
		slugs[client.Slug] = true
	}

	names := make(map[string]bool, len(c.Resources))
	for _, res := range c.Resources {
		if err := res.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("resource %q: %w", res.Name, err))
		}
		if names[res.Name] {
			result = multierror.Append(result, fmt.Errorf("resource %q: defined more than once", res.Name))
		}
		names[res.Name] = true

		if res.Client != "" && !slugs[res.Client] {
			result = multierror.Append(result, fmt.Errorf("resource %q: unknown client %q", res.Name, res.Client))
		}
	}

	return result.ErrorOrNil()
}

// Validate checks the client block.
func (c *Client) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Slug, validation.Required),
		validation.Field(&c.URL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.By(duration)),
		validation.Field(&c.RetryDelay, validation.By(duration)),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.OAuth2),
	)
}

// Validate checks the oauth2 block.
func (o OAuth2) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ClientID, validation.Required),
		validation.Field(&o.TokenURL,
			validation.When(o.IssuerURL == "", validation.Required.Error("token_url or issuer_url is required")),
			validation.By(httpURL)),
		validation.Field(&o.IssuerURL, validation.By(httpURL)),
	)
}

// Validate checks the resource block.
func (r *Resource) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
	)
}

// Client returns the client with the given slug, or nil.
func (c *Config) Client(slug string) *Client {
	for _, client := range c.Clients {
		if client.Slug == slug {
			return client
		}
	}
	return nil
}

// Resource returns the resource with the given name, or nil.
func (c *Config) Resource(name string) *Resource {
	for _, res := range c.Resources {
		if res.Name == name {
			return res
		}
	}
	return nil
}

// Preset returns the preset of the named resource. Resources missing from the
// file get an empty preset bound to the default client.
func (c *Config) Preset(name string) resource.Preset {
	if p, ok := c.presets[name]; ok {
		return p
	}
	if res := c.Resource(name); res != nil {
		return resource.Preset{Client: res.Client}
	}
	return resource.Preset{}
}

func (c *Config) loadPresets(fs afero.Fs, dir string) error {
	var result *multierror.Error

	c.presets = make(map[string]resource.Preset, len(c.Resources))
	for _, res := range c.Resources {
		preset := resource.Preset{Client: res.Client}

		if res.PresetFile != "" {
			path := res.PresetFile
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}

			search, err := LoadPreset(fs, path)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("resource %q: %w", res.Name, err))
				continue
			}
			preset.Search = search
		}

		c.presets[res.Name] = preset
	}

	return result.ErrorOrNil()
}

// APIPathOrDefault returns the configured API path or DefaultAPIPath.
func (c *Client) APIPathOrDefault() string {
	if c.APIPath == nil {
		return DefaultAPIPath
	}
	return *c.APIPath
}

// TimeoutOrDefault returns the parsed timeout or DefaultTimeout.
func (c *Client) TimeoutOrDefault() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && c.Timeout != "" {
		return d
	}
	return DefaultTimeout
}

// RetryDelayDuration returns the parsed retry delay, zero when unset.
func (c *Client) RetryDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryDelay)
	return d
}

var errInvalidURL = errors.New("must be an absolute http or https URL")

func httpURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !isHTTPURL(s) {
		return errInvalidURL
	}
	return nil
}

func duration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration such as \"30s\"")
	}
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
