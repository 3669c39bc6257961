package base

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/restkit/internal/config"
	"github.com/hashicorp-forge/restkit/pkg/registry"
	"github.com/hashicorp-forge/restkit/pkg/resource"
)

// DefaultConfigFile is read when neither -config nor RESTKIT_CONFIG is set.
const DefaultConfigFile = "restkit.hcl"

// Record is the resource type of the CLI. Records are passed through as
// loosely typed JSON objects.
type Record = map[string]any

// ClientFlags are the flags shared by commands that talk to an API.
type ClientFlags struct {
	Config   string
	Client   string
	LogLevel string
}

// AddClientFlags registers the shared flags on f.
func AddClientFlags(f *FlagSet, cf *ClientFlags) {
	configFile := os.Getenv("RESTKIT_CONFIG")
	if configFile == "" {
		configFile = DefaultConfigFile
	}

	f.StringVar(
		&cf.Config, "config", configFile,
		"[RESTKIT_CONFIG] Path to the restkit configuration file",
	)
	f.StringVar(
		&cf.Client, "client", "",
		"API client slug. Defaults to the client of the resource, then the default client",
	)
	f.StringVar(
		&cf.LogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error). Overrides log_level of the configuration file",
	)
}

// LoadConfig reads the configuration file and applies the log level.
func (c *Command) LoadConfig(cf ClientFlags) (*config.Config, error) {
	cfg, err := config.Load(c.Fs, cf.Config)
	if err != nil {
		return nil, err
	}

	level := cf.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level != "" {
		lvl := hclog.LevelFromString(level)
		if lvl == hclog.NoLevel {
			return nil, fmt.Errorf("invalid log level %q", level)
		}
		c.Log.SetLevel(lvl)
	}

	return cfg, nil
}

// Registry loads the configuration and builds the client registry.
func (c *Command) Registry(ctx context.Context, cf ClientFlags) (*config.Config, *registry.Registry, error) {
	cfg, err := c.LoadConfig(cf)
	if err != nil {
		return nil, nil, err
	}

	reg, err := cfg.Registry(ctx, c.Log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, reg, nil
}

// Resource binds the named resource using the configuration selected by cf.
func (c *Command) Resource(ctx context.Context, cf ClientFlags, name string) (*resource.Resource[Record], error) {
	cfg, reg, err := c.Registry(ctx, cf)
	if err != nil {
		return nil, err
	}

	preset := cfg.Preset(name)
	if cf.Client != "" {
		preset.Client = cf.Client
	}

	return resource.New[Record](reg, name, preset, resource.WithLogger(c.Log))
}

// PrintJSON writes v to the UI as indented JSON.
func (c *Command) PrintJSON(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	c.UI.Output(string(bytes.TrimRight(buf.Bytes(), "\n")))
	return nil
}

// DecodeJSON decodes a JSON flag value into v. Unknown fields are rejected
// so that misspelled keys are not silently dropped.
func DecodeJSON(flagName, raw string, v any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid -%s: %w", flagName, err)
	}
	if dec.More() {
		return fmt.Errorf("invalid -%s: unexpected data after JSON value", flagName)
	}
	return nil
}

// ParseKey converts a command line resource key. Integers are sent as
// numbers, anything else as a string.
func ParseKey(arg string) any {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	return arg
}

// ParseKeys converts command line resource keys with ParseKey.
func ParseKeys(args []string) []any {
	keys := make([]any, len(args))
	for i, arg := range args {
		keys[i] = ParseKey(arg)
	}
	return keys
}
