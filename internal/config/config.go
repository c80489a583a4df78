// Package config loads the httpcraft configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/http/httpguts"
	"gopkg.in/yaml.v3"

	"github.com/stealthrocket/httpcraft/internal/print/human"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is httpcraft configuration.
type Config struct {
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout human.Duration `json:"timeout"     yaml:"timeout"`
	// UserAgent is sent with every request unless a header overrides it.
	UserAgent string `json:"user-agent"  yaml:"user-agent"`
	// Headers are added to every request.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	// Color is one of auto, always or never.
	Color string `json:"color"       yaml:"color"`
	// Output is one of text, json or yaml.
	Output string `json:"output"      yaml:"output"`
	// Compression controls whether responses may be compressed.
	Compression bool `json:"compression" yaml:"compression"`
}

// Default is the default configuration.
func Default() *Config {
	return &Config{
		Color:       ColorAuto,
		Output:      OutputText,
		Compression: true,
	}
}

// Load reads the configuration file at path. An empty path yields the
// default configuration.
func Load(path human.Path) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	p, err := path.Resolve()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read reads and validates configuration. Fields absent from r keep their
// default value.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that enumerated fields hold one of their accepted values
// and that the timeout and headers can be sent.
func (c *Config) Validate() error {
	if err := oneOf("color", c.Color, ColorAuto, ColorAlways, ColorNever); err != nil {
		return err
	}
	if err := oneOf("output", c.Output, OutputText, OutputJSON, OutputYAML); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout: negative duration: %s", c.Timeout)
	}
	for name, value := range c.Headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("headers: invalid header name: %q", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("headers: invalid value for header %s: %q", name, value)
		}
	}
	return nil
}

// Marshal returns the YAML representation of c.
func (c *Config) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	e := yaml.NewEncoder(b)
	e.SetIndent(2)
	if err := e.Encode(c); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func oneOf(field, value string, options ...string) error {
	for _, option := range options {
		if value == option {
			return nil
		}
	}
	return fmt.Errorf("%s: %q is not one of %s", field, value, strings.Join(options, ", "))
}
