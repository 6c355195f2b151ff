// Released under an MIT license. See LICENSE.

// Package config reads cclisp's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownIdentity is returned for an identity key that is not a placeholder.
var ErrUnknownIdentity = errors.New("unknown identity key")

// Identity keys that may be set.
//
//nolint:gochecknoglobals
var identities = map[string]bool{
	"authorname":  true,
	"authornick":  true,
	"usermention": true,
	"username":    true,
	"usernick":    true,
}

// T (config) holds cclisp's settings.
type T struct {
	History    string            `yaml:"history"`
	Identity   map[string]string `yaml:"identity"`
	Locale     string            `yaml:"locale"`
	MaxRuntime float64           `yaml:"max_runtime"`
}

// Default returns the settings used when there is no settings file.
func Default() *T {
	return &T{
		History:  filepath.Join(os.Getenv("HOME"), ".cclisp_history"),
		Identity: map[string]string{},
	}
}

// Load reads the settings file at path. An empty path gives the defaults.
func Load(path string) (*T, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Parse(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes the YAML document b into c.
func Parse(b []byte, c *T) error {
	if err := yaml.Unmarshal(b, c); err != nil {
		return err
	}

	for k := range c.Identity {
		if !identities[k] {
			return fmt.Errorf("%w: %s", ErrUnknownIdentity, k)
		}
	}

	if c.MaxRuntime < 0 {
		return fmt.Errorf("max_runtime must not be negative: %v", c.MaxRuntime)
	}

	return nil
}

// Budget returns the maximum runtime as a duration.
func (c *T) Budget() time.Duration {
	return time.Duration(c.MaxRuntime * float64(time.Second))
}
