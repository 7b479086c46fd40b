// Package config loads command line defaults from YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are the configuration files looked up by the suite CLI, in
// order. Missing files are ignored.
func DefaultPaths() []string {
	return []string{
		".ninjatest.yaml",
		"~/.config/ninjatest.yaml",
	}
}

// YAML is a kong.ConfigurationLoader for a flat YAML mapping of flag names to
// values. Keys may be written as the flag name (`keep-going`) or in snake case
// (`keep_going`).
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if value, ok := values[key]; ok {
				return value, nil
			}
		}

		return nil, nil
	}

	return f, nil
}
