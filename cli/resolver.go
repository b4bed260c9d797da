package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that parses config files written in
// YAML.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Flag names with hyphens (e.g., "log-level") may be written with either
// hyphens or underscores in the config file (e.g., "log_level"). Command-line
// flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return config{}, nil //nolint:nilerr
	}

	doc := make(map[string]any)

	if err := yaml.Unmarshal(data, &doc); err != nil {
		// Parse error - return empty config so flags fall back to defaults.
		return config{}, nil //nolint:nilerr
	}

	return config(flatten("", doc)), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully.
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	return nil, nil
}

// flatten converts a nested YAML document into a single-level map whose keys
// are the nested key paths joined with "-", giving the "group-flag" style
// names Kong's embedded groups (e.g. log, pprof) expect.
func flatten(prefix string, doc map[string]any) map[string]any {
	out := make(map[string]any)

	for key, val := range doc {
		joined := key
		if prefix != "" {
			joined = prefix + "-" + key
		}

		switch v := val.(type) {
		case map[string]any:
			for k, vv := range flatten(joined, v) {
				out[k] = vv
			}
		case int:
			out[joined] = strconv.Itoa(v)
		case float64:
			out[joined] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			out[joined] = v
		}
	}

	return out
}
