package typespec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a specification file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath returns the format implied by the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode parses a specification from data.
func Decode(data []byte, format Format) (*TypeSpec, error) {
	var spec TypeSpec

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&spec); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &spec, nil
}

// LoadSpec reads a single specification file.
func LoadSpec(path string) (*TypeSpec, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typespec: failed to read spec: %w", err)
	}

	spec, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("typespec: parse error in %s: %w", path, err)
	}
	return spec, nil
}

// LoadSpecs reads and merges the specification files matching patterns.
// Patterns may use ** globs. Files merge in pattern order, then path order.
func LoadSpecs(patterns ...string) (*TypeSpec, []string, error) {
	paths, err := ExpandPatterns(patterns...)
	if err != nil {
		return nil, nil, err
	}

	merged := &TypeSpec{}
	for _, path := range paths {
		spec, err := LoadSpec(path)
		if err != nil {
			return nil, nil, err
		}
		merged.Merge(spec)
	}
	return merged, paths, nil
}

// ExpandPatterns resolves file paths and glob patterns to a de-duplicated
// list of files.
func ExpandPatterns(patterns ...string) ([]string, error) {
	var paths []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, pattern := range patterns {
		if !containsGlob(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, fmt.Errorf("typespec: failed to read spec: %w", err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("typespec: spec path is a directory: %s", pattern)
			}
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("typespec: glob error: %w", err)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSpecFiles, strings.Join(patterns, ", "))
	}
	return paths, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
