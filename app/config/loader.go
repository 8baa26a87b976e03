package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the feed source list
type Loader struct {
	path string
}

// NewLoader creates a new feed list loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the feeds file and returns the validated source list
func (l *Loader) Load() ([]Source, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var feeds Feeds
	if err := yaml.Unmarshal(data, &feeds); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(feeds.Feeds) == 0 {
		return nil, fmt.Errorf("no feeds defined in %s", l.path)
	}

	for i, source := range feeds.Feeds {
		if err := l.validate(source); err != nil {
			return nil, fmt.Errorf("invalid feed at index %d: %w", i, err)
		}
	}

	return feeds.Feeds, nil
}

// validate checks a single feed source
func (l *Loader) validate(source Source) error {
	if source.Name == "" {
		return fmt.Errorf("feed name is required")
	}
	if source.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if !isHTTPURL(source.URL) {
		return fmt.Errorf("feed URL must be http(s): %s", source.URL)
	}
	if source.Website == "" {
		return fmt.Errorf("feed website is required")
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
