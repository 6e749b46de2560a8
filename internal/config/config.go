// Package config loads and validates the service configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("config file invalid")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config is the full service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Render     RenderConfig     `yaml:"render"`
	Theme      ThemeConfig      `yaml:"theme"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// FetchConfig controls remote asset downloads.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// RenderConfig controls the browser-backed PDF renderer.
type RenderConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ThemeConfig holds the document color palette as #RRGGBB strings.
type ThemeConfig struct {
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	AccentColor    string `yaml:"accent_color"`
}

// NormalizerConfig overrides the text-normalization defaults.
// Empty values fall back to the built-in defaults.
type NormalizerConfig struct {
	ProperNouns    []string `yaml:"proper_nouns"`
	SuffixAlphabet string   `yaml:"suffix_alphabet"`
	SuffixWindow   int      `yaml:"suffix_window"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8000"},
		Fetch:  FetchConfig{TimeoutSeconds: 30},
		Render: RenderConfig{TimeoutSeconds: 120},
		Theme: ThemeConfig{
			PrimaryColor:   "#601A43",
			SecondaryColor: "#162E52",
			AccentColor:    "#C9A227",
		},
	}
}

// Load reads a YAML config file. Unknown fields are rejected so typos
// surface at startup instead of silently falling back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr cannot be empty")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return errors.New("fetch.timeout_seconds must be positive")
	}
	if c.Render.TimeoutSeconds <= 0 {
		return errors.New("render.timeout_seconds must be positive")
	}
	for name, color := range map[string]string{
		"theme.primary_color":   c.Theme.PrimaryColor,
		"theme.secondary_color": c.Theme.SecondaryColor,
		"theme.accent_color":    c.Theme.AccentColor,
	} {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("%s must be a #RRGGBB color, got %q", name, color)
		}
	}
	if c.Normalizer.SuffixWindow < 0 {
		return errors.New("normalizer.suffix_window cannot be negative")
	}
	return nil
}

// FetchTimeout returns the asset download timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// RenderTimeout returns the PDF render timeout as a duration.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.Render.TimeoutSeconds) * time.Second
}
