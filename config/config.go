// Package config loads pagepurl settings from YAML and command-line flags.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/git-pkgs/pagepurl/internal/core"
)

type Config struct {
	Registries []Registry `yaml:"registries"`
	Fetch      Fetch      `yaml:"fetch"`
	Output     string     `yaml:"output"`
	LogLevel   string     `yaml:"log_level"`
	LogFormat  string     `yaml:"log_format"`
}

// Registry declares an extra catalog entry.
//
// PageTemplate may reference {namespace}, {name} and {version}.
type Registry struct {
	ID                string            `yaml:"id"`
	Ecosystem         string            `yaml:"ecosystem"`
	Prefix            string            `yaml:"prefix"`
	Pattern           string            `yaml:"pattern"`
	VersionSelector   string            `yaml:"version_selector"`
	VersionToken      int               `yaml:"version_token"`
	VersionTrimPrefix string            `yaml:"version_trim_prefix"`
	Qualifiers        map[string]string `yaml:"qualifiers"`
	PageTemplate      string            `yaml:"page_template"`
}

type Fetch struct {
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

func Default() *Config {
	return &Config{
		Fetch: Fetch{
			UserAgent:  "pagepurl/1.0",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
		},
		Output:    "text",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFlags overrides cfg with flags that were set or have non-empty defaults.
func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetString("log-level"); err == nil && v != "" {
		cfg.LogLevel = v
	}
	if v, err := flags.GetString("log-format"); err == nil && v != "" {
		cfg.LogFormat = v
	}
	if v, err := flags.GetString("user-agent"); err == nil && v != "" {
		cfg.Fetch.UserAgent = v
	}
	if flags.Changed("timeout") {
		if v, err := flags.GetDuration("timeout"); err == nil {
			cfg.Fetch.Timeout = v
		}
	}
	if flags.Changed("max-retries") {
		if v, err := flags.GetInt("max-retries"); err == nil {
			cfg.Fetch.MaxRetries = v
		}
	}
	return cfg
}

// RegistryTypes compiles the configured entries into catalog entries.
func (c *Config) RegistryTypes() ([]core.RegistryType, error) {
	types := make([]core.RegistryType, 0, len(c.Registries))
	for _, r := range c.Registries {
		rt, err := r.RegistryType()
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}

// Register compiles the configured entries and adds them to catalog.
// Nothing is added unless every entry is valid.
func (c *Config) Register(catalog *core.Catalog) error {
	types, err := c.RegistryTypes()
	if err != nil {
		return err
	}
	return catalog.RegisterAll(types...)
}

func (r Registry) RegistryType() (core.RegistryType, error) {
	pattern, err := core.CompilePattern(r.Pattern)
	if err != nil {
		var cfgErr *core.ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.RegistryID = r.ID
		}
		return core.RegistryType{}, err
	}

	rt := core.RegistryType{
		ID:         r.ID,
		Ecosystem:  r.Ecosystem,
		URLPrefix:  r.Prefix,
		Pattern:    pattern,
		Qualifiers: r.Qualifiers,
	}
	if r.VersionSelector != "" {
		rt.VersionSelector = &core.VersionSelector{
			Selector:   r.VersionSelector,
			Token:      r.VersionToken,
			TrimPrefix: r.VersionTrimPrefix,
		}
	}
	if tmpl := r.PageTemplate; tmpl != "" {
		rt.PageURL = func(c *core.Coordinate) string {
			return strings.NewReplacer(
				"{namespace}", c.Namespace(),
				"{name}", c.Name(),
				"{version}", c.Version(),
			).Replace(tmpl)
		}
	}
	return rt, nil
}
