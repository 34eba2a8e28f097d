// Package config provides reading and writing of juggler configuration.
// Supports both global (~/.juggler/config.yaml) and local (.juggler/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.juggler/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project config in .juggler/config.yaml
	ScopeLocal
	// ScopeFile is an explicit file passed with --config
	ScopeFile
)

// Defaults applied when a key is not configured.
const (
	DefaultTitle        = "Stream Juggler"
	DefaultSearchPolicy = "every"
	DefaultSnapshot     = "routes.yaml"
)

// Console holds settings for the composed navigation root.
type Console struct {
	Title *string `yaml:"title,omitempty"`
	Root  string  `yaml:"root,omitempty"`
}

// Search holds settings for search filter components.
type Search struct {
	Policy string `yaml:"policy,omitempty"`
}

// Routes holds settings for route table checks.
type Routes struct {
	Snapshot string `yaml:"snapshot,omitempty"`
}

// Config contains configuration for juggler.
type Config struct {
	Console Console `yaml:"console,omitempty"`
	Search  Search  `yaml:"search,omitempty"`
	Routes  Routes  `yaml:"routes,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Title returns the root breadcrumb (defaults to "Stream Juggler"). An
// explicitly empty title is kept.
func (c *Config) Title() string {
	if c.Console.Title == nil {
		return DefaultTitle
	}
	return *c.Console.Title
}

// RootPath returns the path of the navigation root (defaults to empty).
func (c *Config) RootPath() string {
	return c.Console.Root
}

// SearchPolicy returns the emission policy name (defaults to "every").
func (c *Config) SearchPolicy() string {
	if c.Search.Policy == "" {
		return DefaultSearchPolicy
	}
	return c.Search.Policy
}

// Snapshot returns the route snapshot file (defaults to "routes.yaml").
func (c *Config) Snapshot() string {
	if c.Routes.Snapshot == "" {
		return DefaultSnapshot
	}
	return c.Routes.Snapshot
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".juggler", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.juggler/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".juggler", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope. A missing file
// yields an empty config bound to that scope's path.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	cfg, err := read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.scope = scope
	return cfg, nil
}

// LoadFile reads configuration from an explicit path, which must exist.
func LoadFile(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	cfg.scope = ScopeFile
	return cfg, nil
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
