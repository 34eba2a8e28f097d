// config_keys.go provides key-value access to configuration settings for the
// config command, where keys are addressed as strings (e.g. "search.policy").

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"console.title", "console.root",
		"search.policy",
		"routes.snapshot",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "console.title":
		return c.Title(), nil
	case "console.root":
		return c.RootPath(), nil
	case "search.policy":
		return c.SearchPolicy(), nil
	case "routes.snapshot":
		return c.Snapshot(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "console.title":
		c.Console.Title = &value
	case "console.root":
		if strings.HasPrefix(value, "/") || strings.HasSuffix(value, "/") {
			return fmt.Errorf("%w: console.root must not begin or end with /", ErrInvalidValue)
		}
		c.Console.Root = value
	case "search.policy":
		v := strings.ToLower(value)
		if v != "every" && v != "distinct" {
			return fmt.Errorf("%w: search.policy must be every or distinct", ErrInvalidValue)
		}
		c.Search.Policy = v
	case "routes.snapshot":
		if value == "" {
			return fmt.Errorf("%w: routes.snapshot must not be empty", ErrInvalidValue)
		}
		c.Routes.Snapshot = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"console.title":   c.Title(),
		"console.root":    c.RootPath(),
		"search.policy":   c.SearchPolicy(),
		"routes.snapshot": c.Snapshot(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "console.title":
		return c.Console.Title != nil
	case "console.root":
		return c.Console.Root != ""
	case "search.policy":
		return c.Search.Policy != ""
	case "routes.snapshot":
		return c.Routes.Snapshot != ""
	default:
		return false
	}
}
