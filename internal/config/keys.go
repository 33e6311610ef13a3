package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "api-url").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save). It returns an error
	// for values the key cannot accept.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "api-url",
		Description: "Base URL of the admin API (SASSMON_API_URL overrides)",
		Get:         func(cfg *Config) string { return cfg.APIBaseURL },
		Set: func(cfg *Config, v string) error {
			cfg.APIBaseURL = v
			return nil
		},
	},
	{
		Name:        "page-size",
		Description: "Default page size for list commands",
		Get: func(cfg *Config) string {
			if cfg.PageSize == 0 {
				return ""
			}
			return strconv.Itoa(cfg.PageSize)
		},
		Set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("config: page-size must be a positive integer, got %q", v)
			}
			cfg.PageSize = n
			return nil
		},
	},
	{
		Name:        "debug",
		Description: "Write debug logs to a file (true/false)",
		Get: func(cfg *Config) string {
			if !cfg.Debug {
				return ""
			}
			return "true"
		},
		Set: func(cfg *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: debug must be true or false, got %q", v)
			}
			cfg.Debug = b
			return nil
		},
	},
	{
		Name:        "debug-log-path",
		Description: "File debug logs are written to when debug is enabled",
		Get:         func(cfg *Config) string { return cfg.DebugLogPath },
		Set: func(cfg *Config, v string) error {
			cfg.DebugLogPath = v
			return nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
