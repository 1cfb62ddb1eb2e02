// Package config loads closeguard configuration from a yaml file and from
// the host-supplied option map.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings for the overlay. Values are kept as
// strings; interpretation (and fallback on bad values) happens where they are
// consumed, so a broken config can never take the overlay down.
type Config struct {
	// Action is the operation to confirm: quit_session, close_pane or close_tab.
	Action string `yaml:"action"`
	// ConfirmKey and CancelKey use the Mod+Key grammar, e.g. "Enter" or "Ctrl+c".
	ConfirmKey string `yaml:"confirm_key"`
	CancelKey  string `yaml:"cancel_key"`
}

// Default returns the stock configuration: quit the session, Enter to
// confirm, Esc to cancel.
func Default() Config {
	return Config{
		Action:     "quit_session",
		ConfirmKey: "Enter",
		CancelKey:  "Esc",
	}
}

// DefaultPath returns ~/.closeguard/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".closeguard", "config.yaml")
}

// Load reads the yaml config at path, falling back to DefaultPath when path
// is empty. A missing or unparsable file yields the defaults; configuration
// problems are never fatal.
func Load(path string) Config {
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Default()
	}
	return MergeWithDefaults(loaded)
}

// WithOptions returns a copy of c with the host-supplied string key/value
// options applied on top. Unknown keys are ignored.
func (c Config) WithOptions(opts map[string]string) Config {
	if v, ok := opts["action"]; ok {
		c.Action = v
	}
	if v, ok := opts["confirm_key"]; ok {
		c.ConfirmKey = v
	}
	if v, ok := opts["cancel_key"]; ok {
		c.CancelKey = v
	}
	return c
}

// MergeWithDefaults fills in missing values with defaults.
func MergeWithDefaults(cfg Config) Config {
	def := Default()
	if cfg.Action == "" {
		cfg.Action = def.Action
	}
	if cfg.ConfirmKey == "" {
		cfg.ConfirmKey = def.ConfirmKey
	}
	if cfg.CancelKey == "" {
		cfg.CancelKey = def.CancelKey
	}
	return cfg
}
