package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aeshirey/postkit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Tag resolution ordering values for the tag_order key.
const (
	OrderBeforeConfirm = "before-confirm"
	OrderAfterConfirm  = "after-confirm"
)

// Settings holds the effective configuration for one run.
type Settings struct {
	// PostsDir is the target directory, relative to the working directory.
	PostsDir string
	// KnownTags is the ordered list matched as substrings of the title.
	KnownTags []string
	// TagOrder is OrderBeforeConfirm or OrderAfterConfirm.
	TagOrder string
	// TagFallbackPrompt enables the manual tag prompt when nothing matched.
	TagFallbackPrompt bool
	// UTCOffset is the literal offset appended to front-matter dates. It is
	// never computed from the system zone; changing it changes output bytes.
	UTCOffset string
	// Category is the front-matter category field.
	Category string
	// Requires is an optional semver constraint on the running binary.
	Requires string
}

// Dir returns the path to the config directory (~/.postkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.postkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// newViper builds a viper instance wired to the given config file, the
// POSTKIT_* environment, and the documented defaults.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault("posts_dir", "_posts")
	v.SetDefault("known_tags", []string{"python", "rust", "data"})
	v.SetDefault("tag_order", OrderBeforeConfirm)
	v.SetDefault("tag_fallback_prompt", true)
	v.SetDefault("utc_offset", "-0700")
	v.SetDefault("category", "code")
	v.SetDefault("requires", "")

	return v
}

// Load resolves Settings from the default config file location.
func Load() (*Settings, error) {
	return LoadFrom(FilePath())
}

// LoadFrom resolves Settings from an explicit config file path. A missing
// file is not an error; defaults and environment overrides still apply.
func LoadFrom(path string) (*Settings, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	s := &Settings{
		PostsDir:          v.GetString("posts_dir"),
		KnownTags:         stringList(v.Get("known_tags")),
		TagOrder:          v.GetString("tag_order"),
		TagFallbackPrompt: v.GetBool("tag_fallback_prompt"),
		UTCOffset:         v.GetString("utc_offset"),
		Category:          v.GetString("category"),
		Requires:          v.GetString("requires"),
	}

	if s.TagOrder != OrderBeforeConfirm && s.TagOrder != OrderAfterConfirm {
		return nil, fmt.Errorf("invalid tag_order %q: must be %q or %q",
			s.TagOrder, OrderBeforeConfirm, OrderAfterConfirm)
	}

	return s, nil
}

// Get returns a raw config value by key from the default file. Returns the
// empty string if not set.
func Get(key string) string {
	v := newViper(FilePath())
	_ = v.ReadInConfig()
	return v.GetString(key)
}

// Set writes a config key-value pair and saves the config file. List-valued
// keys (known_tags) accept a comma-separated value.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	v := newViper(configFile)
	_ = v.ReadInConfig()

	if key == "known_tags" {
		v.Set(key, splitList(value))
	} else {
		v.Set(key, value)
	}

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// stringList coerces a viper value to []string. Environment overrides arrive
// as a single comma-separated string.
func stringList(raw interface{}) []string {
	switch val := raw.(type) {
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		return splitList(val)
	default:
		return nil
	}
}

// splitList parses a comma-separated list, dropping empty entries. This is
// config parsing, not manual tag entry — the scaffold flow has its own rules
// for preserving empties.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
