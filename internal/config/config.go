package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/scope-labs/mkbpf/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyOutputDir  = "output_dir"
	KeyAppVersion = "app_version"
	KeyBugAddress = "bug_address"
	KeyUnchecked  = "unchecked"
)

var knownKeys = map[string]string{
	KeyOutputDir:  "parent directory new applications are created in",
	KeyAppVersion: "program version written into generated loaders",
	KeyBugAddress: "bug report address written into generated loaders",
	KeyUnchecked:  "skip identifier validation of application names (true/false)",
}

// Config is a loaded view of the config file layered under the environment.
type Config struct {
	v *viper.Viper
}

// Dir returns the path to the config directory. MKBPF_HOME overrides the
// default of ~/.mkbpf.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
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

// Load reads the config file and binds the environment. A missing file is
// not an error; a file that cannot be read or parsed is, so that Set never
// replaces it with a copy that has lost its keys.
func Load() (*Config, error) {
	configFile := FilePath()

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyUnchecked, false)

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		return &Config{v: v}, nil
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return &Config{v: v}, nil
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// GetBool returns a config value parsed as a boolean.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// Set writes a config key-value pair and saves the config file.
func (c *Config) Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	c.v.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := c.v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns the help text for a key.
func Describe(key string) string {
	return knownKeys[key]
}
