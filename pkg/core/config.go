// pkg/core/config.go
package core

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/dllget/pkg/dllfiles"
)

// Environment variables that override the config file
const (
	EnvBaseURL = "DLLGET_BASE_URL"
	EnvX32Dir  = "DLLGET_X32_DIR"
	EnvX64Dir  = "DLLGET_X64_DIR"
	EnvTimeout = "DLLGET_TIMEOUT"
	EnvDebug   = "DLLGET_DEBUG"
)

// DefaultEnvFile is loaded when no env file is named explicitly
const DefaultEnvFile = ".env"

// Config holds dllget configuration
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	X32Dir    string        `yaml:"x32_dir"`
	X64Dir    string        `yaml:"x64_dir"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`    // zero leaves requests bounded by their context only
	UserAgent string        `yaml:"user_agent,omitempty"` // empty sends the transport default
	Progress  bool          `yaml:"progress"`
	Debug     bool          `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  dllfiles.DefaultBaseURL,
		X32Dir:   dllfiles.DefaultX32Dir,
		X64Dir:   dllfiles.DefaultX64Dir,
		Progress: true,
		Debug:    false,
	}
}

// DefaultConfigPath returns $HOME/.config/dllget/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dllget", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Settings missing from the
// file keep their defaults; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// LoadEnv loads KEY=value files into the process environment without
// overriding variables that are already set. With no files it loads
// DefaultEnvFile and ignores its absence.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with DLLGET_* environment variables
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvX32Dir); v != "" {
		cfg.X32Dir = v
	}
	if v := os.Getenv(EnvX64Dir); v != "" {
		cfg.X64Dir = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	return nil
}

// Validate checks the settings the pipeline cannot run without
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute http(s) url", c.BaseURL)
	}
	if c.X32Dir == "" || c.X64Dir == "" {
		return fmt.Errorf("x32_dir and x64_dir must both be set")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// SystemDirs returns the per-architecture installation directories
func (c *Config) SystemDirs() dllfiles.SystemDirs {
	return dllfiles.SystemDirs{X32: c.X32Dir, X64: c.X64Dir}
}

// UsesDefaultDirs reports whether the system directory of any of archs is
// still the Windows default
func (c *Config) UsesDefaultDirs(archs ...dllfiles.Architecture) bool {
	defaults := dllfiles.DefaultSystemDirs()
	dirs := c.SystemDirs()
	for _, arch := range archs {
		if dirs.For(arch) == defaults.For(arch) {
			return true
		}
	}
	return false
}
