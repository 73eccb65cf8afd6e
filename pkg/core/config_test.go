package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/dllget/pkg/dllfiles"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, dllfiles.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, dllfiles.DefaultX32Dir, cfg.X32Dir)
	assert.Equal(t, dllfiles.DefaultX64Dir, cfg.X64Dir)
	assert.Zero(t, cfg.Timeout)
	assert.Empty(t, cfg.UserAgent)
	assert.True(t, cfg.Progress)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.UsesDefaultDirs(dllfiles.Architectures...))
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `x64_dir: /opt/wine/system32
timeout: 30s
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/opt/wine/system32", cfg.X64Dir)
	assert.Equal(t, dllfiles.DefaultX32Dir, cfg.X32Dir)
	assert.Equal(t, dllfiles.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Progress)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0644))

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.X32Dir = "/srv/x32"
	cfg.Timeout = 45 * time.Second

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://127.0.0.1:8080")
	t.Setenv(EnvX32Dir, "/tmp/x32")
	t.Setenv(EnvX64Dir, "/tmp/x64")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvDebug, "true")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	assert.Equal(t, "/tmp/x32", cfg.X32Dir)
	assert.Equal(t, "/tmp/x64", cfg.X64Dir)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.UsesDefaultDirs(dllfiles.Architectures...))
}

func TestConfig_UsesDefaultDirs(t *testing.T) {
	tests := []struct {
		name   string
		x32Dir string
		x64Dir string
		archs  []dllfiles.Architecture
		want   bool
	}{
		{"x32 default, x32 requested", dllfiles.DefaultX32Dir, "/opt/x64", []dllfiles.Architecture{dllfiles.X32}, true},
		{"x32 default, x64 requested", dllfiles.DefaultX32Dir, "/opt/x64", []dllfiles.Architecture{dllfiles.X64}, false},
		{"x64 default, x32 requested", "/opt/x32", dllfiles.DefaultX64Dir, []dllfiles.Architecture{dllfiles.X32}, false},
		{"x64 default, both requested", "/opt/x32", dllfiles.DefaultX64Dir, dllfiles.Architectures, true},
		{"both relocated", "/opt/x32", "/opt/x64", dllfiles.Architectures, false},
		{"nothing requested", dllfiles.DefaultX32Dir, dllfiles.DefaultX64Dir, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.X32Dir = tt.x32Dir
			cfg.X64Dir = tt.x64Dir

			assert.Equal(t, tt.want, cfg.UsesDefaultDirs(tt.archs...))
		})
	}
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	t.Setenv(EnvDebug, "sometimes")

	err := ApplyEnv(DefaultConfig())

	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDebug)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dllget.env")
	require.NoError(t, os.WriteFile(path, []byte("DLLGET_X32_DIR=/from/env/file\n"), 0644))
	t.Setenv(EnvX32Dir, "")
	os.Unsetenv(EnvX32Dir)

	require.NoError(t, LoadEnv(path))

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, "/from/env/file", cfg.X32Dir)
}

func TestLoadEnv_MissingExplicitFile(t *testing.T) {
	err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))

	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"relative base url", func(c *Config) { c.BaseURL = "/local" }, true},
		{"ftp base url", func(c *Config) { c.BaseURL = "ftp://files.example" }, true},
		{"empty x32 dir", func(c *Config) { c.X32Dir = "" }, true},
		{"empty x64 dir", func(c *Config) { c.X64Dir = "" }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
