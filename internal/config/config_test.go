package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultGatewayURL, cfg.GatewayURL)
	assert.Equal(t, DefaultGatewayAddr, cfg.GatewayAddr)
	assert.Equal(t, DefaultDealerName, cfg.DealerName)
	assert.False(t, cfg.Offline)
	assert.Equal(t, 5*time.Second, cfg.InventoryTimeout)
	assert.Equal(t, 10*time.Second, cfg.DealerTimeout)
	assert.NotEmpty(t, cfg.ConfigDir)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestConfig_Paths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConfigDir = "/tmp/showroom-conf"
	cfg.CacheDir = "/tmp/showroom-cache"

	assert.Equal(t, filepath.Join("/tmp/showroom-conf", "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join("/tmp/showroom-cache", "inventory.db"), cfg.InventoryDBPath())
	assert.Equal(t, filepath.Join("/tmp/showroom-cache", "photos"), cfg.CachePath("photos"))
}

func TestConfig_IsVerbose(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.IsVerbose())

	cfg.Verbose = true
	assert.True(t, cfg.IsVerbose())

	cfg.Quiet = true
	assert.False(t, cfg.IsVerbose())
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.DealerName = "Other Motors"
	assert.NotEqual(t, cfg.DealerName, clone.DealerName)
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultGatewayURL, cfg.GatewayURL)
}

func TestLoader_Load_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
log_level: debug
gateway_url: http://dms.local:9000
dealer_name: Hilltop Chevrolet
offline: true
inventory_timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://dms.local:9000", cfg.GatewayURL)
	assert.Equal(t, "Hilltop Chevrolet", cfg.DealerName)
	assert.True(t, cfg.Offline)
	assert.Equal(t, 2*time.Second, cfg.InventoryTimeout)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0644))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway_url: http://file.example:1\n"), 0644))

	t.Setenv("SHOWROOM_GATEWAY_URL", "http://env.example:2")
	t.Setenv("SHOWROOM_OFFLINE", "yes")
	t.Setenv("SHOWROOM_DEALER_TIMEOUT", "3s")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example:2", cfg.GatewayURL)
	assert.True(t, cfg.Offline)
	assert.Equal(t, 3*time.Second, cfg.DealerTimeout)
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool("1"))
	assert.True(t, parseBool("YES"))
	assert.True(t, parseBool(" on "))
	assert.False(t, parseBool("false"))
	assert.False(t, parseBool("0"))
	assert.False(t, parseBool(""))
}

func TestValidator_ValidConfig(t *testing.T) {
	v := NewValidator()
	cfg := DefaultConfig()

	assert.Empty(t, v.Validate(cfg))
	assert.True(t, v.IsValid(cfg))
	assert.NoError(t, v.ValidateOrError(cfg))
}

func TestValidator_CollectsAllErrors(t *testing.T) {
	v := NewValidator()
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	cfg.InventoryTimeout = 0
	cfg.Verbose = true
	cfg.Quiet = true

	errs := v.Validate(cfg)
	assert.Len(t, errs, 3)
}

func TestValidator_GatewayURL(t *testing.T) {
	v := NewValidator()

	cfg := DefaultConfig()
	cfg.GatewayURL = ""
	assert.False(t, v.IsValid(cfg))

	cfg.GatewayURL = "not a url"
	assert.False(t, v.IsValid(cfg))

	// Offline kiosks don't need a gateway at all.
	cfg.GatewayURL = ""
	cfg.Offline = true
	assert.True(t, v.IsValid(cfg))
}

func TestValidator_EmptyDirs(t *testing.T) {
	v := NewValidator()
	cfg := DefaultConfig()
	cfg.ConfigDir = ""
	cfg.CacheDir = ""

	errs := v.Validate(cfg)
	assert.Len(t, errs, 2)
}

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: silly\n"), 0644))

	_, err := NewLoader(path).LoadAndValidate()
	assert.Error(t, err)
}
