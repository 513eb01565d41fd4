package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestDefaults(t *testing.T) {
	withArgs(t)
	cfg := LoadConfig()
	assert.Equal(t, "http://127.0.0.1:8080", cfg.GatewayURL)
	assert.Empty(t, cfg.APIKey)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://gateway:9000", "-k", "public")
	cfg := LoadConfig()
	assert.Equal(t, "http://gateway:9000", cfg.GatewayURL)
	assert.Equal(t, "public", cfg.APIKey)
}

func TestJSONOverlayAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"gateway_url": "http://from-json:8080",
		"api_key": "json-key",
		"request_timeout": "5s"
	}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://from-flag:8080")
	cfg := LoadConfig()

	// Flags win over JSON; JSON wins over defaults.
	assert.Equal(t, "http://from-flag:8080", cfg.GatewayURL)
	assert.Equal(t, "json-key", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestMissingJSONFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))
	assert.Panics(t, func() { LoadConfig() })
}
