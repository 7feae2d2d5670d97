package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
version: "1"
hostname: media.example.com
port: 4443
authorization: Basic c2VjcmV0
`)
	require.NoError(t, LoadConfig(path))

	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "media.example.com", cfg.Hostname)
	assert.Equal(t, 4443, cfg.Port)
	assert.Equal(t, "Basic c2VjcmV0", cfg.Authorization)
}

func TestLoadConfigDefaultPort(t *testing.T) {
	path := writeConfigFile(t, `
hostname: media.example.com
authorization: Basic c2VjcmV0
`)
	require.NoError(t, LoadConfig(path))
	assert.Equal(t, 443, GetConfig().Port)
}

func TestLoadConfigRequiresHostname(t *testing.T) {
	path := writeConfigFile(t, `
authorization: Basic c2VjcmV0
`)
	assert.Error(t, LoadConfig(path))
}

func TestLoadConfigAuthorizationFromEnv(t *testing.T) {
	path := writeConfigFile(t, `
hostname: media.example.com
`)
	t.Setenv("ROOMKIT_AUTHORIZATION", "Basic ZnJvbS1lbnY=")
	require.NoError(t, LoadConfig(path))
	assert.Equal(t, "Basic ZnJvbS1lbnY=", GetConfig().Authorization)
}

func TestLoadConfigMissingFile(t *testing.T) {
	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")))
}
