package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Chdir(dir)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	return path
}

func TestLoadWithEnv_YAML(t *testing.T) {
	writeTestConfig(t, `
env:
  env: test
  serviceName: gatekeeper
  log:
    pretty: true
    level: debug
http:
  port: 3001
  timeouts:
    readTimeout: 10s
auth:
  tokenSecret: yaml-secret
`)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "gatekeeper", cfg.Env.ServiceName)
	assert.Equal(t, 3001, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "yaml-secret", cfg.Auth.TokenSecret)
	assert.True(t, cfg.Env.Log.Pretty)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	writeTestConfig(t, `
http:
  port: 3001
auth:
  tokenSecret: yaml-secret
`)

	t.Setenv("AUTH_TOKENSECRET", "env-secret")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nonexistent")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"tokenSecret": "",
		},
		"http": map[string]any{
			"port": 0,
		},
	}

	assert.Equal(t, "auth.tokenSecret", canonicalizeEnvKey("AUTH_TOKENSECRET", existing))
	assert.Equal(t, "http.port", canonicalizeEnvKey("HTTP_PORT", existing))
	// Unknown segments fall through in lowercase.
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}
