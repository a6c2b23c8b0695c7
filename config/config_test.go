package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: lifeline
  log:
    pretty: true
    level: debug
http:
  port: 5001
jwt:
  secret: ""
  ttl: 1h
auth:
  bcryptCost: 4
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "lifeline", cfg.Env.ServiceName)
	assert.Equal(t, 5001, cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestLoadWithEnv_EnvOverridesSecret(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("JWT_SECRET", "from-environment")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-environment", cfg.JWT.Secret)
}

func TestLoadWithEnv_EnvOverridesNestedCamelCaseKey(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("AUTH_BCRYPTCOST", "10")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"jwt": map[string]any{"secret": "", "ttl": "1h"},
		"env": map[string]any{"serviceName": "lifeline"},
	}

	assert.Equal(t, "jwt.secret", canonicalizeEnvKey("JWT_SECRET", existing))
	assert.Equal(t, "env.serviceName", canonicalizeEnvKey("ENV_SERVICENAME", existing))
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}
