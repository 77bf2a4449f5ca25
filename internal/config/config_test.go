package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the keys for the test; godotenv never overrides a key
// that is present, even when empty.
func clearEnv(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "RULES_VERSION", "RULES_DIR", "RULES_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "v1", c.RulesVersion)
	assert.Equal(t, "", c.RulesDir)
	assert.Equal(t, "", c.RulesFile)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RULES_VERSION", "v2")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RULES_FILE", "/etc/cafe/summer.yaml")

	c := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, "v2", c.RulesVersion)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/etc/cafe/summer.yaml", c.RulesFile)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RULES_DIR=/etc/cafe/rules\nHTTP_ADDR=:1234\n"), 0o600))

	c := Load(path)
	assert.Equal(t, "/etc/cafe/rules", c.RulesDir)
	assert.Equal(t, ":7070", c.HTTPAddr)
}
