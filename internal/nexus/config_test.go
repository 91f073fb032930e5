package nexus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `env:"NEXUS_TEST_NAME" env-default:"default-name"`
	Port    int    `env:"NEXUS_TEST_PORT" env-default:"8080" validate:"gt=0"`
	Backend string `env:"NEXUS_TEST_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
}

func TestLoadAppliesDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, NewLoader(WithOnlyEnvironment()).Load(&cfg))

	assert.Equal(t, "default-name", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.Backend)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("NEXUS_TEST_NAME", "from-env")
	t.Setenv("NEXUS_TEST_BACKEND", "redis")

	var cfg testConfig
	require.NoError(t, NewLoader(WithOnlyEnvironment()).Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, "redis", cfg.Backend)
}

func TestLoadReadsFileWithEnvPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(file, []byte("NEXUS_TEST_NAME=from-file\nNEXUS_TEST_PORT=9000\n"), 0o600))
	t.Setenv("NEXUS_TEST_PORT", "9999")

	var cfg testConfig
	require.NoError(t, NewLoader(WithFileName(file)).Load(&cfg))

	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, 9999, cfg.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithFileName("does-not-exist.env")).Load(&cfg)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeFileNotFound, cfgErr.Code)
}

func TestLoadValidationFailure(t *testing.T) {
	t.Setenv("NEXUS_TEST_BACKEND", "memcached")

	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
}

func TestLoadRejectsNonPointer(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(testConfig{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}
