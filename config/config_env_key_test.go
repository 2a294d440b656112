package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"managers": map[string]any{
			"codeAllocationAttempts": 3,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL": "6h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MANAGERS_CODEALLOCATIONATTEMPTS", want: "managers.codeAllocationAttempts"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, 6*time.Hour, cfg.TokenTTL())
	assert.Equal(t, DefaultMinPasswordLength, cfg.MinPasswordLength())
	assert.Equal(t, DefaultCodeAllocationAttempts, cfg.CodeAllocationAttempts())

	cfg.Auth = &AuthConfig{TokenTTL: time.Hour, MinPasswordLength: 12}
	cfg.Managers = &ManagersConfig{CodeAllocationAttempts: 5}

	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.Equal(t, 12, cfg.MinPasswordLength())
	assert.Equal(t, 5, cfg.CodeAllocationAttempts())
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("auth:\n  tokenTTL: 6h\n  bcryptCost: 10\nsecretKey:\n  access: from-file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 6*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.ErrorContains(t, err, "config file missing.yaml not found")
}
