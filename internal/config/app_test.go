package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.NoError(t, cfg.validate())
}

func TestDefaultHonorsPortVariables(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("METRICS_PORT", "3001")

	cfg := Default()
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, ":3001", cfg.Server.MetricsAddr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  handler_timeout: 5s
rate_limit:
  requests_per_second: 10
  burst: 20
pagination:
  default_limit: 10
  max_limit: 50
blob_store:
  cloud_name: demo
  upload_preset: unsigned
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.HandlerTimeout.Std())
	assert.Equal(t, float64(10), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t, "demo", cfg.BlobStore.CloudName)
	// Untouched fields keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Std())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero rate": `
rate_limit:
  requests_per_second: 0
`,
		"pagination default above max": `
pagination:
  default_limit: 200
  max_limit: 100
`,
		"handler timeout above write timeout": `
server:
  handler_timeout: 40s
  write_timeout: 30s
`,
		"malformed duration": `
server:
  read_timeout: soon
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":7777"
`)
	t.Setenv("CONFIG_FILE", path)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Addr)
}

func TestFromEnvWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}
