package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pulmocare/appointments/backend/internal/config"
	"github.com/pulmocare/appointments/backend/internal/logger"
	"github.com/pulmocare/appointments/backend/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Setenv("ENV", "development")

	dir := writeConfig(t, `app:
  name: appointments-service
  environment: test

logging:
  level: debug
  format: console

cache:
  cleanupInterval: 30s
  maxSize: 500

metrics:
  enabled: true
  port: 9100
`)

	svc := config.NewConfigService(testhelper.NewTestLogger(false))
	cfg, err := svc.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "appointments-service", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, logger.Level("debug"), cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Cache.CleanupInterval)
	assert.Equal(t, 500, cfg.Cache.MaxSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9100, cfg.Metrics.Port)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	dir := writeConfig(t, `app:
  name: appointments-service
`)

	svc := config.NewConfigService(testhelper.NewTestLogger(false))
	cfg, err := svc.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, logger.Level("info"), cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, 60*time.Second, cfg.Cache.CleanupInterval)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("ENV", "development")

	svc := config.NewConfigService(testhelper.NewTestLogger(false))
	_, err := svc.Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "negative cleanup interval",
			content: `app:
  name: appointments-service
cache:
  cleanupInterval: -5s
`,
		},
		{
			name: "negative max size",
			content: `app:
  name: appointments-service
cache:
  maxSize: -1
`,
		},
		{
			name: "metrics enabled without a port",
			content: `app:
  name: appointments-service
metrics:
  enabled: true
  port: 0
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ENV", "development")

			dir := writeConfig(t, tc.content)
			svc := config.NewConfigService(testhelper.NewTestLogger(false))
			_, err := svc.Load(dir)
			assert.Error(t, err)
		})
	}
}
