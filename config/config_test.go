package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramibot/config"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
feed:
  limit: 20
  timeout: 5s
relevance:
  keywords: [asilo, visado]
summarizer:
  backends: [openrouter]
  quota:
    requests_per_day: 50
scheduler:
  daily_at: "07:30"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Feed.Limit)
	assert.Equal(t, 5*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, "https://www.boe.es/rss/boe.php", cfg.Feed.URL)
	assert.Equal(t, []string{"asilo", "visado"}, cfg.Relevance.Keywords)
	assert.Equal(t, []string{"openrouter"}, cfg.Summarizer.Backends)
	assert.Equal(t, 30*time.Second, cfg.Summarizer.Timeout)
	assert.Equal(t, 50, cfg.Summarizer.Quota.RequestsPerDay)
	assert.Equal(t, "07:30", cfg.Scheduler.DailyAt)
	assert.Equal(t, "Europe/Madrid", cfg.Scheduler.Timezone)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed: [unterminated"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()

	assert.Equal(t, 15, cfg.Feed.Limit)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, []string{"huggingface", "openrouter", "gemini", "anthropic"}, cfg.Summarizer.Backends)
	assert.Equal(t, 10, cfg.Scanner.DisplayLimit)
	assert.Equal(t, ":8080", cfg.API.Addr)
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("HUGGINGFACE_TOKEN", " hf-token ")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "")

	secrets := config.LoadSecrets()
	assert.Equal(t, "hf-token", secrets.HuggingFaceToken)
	assert.Empty(t, secrets.OpenRouterAPIKey)
	assert.Equal(t, "gm", secrets.GeminiAPIKey)
	assert.Empty(t, secrets.KafkaBrokers)
}
