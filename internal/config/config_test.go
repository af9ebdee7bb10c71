package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty temp dir so a developer's config.yaml is not picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.1, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, "https://api.duckduckgo.com/", cfg.Search.InstantURL)
	assert.Equal(t, "nyc.gov/site/acs", cfg.Search.SiteScope)
	assert.Equal(t, "https://www.nyc.gov", cfg.Search.DomainPrefix)
	assert.Equal(t, 10*time.Second, cfg.Search.InstantTimeout)
	assert.Equal(t, 15*time.Second, cfg.Search.ScrapeTimeout)
	assert.Equal(t, 10*time.Second, cfg.Search.ExtractTimeout)
	assert.Equal(t, FAQSourceFile, cfg.FAQ.Source)
}

func TestLoad_AzureEnvNames(t *testing.T) {
	chdir(t)
	t.Setenv("AZURE_OPENAI_API_KEY", "secret")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, "https://example.openai.azure.com", cfg.LLM.Endpoint)
	assert.NoError(t, cfg.ValidateLLM())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdir(t)
	yaml := []byte(`
server:
  port: "9090"
faq:
  source: postgres
search:
  scrape_timeout: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))
	t.Setenv("DATABASE_URL", "postgres://localhost/faq")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, FAQSourcePostgres, cfg.FAQ.Source)
	assert.Equal(t, 5*time.Second, cfg.Search.ScrapeTimeout)
	assert.Equal(t, "postgres://localhost/faq", cfg.Database.URL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.Validate(), "AZURE_OPENAI_API_KEY")

	cfg.LLM.APIKey = "k"
	assert.ErrorContains(t, cfg.Validate(), "AZURE_OPENAI_ENDPOINT")

	cfg.LLM.Endpoint = "https://example"
	cfg.FAQ.Source = FAQSourcePostgres
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

	cfg.Database.URL = "postgres://x"
	assert.NoError(t, cfg.Validate())

	cfg.FAQ.Source = "s3"
	assert.ErrorContains(t, cfg.Validate(), "unknown faq.source")
}
