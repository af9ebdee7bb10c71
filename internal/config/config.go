package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	FAQSourceFile     = "file"
	FAQSourcePostgres = "postgres"
)

type Config struct {
	Server struct {
		Port           string
		StaticDir      string
		RateLimit      int
		CORSOrigins    []string
		RequestTimeout time.Duration
	}
	LLM struct {
		Endpoint    string
		APIKey      string
		APIVersion  string
		Deployment  string
		MaxTokens   int
		Temperature float64
		Timeout     time.Duration
	}
	Search struct {
		InstantURL     string
		LiteURL        string
		SiteScope      string
		DomainPrefix   string
		UserAgent      string
		InstantTimeout time.Duration
		ScrapeTimeout  time.Duration
		ExtractTimeout time.Duration
		MaxHits        int
		MaxParagraphs  int
	}
	FAQ struct {
		Source string
		Path   string
	}
	Database struct {
		URL string
	}
	Redis struct {
		URL string
	}
	LogLevel string
}

// Load reads config.yaml from the working directory when present and overlays the
// environment. Keys map to env vars with dots replaced by underscores (llm.api_key ->
// LLM_API_KEY); the AZURE_OPENAI_* names are also accepted.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("server.rate_limit", 60)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.request_timeout", 90*time.Second)

	v.SetDefault("llm.api_version", "2023-12-01-preview")
	v.SetDefault("llm.deployment", "gpt-35-turbo")
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.api_key", "")

	v.SetDefault("search.instant_url", "https://api.duckduckgo.com/")
	v.SetDefault("search.lite_url", "https://lite.duckduckgo.com/lite/")
	v.SetDefault("search.site_scope", "nyc.gov/site/acs")
	v.SetDefault("search.domain_prefix", "https://www.nyc.gov")
	v.SetDefault("search.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("search.instant_timeout", 10*time.Second)
	v.SetDefault("search.scrape_timeout", 15*time.Second)
	v.SetDefault("search.extract_timeout", 10*time.Second)
	v.SetDefault("search.max_hits", 3)
	v.SetDefault("search.max_paragraphs", 3)

	v.SetDefault("faq.source", FAQSourceFile)
	v.SetDefault("faq.path", "data/faqs.yaml")

	v.SetDefault("database.url", "")
	v.SetDefault("redis.url", "")
	v.SetDefault("log_level", "info")
}

func bindLegacyEnv(v *viper.Viper) {
	// BindEnv only fails when called without a key.
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "AZURE_OPENAI_API_KEY")
	_ = v.BindEnv("llm.endpoint", "LLM_ENDPOINT", "AZURE_OPENAI_ENDPOINT")
	_ = v.BindEnv("llm.api_version", "LLM_API_VERSION", "AZURE_OPENAI_API_VERSION")
	_ = v.BindEnv("llm.deployment", "LLM_DEPLOYMENT", "GPT_DEPLOYMENT_NAME")
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("redis.url", "REDIS_URL")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("server.port")
	config.Server.StaticDir = v.GetString("server.static_dir")
	config.Server.RateLimit = v.GetInt("server.rate_limit")
	config.Server.CORSOrigins = v.GetStringSlice("server.cors_origins")
	config.Server.RequestTimeout = v.GetDuration("server.request_timeout")

	config.LLM.Endpoint = strings.TrimRight(v.GetString("llm.endpoint"), "/")
	config.LLM.APIKey = v.GetString("llm.api_key")
	config.LLM.APIVersion = v.GetString("llm.api_version")
	config.LLM.Deployment = v.GetString("llm.deployment")
	config.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	config.LLM.Temperature = v.GetFloat64("llm.temperature")
	config.LLM.Timeout = v.GetDuration("llm.timeout")

	config.Search.InstantURL = v.GetString("search.instant_url")
	config.Search.LiteURL = v.GetString("search.lite_url")
	config.Search.SiteScope = v.GetString("search.site_scope")
	config.Search.DomainPrefix = v.GetString("search.domain_prefix")
	config.Search.UserAgent = v.GetString("search.user_agent")
	config.Search.InstantTimeout = v.GetDuration("search.instant_timeout")
	config.Search.ScrapeTimeout = v.GetDuration("search.scrape_timeout")
	config.Search.ExtractTimeout = v.GetDuration("search.extract_timeout")
	config.Search.MaxHits = v.GetInt("search.max_hits")
	config.Search.MaxParagraphs = v.GetInt("search.max_paragraphs")

	config.FAQ.Source = strings.ToLower(v.GetString("faq.source"))
	config.FAQ.Path = v.GetString("faq.path")

	config.Database.URL = v.GetString("database.url")
	config.Redis.URL = v.GetString("redis.url")
	config.LogLevel = v.GetString("log_level")

	return &config
}

func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("AZURE_OPENAI_API_KEY is missing from environment variables")
	}
	if c.LLM.Endpoint == "" {
		return fmt.Errorf("AZURE_OPENAI_ENDPOINT is missing from environment variables")
	}
	return nil
}

// Validate checks everything the server needs before it can accept requests.
func (c *Config) Validate() error {
	if err := c.ValidateLLM(); err != nil {
		return err
	}
	switch c.FAQ.Source {
	case FAQSourceFile:
		if c.FAQ.Path == "" {
			return fmt.Errorf("faq.path is required when faq.source is %q", FAQSourceFile)
		}
	case FAQSourcePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when faq.source is %q", FAQSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown faq.source %q", c.FAQ.Source)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit cannot be negative")
	}
	return nil
}
