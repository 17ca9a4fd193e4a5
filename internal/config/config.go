package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// ErrMissingAPIKey is returned when a cloud provider is selected without a credential.
var ErrMissingAPIKey = errors.New("API key not set (GROQ_API_KEY or LLM_API_KEY)")

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// Requests per second accepted by the server, 0 disables limiting
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`

	// Browser origins allowed to call the API
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
	OllamaHost  string  `mapstructure:"ollama_host"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to the environment variables that feed them,
// in order of precedence.
var envBindings = map[string][]string{
	"server.host":          {"SERVER_HOST"},
	"server.port":          {"SERVER_PORT"},
	"server.read_timeout":  {"SERVER_READ_TIMEOUT"},
	"server.write_timeout": {"SERVER_WRITE_TIMEOUT"},
	"server.rate_limit":    {"SERVER_RATE_LIMIT"},
	"server.rate_burst":    {"SERVER_RATE_BURST"},
	"server.cors_origins":  {"SERVER_CORS_ORIGINS"},
	"llm.provider":         {"LLM_PROVIDER"},
	"llm.api_key":          {"GROQ_API_KEY", "LLM_API_KEY"},
	"llm.base_url":         {"LLM_BASE_URL"},
	"llm.model":            {"LLM_MODEL"},
	"llm.temperature":      {"LLM_TEMPERATURE"},
	"llm.max_tokens":       {"LLM_MAX_TOKENS"},
	"llm.ollama_host":      {"OLLAMA_HOST"},
	"log.level":            {"LOG_LEVEL"},
	"log.format":           {"LOG_FORMAT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 5)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("llm.provider", ProviderGroq)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 512)
	v.SetDefault("llm.ollama_host", "http://localhost:11434")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads configuration from the environment and, when path is
// non-empty, from a YAML file. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded successfully", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	return &cfg, nil
}

// Validate checks the fields that make the service unusable when wrong.
func (c *Config) Validate() error {
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)

	switch c.LLM.Provider {
	case ProviderGroq, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm provider %s: %w", c.LLM.Provider, ErrMissingAPIKey)
		}
	case ProviderOllama:
	default:
		return fmt.Errorf("unknown llm provider %q (supported: groq, openai, ollama)", c.LLM.Provider)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	return nil
}
